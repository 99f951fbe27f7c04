package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ajitpratap0/patternkit/internal/cache"
	"github.com/ajitpratap0/patternkit/internal/logsink"
	"github.com/ajitpratap0/patternkit/internal/models"
	"github.com/ajitpratap0/patternkit/internal/session"
)

func demoLogger(env demoEnv) error {
	l := logsink.New(nil)
	if err := l.Info("too early"); !errors.Is(err, logsink.ErrNotInitialized) {
		return fmt.Errorf("expected not initialized, got %v", err)
	}
	fmt.Fprintln(env.out, "logging before a sink is set fails:", logsink.ErrNotInitialized)

	path := env.logPath
	if path == "" {
		f, err := os.CreateTemp("", "patternkit-*.log")
		if err != nil {
			return fmt.Errorf("creating temp log: %w", err)
		}
		path = f.Name()
		_ = f.Close()
		defer func() { _ = os.Remove(path) }()
	}

	sink, err := logsink.OpenFileSink(path)
	if err != nil {
		return err
	}
	l.SetSink(sink)
	defer func() { _ = l.Close() }()

	for _, write := range []func(string) error{l.Info, l.Warning, l.Error} {
		if err := write("demo message"); err != nil {
			return err
		}
	}
	if err := l.Flush(); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading log: %w", err)
	}
	fmt.Fprintf(env.out, "appended to %s:\n%s", path, data)
	return nil
}

func demoSession(env demoEnv) error {
	sessions := session.NewManager(env.sessionTTL, env.cacheCleanup, env.logger)

	id := sessions.Create(1)
	userID, err := sessions.UserID(id)
	if err != nil {
		return err
	}
	fmt.Fprintf(env.out, "session %s belongs to user %d (valid: %t)\n", id, userID, sessions.Valid(id))

	sessions.Expire(id)
	fmt.Fprintf(env.out, "after expire, valid: %t\n", sessions.Valid(id))

	users := cache.New[*models.User]("users", env.cacheExpiration, env.cacheCleanup, env.logger)
	users.Set("1", models.NewUser(1, "admin", "admin@example.com", "Admin User", 30, models.UserTypeAdmin), 0)
	if u, ok := users.Get("1"); ok {
		fmt.Fprintf(env.out, "cache hit: %s <%s>\n", u.Username, u.Email)
	}
	users.Delete("1")
	fmt.Fprintf(env.out, "cache holds %d entries after delete\n", users.Len())
	return nil
}
