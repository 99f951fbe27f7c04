package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajitpratap0/patternkit/internal/config"
)

// demoEnv carries what a demo needs, so demos run the same from the CLI and from tests.
type demoEnv struct {
	ctx    context.Context
	out    io.Writer
	logger *slog.Logger

	sessionTTL      time.Duration
	cacheExpiration time.Duration
	cacheCleanup    time.Duration
	batchLimit      int
	logPath         string // empty writes the logger demo to a temp file
}

type demo struct {
	name  string
	short string
	run   func(env demoEnv) error
}

var demos = []demo{
	{"builder", "Build database configs, SQL queries and people step by step", demoBuilder},
	{"factory", "Create notifications, audio players and shapes from a type tag", demoFactory},
	{"abstract-factory", "Create matching notification families per channel", demoAbstractFactory},
	{"prototype", "Clone registered user, invoice and configuration prototypes", demoPrototype},
	{"decorator", "Price menu items wrapped in add-ons", demoDecorator},
	{"facade", "Place orders through one facade over four subsystems", demoFacade},
	{"flyweight", "Share glyph objects between many uses", demoFlyweight},
	{"adapter", "Pay through two bank APIs behind one UPI interface", demoAdapter},
	{"logger", "Write level-tagged lines to an append-only log file", demoLogger},
	{"session", "Issue expiring sessions and cache lookups", demoSession},
}

func demoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a design pattern demonstration",
	}

	for _, d := range demos {
		cmd.AddCommand(&cobra.Command{
			Use:   d.name,
			Short: d.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return d.run(newDemoEnv(cmd))
			},
		})
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "all",
		Short: "Run every demonstration in turn",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env := newDemoEnv(cmd)
			for _, d := range demos {
				fmt.Fprintf(env.out, "== %s ==\n", d.name)
				if err := d.run(env); err != nil {
					return fmt.Errorf("demo %s: %w", d.name, err)
				}
				fmt.Fprintln(env.out)
			}
			return nil
		},
	})

	return cmd
}

func newDemoEnv(cmd *cobra.Command) demoEnv {
	env := demoEnv{
		ctx:             cmd.Context(),
		out:             cmd.OutOrStdout(),
		logger:          newLogger(),
		sessionTTL:      config.DefaultSessionTTL,
		cacheExpiration: config.DefaultCacheExpiration,
		cacheCleanup:    config.DefaultCacheCleanupInterval,
		batchLimit:      config.DefaultBatchConcurrency,
	}
	if cfg != nil {
		env.sessionTTL = cfg.Session.TTL
		env.cacheExpiration = cfg.Cache.Expiration
		env.cacheCleanup = cfg.Cache.CleanupInterval
		env.batchLimit = cfg.Orders.BatchConcurrency
		env.logPath = cfg.LogSink.Path
	}
	return env
}
