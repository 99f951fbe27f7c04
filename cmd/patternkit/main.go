package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ajitpratap0/patternkit/internal/catalog"
	"github.com/ajitpratap0/patternkit/internal/config"
	"github.com/ajitpratap0/patternkit/internal/logsink"
)

var (
	cfg     *config.Config
	logFile *logsink.FileSink
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	rootCmd := &cobra.Command{
		Use:   "patternkit",
		Short: "patternkit: prototype registry and design pattern toolkit",
		Long:  "patternkit keeps registries of prototype entities that mint independent clones on demand, and ships runnable demonstrations of the classic creational, structural and behavioural patterns.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			return nil
		},
	}

	rootCmd.AddCommand(
		listCmd(),
		getCmd(),
		cloneCmd(),
		statsCmd(),
		exportCmd(),
		serveCmd(),
		mcpCmd(),
		demoCmd(),
	)

	rootCmd.SetContext(ctx)

	err := rootCmd.Execute()
	closeLogFile()
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// newLogger builds the process logger. When logsink.path is set, records are
// also appended to that file.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if cfg != nil {
		switch cfg.Logging.Level {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg != nil && cfg.Logging.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	if cfg == nil || cfg.LogSink.Path == "" {
		return slog.New(handler)
	}
	if logFile == nil {
		f, err := logsink.OpenFileSink(cfg.LogSink.Path)
		if err != nil {
			logger := slog.New(handler)
			logger.Warn("log file disabled", "path", cfg.LogSink.Path, "error", err)
			return logger
		}
		logFile = f
	}
	return slog.New(logsink.Tee(handler, logsink.NewSlogHandler(logsink.New(logFile), level)))
}

func closeLogFile() {
	if logFile == nil {
		return
	}
	if err := logFile.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "closing log file: %v\n", err)
	}
	logFile = nil
}

// newCatalog builds the catalog from the stock prototypes and the configured seed file.
func newCatalog(logger *slog.Logger) (*catalog.Catalog, error) {
	cat := catalog.New(logger)
	if !cfg.Catalog.SkipDefaults {
		cat.SeedDefaults()
	}
	if cfg.Catalog.SeedFile != "" {
		if _, err := cat.LoadSeedFile(cfg.Catalog.SeedFile); err != nil {
			return nil, err
		}
	}
	return cat, nil
}

// parseKind validates a kind argument.
func parseKind(s string) (catalog.Kind, error) {
	k := catalog.Kind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("%w: %q (want one of %v)", catalog.ErrUnknownKind, s, catalog.ValidKinds)
	}
	return k, nil
}
