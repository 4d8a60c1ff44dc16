package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/vmunix/vidcat/internal/catalog"
	"github.com/vmunix/vidcat/internal/config"
	"github.com/vmunix/vidcat/internal/ingest"
	"github.com/vmunix/vidcat/internal/probe"
	"github.com/vmunix/vidcat/internal/server"
	"github.com/vmunix/vidcat/internal/watch"
	"github.com/vmunix/vidcat/internal/web"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func sourcesFromConfig(cfg *config.Config) []ingest.Source {
	sources := make([]ingest.Source, len(cfg.Sources))
	for i, s := range cfg.Sources {
		sources[i] = ingest.Source{Name: s.Name, Root: s.Root}
	}
	return sources
}

func runServer(configPath string) error {
	// Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// Create logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))
	for _, w := range cfg.Warnings() {
		logger.Warn("config warning", "warning", w)
	}

	// Open database and run migrations
	db, err := catalog.Open(cfg.Database.Path, logger.With("component", "migrations"))
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	// === Catalog pipeline ===
	store := catalog.NewStore(db)
	prober := probe.NewFFProbe(cfg.Probe.FFprobePath)
	synchronizer := ingest.NewSynchronizer(store, prober, logger.With("component", "sync"))
	sources := sourcesFromConfig(cfg)
	runner := ingest.NewRunner(synchronizer, sources, logger.With("component", "runner"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Startup sync completes before the server accepts requests.
	if cfg.Sync.StartupSync() {
		if _, err := runner.RunAll(ctx); err != nil {
			return fmt.Errorf("startup sync: %w", err)
		}
	}
	if ctx.Err() != nil {
		logger.Info("interrupted during startup sync")
		return nil
	}

	// === HTTP Setup ===
	webServer, err := web.New(web.ServerDeps{
		Catalog:      store,
		Refresher:    runner,
		Logger:       logger,
		Version:      version,
		RefreshLimit: *cfg.Sync.RefreshLimit,
	})
	if err != nil {
		return fmt.Errorf("web: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := server.NewRunner(server.Config{Addr: addr}, webServer.Handler(), logger)

	if cfg.Watch.Enabled {
		watcher, err := watch.New(runner, sources, cfg.Watch.Debounce, logger)
		if err != nil {
			return fmt.Errorf("watch: %w", err)
		}
		srv.Add("watch", watcher)
	}

	logger.Info("vidcatd starting",
		"version", version,
		"addr", addr,
		"database", cfg.Database.Path,
		"sources", len(sources),
		"watch", cfg.Watch.Enabled,
	)

	if err := srv.Run(ctx); err != nil {
		return err
	}

	logger.Info("server stopped")
	return nil
}
