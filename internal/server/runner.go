// Package server runs the daemon's long-lived components.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

const defaultShutdownTimeout = 30 * time.Second

// Config for the server runner.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	// Listener, when set, is used instead of listening on Addr.
	Listener net.Listener
}

// Component is a background task that runs until its context is canceled.
type Component interface {
	Run(ctx context.Context) error
}

type namedComponent struct {
	name string
	c    Component
}

// Runner manages the HTTP server and background components.
type Runner struct {
	config     Config
	handler    http.Handler
	components []namedComponent
	logger     *slog.Logger
}

// NewRunner creates a new runner serving handler.
func NewRunner(cfg Config, handler http.Handler, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
	return &Runner{
		config:  cfg,
		handler: handler,
		logger:  logger.With("component", "server"),
	}
}

// Add registers a background component. Must be called before Run.
func (r *Runner) Add(name string, c Component) {
	r.components = append(r.components, namedComponent{name: name, c: c})
}

// Run starts the HTTP server and all components.
// It blocks until the context is canceled or a component fails, then shuts
// the server down gracefully.
func (r *Runner) Run(ctx context.Context) error {
	ln := r.config.Listener
	if ln == nil {
		var err error
		ln, err = net.Listen("tcp", r.config.Addr)
		if err != nil {
			return fmt.Errorf("listen %s: %w", r.config.Addr, err)
		}
	}

	srv := &http.Server{
		Handler:           r.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Use errgroup to manage component lifecycle
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r.logger.Info("listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		r.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), r.config.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	for _, nc := range r.components {
		g.Go(func() error {
			if err := nc.c.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("%s: %w", nc.name, err)
			}
			return nil
		})
	}

	return g.Wait()
}
