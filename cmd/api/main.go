// Package main is the entry point for the Luach API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zapponejosh/luach-api/internal/api"
	"github.com/zapponejosh/luach-api/internal/calendar"
	"github.com/zapponejosh/luach-api/internal/config"
	"github.com/zapponejosh/luach-api/internal/daf"
	"github.com/zapponejosh/luach-api/internal/database"
	"github.com/zapponejosh/luach-api/internal/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// Setup structured logging
	log := logger.Setup(cfg)

	log.Info("starting luach API",
		slog.String("env", cfg.Env),
		slog.Int("port", cfg.Port),
		slog.String("log_level", cfg.LogLevel),
		slog.Bool("in_israel", cfg.InIsrael),
		slog.Bool("cache_days", cfg.CacheDays),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	dafs := daf.DefaultRegistry()
	if cfg.CyclesFile != "" {
		n, err := dafs.LoadInto(cfg.CyclesFile)
		if err != nil {
			return fmt.Errorf("load cycles: %w", err)
		}
		log.Info("loaded study cycles", slog.String("path", cfg.CyclesFile), slog.Int("count", n))
	}

	var db *database.DB
	if cfg.CacheDays {
		var err error
		db, err = database.Open(database.DefaultConfig(cfg.DatabasePath), log)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()

		if _, err := db.Migrate(ctx); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}
	}

	resolver := calendar.NewResolver(cfg.HolidayOptions(), dafs)
	handlers := api.NewHandlers(db, resolver, cfg, log)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           api.SetupRoutes(handlers, cfg, log),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("luach API ready", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
