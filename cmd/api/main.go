// Package main is the entry point for the Family Trip API server.
// It wires configuration, outbound clients, services and the router together
// and runs the server until SIGINT or SIGTERM. No business logic belongs here.
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

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/family-trip/backend/internal/auth"
	"github.com/pkordes/family-trip/backend/internal/config"
	"github.com/pkordes/family-trip/backend/internal/domain"
	"github.com/pkordes/family-trip/backend/internal/gsheets"
	"github.com/pkordes/family-trip/backend/internal/handler"
	"github.com/pkordes/family-trip/backend/internal/llm"
	"github.com/pkordes/family-trip/backend/internal/middleware"
	"github.com/pkordes/family-trip/backend/internal/service"
)

const (
	// llmTimeout bounds one extraction call; completions are much slower than
	// spreadsheet reads.
	llmTimeout = 60 * time.Second

	shutdownGrace = 15 * time.Second
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(); err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)
	warnDisabledFeatures(logger, cfg)

	sheetsClient := &http.Client{Timeout: cfg.HTTPClientTimeout}
	reader := gsheets.NewReader(sheetsClient, cfg.SpreadsheetID, cfg.SheetsAPIKey)
	writer := gsheets.NewWriter(sheetsClient, cfg.WebhookURL)
	parser := llm.NewParser(cfg.OpenAIAPIKey, cfg.OpenAIModel, "", &http.Client{Timeout: llmTimeout})

	tokens := auth.NewTokens(cfg.AdminTokenSecret, cfg.AdminSessionTTL, nil)
	trips := service.NewTripService(reader, domain.FallbackTrip(), nil, logger)
	admin := service.NewAdminService(cfg.AdminPassword, tokens, parser, writer, trips, cfg.ReloadDelay, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Until the first load finishes /trip serves the fallback trip with
	// loading=true.
	go func() {
		loadCtx, cancel := context.WithTimeout(ctx, 2*cfg.HTTPClientTimeout)
		defer cancel()
		trips.Load(loadCtx)
	}()

	srv := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     newRouter(cfg, logger, handler.NewServer(trips, admin, tokens, logger)),
		ReadTimeout: 10 * time.Second,
		// Leaves room for a full extraction call on /admin/parse.
		WriteTimeout: llmTimeout + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr, "spreadsheet", cfg.SpreadsheetID)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// newRouter applies, in order: RequestID, RealIP, request log, Recoverer,
// CORS and the body limit, then mounts the API routes.
func newRouter(cfg config.Config, logger *slog.Logger, server *handler.Server) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	r.Mount("/", server.Routes())
	return r
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

// warnDisabledFeatures reports optional settings whose absence turns off part
// of the admin workflow.
func warnDisabledFeatures(logger *slog.Logger, cfg config.Config) {
	if cfg.WebhookURL == "" {
		logger.Warn("SHEETS_WEBHOOK_URL not set, admin apply is disabled")
	}
	if cfg.OpenAIAPIKey == "" {
		logger.Warn("OPENAI_API_KEY not set, admin parse is disabled")
	}
	if cfg.AdminTokenSecret == "" {
		logger.Warn("ADMIN_TOKEN_SECRET not set, admin tokens will not survive a restart")
	}
}
