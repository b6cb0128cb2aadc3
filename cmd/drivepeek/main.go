package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	"github.com/drivepeek/drivepeek/internal/adapter/driven/googleauth"
	"github.com/drivepeek/drivepeek/internal/adapter/driven/googledrive"
	httphandler "github.com/drivepeek/drivepeek/internal/adapter/driving/http"
	"github.com/drivepeek/drivepeek/internal/application"
	"github.com/drivepeek/drivepeek/internal/config"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration (fail fast on missing client identifiers).
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"redirect_url", cfg.RedirectURL,
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Wire adapters. The Drive client carries no credential of its own;
	// each request parameterizes it with the caller's bearer token.
	driveClient := googledrive.NewClient()
	authClient := googleauth.NewClient(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.RedirectURL)
	fileSvc := application.NewFileService(driveClient)

	// 4. Create HTTP handler and register routes.
	handler := httphandler.NewHandler(fileSvc, authClient, slog.Default())

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           httphandler.NewServeMux(handler, slog.Default()),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server error", "error", err)
		}
	}()

	// 5. Log startup complete.
	slog.Info("drivepeek started", "listen_addr", cfg.ListenAddr)

	// 6. Wait for shutdown signal.
	<-ctx.Done()
	slog.Info("shutting down")

	// 7. Graceful shutdown with 10s timeout for HTTP server drain.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
	return nil
}
