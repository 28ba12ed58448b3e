// Package main runs the volatility dashboard server: HTML pages, the
// session JSON API, chart rendering and WebSocket push.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"crypto-volatility-lab/internal/config"
	"crypto-volatility-lab/internal/reporting"
	"crypto-volatility-lab/internal/server"
	"crypto-volatility-lab/internal/session"
	"crypto-volatility-lab/internal/storage/memory"
)

func main() {
	logger := log.New(os.Stdout, "[server] ", log.LstdFlags|log.Lshortfile)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	hub := server.NewHub(logger)
	manager := session.NewManager(
		memory.NewSessionStore(),
		memory.NewSeriesStore(),
		session.WithNotifier(hub),
		session.WithDefaultParams(cfg.DefaultParams()),
	)

	srv := server.New(server.Options{
		Manager: manager,
		Hub:     hub,
		Reports: reporting.NewGenerator(cfg.Reports.OutputDir),
		Logger:  logger,
	})

	httpServer := &http.Server{
		Addr:    cfg.Server.ListenAddr,
		Handler: srv.Handler(),
	}

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("Listening on %s", cfg.Server.ListenAddr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case sig := <-sigCh:
		logger.Printf("Received signal %v, shutting down...", sig)
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			logger.Printf("Shutdown error: %v", err)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server error: %v", err)
		}
	}

	logger.Println("Shutdown complete")
}
