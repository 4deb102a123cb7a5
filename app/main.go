package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/senthilk/party-pulse/app/api"
	"github.com/senthilk/party-pulse/app/cache"
	"github.com/senthilk/party-pulse/app/cfg"
	"github.com/senthilk/party-pulse/app/records"
	"github.com/senthilk/party-pulse/app/sheets"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting Party Pulse server", "version", appCfg.Version)

	schemas, err := records.LoadSchemas(appCfg.SchemaDir)
	if err != nil {
		slog.Error("Failed to load header schemas", "error", err)
		os.Exit(1)
	}

	sheetCache := cache.New(time.Duration(appCfg.CacheTTL) * time.Second)

	sheetService, err := sheets.NewService(context.Background(), appCfg, sheetCache)
	if err != nil {
		slog.Error("Failed to initialize sheets client", "error", err)
		os.Exit(1)
	}

	handler := api.NewHandler(sheetService, records.NewNormalizer(schemas), appCfg)
	server := api.NewServer(handler)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}
}
