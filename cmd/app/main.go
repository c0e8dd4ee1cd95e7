package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/bootstrap"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/config"
)

// @title Impulsa Guayaquil API
// @version 1.0
// @description Gamified entrepreneur program: missions, rewards, leagues and event eligibility.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	closeLog := initLogger(cfg)
	defer closeLog()

	for _, w := range cfg.Warnings() {
		slog.Warn("Configuration warning", "detail", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := bootstrap.Run(ctx, cfg); err != nil {
		slog.Error("Server failed", "error", err)
		closeLog()
		os.Exit(1)
	}
}
