package main

import (
	"log/slog"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/bootstrap"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/config"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/logger"
)

// initLogger installs the session logger. When the log directory cannot be
// used it falls back to stdout only.
func initLogger(cfg *config.Config) func() {
	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		addSource := cfg.Environment == "dev" || cfg.Environment == "development"
		logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, bootstrap.ServiceName, cfg.Version, cfg.Environment, addSource))
		slog.Warn("File logging disabled", "error", err)
		return func() {}
	}
	return func() { _ = logFile.Close() }
}
