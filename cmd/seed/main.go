// Command seed upserts the catalog file into PostgreSQL without starting the API.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/bootstrap"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/config"
)

func main() {
	path := flag.String("catalog", "", "catalog file, defaults to CATALOG_PATH")
	flag.Parse()

	_ = godotenv.Load()
	var cfg config.Config
	if err := envconfig.Process("", &cfg); err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}
	if *path != "" {
		cfg.CatalogPath = *path
	}
	cfg.StorageBackend = config.StorageBackendPostgres

	ctx := context.Background()
	repos, err := bootstrap.InitializeRepositories(ctx, &cfg)
	if err != nil {
		slog.Error("Storage unavailable", "error", err)
		os.Exit(1)
	}
	defer repos.Close()

	if _, err := bootstrap.SyncCatalog(ctx, cfg.CatalogPath, repos.Backend); err != nil {
		slog.Error("Seed failed", "error", err)
		repos.Close()
		os.Exit(1)
	}
}
