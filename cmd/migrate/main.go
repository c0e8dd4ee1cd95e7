// Command migrate applies or rolls back the embedded SQL migrations.
//
//	migrate up|down|version
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/bootstrap"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/config"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/database"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("Migration failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up, down, version")
	}

	_ = godotenv.Load()
	// Only the DB settings are needed; skip the full validation done by config.Load
	var cfg config.Config
	if err := envconfig.Process("", &cfg); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, bootstrap.PoolOptions(&cfg))
	if err != nil {
		return err
	}
	defer pool.Close()

	m, err := database.NewMigrator(pool)
	if err != nil {
		return err
	}
	defer func() { _ = m.Close() }()

	switch args[0] {
	case "up":
		err = m.Up(ctx)
	case "down":
		err = m.Down(ctx)
	case "version":
		var v int64
		if v, err = m.Version(ctx); err == nil {
			fmt.Println(v)
		}
	default:
		return fmt.Errorf("unknown subcommand %q", args[0])
	}
	return err
}
