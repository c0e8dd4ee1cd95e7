package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/catalog"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/config"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/database"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/database/memory"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/database/postgres"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/repository"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/storage"
)

// Backend is a storage implementation exposing every repository view.
// Both the PostgreSQL and the in-memory store satisfy it.
type Backend interface {
	catalog.Store
	Participants() repository.Participant
	Missions() repository.Mission
	Rewards() repository.Rewards
	Leagues() repository.League
	Events() repository.Event
	Documents() repository.Document
	Achievements() repository.Achievement
	Ping(ctx context.Context) error
}

// Repositories holds the backend and the blob store used by the engines.
// Close releases the database pool when one was opened.
type Repositories struct {
	Backend Backend
	Blobs   storage.BlobStore
	Close   func()
}

// PoolOptions maps the DB_* settings onto the pgx pool
func PoolOptions(cfg *config.Config) database.PoolOptions {
	return database.PoolOptions{
		ConnString:       cfg.GetDBConnString(),
		MaxConns:         cfg.DBMaxConns,
		MaxIdle:          cfg.DBMaxIdle,
		MaxLifetime:      cfg.DBMaxLife,
		StatementTimeout: cfg.DBStmtTimeout,
	}
}

// InitializeRepositories picks the storage backend named by cfg.
// The postgres backend connects, verifies the pool and applies migrations.
func InitializeRepositories(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	repos := &Repositories{Close: func() {}}

	switch cfg.StorageBackend {
	case config.StorageBackendMemory:
		repos.Backend = memory.NewStore()
	case config.StorageBackendPostgres:
		pool, err := database.NewPool(ctx, PoolOptions(cfg))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		repos.Backend = postgres.NewStore(pool)
		repos.Close = pool.Close
	default:
		return nil, fmt.Errorf(ErrMsgUnknownBackend, cfg.StorageBackend)
	}
	slog.Info(LogMsgBackendReady, "backend", cfg.StorageBackend)

	if cfg.UsesS3() {
		blobs, err := storage.NewS3Store(ctx, storage.S3Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
		})
		if err != nil {
			repos.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateBlobs, err)
		}
		repos.Blobs = blobs
		slog.Info(LogMsgBlobStoreReady, "kind", "s3", "bucket", cfg.S3Bucket)
	} else {
		repos.Blobs = storage.NewMemoryStore()
		slog.Info(LogMsgBlobStoreReady, "kind", "memory")
	}

	return repos, nil
}

// eligibilityRepo joins the event and document views the eligibility engine reads
type eligibilityRepo struct {
	repository.Event
	repository.Document
}

func newEligibilityRepo(b Backend) eligibilityRepo {
	return eligibilityRepo{Event: b.Events(), Document: b.Documents()}
}
