package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/clock"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/config"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/database/memory"
)

const shippedCatalog = "../../configs/catalog.yaml"

func memoryConfig(t *testing.T) *config.Config {
	dir := t.TempDir()
	return &config.Config{
		StorageBackend:      config.StorageBackendMemory,
		Cities:              []string{"Guayaquil"},
		MaxUploadBytes:      1 << 20,
		CatalogPath:         shippedCatalog,
		EventDeadLetterPath: filepath.Join(dir, "deadletter", "events.jsonl"),
	}
}

func TestLeagueCities(t *testing.T) {
	tests := []struct {
		name        string
		configured  []string
		fromCatalog []string
		want        []string
	}{
		{"config only", []string{"Guayaquil"}, nil, []string{"Guayaquil"}},
		{"catalog adds", []string{"Guayaquil"}, []string{"Quito"}, []string{"Guayaquil", "Quito"}},
		{"case folded duplicate", []string{"Guayaquil"}, []string{"GUAYAQUIL ", "Quito"}, []string{"Guayaquil", "Quito"}},
		{"catalog only", nil, []string{"Cuenca"}, []string{"Cuenca"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, leagueCities(tt.configured, tt.fromCatalog))
		})
	}
}

func TestSyncCatalog_SeedsStore(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	cat, err := SyncCatalog(ctx, shippedCatalog, store)
	require.NoError(t, err)
	assert.NotEmpty(t, cat.Missions)

	missions, err := store.Missions().ListMissions(ctx)
	require.NoError(t, err)
	assert.Len(t, missions, len(cat.Missions))

	// Seeding twice is an upsert
	_, err = SyncCatalog(ctx, shippedCatalog, store)
	require.NoError(t, err)
	missions, err = store.Missions().ListMissions(ctx)
	require.NoError(t, err)
	assert.Len(t, missions, len(cat.Missions))
}

func TestSyncCatalog_MissingFileIsEmpty(t *testing.T) {
	cat, err := SyncCatalog(context.Background(), filepath.Join(t.TempDir(), "none.yaml"), memory.NewStore())
	require.NoError(t, err)
	assert.Empty(t, cat.Missions)
}

func TestSyncCatalog_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("missions: [\n"), 0o600))

	_, err := SyncCatalog(context.Background(), path, memory.NewStore())
	assert.Error(t, err)
}

func TestInitializeRepositories_Memory(t *testing.T) {
	repos, err := InitializeRepositories(context.Background(), memoryConfig(t))
	require.NoError(t, err)
	defer repos.Close()

	assert.IsType(t, &memory.Store{}, repos.Backend)
	assert.NotNil(t, repos.Blobs)
	assert.NoError(t, repos.Backend.Ping(context.Background()))
}

func TestInitializeRepositories_UnknownBackend(t *testing.T) {
	cfg := memoryConfig(t)
	cfg.StorageBackend = "sqlite"

	_, err := InitializeRepositories(context.Background(), cfg)
	assert.Error(t, err)
}

func TestInitializeServices_Memory(t *testing.T) {
	ctx := context.Background()
	cfg := memoryConfig(t)

	events, err := InitializeEventSystem(cfg)
	require.NoError(t, err)
	defer func() { _ = events.Publisher.Shutdown(ctx) }()

	repos, err := InitializeRepositories(ctx, cfg)
	require.NoError(t, err)
	cat, err := SyncCatalog(ctx, cfg.CatalogPath, repos.Backend)
	require.NoError(t, err)

	clk := clock.NewSimulatedClock(time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC))
	svc, err := InitializeServices(cfg, repos, cat, events.Publisher, clk)
	require.NoError(t, err)

	res, err := svc.Leagues.Rollover(ctx, clk.Now())
	require.NoError(t, err)
	assert.True(t, res.Performed)

	leagues, err := svc.Leagues.Current(ctx)
	require.NoError(t, err)
	for _, l := range leagues {
		assert.Equal(t, "2026-W42", l.CycleID)
	}

	missions, err := svc.Missions.ListMissions(ctx)
	require.NoError(t, err)
	assert.Len(t, missions, len(cat.Missions))
}

func TestInitializeEventSystem_CreatesDeadLetterDir(t *testing.T) {
	cfg := memoryConfig(t)

	events, err := InitializeEventSystem(cfg)
	require.NoError(t, err)
	defer func() { _ = events.Publisher.Shutdown(context.Background()) }()

	_, err = os.Stat(filepath.Dir(cfg.EventDeadLetterPath))
	assert.NoError(t, err)
}
