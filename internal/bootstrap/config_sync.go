package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/catalog"
)

// SyncCatalog loads, validates and upserts the catalog file into the store.
// A missing file is not an error: the service starts with an empty catalog.
// Returns the parsed catalog so league settings can be read from it.
func SyncCatalog(ctx context.Context, path string, store catalog.Store) (*catalog.Catalog, error) {
	slog.Info(LogMsgSyncingCatalog, "path", path)

	cat, err := catalog.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Warn(LogMsgCatalogMissing, "path", path)
			return &catalog.Catalog{}, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	res, err := cat.Seed(ctx, store)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedSyncCatalog, err)
	}

	slog.Info(LogMsgCatalogSynced,
		"missions", res.Missions,
		"events", res.Events,
		"rewards", res.Rewards,
		"achievements", res.Achievements)

	return cat, nil
}
