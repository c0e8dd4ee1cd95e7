package catalog

import (
	"context"
	"fmt"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
)

// Store receives catalog upserts
type Store interface {
	UpsertMission(ctx context.Context, mission *domain.Mission) error
	UpsertEvent(ctx context.Context, event *domain.Event) error
	UpsertReward(ctx context.Context, reward *domain.Reward) error
	UpsertAchievement(ctx context.Context, achievement *domain.Achievement) error
}

// SeedResult counts the upserted records
type SeedResult struct {
	Missions     int
	Events       int
	Rewards      int
	Achievements int
}

// Seed upserts every catalog record. Reward stock counters already consumed
// are kept by the store.
func (c *Catalog) Seed(ctx context.Context, s Store) (SeedResult, error) {
	var res SeedResult
	for i := range c.Missions {
		if err := s.UpsertMission(ctx, &c.Missions[i]); err != nil {
			return res, fmt.Errorf("failed to seed mission %s: %w", c.Missions[i].ID, err)
		}
		res.Missions++
	}
	for i := range c.Events {
		if err := s.UpsertEvent(ctx, &c.Events[i]); err != nil {
			return res, fmt.Errorf("failed to seed event %s: %w", c.Events[i].ID, err)
		}
		res.Events++
	}
	for i := range c.Rewards {
		if err := s.UpsertReward(ctx, &c.Rewards[i]); err != nil {
			return res, fmt.Errorf("failed to seed reward %s: %w", c.Rewards[i].ID, err)
		}
		res.Rewards++
	}
	for i := range c.Achievements {
		if err := s.UpsertAchievement(ctx, &c.Achievements[i]); err != nil {
			return res, fmt.Errorf("failed to seed achievement %s: %w", c.Achievements[i].ID, err)
		}
		res.Achievements++
	}
	return res, nil
}
