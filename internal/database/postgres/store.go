// Package postgres implements the repositories on PostgreSQL through the
// sqlc generated queries.
//
// Compound operations run in one transaction. Credits lock the league cycle
// row FOR SHARE before the participant row, rollover locks it FOR UPDATE, and
// redemptions lock the participant row before the reward row.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/repository"
)

// Store groups the PostgreSQL repositories behind one pool
type Store struct {
	pool         *pgxpool.Pool
	participants *ParticipantRepository
	missions     *MissionRepository
	rewards      *RewardsRepository
	leagues      *LeagueRepository
	catalog      *CatalogRepository
}

// NewStore creates every repository over pool
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		pool:         pool,
		participants: NewParticipantRepository(pool),
		missions:     NewMissionRepository(pool),
		rewards:      NewRewardsRepository(pool),
		leagues:      NewLeagueRepository(pool),
		catalog:      NewCatalogRepository(pool),
	}
}

func (s *Store) Participants() repository.Participant { return s.participants }
func (s *Store) Missions() repository.Mission         { return s.missions }
func (s *Store) Rewards() repository.Rewards          { return s.rewards }
func (s *Store) Leagues() repository.League           { return s.leagues }
func (s *Store) Events() repository.Event             { return s.catalog }
func (s *Store) Documents() repository.Document       { return s.catalog }
func (s *Store) Achievements() repository.Achievement { return s.catalog }

// Ping checks the pool
func (s *Store) Ping(ctx context.Context) error { return s.pool.Ping(ctx) }

// UpsertMission lets the catalog seeder write through the store
func (s *Store) UpsertMission(ctx context.Context, m *domain.Mission) error {
	return s.missions.UpsertMission(ctx, m)
}

func (s *Store) UpsertEvent(ctx context.Context, e *domain.Event) error {
	return s.catalog.UpsertEvent(ctx, e)
}

func (s *Store) UpsertReward(ctx context.Context, r *domain.Reward) error {
	return s.rewards.UpsertReward(ctx, r)
}

func (s *Store) UpsertAchievement(ctx context.Context, a *domain.Achievement) error {
	return s.catalog.UpsertAchievement(ctx, a)
}
