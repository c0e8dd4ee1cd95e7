package repository

import (
	"context"
	"time"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
)

// League defines the interface for league persistence
type League interface {
	GetLeague(ctx context.Context, leagueID string) (*domain.League, error)
	ListLeagues(ctx context.Context, status domain.LeagueStatus) ([]domain.League, error)
	// AddMember inserts the membership if absent and the league is active
	AddMember(ctx context.Context, leagueID, participantID string, at time.Time) (bool, error)
	IsMember(ctx context.Context, leagueID, participantID string) (bool, error)
	// ListStandings returns unsorted rows: live weekly XP for active
	// leagues, the final snapshot for closed ones
	ListStandings(ctx context.Context, leagueID string) ([]domain.Standing, error)
	GetState(ctx context.Context) (*domain.LeagueState, error)
	BeginTx(ctx context.Context) (LeagueTx, error)
}

// LeagueTx defines the interface for cycle rollover transactions
type LeagueTx interface {
	LedgerTx
	ListLeaguesByCycle(ctx context.Context, cycleID string) ([]domain.League, error)
	ListStandings(ctx context.Context, leagueID string) ([]domain.Standing, error)
	FinalizeMembership(ctx context.Context, leagueID, participantID string, finalXP int64, position int) error
	CloseLeague(ctx context.Context, leagueID string) error
	ResetWeeklyXP(ctx context.Context, cycleID string) (int64, error)
	CreateLeague(ctx context.Context, league *domain.League) error
	SetCycle(ctx context.Context, cycleID string, at time.Time) error
}
