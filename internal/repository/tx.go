package repository

import (
	"context"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
)

// Tx defines the interface for transactional operations
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// LedgerTx is the part of a transaction the ledger needs to apply credits.
// Every compound operation that credits a participant embeds it so the
// credit commits or rolls back together with the rest of the unit.
type LedgerTx interface {
	Tx
	// LockCycle locks the league cycle state and returns the current cycle id.
	// Credits take it shared, rollover takes it exclusive.
	LockCycle(ctx context.Context, exclusive bool) (string, error)
	GetParticipantForUpdate(ctx context.Context, participantID string) (*domain.Participant, error)
	// ApplyCredit increments balances, moves weekly XP into cycle and stores
	// the streak and rank. A zero streak.Day leaves last activity unchanged.
	ApplyCredit(ctx context.Context, participantID string, credit domain.Credit, cycle string, streak domain.StreakUpdate, rank domain.Rank) (*domain.Participant, error)
}
