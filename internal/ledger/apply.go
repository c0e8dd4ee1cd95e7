package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/repository"
)

// Apply credits a participant inside tx and registers activity for the streak.
// Other engines call it from their own transaction so the credit commits or
// rolls back with the rest of their unit.
func Apply(ctx context.Context, tx repository.LedgerTx, participantID string, credit domain.Credit, now time.Time) (*domain.Participant, error) {
	return apply(ctx, tx, participantID, credit, now, true)
}

// ApplyBonus credits a participant inside tx without touching the streak.
// League position rewards are paid this way.
func ApplyBonus(ctx context.Context, tx repository.LedgerTx, participantID string, credit domain.Credit, now time.Time) (*domain.Participant, error) {
	return apply(ctx, tx, participantID, credit, now, false)
}

func apply(ctx context.Context, tx repository.LedgerTx, participantID string, credit domain.Credit, now time.Time, activity bool) (*domain.Participant, error) {
	if credit.Points < 0 || credit.Coins < 0 || credit.XP < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgNegativeCredit)
	}

	cycle, err := tx.LockCycle(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to lock league cycle: %w", err)
	}
	if cycle == "" {
		cycle = domain.CycleID(now)
	}

	p, err := tx.GetParticipantForUpdate(ctx, participantID)
	if err != nil {
		return nil, err
	}

	streak := domain.StreakUpdate{Current: p.CurrentStreak, Best: p.BestStreak}
	if activity {
		streak = domain.NextStreak(p, now)
	}
	rank := domain.RankForPoints(p.Points + credit.Points)

	return tx.ApplyCredit(ctx, participantID, credit, cycle, streak, rank)
}
