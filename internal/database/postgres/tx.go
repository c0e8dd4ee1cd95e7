package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/database/generated"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
)

// tx implements every repository transaction interface over one pgx.Tx
type tx struct {
	tx pgx.Tx
	q  *generated.Queries
}

// Commit commits the transaction
func (t *tx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// Rollback aborts the transaction. Rolling back a finished one yields domain.ErrTxClosed.
func (t *tx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if errors.Is(err, pgx.ErrTxClosed) {
		return domain.ErrTxClosed
	}
	return err
}

// ---- Ledger ----

func (t *tx) LockCycle(ctx context.Context, exclusive bool) (string, error) {
	var (
		cycle string
		err   error
	)
	if exclusive {
		cycle, err = t.q.LockCycleExclusive(ctx)
	} else {
		cycle, err = t.q.LockCycleShared(ctx)
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrMsgFailedToLockCycle, err)
	}
	return cycle, nil
}

func (t *tx) GetParticipantForUpdate(ctx context.Context, participantID string) (*domain.Participant, error) {
	row, err := t.q.GetParticipantForUpdate(ctx, participantID)
	if err != nil {
		return nil, notFound(err, domain.ErrParticipantNotFound, ErrMsgFailedToGetParticipant)
	}
	return toParticipant(row), nil
}

func (t *tx) ApplyCredit(ctx context.Context, participantID string, credit domain.Credit, cycle string, streak domain.StreakUpdate, rank domain.Rank) (*domain.Participant, error) {
	var day *time.Time
	if !streak.Day.IsZero() {
		d := streak.Day
		day = &d
	}
	row, err := t.q.ApplyCredit(ctx, generated.ApplyCreditParams{
		Points:        credit.Points,
		Coins:         credit.Coins,
		Cycle:         cycle,
		Xp:            credit.XP,
		CurrentStreak: int32(streak.Current),
		BestStreak:    int32(streak.Best),
		ActivityDay:   day,
		Rank:          string(rank),
		ID:            participantID,
	})
	if err != nil {
		return nil, notFound(err, domain.ErrParticipantNotFound, ErrMsgFailedToApplyCredit)
	}
	return toParticipant(row), nil
}

// ---- Missions ----

func (t *tx) GetProgressForUpdate(ctx context.Context, participantID, missionID string) (*domain.MissionProgress, error) {
	row, err := t.q.GetProgressForUpdate(ctx, generated.GetProgressForUpdateParams{
		ParticipantID: participantID,
		MissionID:     missionID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf(ErrMsgProgressNotFound, domain.ErrNotFound, participantID, missionID)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetProgress, err)
	}
	return toProgress(row)
}

func (t *tx) CompareAndSwapProgress(ctx context.Context, expected domain.MissionStatus, progress *domain.MissionProgress, now time.Time) (bool, error) {
	var result []byte
	if progress.LastResult != nil {
		raw, err := json.Marshal(progress.LastResult)
		if err != nil {
			return false, fmt.Errorf("%s: %w", ErrMsgFailedToMarshalResult, err)
		}
		result = raw
	}
	n, err := t.q.CompareAndSwapProgress(ctx, generated.CompareAndSwapProgressParams{
		Status:        string(progress.Status),
		LastAttemptAt: progress.LastAttemptAt,
		LastResult:    result,
		CooldownUntil: progress.CooldownUntil,
		EvidenceID:    strPtr(progress.EvidenceID),
		ReviewNotes:   progress.ReviewNotes,
		Attempts:      int32(progress.Attempts),
		CompletedAt:   progress.CompletedAt,
		Now:           now,
		ParticipantID: progress.ParticipantID,
		MissionID:     progress.MissionID,
		Expected:      string(expected),
	})
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToSwapProgress, err)
	}
	return n == 1, nil
}

func (t *tx) RecordAttempt(ctx context.Context, attempt *domain.MissionAttempt) error {
	err := t.q.RecordAttempt(ctx, generated.RecordAttemptParams{
		ID:            attempt.ID,
		ParticipantID: attempt.ParticipantID,
		MissionID:     attempt.MissionID,
		Outcome:       string(attempt.Outcome),
		Score:         attempt.Score,
		AttemptedAt:   attempt.AttemptedAt,
	})
	if err != nil {
		return wrapWrite(err, ErrMsgFailedToRecordAttempt)
	}
	return nil
}

func (t *tx) GetEvidenceForUpdate(ctx context.Context, evidenceID string) (*domain.Evidence, error) {
	row, err := t.q.GetEvidenceForUpdate(ctx, evidenceID)
	if err != nil {
		return nil, notFound(err, domain.ErrEvidenceNotFound, ErrMsgFailedToGetEvidence)
	}
	return toEvidence(row), nil
}

func (t *tx) UpdateEvidenceStatus(ctx context.Context, evidenceID string, from, to domain.EvidenceStatus, notes string, at time.Time) (bool, error) {
	n, err := t.q.UpdateEvidenceStatus(ctx, generated.UpdateEvidenceStatusParams{
		NextStatus:    string(to),
		ReviewNotes:   notes,
		ReviewedAt:    at,
		ID:            evidenceID,
		CurrentStatus: string(from),
	})
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateEvidence, err)
	}
	return n == 1, nil
}

// ---- Rewards ----

func (t *tx) DebitCoins(ctx context.Context, participantID string, amount int64) (bool, error) {
	n, err := t.q.DebitCoins(ctx, generated.DebitCoinsParams{Amount: amount, ID: participantID})
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToDebitCoins, err)
	}
	if n == 1 {
		return true, nil
	}
	exists, err := t.q.ParticipantExists(ctx, participantID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToGetParticipant, err)
	}
	if !exists {
		return false, domain.ErrParticipantNotFound
	}
	return false, nil
}

func (t *tx) ConsumeStock(ctx context.Context, rewardID string) (bool, error) {
	n, err := t.q.ConsumeStock(ctx, rewardID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToConsumeStock, err)
	}
	if n == 1 {
		return true, nil
	}
	exists, err := t.q.RewardExists(ctx, rewardID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToGetReward, err)
	}
	if !exists {
		return false, domain.ErrRewardNotFound
	}
	return false, nil
}

func (t *tx) InsertRedemption(ctx context.Context, redemption *domain.Redemption) (bool, error) {
	n, err := t.q.InsertRedemption(ctx, generated.InsertRedemptionParams{
		ID:            redemption.ID,
		RewardID:      redemption.RewardID,
		ParticipantID: redemption.ParticipantID,
		Code:          redemption.Code,
		Status:        string(redemption.Status),
		CoinsSpent:    redemption.CoinsSpent,
		Instructions:  redemption.Instructions,
		ExternalUrl:   redemption.ExternalURL,
		RedeemedAt:    redemption.RedeemedAt,
		UsedAt:        redemption.UsedAt,
	})
	if err != nil {
		return false, wrapWrite(err, ErrMsgFailedToInsertRedemption)
	}
	return n == 1, nil
}

// ---- Leagues ----

func (t *tx) ListLeaguesByCycle(ctx context.Context, cycleID string) ([]domain.League, error) {
	rows, err := t.q.ListLeaguesByCycle(ctx, cycleID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListLeagues, err)
	}
	return toLeagues(rows)
}

func (t *tx) ListStandings(ctx context.Context, leagueID string) ([]domain.Standing, error) {
	rows, err := t.q.ListStandings(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListStandings, err)
	}
	return toStandings(rows), nil
}

func (t *tx) FinalizeMembership(ctx context.Context, leagueID, participantID string, finalXP int64, position int) error {
	pos := int32(position)
	err := t.q.FinalizeMembership(ctx, generated.FinalizeMembershipParams{
		LeagueID:      leagueID,
		ParticipantID: participantID,
		FinalXp:       &finalXP,
		FinalPosition: &pos,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToFinalizeMembership, err)
	}
	return nil
}

func (t *tx) CloseLeague(ctx context.Context, leagueID string) error {
	if err := t.q.CloseLeague(ctx, leagueID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCloseLeague, err)
	}
	return nil
}

func (t *tx) ResetWeeklyXP(ctx context.Context, cycleID string) (int64, error) {
	n, err := t.q.ResetWeeklyXP(ctx, cycleID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToResetWeeklyXP, err)
	}
	return n, nil
}

func (t *tx) CreateLeague(ctx context.Context, league *domain.League) error {
	rewards := []byte(EmptyJSONArray)
	if len(league.Rewards) > 0 {
		raw, err := json.Marshal(league.Rewards)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalRewards, err)
		}
		rewards = raw
	}
	err := t.q.CreateLeague(ctx, generated.CreateLeagueParams{
		ID:       league.ID,
		Slug:     league.Slug,
		Type:     string(league.Type),
		City:     league.City,
		CycleID:  league.CycleID,
		StartsAt: league.StartsAt,
		EndsAt:   league.EndsAt,
		Status:   string(league.Status),
		Rewards:  rewards,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateLeague, err)
	}
	return nil
}

func (t *tx) SetCycle(ctx context.Context, cycleID string, at time.Time) error {
	err := t.q.SetCycle(ctx, generated.SetCycleParams{CurrentCycle: cycleID, RolledOverAt: &at})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSetCycle, err)
	}
	return nil
}
