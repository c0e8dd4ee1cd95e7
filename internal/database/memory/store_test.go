package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
)

var now = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

func seed(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.CreateParticipant(ctx, &domain.Participant{ID: "p1", Name: "Ana", Email: "ana@example.com", City: "Guayaquil", Coins: 100}))
	require.NoError(t, s.UpsertMission(ctx, &domain.Mission{ID: "m1", Type: domain.MissionTypeVideo, PointsReward: 10}))
	require.NoError(t, s.UpsertReward(ctx, &domain.Reward{ID: "r1", CoinsCost: 40, Stock: 1}))
	return s
}

func TestCreateParticipant_DuplicateEmail(t *testing.T) {
	s := seed(t)
	err := s.CreateParticipant(context.Background(), &domain.Participant{ID: "p2", Email: "ANA@example.com"})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestRollback_RestoresEveryMutation(t *testing.T) {
	ctx := context.Background()
	s := seed(t)

	tx, err := s.Rewards().BeginTx(ctx)
	require.NoError(t, err)

	ok, err := tx.DebitCoins(ctx, "p1", 40)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = tx.ConsumeStock(ctx, "r1")
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = tx.InsertRedemption(ctx, &domain.Redemption{Code: "IMP-AAAA-AAAA", RewardID: "r1", ParticipantID: "p1"})
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, tx.Rollback(ctx))
	assert.Error(t, tx.Rollback(ctx), "second rollback reports a closed tx")

	p, err := s.GetParticipant(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(100), p.Coins)
	r, err := s.GetReward(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, 0, r.StockConsumed)
	_, err = s.GetRedemptionByCode(ctx, "IMP-AAAA-AAAA")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConditionalDebitAndStock(t *testing.T) {
	ctx := context.Background()
	s := seed(t)

	tx, err := s.Rewards().BeginTx(ctx)
	require.NoError(t, err)
	defer tx.Rollback(ctx)

	ok, err := tx.DebitCoins(ctx, "p1", 101)
	require.NoError(t, err)
	assert.False(t, ok, "debit above the balance is refused")

	ok, _ = tx.ConsumeStock(ctx, "r1")
	assert.True(t, ok)
	ok, _ = tx.ConsumeStock(ctx, "r1")
	assert.False(t, ok, "stock of one is consumed once")
}

func TestCompareAndSwapProgress(t *testing.T) {
	ctx := context.Background()
	s := seed(t)

	_, err := s.EnsureProgress(ctx, "p1", "m1", now)
	require.NoError(t, err)

	tx, err := s.Missions().BeginTx(ctx)
	require.NoError(t, err)

	cooldown := now.Add(time.Hour)
	next := &domain.MissionProgress{ParticipantID: "p1", MissionID: "m1", Status: domain.MissionStatusAvailable, CooldownUntil: &cooldown, Attempts: 1}
	ok, err := tx.CompareAndSwapProgress(ctx, domain.MissionStatusAvailable, next, now)
	require.NoError(t, err)
	require.True(t, ok)

	done := &domain.MissionProgress{ParticipantID: "p1", MissionID: "m1", Status: domain.MissionStatusCompleted}
	ok, err = tx.CompareAndSwapProgress(ctx, domain.MissionStatusAvailable, done, now)
	require.NoError(t, err)
	assert.False(t, ok, "active cooldown blocks the swap")

	ok, err = tx.CompareAndSwapProgress(ctx, domain.MissionStatusInReview, done, now.Add(2*time.Hour))
	require.NoError(t, err)
	assert.False(t, ok, "status mismatch blocks the swap")
	require.NoError(t, tx.Commit(ctx))

	progress, err := s.EnsureProgress(ctx, "p1", "m1", now)
	require.NoError(t, err)
	assert.Equal(t, 1, progress.Attempts)
	assert.Equal(t, domain.MissionStatusAvailable, progress.Status)
}

func TestApplyCreditAndResetWeeklyXP(t *testing.T) {
	ctx := context.Background()
	s := seed(t)

	tx, err := s.Participants().BeginTx(ctx)
	require.NoError(t, err)
	_, err = tx.ApplyCredit(ctx, "p1", domain.Credit{Points: 10, Coins: 5, XP: 10}, "2026-W42", domain.StreakUpdate{Current: 1, Best: 1, Day: now}, domain.RankNovice)
	require.NoError(t, err)
	p, err := tx.ApplyCredit(ctx, "p1", domain.Credit{Points: 10, XP: 10}, "2026-W42", domain.StreakUpdate{Current: 1, Best: 1, Day: now}, domain.RankNovice)
	require.NoError(t, err)
	assert.Equal(t, int64(20), p.WeeklyXP)

	p, err = tx.ApplyCredit(ctx, "p1", domain.Credit{Points: 5, XP: 5}, "2026-W43", domain.StreakUpdate{Current: 2, Best: 2, Day: now}, domain.RankNovice)
	require.NoError(t, err)
	assert.Equal(t, int64(5), p.WeeklyXP, "credit in a new cycle starts the weekly total over")
	assert.Equal(t, int64(25), p.Points)
	require.NoError(t, tx.Commit(ctx))

	ltx, err := s.Leagues().BeginTx(ctx)
	require.NoError(t, err)
	n, err := ltx.ResetWeeklyXP(ctx, "2026-W43")
	require.NoError(t, err)
	assert.Zero(t, n, "XP already in the target cycle is kept")
	n, err = ltx.ResetWeeklyXP(ctx, "2026-W44")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	require.NoError(t, ltx.Commit(ctx))

	p, err = s.GetParticipant(ctx, "p1")
	require.NoError(t, err)
	assert.Zero(t, p.WeeklyXP)
}

func TestAddMember_IdempotentAndClosed(t *testing.T) {
	ctx := context.Background()
	s := seed(t)

	ltx, err := s.Leagues().BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, ltx.CreateLeague(ctx, &domain.League{ID: "l1", City: "Guayaquil", Type: domain.LeagueBronze, CycleID: "2026-W42", Status: domain.LeagueActive}))
	require.NoError(t, ltx.CreateLeague(ctx, &domain.League{ID: "l2", City: "Guayaquil", Type: domain.LeagueSilver, CycleID: "2026-W41", Status: domain.LeagueClosed}))
	require.NoError(t, ltx.Commit(ctx))

	joined, err := s.AddMember(ctx, "l1", "p1", now)
	require.NoError(t, err)
	assert.True(t, joined)
	joined, err = s.AddMember(ctx, "l1", "p1", now)
	require.NoError(t, err)
	assert.False(t, joined)

	_, err = s.AddMember(ctx, "l2", "p1", now)
	assert.ErrorIs(t, err, domain.ErrLeagueClosed)

	rows, err := s.ListStandings(ctx, "l1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ana", rows[0].Name)
}

func TestContextCancelledBeforeBegin(t *testing.T) {
	s := seed(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Missions().BeginTx(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
