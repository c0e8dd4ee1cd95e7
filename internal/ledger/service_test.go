package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/clock"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/database/memory"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/event"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/repository"
)

var monday = time.Date(2026, 10, 12, 9, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (Service, *memory.Store, *clock.SimulatedClock) {
	t.Helper()
	store := memory.NewStore()
	clk := clock.NewSimulatedClock(monday)
	return NewService(store.Participants(), store.Achievements(), event.NewMemoryBus(), clk), store, clk
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	p, err := svc.Register(ctx, RegisterInput{Name: " Ana ", Email: "ana@example.com", City: "Guayaquil"})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Ana", p.Name)
	assert.Equal(t, domain.RankNovice, p.Rank)
	assert.Equal(t, "2026-W42", p.XPCycle)

	_, err = svc.Register(ctx, RegisterInput{Name: "Ana B", Email: "ana@example.com", City: "Quito"})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)

	tests := []struct {
		name string
		in   RegisterInput
	}{
		{"missing name", RegisterInput{Email: "x@example.com", City: "Guayaquil"}},
		{"missing email", RegisterInput{Name: "X", City: "Guayaquil"}},
		{"missing city", RegisterInput{Name: "X", Email: "x@example.com"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.in)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestCredit_StreakAndRank(t *testing.T) {
	ctx := context.Background()
	svc, _, clk := newTestService(t)

	p, err := svc.Register(ctx, RegisterInput{Name: "Ana", Email: "ana@example.com", City: "Guayaquil"})
	require.NoError(t, err)

	p, err = svc.Credit(ctx, p.ID, domain.Credit{Points: 60, Coins: 30, XP: 60})
	require.NoError(t, err)
	assert.Equal(t, 1, p.CurrentStreak)
	assert.Equal(t, domain.RankNovice, p.Rank)

	// same day keeps the streak
	clk.Advance(3 * time.Hour)
	p, err = svc.Credit(ctx, p.ID, domain.Credit{Points: 60, XP: 60})
	require.NoError(t, err)
	assert.Equal(t, 1, p.CurrentStreak)
	assert.Equal(t, domain.RankJunior, p.Rank, "120 points reaches junior")

	// next day extends it
	clk.Advance(24 * time.Hour)
	p, err = svc.Credit(ctx, p.ID, domain.Credit{Points: 10, XP: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, p.CurrentStreak)
	assert.Equal(t, 2, p.BestStreak)

	// a gap restarts it, best is kept
	clk.Advance(72 * time.Hour)
	p, err = svc.Credit(ctx, p.ID, domain.Credit{Points: 10, XP: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, p.CurrentStreak)
	assert.Equal(t, 2, p.BestStreak)
	assert.Equal(t, int64(140), p.Points)
	assert.Equal(t, int64(30), p.Coins)
	assert.Equal(t, int64(140), p.WeeklyXP)
}

func TestCredit_RejectsNegativeAmounts(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)
	p, err := svc.Register(ctx, RegisterInput{Name: "Ana", Email: "ana@example.com", City: "Guayaquil"})
	require.NoError(t, err)

	_, err = svc.Credit(ctx, p.ID, domain.Credit{Coins: -5})
	assert.ErrorIs(t, err, domain.ErrValidation)

	got, err := svc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Coins)
}

func TestCredit_UnknownParticipant(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.Credit(context.Background(), "missing", domain.Credit{Points: 1})
	assert.ErrorIs(t, err, domain.ErrParticipantNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApplyBonus_LeavesStreakAlone(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newTestService(t)
	p, err := svc.Register(ctx, RegisterInput{Name: "Ana", Email: "ana@example.com", City: "Guayaquil"})
	require.NoError(t, err)

	tx, err := store.Participants().BeginTx(ctx)
	require.NoError(t, err)
	got, err := ApplyBonus(ctx, tx, p.ID, domain.Credit{Coins: 100}, monday)
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))

	assert.Equal(t, int64(100), got.Coins)
	assert.Zero(t, got.CurrentStreak)
	assert.Nil(t, got.LastActivityOn)
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newTestService(t)
	require.NoError(t, store.UpsertAchievement(ctx, &domain.Achievement{ID: "a1", MissionsRequired: 0, PointsRequired: 50}))
	require.NoError(t, store.UpsertAchievement(ctx, &domain.Achievement{ID: "a2", MissionsRequired: 5}))

	p, err := svc.Register(ctx, RegisterInput{Name: "Ana", Email: "ana@example.com", City: "Guayaquil"})
	require.NoError(t, err)
	_, err = svc.Credit(ctx, p.ID, domain.Credit{Points: 75, Coins: 10, XP: 75})
	require.NoError(t, err)

	stats, err := svc.Stats(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(75), stats.TotalPoints)
	assert.Equal(t, 1, stats.AchievementsEarned)
	assert.Zero(t, stats.CompletionRate)
	assert.NotNil(t, stats.LastActivity)
}

// MockRepository is a testify mock of the participant repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateParticipant(ctx context.Context, p *domain.Participant) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockRepository) GetParticipant(ctx context.Context, id string) (*domain.Participant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Participant), args.Error(1)
}

func (m *MockRepository) GetActivityCounts(ctx context.Context, id string) (domain.ActivityCounts, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.ActivityCounts), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.LedgerTx), args.Error(1)
}

func TestCredit_BeginTxFailure(t *testing.T) {
	repo := new(MockRepository)
	repo.On("BeginTx", mock.Anything).Return(nil, errors.New("connection refused"))

	svc := NewService(repo, nil, nil, clock.NewSimulatedClock(monday))
	_, err := svc.Credit(context.Background(), "p1", domain.Credit{Points: 1})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	repo.AssertExpectations(t)
}

func TestStats_CompletionRate(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetParticipant", mock.Anything, "p1").Return(&domain.Participant{ID: "p1", Points: 10}, nil)
	repo.On("GetActivityCounts", mock.Anything, "p1").Return(domain.ActivityCounts{Completed: 3, Attempted: 4}, nil)

	svc := NewService(repo, nil, nil, clock.NewSimulatedClock(monday))
	stats, err := svc.Stats(context.Background(), "p1")

	require.NoError(t, err)
	assert.InDelta(t, 75.0, stats.CompletionRate, 0.001)
	repo.AssertExpectations(t)
}
