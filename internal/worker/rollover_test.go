package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/clock"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
)

type MockRoller struct {
	mock.Mock
}

func (m *MockRoller) Rollover(ctx context.Context, now time.Time) (*domain.RolloverResult, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RolloverResult), args.Error(1)
}

func TestRolloverJob_Process(t *testing.T) {
	monday := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		result  *domain.RolloverResult
		err     error
		wantErr bool
	}{
		{
			name:   "performs rollover",
			result: &domain.RolloverResult{Performed: true, PreviousCycle: "2026-W42", CurrentCycle: "2026-W43", LeaguesCreated: 4},
		},
		{
			name:   "cycle already current",
			result: &domain.RolloverResult{CurrentCycle: "2026-W43"},
		},
		{
			name:    "service failure",
			err:     errors.New("db down"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := new(MockRoller)
			roller.On("Rollover", mock.Anything, monday).Return(tt.result, tt.err)

			job := NewRolloverJob(roller, clock.NewSimulatedClock(monday))
			err := job.Process(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, JobNameRollover, job.Name())
			roller.AssertExpectations(t)
		})
	}
}
