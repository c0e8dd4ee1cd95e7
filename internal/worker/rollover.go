package worker

import (
	"context"
	"time"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/clock"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/logger"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/metrics"
)

// Roller performs the weekly league rollover
type Roller interface {
	Rollover(ctx context.Context, now time.Time) (*domain.RolloverResult, error)
}

// RolloverJob closes the finished league cycle and opens the current one
type RolloverJob struct {
	leagues Roller
	clock   clock.Clock
}

// NewRolloverJob creates the weekly rollover job
func NewRolloverJob(leagues Roller, clk clock.Clock) *RolloverJob {
	return &RolloverJob{leagues: leagues, clock: clk}
}

func (j *RolloverJob) Name() string { return JobNameRollover }

// Process runs one rollover. It is safe to run repeatedly; the service skips
// cycles that are already current.
func (j *RolloverJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	now := j.clock.Now()
	log.Info(LogMsgRolloverStarting, "now", now.Format(time.RFC3339))

	res, err := j.leagues.Rollover(ctx, now)
	if err != nil {
		metrics.JobRunsTotal.WithLabelValues(JobNameRollover, metrics.ResultError).Inc()
		log.Error(LogMsgRolloverFailed, "error", err)
		return err
	}
	metrics.JobRunsTotal.WithLabelValues(JobNameRollover, metrics.ResultSuccess).Inc()

	if !res.Performed {
		log.Info(LogMsgRolloverSkipped, "cycle", res.CurrentCycle)
		return nil
	}
	log.Info(LogMsgRolloverCompleted,
		"previous_cycle", res.PreviousCycle,
		"current_cycle", res.CurrentCycle,
		"leagues_closed", res.LeaguesClosed,
		"leagues_created", res.LeaguesCreated,
		"participants_reset", res.ParticipantsReset,
		"rewards_paid", res.RewardsPaid)
	return nil
}
