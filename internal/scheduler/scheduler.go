package scheduler

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/logger"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/worker"
)

// WeeklyRollover fires every Monday at 00:00 UTC
const WeeklyRollover = "0 0 * * 1"

// Scheduler triggers jobs on cron schedules and hands them to the worker pool
type Scheduler struct {
	cron       gocron.Scheduler
	workerPool *worker.Pool
}

// New creates a new scheduler running in UTC
func New(pool *worker.Pool) (*Scheduler, error) {
	cron, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	return &Scheduler{cron: cron, workerPool: pool}, nil
}

// Schedule registers a job on a cron expression. With runNow the job also
// runs once as soon as the scheduler starts.
func (s *Scheduler) Schedule(crontab string, job worker.Job, runNow bool) error {
	opts := []gocron.JobOption{
		gocron.WithName(job.Name()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	}
	if runNow {
		opts = append(opts, gocron.WithStartAt(gocron.WithStartImmediately()))
	}

	_, err := s.cron.NewJob(
		gocron.CronJob(crontab, false),
		gocron.NewTask(func() {
			s.workerPool.Enqueue(job)
		}),
		opts...,
	)
	if err != nil {
		return fmt.Errorf("failed to schedule %s: %w", job.Name(), err)
	}
	logger.Info("Job scheduled", "job", job.Name(), "cron", crontab, "run_now", runNow)
	return nil
}

// Every registers a job at a fixed interval
func (s *Scheduler) Every(interval time.Duration, job worker.Job) error {
	_, err := s.cron.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			s.workerPool.Enqueue(job)
		}),
		gocron.WithName(job.Name()),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule %s: %w", job.Name(), err)
	}
	return nil
}

// Start begins firing scheduled jobs
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() error {
	return s.cron.Shutdown()
}
