package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/clock"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/config"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/notify"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/scheduler"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/server"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/telemetry"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/worker"
)

// ShutdownTimeout bounds the graceful shutdown sequence
const ShutdownTimeout = 15 * time.Second

// Run wires every component from cfg and serves until ctx is cancelled
func Run(ctx context.Context, cfg *config.Config) error {
	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		Endpoint:    cfg.OTelEndpoint,
		ServiceName: ServiceName,
		Version:     cfg.Version,
		Environment: cfg.Environment,
	})
	if err != nil {
		slog.Warn(LogMsgTelemetryUnavailable, "error", err)
	}

	events, err := InitializeEventSystem(cfg)
	if err != nil {
		return err
	}

	repos, err := InitializeRepositories(ctx, cfg)
	if err != nil {
		return err
	}

	cat, err := SyncCatalog(ctx, cfg.CatalogPath, repos.Backend)
	if err != nil {
		repos.Close()
		return err
	}

	clk := clock.NewRealClock()
	svc, err := InitializeServices(cfg, repos, cat, events.Publisher, clk)
	if err != nil {
		repos.Close()
		return err
	}

	hub := notify.NewHub()
	hub.Start()
	closers, err := RegisterEventHandlers(ctx, EventHandlerDependencies{
		EventBus: events.Bus,
		Hub:      hub,
		Config:   cfg,
	})
	if err != nil {
		hub.Stop()
		repos.Close()
		return err
	}

	pool := worker.NewPool(WorkerCount, WorkerQueueSize)
	pool.Start()
	sched, err := scheduler.New(pool)
	if err != nil {
		pool.Stop()
		hub.Stop()
		repos.Close()
		return err
	}
	if err := sched.Schedule(scheduler.WeeklyRollover, worker.NewRolloverJob(svc.Leagues, clk), true); err != nil {
		_ = sched.Stop()
		pool.Stop()
		hub.Stop()
		repos.Close()
		return fmt.Errorf("%s: %w", ErrMsgFailedCreateSchedule, err)
	}
	sched.Start()

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		MaxUploadBytes: cfg.MaxUploadBytes,
		Version:        cfg.Version,
		Environment:    cfg.Environment,
	}, server.Services{
		Participants: svc.Participants,
		Missions:     svc.Missions,
		Eligibility:  svc.Eligibility,
		Rewards:      svc.Rewards,
		Leagues:      svc.Leagues,
		Achievements: svc.Achievements,
		Stream:       hub,
		Health:       repos.Backend,
		Clock:        clk,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		GracefulShutdown(shutdownCtx, ShutdownComponents{
			Server:             srv,
			Scheduler:          sched,
			WorkerPool:         pool,
			Hub:                hub,
			ResilientPublisher: events.Publisher,
			Telemetry:          shutdownTracing,
			Closers:            closers,
			CloseStorage:       repos.Close,
		})
		return nil
	})
	return g.Wait()
}
