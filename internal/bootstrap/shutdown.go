package bootstrap

import (
	"context"
	"io"
	"log/slog"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/event"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/notify"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/scheduler"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/server"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil members are skipped.
type ShutdownComponents struct {
	Server             *server.Server
	Scheduler          *scheduler.Scheduler
	WorkerPool         *worker.Pool
	Hub                *notify.Hub
	ResilientPublisher *event.ResilientPublisher
	Telemetry          func(context.Context) error
	Closers            []io.Closer
	CloseStorage       func()
}

// GracefulShutdown stops the application in order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler and worker pool (no new rollovers)
// 3. Event publisher (flush pending events to the notifiers)
// 4. Notification sinks, tracing and storage
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Scheduler != nil {
		if err := c.Scheduler.Stop(); err != nil {
			slog.Error(LogMsgSchedulerStopFailed, "error", err)
		}
	}
	if c.WorkerPool != nil {
		c.WorkerPool.Stop()
	}

	if c.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := c.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if c.Hub != nil {
		c.Hub.Stop()
	}
	for _, closer := range c.Closers {
		if err := closer.Close(); err != nil {
			slog.Error(LogMsgCloseFailed, "error", err)
		}
	}

	if c.Telemetry != nil {
		if err := c.Telemetry(ctx); err != nil {
			slog.Error(LogMsgTelemetryShutdownFailed, "error", err)
		}
	}
	if c.CloseStorage != nil {
		c.CloseStorage()
	}

	slog.Info(LogMsgServerStopped)
}
