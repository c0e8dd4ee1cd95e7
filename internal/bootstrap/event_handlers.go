package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/config"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/event"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/metrics"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/notify"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus event.Bus
	Hub      *notify.Hub
	Config   *config.Config
}

// RegisterEventHandlers sets up the event subscribers:
// - Metrics collector (event-based business metrics)
// - Notification subscriber fanning out to the stream hub, Redis and Discord
//
// Redis and Discord are optional; when they fail to initialise the service
// keeps running without them. The returned closers release their clients.
func RegisterEventHandlers(ctx context.Context, deps EventHandlerDependencies) ([]io.Closer, error) {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	notifiers, closers := buildNotifiers(ctx, deps)
	notify.NewSubscriber(deps.EventBus, notifiers).Subscribe()
	slog.Info(LogMsgNotifierRegistered, "sinks", len(notifiers))

	return closers, nil
}

func buildNotifiers(ctx context.Context, deps EventHandlerDependencies) (notify.Multi, []io.Closer) {
	var (
		sinks   notify.Multi
		closers []io.Closer
	)
	if deps.Hub != nil {
		sinks = append(sinks, deps.Hub)
	}

	cfg := deps.Config
	if cfg.RedisAddr != "" {
		rn, err := notify.NewRedisNotifier(ctx, cfg.RedisAddr, cfg.RedisChannel)
		if err != nil {
			slog.Warn(LogMsgNotifierUnavailable, "sink", "redis", "error", err)
		} else {
			sinks = append(sinks, rn)
			closers = append(closers, rn)
			slog.Info(LogMsgRedisNotifierEnabled, "addr", cfg.RedisAddr, "channel", cfg.RedisChannel)
		}
	}

	if cfg.DiscordWebhookID != "" && cfg.DiscordWebhookToken != "" {
		dn, err := notify.NewDiscordNotifier(cfg.DiscordWebhookID, cfg.DiscordWebhookToken)
		if err != nil {
			slog.Warn(LogMsgNotifierUnavailable, "sink", "discord", "error", err)
		} else {
			sinks = append(sinks, dn)
			slog.Info(LogMsgDiscordNotifierEnabled)
		}
	}

	return sinks, closers
}
