package metrics

import (
	"context"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/event"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.ParticipantRegistered,
		event.MissionCompleted,
		event.MissionQuizFailed,
		event.EvidenceSubmitted,
		event.EvidenceReviewed,
		event.DocumentUploaded,
		event.RewardRedeemed,
		event.RedemptionUsed,
		event.LeagueJoined,
		event.LeagueRolledOver,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.MissionCompleted:
		var p event.MissionCompletedPayloadV1
		if p, err = event.DecodePayload[event.MissionCompletedPayloadV1](evt.Payload); err == nil {
			MissionsCompleted.WithLabelValues(p.MissionType, p.Source).Inc()
			PointsAwarded.Add(float64(p.PointsAwarded))
			CoinsAwarded.Add(float64(p.CoinsAwarded))
		}

	case event.MissionQuizFailed:
		QuizFailures.Inc()

	case event.EvidenceReviewed:
		var p event.EvidencePayloadV1
		if p, err = event.DecodePayload[event.EvidencePayloadV1](evt.Payload); err == nil {
			EvidenceReviewed.WithLabelValues(p.Status).Inc()
		}

	case event.RewardRedeemed:
		var p event.RewardRedeemedPayloadV1
		if p, err = event.DecodePayload[event.RewardRedeemedPayloadV1](evt.Payload); err == nil {
			CoinsSpent.Add(float64(p.CoinsSpent))
		}

	case event.LeagueRolledOver:
		LeagueRollovers.Inc()

	default:
		return nil
	}

	if err != nil {
		log.Debug(LogMsgEventPayloadDecodeFailed, "type", evt.Type, "error", err)
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
