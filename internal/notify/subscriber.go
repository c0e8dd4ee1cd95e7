package notify

import (
	"context"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/event"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/logger"
)

// Subscriber bridges the internal event bus to a notifier
type Subscriber struct {
	bus      event.Bus
	notifier Notifier
}

// NewSubscriber creates a new notification subscriber
func NewSubscriber(bus event.Bus, notifier Notifier) *Subscriber {
	return &Subscriber{bus: bus, notifier: notifier}
}

// Subscribe registers the handler for every notifying event type
func (s *Subscriber) Subscribe() {
	names := make([]string, 0, len(Types))
	for _, t := range Types {
		s.bus.Subscribe(t, s.handle)
		names = append(names, string(t))
	}
	logger.FromContext(context.Background()).Info(LogMsgSubscribed, "types", names)
}

// handle never fails the publisher: delivery problems are logged and dropped
func (s *Subscriber) handle(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)
	msg, ok, err := FromEvent(evt)
	if err != nil {
		log.Warn(LogMsgBadPayload, "type", evt.Type, "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	if err := s.notifier.Notify(ctx, msg); err != nil {
		log.Warn(LogMsgDeliveryFailed, "type", evt.Type, "participant_id", msg.ParticipantID, "error", err)
	}
	return nil
}
