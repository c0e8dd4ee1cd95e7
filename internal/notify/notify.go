package notify

import (
	"context"
	"errors"
)

// Message is a participant-facing notification derived from a domain event.
// An empty ParticipantID addresses everyone.
type Message struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	ParticipantID string `json:"participant_id,omitempty"`
	Title         string `json:"title"`
	Body          string `json:"body"`
	Timestamp     int64  `json:"timestamp"`
}

// Notifier delivers messages to an external sink
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}

// Multi fans a message out to every notifier and joins their errors
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, msg Message) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, msg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Nop discards every message
type Nop struct{}

func (Nop) Notify(context.Context, Message) error { return nil }
