package repository

import (
	"context"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
)

// Participant defines the interface for participant persistence
type Participant interface {
	CreateParticipant(ctx context.Context, participant *domain.Participant) error
	GetParticipant(ctx context.Context, participantID string) (*domain.Participant, error)
	GetActivityCounts(ctx context.Context, participantID string) (domain.ActivityCounts, error)
	BeginTx(ctx context.Context) (LedgerTx, error)
}
