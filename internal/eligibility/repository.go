package eligibility

import (
	"context"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/repository"
)

// Repository defines the event and document data access
type Repository interface {
	repository.Event
	repository.Document
}

// MissionReader is the read-only view of mission state the engine evaluates
type MissionReader interface {
	ListMissions(ctx context.Context) ([]domain.Mission, error)
	ListProgress(ctx context.Context, participantID string) ([]domain.MissionProgress, error)
	ListEvidence(ctx context.Context, participantID string) ([]domain.Evidence, error)
}

// Participants looks up participants through the ledger
type Participants interface {
	Get(ctx context.Context, participantID string) (*domain.Participant, error)
}
