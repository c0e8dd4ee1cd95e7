package mission

import (
	"context"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/repository"
)

// Repository defines the data access the mission engine needs
type Repository interface {
	repository.Mission
}

// Participants looks up participants through the ledger
type Participants interface {
	Get(ctx context.Context, participantID string) (*domain.Participant, error)
}
