package league

import (
	"context"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/repository"
)

// Repository defines the data access interface for league operations
type Repository interface {
	repository.League
}

// Participants resolves the participant joining a league
type Participants interface {
	Get(ctx context.Context, participantID string) (*domain.Participant, error)
}
