package achievement

import (
	"context"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/repository"
)

// Repository defines the data access interface for achievements
type Repository interface {
	repository.Achievement
}

// Progress reads the participant counters achievements are measured against
type Progress interface {
	GetParticipant(ctx context.Context, participantID string) (*domain.Participant, error)
	GetActivityCounts(ctx context.Context, participantID string) (domain.ActivityCounts, error)
}
