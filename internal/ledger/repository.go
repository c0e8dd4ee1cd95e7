package ledger

import (
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/repository"
)

// Repository is a local interface for participant persistence.
// It embeds repository.Participant to enable mock generation in this package.
type Repository interface {
	repository.Participant
}
