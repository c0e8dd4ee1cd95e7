package rewards

import "github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/repository"

// Repository defines the reward catalog and redemption data access
type Repository interface {
	repository.Rewards
}
