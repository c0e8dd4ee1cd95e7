package repository

import (
	"context"
	"time"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
)

// Rewards defines the interface for reward catalog and redemption persistence
type Rewards interface {
	ListRewards(ctx context.Context) ([]domain.Reward, error)
	GetReward(ctx context.Context, rewardID string) (*domain.Reward, error)
	UpsertReward(ctx context.Context, reward *domain.Reward) error
	ListRedemptions(ctx context.Context, participantID string) ([]domain.RedemptionView, error)
	GetRedemptionByCode(ctx context.Context, code string) (*domain.Redemption, error)
	UpdateRedemptionStatus(ctx context.Context, code string, from, to domain.RedemptionStatus, at time.Time) (bool, error)
	BeginTx(ctx context.Context) (RewardsTx, error)
}

// RewardsTx defines the interface for redemption transactions.
// Callers debit coins before consuming stock so locks are always taken
// participant first, reward second.
type RewardsTx interface {
	Tx
	// DebitCoins subtracts amount only if the balance covers it
	DebitCoins(ctx context.Context, participantID string, amount int64) (bool, error)
	// ConsumeStock increments stock_consumed only if stock remains
	ConsumeStock(ctx context.Context, rewardID string) (bool, error)
	// InsertRedemption reports false when the redemption code is already taken
	InsertRedemption(ctx context.Context, redemption *domain.Redemption) (bool, error)
}
