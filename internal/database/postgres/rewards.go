package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/database/generated"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/repository"
)

// RewardsRepository implements repository.Rewards for PostgreSQL
type RewardsRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewRewardsRepository creates a new RewardsRepository
func NewRewardsRepository(db *pgxpool.Pool) *RewardsRepository {
	return &RewardsRepository{db: db, q: generated.New(db)}
}

// ListRewards returns the catalog ordered by cost
func (r *RewardsRepository) ListRewards(ctx context.Context) ([]domain.Reward, error) {
	rows, err := r.q.ListRewards(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListRewards, err)
	}
	out := make([]domain.Reward, 0, len(rows))
	for _, row := range rows {
		out = append(out, *toReward(row))
	}
	return out, nil
}

// GetReward retrieves a reward by id
func (r *RewardsRepository) GetReward(ctx context.Context, rewardID string) (*domain.Reward, error) {
	row, err := r.q.GetReward(ctx, rewardID)
	if err != nil {
		return nil, notFound(err, domain.ErrRewardNotFound, ErrMsgFailedToGetReward)
	}
	return toReward(row), nil
}

// UpsertReward replaces the catalog fields and keeps stock_consumed
func (r *RewardsRepository) UpsertReward(ctx context.Context, reward *domain.Reward) error {
	created := reward.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	err := r.q.UpsertReward(ctx, generated.UpsertRewardParams{
		ID:             reward.ID,
		Title:          reward.Title,
		Description:    reward.Description,
		Type:           reward.Type,
		Partner:        reward.Partner,
		CoinsCost:      reward.CoinsCost,
		Stock:          int32(reward.Stock),
		AvailableUntil: reward.AvailableUntil,
		Instructions:   reward.Instructions,
		ExternalUrl:    reward.ExternalURL,
		CreatedAt:      created,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertReward, err)
	}
	return nil
}

// ListRedemptions returns a participant's history, newest first, each joined
// with the reward's current record
func (r *RewardsRepository) ListRedemptions(ctx context.Context, participantID string) ([]domain.RedemptionView, error) {
	rows, err := r.q.ListRedemptions(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListRedemptions, err)
	}
	if len(rows) == 0 {
		return []domain.RedemptionView{}, nil
	}

	ids := make([]string, 0, len(rows))
	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		if !seen[row.RewardID] {
			seen[row.RewardID] = true
			ids = append(ids, row.RewardID)
		}
	}
	rewardRows, err := r.q.GetRewardsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListRewards, err)
	}
	rewards := make(map[string]*domain.Reward, len(rewardRows))
	for _, row := range rewardRows {
		rewards[row.ID] = toReward(row)
	}

	out := make([]domain.RedemptionView, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.RedemptionView{Redemption: *toRedemption(row), Reward: rewards[row.RewardID]})
	}
	return out, nil
}

// GetRedemptionByCode retrieves a redemption by its code
func (r *RewardsRepository) GetRedemptionByCode(ctx context.Context, code string) (*domain.Redemption, error) {
	row, err := r.q.GetRedemptionByCode(ctx, code)
	if err != nil {
		return nil, notFound(err, domain.ErrRedemptionNotFound, ErrMsgFailedToGetRedemption)
	}
	return toRedemption(row), nil
}

// UpdateRedemptionStatus moves a redemption from one status to another
func (r *RewardsRepository) UpdateRedemptionStatus(ctx context.Context, code string, from, to domain.RedemptionStatus, at time.Time) (bool, error) {
	var usedAt *time.Time
	if to == domain.RedemptionUsed {
		usedAt = &at
	}
	n, err := r.q.UpdateRedemptionStatus(ctx, generated.UpdateRedemptionStatusParams{
		NextStatus:    string(to),
		UsedAt:        usedAt,
		Code:          code,
		CurrentStatus: string(from),
	})
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateRedemption, err)
	}
	if n == 1 {
		return true, nil
	}
	if _, err := r.GetRedemptionByCode(ctx, code); err != nil {
		return false, err
	}
	return false, nil
}

// BeginTx starts a redemption transaction
func (r *RewardsRepository) BeginTx(ctx context.Context) (repository.RewardsTx, error) {
	t, err := beginTx(ctx, r.db, r.q)
	if err != nil {
		return nil, err
	}
	return t, nil
}
