package memory

import (
	"context"
	"sort"
	"time"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/repository"
)

type rewardsRepo struct{ *Store }

func (s *Store) ListRewards(ctx context.Context) ([]domain.Reward, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Reward, 0, len(s.rewards))
	for _, r := range s.rewards {
		out = append(out, *cloneReward(r))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CoinsCost != out[j].CoinsCost {
			return out[i].CoinsCost < out[j].CoinsCost
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) GetReward(ctx context.Context, rewardID string) (*domain.Reward, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.rewards[rewardID]
	if !ok {
		return nil, domain.ErrRewardNotFound
	}
	return cloneReward(r), nil
}

// UpsertReward replaces the catalog fields and keeps the consumed counter
func (s *Store) UpsertReward(ctx context.Context, reward *domain.Reward) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := cloneReward(reward)
	if existing, ok := s.rewards[reward.ID]; ok {
		c.StockConsumed = existing.StockConsumed
	}
	s.rewards[reward.ID] = c
	return nil
}

func (s *Store) ListRedemptions(ctx context.Context, participantID string) ([]domain.RedemptionView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.RedemptionView
	for _, r := range s.redemptions {
		if r.ParticipantID != participantID {
			continue
		}
		view := domain.RedemptionView{Redemption: *cloneRedemption(r)}
		if reward, ok := s.rewards[r.RewardID]; ok {
			view.Reward = cloneReward(reward)
		}
		out = append(out, view)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].RedeemedAt.Equal(out[j].RedeemedAt) {
			return out[i].RedeemedAt.After(out[j].RedeemedAt)
		}
		return out[i].Code < out[j].Code
	})
	return out, nil
}

func (s *Store) GetRedemptionByCode(ctx context.Context, code string) (*domain.Redemption, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.redemptions[code]
	if !ok {
		return nil, domain.ErrRedemptionNotFound
	}
	return cloneRedemption(r), nil
}

func (s *Store) UpdateRedemptionStatus(ctx context.Context, code string, from, to domain.RedemptionStatus, at time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.redemptions[code]
	if !ok {
		return false, domain.ErrRedemptionNotFound
	}
	if r.Status != from {
		return false, nil
	}
	next := cloneRedemption(r)
	next.Status = to
	if to == domain.RedemptionUsed {
		used := at
		next.UsedAt = &used
	}
	s.redemptions[code] = next
	return true, nil
}

func (r rewardsRepo) BeginTx(ctx context.Context) (repository.RewardsTx, error) {
	t, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (t *tx) DebitCoins(ctx context.Context, participantID string, amount int64) (bool, error) {
	p, ok := t.s.participants[participantID]
	if !ok {
		return false, domain.ErrParticipantNotFound
	}
	if p.Coins < amount {
		return false, nil
	}
	prev := cloneParticipant(p)
	t.onRollback(func() { t.s.participants[participantID] = prev })

	next := cloneParticipant(p)
	next.Coins -= amount
	next.UpdatedAt = time.Now().UTC()
	t.s.participants[participantID] = next
	return true, nil
}

func (t *tx) ConsumeStock(ctx context.Context, rewardID string) (bool, error) {
	r, ok := t.s.rewards[rewardID]
	if !ok {
		return false, domain.ErrRewardNotFound
	}
	if !r.Unlimited() && r.StockConsumed >= r.Stock {
		return false, nil
	}
	prev := cloneReward(r)
	t.onRollback(func() { t.s.rewards[rewardID] = prev })

	next := cloneReward(r)
	next.StockConsumed++
	t.s.rewards[rewardID] = next
	return true, nil
}

func (t *tx) InsertRedemption(ctx context.Context, redemption *domain.Redemption) (bool, error) {
	if _, taken := t.s.redemptions[redemption.Code]; taken {
		return false, nil
	}
	code := redemption.Code
	t.onRollback(func() { delete(t.s.redemptions, code) })
	t.s.redemptions[code] = cloneRedemption(redemption)
	return true, nil
}
