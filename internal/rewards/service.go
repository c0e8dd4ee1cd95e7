package rewards

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/clock"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/concurrency"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/event"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/logger"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/metrics"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/repository"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/telemetry"
)

// CatalogItem is a reward offered now with its remaining stock
type CatalogItem struct {
	domain.Reward
	Remaining int `json:"remaining"`
}

// Service defines the rewards ledger operations
type Service interface {
	ListCatalog(ctx context.Context) ([]CatalogItem, error)
	GetReward(ctx context.Context, rewardID string) (*domain.Reward, error)
	Redeem(ctx context.Context, participantID, rewardID string) (*domain.Redemption, error)
	ListRedemptions(ctx context.Context, participantID string) ([]domain.RedemptionView, error)
	MarkUsed(ctx context.Context, code string) (*domain.Redemption, error)
}

type service struct {
	repo    Repository
	bus     event.Bus
	clock   clock.Clock
	locks   *concurrency.LockManager
	newCode CodeGenerator
}

// NewService creates a new rewards service
func NewService(repo Repository, bus event.Bus, clk clock.Clock) Service {
	return newServiceWithCodes(repo, bus, clk, NewCode)
}

func newServiceWithCodes(repo Repository, bus event.Bus, clk clock.Clock, gen CodeGenerator) *service {
	return &service{
		repo:    repo,
		bus:     bus,
		clock:   clk,
		locks:   concurrency.NewLockManager(),
		newCode: gen,
	}
}

func (s *service) ListCatalog(ctx context.Context) ([]CatalogItem, error) {
	rewards, err := s.repo.ListRewards(ctx)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	out := make([]CatalogItem, 0, len(rewards))
	for i := range rewards {
		r := &rewards[i]
		if !r.AvailableAt(now) {
			continue
		}
		out = append(out, CatalogItem{Reward: *r, Remaining: r.Remaining()})
	}
	return out, nil
}

func (s *service) GetReward(ctx context.Context, rewardID string) (*domain.Reward, error) {
	return s.repo.GetReward(ctx, rewardID)
}

func (s *service) ListRedemptions(ctx context.Context, participantID string) ([]domain.RedemptionView, error) {
	return s.repo.ListRedemptions(ctx, participantID)
}

// Redeem exchanges coins for one unit of a reward. The coin debit, the stock
// increment and the redemption insert commit together or not at all.
func (s *service) Redeem(ctx context.Context, participantID, rewardID string) (red *domain.Redemption, err error) {
	ctx, span := telemetry.StartSpan(ctx, "rewards.Redeem")
	defer func() { telemetry.End(span, err) }()

	log := logger.FromContext(ctx)
	defer func() {
		if outcome := outcomeFor(err); outcome != "" {
			metrics.RecordRedemption(outcome)
		}
	}()

	reward, err := s.repo.GetReward(ctx, rewardID)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	if !reward.AvailableAt(now) {
		return nil, domain.ErrRewardExpired
	}

	// participant:* sorts before reward:*, the same order the transaction locks rows
	unlock := s.locks.LockAll(concurrency.Key("participant", participantID), concurrency.Key("reward", rewardID))
	defer unlock()

	for attempt := 1; attempt <= MaxCodeAttempts; attempt++ {
		code, err := s.newCode()
		if err != nil {
			return nil, err
		}
		red, inserted, err := s.redeemOnce(ctx, participantID, reward, code, now)
		if err != nil {
			log.Info(LogMsgRedeemRejected, "participant_id", participantID, "reward_id", rewardID, "reason", err)
			return nil, err
		}
		if !inserted {
			log.Warn(LogMsgCodeCollision, "attempt", attempt)
			continue
		}

		log.Info(LogMsgRedeemed, "participant_id", participantID, "reward_id", rewardID, "code", red.Code)
		s.publish(ctx, event.NewRewardRedeemedEvent(event.RewardRedeemed, participantID, rewardID, red.Code, red.CoinsSpent, string(red.Status)))
		return red, nil
	}
	return nil, errors.New(ErrMsgCodeExhausted)
}

// redeemOnce runs one transaction. inserted is false when the code was taken,
// in which case everything is rolled back and the caller retries.
func (s *service) redeemOnce(ctx context.Context, participantID string, reward *domain.Reward, code string, now time.Time) (*domain.Redemption, bool, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, false, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	ok, err := tx.DebitCoins(ctx, participantID, reward.CoinsCost)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, domain.ErrInsufficientCoins
	}

	ok, err = tx.ConsumeStock(ctx, reward.ID)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, domain.ErrOutOfStock
	}

	instructions := reward.Instructions
	if instructions == "" {
		instructions = DefaultInstructions
	}
	red := &domain.Redemption{
		ID:            uuid.NewString(),
		RewardID:      reward.ID,
		ParticipantID: participantID,
		Code:          code,
		Status:        domain.RedemptionRedeemed,
		CoinsSpent:    reward.CoinsCost,
		Instructions:  instructions,
		ExternalURL:   reward.ExternalURL,
		RedeemedAt:    now,
	}
	inserted, err := tx.InsertRedemption(ctx, red)
	if err != nil {
		return nil, false, err
	}
	if !inserted {
		return nil, false, nil
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, false, fmt.Errorf(ErrMsgCommitTxFailed, err)
	}
	return red, true, nil
}

// MarkUsed records partner fulfilment of a redeemed code
func (s *service) MarkUsed(ctx context.Context, code string) (*domain.Redemption, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, domain.Validationf(ErrMsgCodeRequired)
	}
	red, err := s.repo.GetRedemptionByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if !red.Status.CanTransitionTo(domain.RedemptionUsed) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, red.Status, domain.RedemptionUsed)
	}

	now := s.clock.Now()
	ok, err := s.repo.UpdateRedemptionStatus(ctx, code, red.Status, domain.RedemptionUsed, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: redemption %s changed concurrently", domain.ErrInvalidTransition, code)
	}
	red.Status = domain.RedemptionUsed
	red.UsedAt = &now

	logger.FromContext(ctx).Info(LogMsgRedemptionUsed, "code", code, "reward_id", red.RewardID)
	s.publish(ctx, event.NewRewardRedeemedEvent(event.RedemptionUsed, red.ParticipantID, red.RewardID, code, 0, string(red.Status)))
	return red, nil
}

func outcomeFor(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeRedeemed
	case errors.Is(err, domain.ErrInsufficientCoins):
		return metrics.OutcomeInsufficientCoins
	case errors.Is(err, domain.ErrOutOfStock):
		return metrics.OutcomeOutOfStock
	case errors.Is(err, domain.ErrRewardExpired):
		return metrics.OutcomeExpired
	case errors.Is(err, domain.ErrNotFound):
		return ""
	default:
		return metrics.OutcomeError
	}
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
