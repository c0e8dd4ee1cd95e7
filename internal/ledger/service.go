package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/clock"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/event"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/logger"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/repository"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/telemetry"
)

// RegisterInput holds the fields of a new participant
type RegisterInput struct {
	Name   string
	Email  string
	City   string
	Cohort string
}

// Service defines the participant ledger operations
type Service interface {
	Register(ctx context.Context, in RegisterInput) (*domain.Participant, error)
	Get(ctx context.Context, participantID string) (*domain.Participant, error)
	Credit(ctx context.Context, participantID string, credit domain.Credit) (*domain.Participant, error)
	Stats(ctx context.Context, participantID string) (*domain.ParticipantStats, error)
}

type service struct {
	repo         Repository
	achievements repository.Achievement
	bus          event.Bus
	clock        clock.Clock
}

// NewService creates a new ledger service
func NewService(repo Repository, achievements repository.Achievement, bus event.Bus, clk clock.Clock) Service {
	return &service{
		repo:         repo,
		achievements: achievements,
		bus:          bus,
		clock:        clk,
	}
}

func (s *service) Register(ctx context.Context, in RegisterInput) (*domain.Participant, error) {
	log := logger.FromContext(ctx)

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.City = strings.TrimSpace(in.City)
	switch {
	case in.Name == "":
		return nil, domain.Validationf(ErrMsgNameRequired)
	case in.Email == "":
		return nil, domain.Validationf(ErrMsgEmailRequired)
	case in.City == "":
		return nil, domain.Validationf(ErrMsgCityRequired)
	}

	now := s.clock.Now()
	p := &domain.Participant{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		City:      in.City,
		Cohort:    strings.TrimSpace(in.Cohort),
		Rank:      domain.RankNovice,
		XPCycle:   domain.CycleID(now),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.CreateParticipant(ctx, p); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgCreateFailed, err)
	}

	log.Info(LogMsgParticipantRegistered, "participant_id", p.ID, "city", p.City)
	if s.bus != nil {
		if err := s.bus.Publish(ctx, event.NewParticipantRegisteredEvent(p.ID, p.City, p.Cohort)); err != nil {
			log.Warn(LogMsgPublishFailed, "error", err)
		}
	}
	return p, nil
}

func (s *service) Get(ctx context.Context, participantID string) (*domain.Participant, error) {
	return s.repo.GetParticipant(ctx, participantID)
}

// Credit applies a standalone credit in its own transaction
func (s *service) Credit(ctx context.Context, participantID string, credit domain.Credit) (p *domain.Participant, err error) {
	ctx, span := telemetry.StartSpan(ctx, "ledger.Credit")
	defer func() { telemetry.End(span, err) }()

	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	p, err = Apply(ctx, tx, participantID, credit, s.clock.Now())
	if err != nil {
		log.Warn(LogMsgCreditFailed, "participant_id", participantID, "error", err)
		return nil, err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTxFailed, err)
	}

	log.Debug(LogMsgCreditApplied, "participant_id", participantID, "points", credit.Points, "coins", credit.Coins)
	return p, nil
}

func (s *service) Stats(ctx context.Context, participantID string) (*domain.ParticipantStats, error) {
	p, err := s.repo.GetParticipant(ctx, participantID)
	if err != nil {
		return nil, err
	}
	counts, err := s.repo.GetActivityCounts(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCountsFailed, err)
	}

	earned := 0
	if s.achievements != nil {
		list, err := s.achievements.ListAchievements(ctx)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgAchievementsFail, err)
		}
		for _, a := range list {
			if a.EarnedBy(counts.Completed, p.Points) {
				earned++
			}
		}
	}

	var rate float64
	if counts.Attempted > 0 {
		rate = float64(counts.Completed) * percentScale / float64(counts.Attempted)
	}

	return &domain.ParticipantStats{
		ParticipantID:      p.ID,
		TotalPoints:        p.Points,
		Coins:              p.Coins,
		MissionsCompleted:  counts.Completed,
		MissionsAttempted:  counts.Attempted,
		CompletionRate:     rate,
		CurrentStreak:      p.CurrentStreak,
		BestStreak:         p.BestStreak,
		Rank:               p.Rank,
		WeeklyXP:           p.WeeklyXP,
		AchievementsEarned: earned,
		LastActivity:       p.LastActivityOn,
	}, nil
}
