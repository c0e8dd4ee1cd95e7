package achievement

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/logger"
)

// Service defines the achievement operations
type Service interface {
	List(ctx context.Context) ([]domain.Achievement, error)
	Save(ctx context.Context, a *domain.Achievement) error
	Eligible(ctx context.Context, participantID string) ([]domain.Achievement, error)
}

type service struct {
	repo     Repository
	progress Progress
}

// NewService creates a new achievement service
func NewService(repo Repository, progress Progress) Service {
	return &service{repo: repo, progress: progress}
}

func (s *service) List(ctx context.Context) ([]domain.Achievement, error) {
	return s.repo.ListAchievements(ctx)
}

func (s *service) Save(ctx context.Context, a *domain.Achievement) error {
	a.Title = strings.TrimSpace(a.Title)
	if a.Title == "" {
		return domain.Validationf(ErrMsgTitleRequired)
	}
	if a.MissionsRequired < 0 || a.PointsRequired < 0 {
		return domain.Validationf(ErrMsgNegativeGoal)
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if err := s.repo.UpsertAchievement(ctx, a); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgSaved, "achievement_id", a.ID)
	return nil
}

// Eligible lists achievements whose mission and point thresholds the
// participant has reached
func (s *service) Eligible(ctx context.Context, participantID string) ([]domain.Achievement, error) {
	p, err := s.progress.GetParticipant(ctx, participantID)
	if err != nil {
		return nil, err
	}
	counts, err := s.progress.GetActivityCounts(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCountsFailed, err)
	}
	all, err := s.repo.ListAchievements(ctx)
	if err != nil {
		return nil, err
	}

	earned := make([]domain.Achievement, 0, len(all))
	for _, a := range all {
		if a.EarnedBy(counts.Completed, p.Points) {
			earned = append(earned, a)
		}
	}
	return earned, nil
}
