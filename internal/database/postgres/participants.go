package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/database/generated"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/repository"
)

// ParticipantRepository implements repository.Participant for PostgreSQL
type ParticipantRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewParticipantRepository creates a new ParticipantRepository
func NewParticipantRepository(db *pgxpool.Pool) *ParticipantRepository {
	return &ParticipantRepository{db: db, q: generated.New(db)}
}

// CreateParticipant inserts a participant, rejecting a case-insensitive email clash
func (r *ParticipantRepository) CreateParticipant(ctx context.Context, p *domain.Participant) error {
	err := r.q.CreateParticipant(ctx, generated.CreateParticipantParams{
		ID:             p.ID,
		Name:           p.Name,
		Email:          p.Email,
		City:           p.City,
		Cohort:         p.Cohort,
		Points:         p.Points,
		Coins:          p.Coins,
		CurrentStreak:  int32(p.CurrentStreak),
		BestStreak:     int32(p.BestStreak),
		WeeklyXp:       p.WeeklyXP,
		XpCycle:        p.XPCycle,
		Rank:           string(p.Rank),
		LastActivityOn: p.LastActivityOn,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	})
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err, ConstraintParticipantEmail):
		return domain.ErrDuplicateEmail
	case isUniqueViolation(err, ""):
		return fmt.Errorf(ErrMsgParticipantExists, p.ID)
	}
	return fmt.Errorf("%s: %w", ErrMsgFailedToCreateParticipant, err)
}

// GetParticipant retrieves a participant by id
func (r *ParticipantRepository) GetParticipant(ctx context.Context, participantID string) (*domain.Participant, error) {
	row, err := r.q.GetParticipant(ctx, participantID)
	if err != nil {
		return nil, notFound(err, domain.ErrParticipantNotFound, ErrMsgFailedToGetParticipant)
	}
	return toParticipant(row), nil
}

// GetActivityCounts counts completed and attempted missions
func (r *ParticipantRepository) GetActivityCounts(ctx context.Context, participantID string) (domain.ActivityCounts, error) {
	row, err := r.q.GetActivityCounts(ctx, participantID)
	if err != nil {
		return domain.ActivityCounts{}, fmt.Errorf("%s: %w", ErrMsgFailedToGetActivityCounts, err)
	}
	return domain.ActivityCounts{Completed: int(row.Completed), Attempted: int(row.Attempted)}, nil
}

// BeginTx starts a ledger transaction
func (r *ParticipantRepository) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	t, err := beginTx(ctx, r.db, r.q)
	if err != nil {
		return nil, err
	}
	return t, nil
}
