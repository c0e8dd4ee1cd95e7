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

// LeagueRepository implements repository.League for PostgreSQL
type LeagueRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewLeagueRepository creates a new LeagueRepository
func NewLeagueRepository(db *pgxpool.Pool) *LeagueRepository {
	return &LeagueRepository{db: db, q: generated.New(db)}
}

func (r *LeagueRepository) GetLeague(ctx context.Context, leagueID string) (*domain.League, error) {
	row, err := r.q.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, notFound(err, domain.ErrLeagueNotFound, ErrMsgFailedToGetLeague)
	}
	return toLeague(row)
}

func (r *LeagueRepository) ListLeagues(ctx context.Context, status domain.LeagueStatus) ([]domain.League, error) {
	rows, err := r.q.ListLeagues(ctx, string(status))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListLeagues, err)
	}
	return toLeagues(rows)
}

// AddMember inserts the membership if absent and the league is active. The
// insert is guarded in SQL, so a zero row count is resolved afterwards into
// not found, closed or already a member.
func (r *LeagueRepository) AddMember(ctx context.Context, leagueID, participantID string, at time.Time) (bool, error) {
	n, err := r.q.AddMember(ctx, generated.AddMemberParams{
		LeagueID:      leagueID,
		ParticipantID: participantID,
		JoinedAt:      at,
	})
	if err != nil {
		return false, wrapWrite(err, ErrMsgFailedToAddMember)
	}
	if n == 1 {
		return true, nil
	}
	league, err := r.GetLeague(ctx, leagueID)
	if err != nil {
		return false, err
	}
	if league.Status != domain.LeagueActive {
		return false, domain.ErrLeagueClosed
	}
	return false, nil
}

func (r *LeagueRepository) IsMember(ctx context.Context, leagueID, participantID string) (bool, error) {
	ok, err := r.q.IsMember(ctx, generated.IsMemberParams{LeagueID: leagueID, ParticipantID: participantID})
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToCheckMembership, err)
	}
	return ok, nil
}

func (r *LeagueRepository) ListStandings(ctx context.Context, leagueID string) ([]domain.Standing, error) {
	rows, err := r.q.ListStandings(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListStandings, err)
	}
	return toStandings(rows), nil
}

func (r *LeagueRepository) GetState(ctx context.Context) (*domain.LeagueState, error) {
	row, err := r.q.GetLeagueState(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetLeagueState, err)
	}
	return &domain.LeagueState{CurrentCycle: row.CurrentCycle, RolledOverAt: utcPtr(row.RolledOverAt)}, nil
}

// BeginTx starts a rollover transaction
func (r *LeagueRepository) BeginTx(ctx context.Context) (repository.LeagueTx, error) {
	t, err := beginTx(ctx, r.db, r.q)
	if err != nil {
		return nil, err
	}
	return t, nil
}
