package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/database/generated"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
)

// ---- Common Helper Functions ----

// beginTx starts a new transaction with the queries bound to it.
// Use repository.SafeRollback in defer to ensure proper cleanup.
func beginTx(ctx context.Context, db *pgxpool.Pool, q *generated.Queries) (*tx, error) {
	pgxTx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &tx{tx: pgxTx, q: q.WithTx(pgxTx)}, nil
}

// notFound maps pgx.ErrNoRows to the given domain error
func notFound(err error, target error, msg string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return target
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

func isUniqueViolation(err error, constraint string) bool {
	pgErr, ok := pgError(err)
	if !ok || pgErr.Code != PgErrorCodeUniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

// referenceError maps a foreign key violation to the not found error of the
// referenced aggregate, or returns nil. Constraint names follow the
// <table>_<column>_fkey default.
func referenceError(err error) error {
	pgErr, ok := pgError(err)
	if !ok || pgErr.Code != PgErrorCodeForeignKeyViolation {
		return nil
	}
	switch {
	case strings.HasSuffix(pgErr.ConstraintName, "participant_id_fkey"):
		return domain.ErrParticipantNotFound
	case strings.HasSuffix(pgErr.ConstraintName, "mission_id_fkey"):
		return domain.ErrMissionNotFound
	case strings.HasSuffix(pgErr.ConstraintName, "reward_id_fkey"):
		return domain.ErrRewardNotFound
	case strings.HasSuffix(pgErr.ConstraintName, "league_id_fkey"):
		return domain.ErrLeagueNotFound
	}
	return domain.ErrNotFound
}

// wrapWrite maps foreign key violations of a write and wraps anything else
func wrapWrite(err error, msg string) error {
	if mapped := referenceError(err); mapped != nil {
		return mapped
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// ---- End Common Helper Functions ----

func utc(t time.Time) time.Time {
	return t.UTC()
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
