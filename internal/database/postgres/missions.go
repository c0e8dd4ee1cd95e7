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

// MissionRepository implements repository.Mission for PostgreSQL
type MissionRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewMissionRepository creates a new MissionRepository
func NewMissionRepository(db *pgxpool.Pool) *MissionRepository {
	return &MissionRepository{db: db, q: generated.New(db)}
}

// ListMissions returns every mission ordered by position
func (r *MissionRepository) ListMissions(ctx context.Context) ([]domain.Mission, error) {
	rows, err := r.q.ListMissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListMissions, err)
	}
	out := make([]domain.Mission, 0, len(rows))
	for _, row := range rows {
		m, err := toMission(row)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, nil
}

// GetMission retrieves a mission by id
func (r *MissionRepository) GetMission(ctx context.Context, missionID string) (*domain.Mission, error) {
	row, err := r.q.GetMission(ctx, missionID)
	if err != nil {
		return nil, notFound(err, domain.ErrMissionNotFound, ErrMsgFailedToGetMission)
	}
	return toMission(row)
}

// UpsertMission inserts or replaces a mission template
func (r *MissionRepository) UpsertMission(ctx context.Context, mission *domain.Mission) error {
	params, err := missionParams(mission)
	if err != nil {
		return err
	}
	if params.CreatedAt.IsZero() {
		params.CreatedAt = time.Now().UTC()
	}
	if err := r.q.UpsertMission(ctx, params); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertMission, err)
	}
	return nil
}

// EnsureProgress returns the progress row, creating it AVAILABLE if missing
func (r *MissionRepository) EnsureProgress(ctx context.Context, participantID, missionID string, now time.Time) (*domain.MissionProgress, error) {
	err := r.q.InsertProgress(ctx, generated.InsertProgressParams{
		ParticipantID: participantID,
		MissionID:     missionID,
		UpdatedAt:     now,
	})
	if err != nil {
		return nil, wrapWrite(err, ErrMsgFailedToEnsureProgress)
	}
	row, err := r.q.GetProgress(ctx, generated.GetProgressParams{ParticipantID: participantID, MissionID: missionID})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetProgress, err)
	}
	return toProgress(row)
}

// ListProgress returns every progress row of a participant
func (r *MissionRepository) ListProgress(ctx context.Context, participantID string) ([]domain.MissionProgress, error) {
	rows, err := r.q.ListProgress(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListProgress, err)
	}
	return toProgressList(rows)
}

// ListAttempts returns the attempt history, newest first
func (r *MissionRepository) ListAttempts(ctx context.Context, participantID, missionID string) ([]domain.MissionAttempt, error) {
	rows, err := r.q.ListAttempts(ctx, generated.ListAttemptsParams{ParticipantID: participantID, MissionID: missionID})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListAttempts, err)
	}
	out := make([]domain.MissionAttempt, 0, len(rows))
	for _, row := range rows {
		out = append(out, toAttempt(row))
	}
	return out, nil
}

// CreateEvidence stores a submitted artifact
func (r *MissionRepository) CreateEvidence(ctx context.Context, e *domain.Evidence) error {
	err := r.q.CreateEvidence(ctx, generated.CreateEvidenceParams{
		ID:            e.ID,
		MissionID:     e.MissionID,
		ParticipantID: e.ParticipantID,
		FileRef:       e.FileRef,
		FileName:      e.FileName,
		ContentType:   e.ContentType,
		SizeBytes:     e.SizeBytes,
		Description:   e.Description,
		Status:        string(e.Status),
		ReviewNotes:   e.ReviewNotes,
		CreatedAt:     e.CreatedAt,
		ReviewedAt:    e.ReviewedAt,
	})
	if err != nil {
		return wrapWrite(err, ErrMsgFailedToCreateEvidence)
	}
	return nil
}

// GetEvidence retrieves evidence by id
func (r *MissionRepository) GetEvidence(ctx context.Context, evidenceID string) (*domain.Evidence, error) {
	row, err := r.q.GetEvidence(ctx, evidenceID)
	if err != nil {
		return nil, notFound(err, domain.ErrEvidenceNotFound, ErrMsgFailedToGetEvidence)
	}
	return toEvidence(row), nil
}

// ListEvidence returns a participant's evidence, newest first
func (r *MissionRepository) ListEvidence(ctx context.Context, participantID string) ([]domain.Evidence, error) {
	rows, err := r.q.ListEvidence(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListEvidence, err)
	}
	out := make([]domain.Evidence, 0, len(rows))
	for _, row := range rows {
		out = append(out, *toEvidence(row))
	}
	return out, nil
}

// BeginTx starts a mission lifecycle transaction
func (r *MissionRepository) BeginTx(ctx context.Context) (repository.MissionTx, error) {
	t, err := beginTx(ctx, r.db, r.q)
	if err != nil {
		return nil, err
	}
	return t, nil
}
