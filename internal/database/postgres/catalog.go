package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/database/generated"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
)

// CatalogRepository implements the event, document and achievement
// repositories for PostgreSQL
type CatalogRepository struct {
	q *generated.Queries
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{q: generated.New(db)}
}

func (r *CatalogRepository) ListEvents(ctx context.Context) ([]domain.Event, error) {
	rows, err := r.q.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListEvents, err)
	}
	out := make([]domain.Event, 0, len(rows))
	for _, row := range rows {
		e, err := toEvent(row)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, nil
}

func (r *CatalogRepository) GetEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	row, err := r.q.GetEvent(ctx, eventID)
	if err != nil {
		return nil, notFound(err, domain.ErrEventNotFound, ErrMsgFailedToGetEvent)
	}
	return toEvent(row)
}

func (r *CatalogRepository) UpsertEvent(ctx context.Context, event *domain.Event) error {
	rules := []byte(EmptyJSONArray)
	if len(event.Rules) > 0 {
		raw, err := json.Marshal(event.Rules)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalRules, err)
		}
		rules = raw
	}
	err := r.q.UpsertEvent(ctx, generated.UpsertEventParams{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		Location:    event.Location,
		Organizer:   event.Organizer,
		Date:        event.Date,
		Capacity:    int32(event.Capacity),
		Rules:       rules,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertEvent, err)
	}
	return nil
}

func (r *CatalogRepository) CreateDocument(ctx context.Context, d *domain.Document) error {
	err := r.q.CreateDocument(ctx, generated.CreateDocumentParams{
		ID:            d.ID,
		ParticipantID: d.ParticipantID,
		DocType:       d.DocType,
		FileRef:       d.FileRef,
		FileName:      d.FileName,
		Status:        string(d.Status),
		CreatedAt:     d.CreatedAt,
		ReviewedAt:    d.ReviewedAt,
	})
	if err != nil {
		return wrapWrite(err, ErrMsgFailedToCreateDocument)
	}
	return nil
}

func (r *CatalogRepository) GetDocument(ctx context.Context, documentID string) (*domain.Document, error) {
	row, err := r.q.GetDocument(ctx, documentID)
	if err != nil {
		return nil, notFound(err, domain.ErrDocumentNotFound, ErrMsgFailedToGetDocument)
	}
	return toDocument(row), nil
}

func (r *CatalogRepository) ListDocuments(ctx context.Context, participantID string) ([]domain.Document, error) {
	rows, err := r.q.ListDocuments(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListDocuments, err)
	}
	out := make([]domain.Document, 0, len(rows))
	for _, row := range rows {
		out = append(out, *toDocument(row))
	}
	return out, nil
}

func (r *CatalogRepository) UpdateDocumentStatus(ctx context.Context, documentID string, status domain.DocumentStatus, at time.Time) error {
	n, err := r.q.UpdateDocumentStatus(ctx, generated.UpdateDocumentStatusParams{
		ID:         documentID,
		Status:     string(status),
		ReviewedAt: &at,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateDocument, err)
	}
	if n == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}

func (r *CatalogRepository) ListAchievements(ctx context.Context) ([]domain.Achievement, error) {
	rows, err := r.q.ListAchievements(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListAchievements, err)
	}
	out := make([]domain.Achievement, 0, len(rows))
	for _, row := range rows {
		out = append(out, toAchievement(row))
	}
	return out, nil
}

func (r *CatalogRepository) UpsertAchievement(ctx context.Context, a *domain.Achievement) error {
	err := r.q.UpsertAchievement(ctx, generated.UpsertAchievementParams{
		ID:               a.ID,
		Title:            a.Title,
		Description:      a.Description,
		Icon:             a.Icon,
		MissionsRequired: int32(a.MissionsRequired),
		PointsRequired:   a.PointsRequired,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertAchievement, err)
	}
	return nil
}
