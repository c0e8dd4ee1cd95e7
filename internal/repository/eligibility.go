package repository

import (
	"context"
	"time"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
)

// Event defines the interface for event persistence
type Event interface {
	ListEvents(ctx context.Context) ([]domain.Event, error)
	GetEvent(ctx context.Context, eventID string) (*domain.Event, error)
	UpsertEvent(ctx context.Context, event *domain.Event) error
}

// Document defines the interface for participant document persistence
type Document interface {
	CreateDocument(ctx context.Context, document *domain.Document) error
	GetDocument(ctx context.Context, documentID string) (*domain.Document, error)
	ListDocuments(ctx context.Context, participantID string) ([]domain.Document, error)
	UpdateDocumentStatus(ctx context.Context, documentID string, status domain.DocumentStatus, at time.Time) error
}

// Achievement defines the interface for achievement persistence
type Achievement interface {
	ListAchievements(ctx context.Context) ([]domain.Achievement, error)
	UpsertAchievement(ctx context.Context, achievement *domain.Achievement) error
}
