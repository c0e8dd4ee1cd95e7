package repository

import (
	"context"
	"time"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
)

// Mission defines the interface for mission, progress and evidence persistence
type Mission interface {
	ListMissions(ctx context.Context) ([]domain.Mission, error)
	GetMission(ctx context.Context, missionID string) (*domain.Mission, error)
	UpsertMission(ctx context.Context, mission *domain.Mission) error

	// EnsureProgress returns the progress row, creating it AVAILABLE if missing
	EnsureProgress(ctx context.Context, participantID, missionID string, now time.Time) (*domain.MissionProgress, error)
	ListProgress(ctx context.Context, participantID string) ([]domain.MissionProgress, error)
	ListAttempts(ctx context.Context, participantID, missionID string) ([]domain.MissionAttempt, error)

	CreateEvidence(ctx context.Context, evidence *domain.Evidence) error
	GetEvidence(ctx context.Context, evidenceID string) (*domain.Evidence, error)
	ListEvidence(ctx context.Context, participantID string) ([]domain.Evidence, error)

	BeginTx(ctx context.Context) (MissionTx, error)
}

// MissionTx defines the interface for mission lifecycle transactions
type MissionTx interface {
	LedgerTx
	GetProgressForUpdate(ctx context.Context, participantID, missionID string) (*domain.MissionProgress, error)
	// CompareAndSwapProgress writes progress only if the stored status still
	// equals expected and no cooldown is active at now. It reports whether the
	// row was written.
	CompareAndSwapProgress(ctx context.Context, expected domain.MissionStatus, progress *domain.MissionProgress, now time.Time) (bool, error)
	RecordAttempt(ctx context.Context, attempt *domain.MissionAttempt) error
	GetEvidenceForUpdate(ctx context.Context, evidenceID string) (*domain.Evidence, error)
	// UpdateEvidenceStatus moves evidence from one status to another, reporting
	// false if the stored status no longer equals from.
	UpdateEvidenceStatus(ctx context.Context, evidenceID string, from, to domain.EvidenceStatus, notes string, at time.Time) (bool, error)
}
