package eligibility

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/clock"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/database/memory"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/event"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/ledger"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/storage"
)

func setup(t *testing.T) (Service, *memory.Store, string) {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	clk := clock.NewSimulatedClock(time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC))
	bus := event.NewMemoryBus()

	ledgerSvc := ledger.NewService(store.Participants(), store.Achievements(), bus, clk)
	p, err := ledgerSvc.Register(ctx, ledger.RegisterInput{Name: "Luis", Email: "luis@example.com", City: "Guayaquil"})
	require.NoError(t, err)

	require.NoError(t, store.Missions().UpsertMission(ctx, &domain.Mission{ID: "m1", Title: "Pitch", Type: domain.MissionTypeVideo, EstimatedMinutes: 10}))
	require.NoError(t, store.UpsertEvent(ctx, &domain.Event{
		ID:    "feria",
		Title: "Feria de emprendimiento",
		Rules: []domain.EligibilityRule{
			{Name: "pitch", Kind: domain.RuleMissionsCompleted, MissionIDs: []string{"m1"}},
			{Name: "ruc", Kind: domain.RuleDocuments, DocTypes: []string{"ruc"}},
		},
	}))

	svc := NewService(store, store.Missions(), ledgerSvc, storage.NewMemoryStore(), bus, clk, 1<<20)
	return svc, store, p.ID
}

func TestService_EvaluateAndSuggest(t *testing.T) {
	svc, _, pid := setup(t)
	ctx := context.Background()

	res, err := svc.Evaluate(ctx, pid, "feria")
	require.NoError(t, err)
	assert.Zero(t, res.Percentage)
	assert.Equal(t, domain.EligibilityIneligible, res.Status)
	assert.Len(t, res.MissingRequirements, 2)

	suggestions, err := svc.Suggest(ctx, pid, "feria")
	require.NoError(t, err)
	require.Len(t, suggestions, 2)
	assert.Equal(t, "m1", suggestions[0].ActionID, "quick win first")
	assert.Equal(t, domain.ActionUploadDocument, suggestions[1].Action)
	assert.Equal(t, domain.DefaultDocumentMinutes, suggestions[1].EstimatedMinutes)
}

func TestService_DocumentLifecycleFeedsEligibility(t *testing.T) {
	svc, _, pid := setup(t)
	ctx := context.Background()

	doc, err := svc.UploadDocument(ctx, DocumentInput{ParticipantID: pid, DocType: " RUC ", File: domain.Upload{FileName: "ruc.pdf", Body: []byte("pdf")}})
	require.NoError(t, err)
	assert.Equal(t, "ruc", doc.DocType)
	assert.Equal(t, domain.DocumentPending, doc.Status)

	res, err := svc.Evaluate(ctx, pid, "feria")
	require.NoError(t, err)
	assert.Zero(t, res.Percentage, "pending documents do not count")

	_, err = svc.ReviewDocument(ctx, doc.ID, domain.DocumentApproved)
	require.NoError(t, err)

	res, err = svc.Evaluate(ctx, pid, "feria")
	require.NoError(t, err)
	assert.InDelta(t, 50.0, res.Percentage, 0.001)
	assert.Equal(t, domain.EligibilityPartial, res.Status)

	_, err = svc.ReviewDocument(ctx, doc.ID, domain.DocumentRejected)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_Errors(t *testing.T) {
	svc, _, pid := setup(t)
	ctx := context.Background()

	_, err := svc.Evaluate(ctx, pid, "missing")
	assert.ErrorIs(t, err, domain.ErrEventNotFound)

	_, err = svc.Evaluate(ctx, "ghost", "feria")
	assert.ErrorIs(t, err, domain.ErrParticipantNotFound)

	_, err = svc.UploadDocument(ctx, DocumentInput{ParticipantID: pid, File: domain.Upload{Body: []byte("x")}})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.ReviewDocument(ctx, "nope", domain.DocumentPending)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
