package eligibility

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/clock"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/event"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/logger"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/storage"
)

// DocumentInput is a participant document upload
type DocumentInput struct {
	ParticipantID string
	DocType       string
	File          domain.Upload
}

// Service defines the eligibility and document operations
type Service interface {
	ListEvents(ctx context.Context) ([]domain.Event, error)
	GetEvent(ctx context.Context, eventID string) (*domain.Event, error)
	Evaluate(ctx context.Context, participantID, eventID string) (*domain.EligibilityResult, error)
	Suggest(ctx context.Context, participantID, eventID string) ([]domain.Suggestion, error)

	UploadDocument(ctx context.Context, in DocumentInput) (*domain.Document, error)
	ReviewDocument(ctx context.Context, documentID string, decision domain.DocumentStatus) (*domain.Document, error)
	ListDocuments(ctx context.Context, participantID string) ([]domain.Document, error)
}

type service struct {
	repo           Repository
	missions       MissionReader
	participants   Participants
	blobs          storage.BlobStore
	bus            event.Bus
	clock          clock.Clock
	maxUploadBytes int64
}

// NewService creates a new eligibility service
func NewService(repo Repository, missions MissionReader, participants Participants, blobs storage.BlobStore, bus event.Bus, clk clock.Clock, maxUploadBytes int64) Service {
	return &service{
		repo:           repo,
		missions:       missions,
		participants:   participants,
		blobs:          blobs,
		bus:            bus,
		clock:          clk,
		maxUploadBytes: maxUploadBytes,
	}
}

func (s *service) ListEvents(ctx context.Context) ([]domain.Event, error) {
	return s.repo.ListEvents(ctx)
}

func (s *service) GetEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	return s.repo.GetEvent(ctx, eventID)
}

// load fetches the event and every input in parallel
func (s *service) load(ctx context.Context, participantID, eventID string) (*domain.Event, Inputs, error) {
	var (
		ev       *domain.Event
		in       Inputs
		progress []domain.MissionProgress
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ev, err = s.repo.GetEvent(gctx, eventID)
		return err
	})
	g.Go(func() error {
		var err error
		in.Participant, err = s.participants.Get(gctx, participantID)
		return err
	})
	g.Go(func() error {
		var err error
		in.Missions, err = s.missions.ListMissions(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		progress, err = s.missions.ListProgress(gctx, participantID)
		return err
	})
	g.Go(func() error {
		var err error
		in.Evidence, err = s.missions.ListEvidence(gctx, participantID)
		return err
	})
	g.Go(func() error {
		var err error
		in.Documents, err = s.repo.ListDocuments(gctx, participantID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, Inputs{}, fmt.Errorf(ErrMsgLoadInputsFailed, err)
	}

	in.Progress = make(map[string]domain.MissionProgress, len(progress))
	for _, p := range progress {
		in.Progress[p.MissionID] = p
	}
	return ev, in, nil
}

func (s *service) Evaluate(ctx context.Context, participantID, eventID string) (*domain.EligibilityResult, error) {
	ev, in, err := s.load(ctx, participantID, eventID)
	if err != nil {
		return nil, err
	}
	res := Evaluate(ev, participantID, in)
	logger.FromContext(ctx).Debug(LogMsgEvaluated, "event_id", eventID, "participant_id", participantID, "percentage", res.Percentage)
	return res, nil
}

func (s *service) Suggest(ctx context.Context, participantID, eventID string) ([]domain.Suggestion, error) {
	ev, in, err := s.load(ctx, participantID, eventID)
	if err != nil {
		return nil, err
	}
	return Suggest(ev, Evaluate(ev, participantID, in), in), nil
}

func (s *service) ListDocuments(ctx context.Context, participantID string) ([]domain.Document, error) {
	return s.repo.ListDocuments(ctx, participantID)
}

func (s *service) UploadDocument(ctx context.Context, in DocumentInput) (*domain.Document, error) {
	log := logger.FromContext(ctx)

	docType := strings.ToLower(strings.TrimSpace(in.DocType))
	if docType == "" {
		return nil, domain.Validationf(ErrMsgDocTypeRequired)
	}
	if _, err := s.participants.Get(ctx, in.ParticipantID); err != nil {
		return nil, err
	}
	if err := storage.Validate(in.File, s.maxUploadBytes); err != nil {
		return nil, err
	}

	key := storage.NewKey(storage.PrefixDocuments, in.ParticipantID, in.File.FileName)
	ref, err := s.blobs.Put(ctx, key, in.File)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgStoreFileFailed, err)
	}

	doc := &domain.Document{
		ID:            uuid.NewString(),
		ParticipantID: in.ParticipantID,
		DocType:       docType,
		FileRef:       ref,
		FileName:      in.File.FileName,
		Status:        domain.DocumentPending,
		CreatedAt:     s.clock.Now(),
	}
	if err := s.repo.CreateDocument(ctx, doc); err != nil {
		if delErr := s.blobs.Delete(ctx, key); delErr != nil {
			log.Warn(LogMsgBlobCleanup, "key", key, "error", delErr)
		}
		return nil, fmt.Errorf(ErrMsgCreateDocument, err)
	}

	log.Info(LogMsgDocumentUploaded, "document_id", doc.ID, "participant_id", doc.ParticipantID, "doc_type", doc.DocType)
	if s.bus != nil {
		if err := s.bus.Publish(ctx, event.NewDocumentUploadedEvent(doc.ID, doc.ParticipantID, doc.DocType)); err != nil {
			log.Warn(LogMsgPublishFailed, "error", err)
		}
	}
	return doc, nil
}

func (s *service) ReviewDocument(ctx context.Context, documentID string, decision domain.DocumentStatus) (*domain.Document, error) {
	if decision != domain.DocumentApproved && decision != domain.DocumentRejected {
		return nil, domain.Validationf(ErrMsgInvalidDocStatus, decision)
	}
	doc, err := s.repo.GetDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if doc.Status != domain.DocumentPending {
		return nil, domain.Validationf(ErrMsgDocumentNotPending)
	}

	now := s.clock.Now()
	if err := s.repo.UpdateDocumentStatus(ctx, documentID, decision, now); err != nil {
		return nil, err
	}
	doc.Status = decision
	doc.ReviewedAt = &now

	logger.FromContext(ctx).Info(LogMsgDocumentReviewed, "document_id", documentID, "decision", decision)
	return doc, nil
}
