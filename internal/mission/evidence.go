package mission

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/concurrency"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/event"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/ledger"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/logger"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/repository"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/storage"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/telemetry"
)

// SubmitEvidence stores the file and creates pending evidence. The mission
// itself only moves once the evidence is referenced by an attempt.
func (s *service) SubmitEvidence(ctx context.Context, in EvidenceInput) (*domain.Evidence, error) {
	log := logger.FromContext(ctx)

	m, err := s.template(ctx, in.MissionID)
	if err != nil {
		return nil, err
	}
	if contentOf(m).Kind() != domain.ContentKindEvidence {
		return nil, domain.Validationf(ErrMsgNotEvidenceMission)
	}
	if _, err := s.participants.Get(ctx, in.ParticipantID); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	progress, err := s.repo.EnsureProgress(ctx, in.ParticipantID, in.MissionID, now)
	if err != nil {
		return nil, err
	}
	switch progress.Status {
	case domain.MissionStatusCompleted:
		return nil, domain.ErrAlreadyCompleted
	case domain.MissionStatusInReview:
		return nil, domain.ErrAlreadyInReview
	}
	if err := storage.Validate(in.File, s.maxUploadBytes); err != nil {
		return nil, err
	}

	key := storage.NewKey(storage.PrefixEvidence, in.ParticipantID, in.File.FileName)
	ref, err := s.blobs.Put(ctx, key, in.File)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgStoreFileFailed, err)
	}

	ev := &domain.Evidence{
		ID:            uuid.NewString(),
		MissionID:     in.MissionID,
		ParticipantID: in.ParticipantID,
		FileRef:       ref,
		FileName:      in.File.FileName,
		ContentType:   in.File.ContentType,
		SizeBytes:     int64(len(in.File.Body)),
		Description:   strings.TrimSpace(in.Description),
		Status:        domain.EvidencePending,
		CreatedAt:     now,
	}
	if err := s.repo.CreateEvidence(ctx, ev); err != nil {
		if delErr := s.blobs.Delete(ctx, key); delErr != nil {
			log.Warn(LogMsgBlobCleanup, "key", key, "error", delErr)
		}
		return nil, fmt.Errorf(ErrMsgCreateEvidence, err)
	}

	log.Info(LogMsgEvidenceStored, "evidence_id", ev.ID, "participant_id", ev.ParticipantID, "mission_id", ev.MissionID)
	s.publish(ctx, event.NewEvidenceEvent(event.EvidenceSubmitted, evidencePayload(ev, m)))
	return ev, nil
}

// ReviewEvidence records a reviewer decision. Approval completes the mission
// and credits the reward. Rejection or a revision request returns the mission
// to AVAILABLE with the notes stored on the progress.
func (s *service) ReviewEvidence(ctx context.Context, evidenceID string, decision domain.EvidenceStatus, notes string) (reviewed *domain.Evidence, err error) {
	ctx, span := telemetry.StartSpan(ctx, "mission.ReviewEvidence")
	defer func() { telemetry.End(span, err) }()

	if !decision.IsReviewDecision() {
		return nil, domain.Validationf(ErrMsgInvalidDecision, decision)
	}
	ev, err := s.repo.GetEvidence(ctx, evidenceID)
	if err != nil {
		return nil, err
	}
	if ev.Status != domain.EvidencePending {
		return nil, domain.Validationf(ErrMsgEvidenceNotPending)
	}
	m, err := s.template(ctx, ev.MissionID)
	if err != nil {
		return nil, err
	}

	lock := s.locks.GetLock(concurrency.Key("progress", ev.ParticipantID, ev.MissionID))
	lock.Lock()
	defer lock.Unlock()

	now := s.clock.Now()
	notes = strings.TrimSpace(notes)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	progress, err := tx.GetProgressForUpdate(ctx, ev.ParticipantID, ev.MissionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNotInReview, err)
	}
	if progress.Status != domain.MissionStatusInReview || progress.EvidenceID != ev.ID {
		return nil, domain.ErrNotInReview
	}

	ok, err := tx.UpdateEvidenceStatus(ctx, ev.ID, domain.EvidencePending, decision, notes, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.Validationf(ErrMsgEvidenceNotPending)
	}

	approved := decision == domain.EvidenceApproved
	next := *progress
	next.ReviewNotes = notes
	outcome := domain.AttemptRejected
	if approved {
		next.Status = domain.MissionStatusCompleted
		next.CompletedAt = &now
		outcome = domain.AttemptApproved
	} else {
		next.Status = domain.MissionStatusAvailable
		next.EvidenceID = ""
	}
	if err := s.swap(ctx, tx, domain.MissionStatusInReview, &next, now); err != nil {
		return nil, err
	}
	if err := tx.RecordAttempt(ctx, newAttempt(progress, outcome, nil, now)); err != nil {
		return nil, err
	}

	credit := m.Reward()
	if approved {
		if _, err := ledger.Apply(ctx, tx, ev.ParticipantID, credit, now); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTxFailed, err)
	}

	reviewed = ev
	reviewed.Status = decision
	reviewed.ReviewNotes = notes
	reviewed.ReviewedAt = &now

	logger.FromContext(ctx).Info(LogMsgEvidenceReviewed, "evidence_id", ev.ID, "decision", decision)
	s.publish(ctx, event.NewEvidenceEvent(event.EvidenceReviewed, evidencePayload(reviewed, m)))
	if approved {
		s.publish(ctx, event.NewMissionCompletedEvent(ev.ParticipantID, m.ID, string(m.Type), credit.Points, credit.Coins, 0, SourceReview))
	}
	return reviewed, nil
}

func evidencePayload(ev *domain.Evidence, m *domain.Mission) event.EvidencePayloadV1 {
	return event.EvidencePayloadV1{
		EvidenceID:    ev.ID,
		ParticipantID: ev.ParticipantID,
		MissionID:     ev.MissionID,
		MissionTitle:  m.Title,
		Status:        string(ev.Status),
		FileRef:       ev.FileRef,
		Notes:         ev.ReviewNotes,
	}
}
