package mission

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/clock"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/concurrency"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/event"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/ledger"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/logger"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/repository"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/storage"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/telemetry"
)

// EvidenceInput is an evidence upload for a mission
type EvidenceInput struct {
	ParticipantID string
	MissionID     string
	Description   string
	File          domain.Upload
}

// Service defines the mission lifecycle operations
type Service interface {
	ListMissions(ctx context.Context) ([]domain.Mission, error)
	GetMission(ctx context.Context, missionID string) (*domain.Mission, error)
	GetStatus(ctx context.Context, participantID, missionID string) (*domain.MissionProgress, error)
	ListWithStatus(ctx context.Context, participantID string) ([]domain.MissionWithStatus, error)
	ProgressFor(ctx context.Context, participantID string) (map[string]domain.MissionProgress, error)
	Attempt(ctx context.Context, participantID, missionID string, submission domain.Submission) (*domain.AttemptResult, error)
	CooldownStatus(ctx context.Context, participantID, missionID string) (*domain.CooldownStatus, error)
	Attempts(ctx context.Context, participantID, missionID string) ([]domain.MissionAttempt, error)
	SubmitEvidence(ctx context.Context, in EvidenceInput) (*domain.Evidence, error)
	ReviewEvidence(ctx context.Context, evidenceID string, decision domain.EvidenceStatus, notes string) (*domain.Evidence, error)
	ListEvidence(ctx context.Context, participantID string) ([]domain.Evidence, error)
	InvalidateTemplates()
}

type service struct {
	repo           Repository
	participants   Participants
	blobs          storage.BlobStore
	bus            event.Bus
	clock          clock.Clock
	locks          *concurrency.LockManager
	templates      *templateCache
	maxUploadBytes int64
}

// NewService creates a new mission service
func NewService(repo Repository, participants Participants, blobs storage.BlobStore, bus event.Bus, clk clock.Clock, maxUploadBytes int64) Service {
	return &service{
		repo:           repo,
		participants:   participants,
		blobs:          blobs,
		bus:            bus,
		clock:          clk,
		locks:          concurrency.NewLockManager(),
		templates:      newTemplateCache(TemplateCacheSize, TemplateCacheTTL),
		maxUploadBytes: maxUploadBytes,
	}
}

func (s *service) ListMissions(ctx context.Context) ([]domain.Mission, error) {
	missions, err := s.repo.ListMissions(ctx)
	if err != nil {
		return nil, err
	}
	for i := range missions {
		missions[i] = missions[i].Redacted()
	}
	return missions, nil
}

// GetMission returns the template without the quiz answer key
func (s *service) GetMission(ctx context.Context, missionID string) (*domain.Mission, error) {
	m, err := s.template(ctx, missionID)
	if err != nil {
		return nil, err
	}
	redacted := m.Redacted()
	return &redacted, nil
}

func (s *service) InvalidateTemplates() {
	s.templates.Clear()
}

func (s *service) template(ctx context.Context, missionID string) (*domain.Mission, error) {
	if m, ok := s.templates.Get(missionID); ok {
		return m, nil
	}
	m, err := s.repo.GetMission(ctx, missionID)
	if err != nil {
		return nil, err
	}
	s.templates.Set(m)
	return m, nil
}

func (s *service) GetStatus(ctx context.Context, participantID, missionID string) (*domain.MissionProgress, error) {
	if _, err := s.template(ctx, missionID); err != nil {
		return nil, err
	}
	return s.repo.EnsureProgress(ctx, participantID, missionID, s.clock.Now())
}

func (s *service) ProgressFor(ctx context.Context, participantID string) (map[string]domain.MissionProgress, error) {
	rows, err := s.repo.ListProgress(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgProgressFailed, err)
	}
	out := make(map[string]domain.MissionProgress, len(rows))
	for _, p := range rows {
		out[p.MissionID] = p
	}
	return out, nil
}

func (s *service) ListWithStatus(ctx context.Context, participantID string) ([]domain.MissionWithStatus, error) {
	if _, err := s.participants.Get(ctx, participantID); err != nil {
		return nil, err
	}
	missions, err := s.repo.ListMissions(ctx)
	if err != nil {
		return nil, err
	}
	progress, err := s.ProgressFor(ctx, participantID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	out := make([]domain.MissionWithStatus, 0, len(missions))
	for i := range missions {
		m := &missions[i]
		p, ok := progress[m.ID]
		if !ok {
			p = *domain.NewProgress(participantID, m.ID, now)
		}
		out = append(out, domain.MissionWithStatus{
			Mission:  m.Redacted(),
			Progress: p,
			Locked:   lockedBy(m, progress),
		})
	}
	return out, nil
}

// lockedBy reports whether any prerequisite of m is not completed
func lockedBy(m *domain.Mission, progress map[string]domain.MissionProgress) bool {
	for _, req := range m.Requirements {
		if progress[req].Status != domain.MissionStatusCompleted {
			return true
		}
	}
	return false
}

func (s *service) locked(ctx context.Context, participantID string, m *domain.Mission) (bool, error) {
	if len(m.Requirements) == 0 {
		return false, nil
	}
	progress, err := s.ProgressFor(ctx, participantID)
	if err != nil {
		return false, err
	}
	return lockedBy(m, progress), nil
}

// checkAttemptable applies the precondition order shared by Attempt and
// CooldownStatus
func (s *service) checkAttemptable(ctx context.Context, participantID string, m *domain.Mission, now time.Time) (*domain.MissionProgress, error) {
	progress, err := s.repo.EnsureProgress(ctx, participantID, m.ID, now)
	if err != nil {
		return nil, err
	}
	switch progress.Status {
	case domain.MissionStatusCompleted:
		return progress, domain.ErrAlreadyCompleted
	case domain.MissionStatusInReview:
		return progress, domain.ErrAlreadyInReview
	}
	if progress.CooldownActiveAt(now) {
		return progress, &domain.CooldownError{MissionID: m.ID, RetryAfter: *progress.CooldownUntil}
	}
	locked, err := s.locked(ctx, participantID, m)
	if err != nil {
		return nil, err
	}
	if locked {
		return progress, domain.ErrMissionLocked
	}
	return progress, nil
}

func (s *service) CooldownStatus(ctx context.Context, participantID, missionID string) (*domain.CooldownStatus, error) {
	m, err := s.template(ctx, missionID)
	if err != nil {
		return nil, err
	}
	_, err = s.checkAttemptable(ctx, participantID, m, s.clock.Now())

	var cooldown *domain.CooldownError
	switch {
	case err == nil:
		return &domain.CooldownStatus{CanAttempt: true, Message: MsgCanAttempt}, nil
	case errors.As(err, &cooldown):
		retry := cooldown.RetryAfter
		return &domain.CooldownStatus{RetryAfter: &retry, Message: MsgCooldownActive}, nil
	case errors.Is(err, domain.ErrAlreadyCompleted):
		return &domain.CooldownStatus{Message: MsgAlreadyComplete}, nil
	case errors.Is(err, domain.ErrAlreadyInReview):
		return &domain.CooldownStatus{Message: MsgInReview}, nil
	case errors.Is(err, domain.ErrMissionLocked):
		return &domain.CooldownStatus{Message: MsgLocked}, nil
	}
	return nil, err
}

func (s *service) Attempts(ctx context.Context, participantID, missionID string) ([]domain.MissionAttempt, error) {
	if _, err := s.template(ctx, missionID); err != nil {
		return nil, err
	}
	return s.repo.ListAttempts(ctx, participantID, missionID)
}

func (s *service) ListEvidence(ctx context.Context, participantID string) ([]domain.Evidence, error) {
	return s.repo.ListEvidence(ctx, participantID)
}

// Attempt grades a submission and applies the resulting transition.
// All preconditions are checked before any side effect.
func (s *service) Attempt(ctx context.Context, participantID, missionID string, submission domain.Submission) (res *domain.AttemptResult, err error) {
	ctx, span := telemetry.StartSpan(ctx, "mission.Attempt")
	defer func() { telemetry.End(span, err) }()

	m, err := s.template(ctx, missionID)
	if err != nil {
		return nil, err
	}

	lock := s.locks.GetLock(concurrency.Key("progress", participantID, missionID))
	lock.Lock()
	defer lock.Unlock()

	now := s.clock.Now()
	progress, err := s.checkAttemptable(ctx, participantID, m, now)
	if err != nil {
		return nil, err
	}

	switch content := contentOf(m).(type) {
	case domain.QuizContent:
		result, err := GradeQuiz(content, submission.Answers)
		if err != nil {
			return nil, err
		}
		if !result.Passed {
			return s.failQuiz(ctx, m, progress, result, now)
		}
		return s.complete(ctx, m, progress, now, completion{result: result, outcome: domain.AttemptPassed})
	case domain.EvidenceContent:
		ev, err := s.pendingEvidence(ctx, participantID, missionID, submission.EvidenceID)
		if err != nil {
			return nil, err
		}
		if m.AutoApprove {
			return s.complete(ctx, m, progress, now, completion{evidence: ev, outcome: domain.AttemptApproved})
		}
		return s.sendToReview(ctx, m, progress, ev, now)
	default:
		return s.complete(ctx, m, progress, now, completion{outcome: domain.AttemptCompleted})
	}
}

func (s *service) pendingEvidence(ctx context.Context, participantID, missionID, evidenceID string) (*domain.Evidence, error) {
	if strings.TrimSpace(evidenceID) == "" {
		return nil, domain.Validationf(ErrMsgEvidenceRequired)
	}
	ev, err := s.repo.GetEvidence(ctx, evidenceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.Validationf("%s: %s", domain.ErrMsgEvidenceNotFound, evidenceID)
		}
		return nil, err
	}
	if ev.ParticipantID != participantID || ev.MissionID != missionID {
		return nil, domain.Validationf(ErrMsgEvidenceMismatch)
	}
	if ev.Status != domain.EvidencePending {
		return nil, domain.Validationf(ErrMsgEvidenceNotPending)
	}
	return ev, nil
}

type completion struct {
	result   *domain.QuizResult
	evidence *domain.Evidence
	outcome  domain.AttemptOutcome
}

// complete moves AVAILABLE progress to COMPLETED and credits the reward in
// one transaction
func (s *service) complete(ctx context.Context, m *domain.Mission, progress *domain.MissionProgress, now time.Time, c completion) (*domain.AttemptResult, error) {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if c.evidence != nil {
		ok, err := tx.UpdateEvidenceStatus(ctx, c.evidence.ID, domain.EvidencePending, domain.EvidenceApproved, "", now)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.Validationf(ErrMsgEvidenceNotPending)
		}
	}

	next := *progress
	next.Status = domain.MissionStatusCompleted
	next.Attempts++
	next.LastAttemptAt = &now
	next.LastResult = c.result
	next.CooldownUntil = nil
	next.CompletedAt = &now
	if c.evidence != nil {
		next.EvidenceID = c.evidence.ID
	}
	if err := s.swap(ctx, tx, domain.MissionStatusAvailable, &next, now); err != nil {
		return nil, err
	}

	var score *float64
	if c.result != nil {
		score = &c.result.Score
	}
	if err := tx.RecordAttempt(ctx, newAttempt(progress, c.outcome, score, now)); err != nil {
		return nil, err
	}

	credit := m.Reward()
	if _, err := ledger.Apply(ctx, tx, progress.ParticipantID, credit, now); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTxFailed, err)
	}

	log.Info(LogMsgAttemptCompleted, "participant_id", progress.ParticipantID, "mission_id", m.ID, "points", credit.Points)
	var scoreValue float64
	if score != nil {
		scoreValue = *score
	}
	s.publish(ctx, event.NewMissionCompletedEvent(progress.ParticipantID, m.ID, string(m.Type), credit.Points, credit.Coins, scoreValue, SourceAttempt))

	return &domain.AttemptResult{
		Success:       true,
		Status:        domain.AttemptStatusCompleted,
		PointsAwarded: credit.Points,
		CoinsAwarded:  credit.Coins,
		Result:        c.result,
		MissionStatus: domain.MissionStatusCompleted,
	}, nil
}

func (s *service) failQuiz(ctx context.Context, m *domain.Mission, progress *domain.MissionProgress, result *domain.QuizResult, now time.Time) (*domain.AttemptResult, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	retryAfter := now.Add(domain.QuizCooldown)
	next := *progress
	next.Status = domain.MissionStatusAvailable
	next.Attempts++
	next.LastAttemptAt = &now
	next.LastResult = result
	next.CooldownUntil = &retryAfter
	if err := s.swap(ctx, tx, domain.MissionStatusAvailable, &next, now); err != nil {
		return nil, err
	}
	if err := tx.RecordAttempt(ctx, newAttempt(progress, domain.AttemptFailed, &result.Score, now)); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTxFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgQuizFailed, "participant_id", progress.ParticipantID, "mission_id", m.ID, "score", result.Score)
	s.publish(ctx, event.NewMissionQuizFailedEvent(progress.ParticipantID, m.ID, result.Score, retryAfter))

	return &domain.AttemptResult{
		Success:       false,
		Status:        domain.AttemptStatusFailed,
		Result:        result,
		CooldownUntil: &retryAfter,
		MissionStatus: domain.MissionStatusAvailable,
	}, nil
}

func (s *service) sendToReview(ctx context.Context, m *domain.Mission, progress *domain.MissionProgress, ev *domain.Evidence, now time.Time) (*domain.AttemptResult, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	next := *progress
	next.Status = domain.MissionStatusInReview
	next.Attempts++
	next.LastAttemptAt = &now
	next.EvidenceID = ev.ID
	next.ReviewNotes = ""
	if err := s.swap(ctx, tx, domain.MissionStatusAvailable, &next, now); err != nil {
		return nil, err
	}
	if err := tx.RecordAttempt(ctx, newAttempt(progress, domain.AttemptSubmitted, nil, now)); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTxFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgSentToReview, "participant_id", progress.ParticipantID, "mission_id", m.ID, "evidence_id", ev.ID)
	return &domain.AttemptResult{
		Success:       true,
		Status:        domain.AttemptStatusPendingReview,
		MissionStatus: domain.MissionStatusInReview,
	}, nil
}

// swap writes next if the stored status still equals expected. A lost race
// is reported with the error matching the status that won.
func (s *service) swap(ctx context.Context, tx repository.MissionTx, expected domain.MissionStatus, next *domain.MissionProgress, now time.Time) error {
	ok, err := tx.CompareAndSwapProgress(ctx, expected, next, now)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	logger.FromContext(ctx).Warn(LogMsgCASLost, "participant_id", next.ParticipantID, "mission_id", next.MissionID)
	current, err := tx.GetProgressForUpdate(ctx, next.ParticipantID, next.MissionID)
	if err != nil {
		return err
	}
	switch {
	case current.Status == domain.MissionStatusInReview:
		return domain.ErrAlreadyInReview
	case current.Status == domain.MissionStatusAvailable && expected == domain.MissionStatusInReview:
		return domain.ErrNotInReview
	case current.Status == domain.MissionStatusAvailable && current.CooldownActiveAt(now):
		return &domain.CooldownError{MissionID: current.MissionID, RetryAfter: *current.CooldownUntil}
	default:
		return domain.ErrAlreadyCompleted
	}
}

func newAttempt(p *domain.MissionProgress, outcome domain.AttemptOutcome, score *float64, now time.Time) *domain.MissionAttempt {
	return &domain.MissionAttempt{
		ID:            uuid.NewString(),
		ParticipantID: p.ParticipantID,
		MissionID:     p.MissionID,
		Outcome:       outcome,
		Score:         score,
		AttemptedAt:   now,
	}
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
