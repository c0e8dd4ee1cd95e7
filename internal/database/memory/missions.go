package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/repository"
)

type missionRepo struct{ *Store }

func (s *Store) ListMissions(ctx context.Context) ([]domain.Mission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Mission, 0, len(s.missions))
	for _, m := range s.missions {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) GetMission(ctx context.Context, missionID string) (*domain.Mission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.missions[missionID]
	if !ok {
		return nil, domain.ErrMissionNotFound
	}
	c := *m
	return &c, nil
}

func (s *Store) UpsertMission(ctx context.Context, mission *domain.Mission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := *mission
	c.Requirements = append([]string(nil), mission.Requirements...)
	s.missions[mission.ID] = &c
	return nil
}

func (s *Store) EnsureProgress(ctx context.Context, participantID, missionID string, now time.Time) (*domain.MissionProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.participants[participantID]; !ok {
		return nil, domain.ErrParticipantNotFound
	}
	if _, ok := s.missions[missionID]; !ok {
		return nil, domain.ErrMissionNotFound
	}
	key := progressKey{participantID, missionID}
	p, ok := s.progress[key]
	if !ok {
		p = domain.NewProgress(participantID, missionID, now)
		s.progress[key] = p
	}
	return cloneProgress(p), nil
}

func (s *Store) ListProgress(ctx context.Context, participantID string) ([]domain.MissionProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.MissionProgress
	for key, p := range s.progress {
		if key.participantID == participantID {
			out = append(out, *cloneProgress(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MissionID < out[j].MissionID })
	return out, nil
}

func (s *Store) ListAttempts(ctx context.Context, participantID, missionID string) ([]domain.MissionAttempt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.MissionAttempt
	for i := len(s.attempts) - 1; i >= 0; i-- {
		a := s.attempts[i]
		if a.ParticipantID == participantID && a.MissionID == missionID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].AttemptedAt.After(out[j].AttemptedAt) })
	return out, nil
}

func (s *Store) CreateEvidence(ctx context.Context, evidence *domain.Evidence) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.evidence[evidence.ID]; exists {
		return fmt.Errorf("evidence %s already exists", evidence.ID)
	}
	s.evidence[evidence.ID] = cloneEvidence(evidence)
	return nil
}

func (s *Store) GetEvidence(ctx context.Context, evidenceID string) (*domain.Evidence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.evidence[evidenceID]
	if !ok {
		return nil, domain.ErrEvidenceNotFound
	}
	return cloneEvidence(e), nil
}

func (s *Store) ListEvidence(ctx context.Context, participantID string) ([]domain.Evidence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Evidence
	for _, e := range s.evidence {
		if e.ParticipantID == participantID {
			out = append(out, *cloneEvidence(e))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r missionRepo) BeginTx(ctx context.Context) (repository.MissionTx, error) {
	t, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (t *tx) GetProgressForUpdate(ctx context.Context, participantID, missionID string) (*domain.MissionProgress, error) {
	p, ok := t.s.progress[progressKey{participantID, missionID}]
	if !ok {
		return nil, fmt.Errorf("%w: progress %s/%s", domain.ErrNotFound, participantID, missionID)
	}
	return cloneProgress(p), nil
}

func (t *tx) CompareAndSwapProgress(ctx context.Context, expected domain.MissionStatus, progress *domain.MissionProgress, now time.Time) (bool, error) {
	key := progressKey{progress.ParticipantID, progress.MissionID}
	current, ok := t.s.progress[key]
	if !ok || current.Status != expected || current.CooldownActiveAt(now) {
		return false, nil
	}
	t.onRollback(func() { t.s.progress[key] = current })

	next := cloneProgress(progress)
	next.UpdatedAt = now
	t.s.progress[key] = next
	return true, nil
}

func (t *tx) RecordAttempt(ctx context.Context, attempt *domain.MissionAttempt) error {
	n := len(t.s.attempts)
	t.onRollback(func() { t.s.attempts = t.s.attempts[:n] })
	t.s.attempts = append(t.s.attempts, *attempt)
	return nil
}

func (t *tx) GetEvidenceForUpdate(ctx context.Context, evidenceID string) (*domain.Evidence, error) {
	e, ok := t.s.evidence[evidenceID]
	if !ok {
		return nil, domain.ErrEvidenceNotFound
	}
	return cloneEvidence(e), nil
}

func (t *tx) UpdateEvidenceStatus(ctx context.Context, evidenceID string, from, to domain.EvidenceStatus, notes string, at time.Time) (bool, error) {
	current, ok := t.s.evidence[evidenceID]
	if !ok {
		return false, domain.ErrEvidenceNotFound
	}
	if current.Status != from {
		return false, nil
	}
	t.onRollback(func() { t.s.evidence[evidenceID] = current })

	next := cloneEvidence(current)
	next.Status = to
	next.ReviewNotes = notes
	reviewed := at
	next.ReviewedAt = &reviewed
	t.s.evidence[evidenceID] = next
	return true, nil
}
