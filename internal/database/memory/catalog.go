package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
)

func (s *Store) ListEvents(ctx context.Context) ([]domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Event, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) GetEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.events[eventID]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	c := *e
	c.Rules = append([]domain.EligibilityRule(nil), e.Rules...)
	return &c, nil
}

func (s *Store) UpsertEvent(ctx context.Context, event *domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := *event
	c.Rules = append([]domain.EligibilityRule(nil), event.Rules...)
	s.events[event.ID] = &c
	return nil
}

func (s *Store) CreateDocument(ctx context.Context, document *domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.documents[document.ID]; exists {
		return fmt.Errorf("document %s already exists", document.ID)
	}
	c := *document
	s.documents[document.ID] = &c
	return nil
}

func (s *Store) GetDocument(ctx context.Context, documentID string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.documents[documentID]
	if !ok {
		return nil, domain.ErrDocumentNotFound
	}
	c := *d
	c.ReviewedAt = copyTime(d.ReviewedAt)
	return &c, nil
}

func (s *Store) ListDocuments(ctx context.Context, participantID string) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Document
	for _, d := range s.documents {
		if d.ParticipantID == participantID {
			c := *d
			c.ReviewedAt = copyTime(d.ReviewedAt)
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) UpdateDocumentStatus(ctx context.Context, documentID string, status domain.DocumentStatus, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.documents[documentID]
	if !ok {
		return domain.ErrDocumentNotFound
	}
	c := *d
	c.Status = status
	reviewed := at
	c.ReviewedAt = &reviewed
	s.documents[documentID] = &c
	return nil
}

func (s *Store) ListAchievements(ctx context.Context) ([]domain.Achievement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Achievement, 0, len(s.achievements))
	for _, a := range s.achievements {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MissionsRequired != out[j].MissionsRequired {
			return out[i].MissionsRequired < out[j].MissionsRequired
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) UpsertAchievement(ctx context.Context, achievement *domain.Achievement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := *achievement
	s.achievements[achievement.ID] = &c
	return nil
}
