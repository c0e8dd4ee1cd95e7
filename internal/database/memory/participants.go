package memory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/repository"
)

type participantRepo struct{ *Store }

func (s *Store) CreateParticipant(ctx context.Context, p *domain.Participant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(p.Email)
	if _, taken := s.emails[email]; taken && email != "" {
		return domain.ErrDuplicateEmail
	}
	if _, exists := s.participants[p.ID]; exists {
		return fmt.Errorf("participant %s already exists", p.ID)
	}
	s.participants[p.ID] = cloneParticipant(p)
	if email != "" {
		s.emails[email] = p.ID
	}
	return nil
}

func (s *Store) GetParticipant(ctx context.Context, participantID string) (*domain.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.participants[participantID]
	if !ok {
		return nil, domain.ErrParticipantNotFound
	}
	return cloneParticipant(p), nil
}

func (s *Store) GetActivityCounts(ctx context.Context, participantID string) (domain.ActivityCounts, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var counts domain.ActivityCounts
	for key, p := range s.progress {
		if key.participantID != participantID {
			continue
		}
		if p.Status == domain.MissionStatusCompleted {
			counts.Completed++
		}
		if p.Attempts > 0 {
			counts.Attempted++
		}
	}
	return counts, nil
}

func (r participantRepo) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	t, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (t *tx) LockCycle(ctx context.Context, exclusive bool) (string, error) {
	// the transaction already holds the store exclusively
	return t.s.state.CurrentCycle, nil
}

func (t *tx) GetParticipantForUpdate(ctx context.Context, participantID string) (*domain.Participant, error) {
	p, ok := t.s.participants[participantID]
	if !ok {
		return nil, domain.ErrParticipantNotFound
	}
	return cloneParticipant(p), nil
}

func (t *tx) ApplyCredit(ctx context.Context, participantID string, credit domain.Credit, cycle string, streak domain.StreakUpdate, rank domain.Rank) (*domain.Participant, error) {
	p, ok := t.s.participants[participantID]
	if !ok {
		return nil, domain.ErrParticipantNotFound
	}
	prev := cloneParticipant(p)
	t.onRollback(func() { t.s.participants[participantID] = prev })

	next := cloneParticipant(p)
	next.Points += credit.Points
	next.Coins += credit.Coins
	if next.XPCycle == cycle {
		next.WeeklyXP += credit.XP
	} else {
		next.WeeklyXP = credit.XP
	}
	next.XPCycle = cycle
	next.CurrentStreak = streak.Current
	next.BestStreak = streak.Best
	if !streak.Day.IsZero() {
		day := streak.Day
		next.LastActivityOn = &day
	}
	next.Rank = rank
	next.UpdatedAt = time.Now().UTC()

	t.s.participants[participantID] = next
	return cloneParticipant(next), nil
}
