// Package memory is an in-process implementation of the repositories.
//
// A transaction holds the store's write lock from BeginTx until Commit or
// Rollback, so every compound operation is serialized. Mutations made inside
// a transaction push an undo entry that Rollback replays in reverse.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/repository"
)

type progressKey struct {
	participantID string
	missionID     string
}

// Store holds every aggregate in memory
type Store struct {
	mu sync.RWMutex

	participants map[string]*domain.Participant
	emails       map[string]string

	missions map[string]*domain.Mission
	progress map[progressKey]*domain.MissionProgress
	attempts []domain.MissionAttempt
	evidence map[string]*domain.Evidence

	documents    map[string]*domain.Document
	events       map[string]*domain.Event
	achievements map[string]*domain.Achievement

	rewards     map[string]*domain.Reward
	redemptions map[string]*domain.Redemption

	leagues map[string]*domain.League
	members map[string]map[string]*domain.LeagueMembership
	state   domain.LeagueState
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		participants: make(map[string]*domain.Participant),
		emails:       make(map[string]string),
		missions:     make(map[string]*domain.Mission),
		progress:     make(map[progressKey]*domain.MissionProgress),
		evidence:     make(map[string]*domain.Evidence),
		documents:    make(map[string]*domain.Document),
		events:       make(map[string]*domain.Event),
		achievements: make(map[string]*domain.Achievement),
		rewards:      make(map[string]*domain.Reward),
		redemptions:  make(map[string]*domain.Redemption),
		leagues:      make(map[string]*domain.League),
		members:      make(map[string]map[string]*domain.LeagueMembership),
	}
}

// Participants returns the participant repository view
func (s *Store) Participants() repository.Participant { return participantRepo{s} }

// Missions returns the mission repository view
func (s *Store) Missions() repository.Mission { return missionRepo{s} }

// Rewards returns the rewards repository view
func (s *Store) Rewards() repository.Rewards { return rewardsRepo{s} }

// Leagues returns the league repository view
func (s *Store) Leagues() repository.League { return leagueRepo{s} }

// Events returns the event repository
func (s *Store) Events() repository.Event { return s }

// Documents returns the document repository
func (s *Store) Documents() repository.Document { return s }

// Achievements returns the achievement repository
func (s *Store) Achievements() repository.Achievement { return s }

// Ping always succeeds
func (s *Store) Ping(context.Context) error { return nil }

// tx implements every repository transaction interface over the store
type tx struct {
	s      *Store
	undo   []func()
	closed bool
}

func (s *Store) begin(ctx context.Context) (*tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	return &tx{s: s}, nil
}

func (t *tx) onRollback(fn func()) {
	t.undo = append(t.undo, fn)
}

// Commit keeps the mutations and releases the store
func (t *tx) Commit(ctx context.Context) error {
	if t.closed {
		return domain.ErrTxClosed
	}
	t.closed = true
	t.undo = nil
	t.s.mu.Unlock()
	return nil
}

// Rollback reverts the mutations and releases the store
func (t *tx) Rollback(ctx context.Context) error {
	if t.closed {
		return domain.ErrTxClosed
	}
	t.closed = true
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
	t.s.mu.Unlock()
	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func copyInt64(v *int64) *int64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneParticipant(p *domain.Participant) *domain.Participant {
	c := *p
	c.LastActivityOn = copyTime(p.LastActivityOn)
	return &c
}

func cloneProgress(p *domain.MissionProgress) *domain.MissionProgress {
	c := *p
	c.LastAttemptAt = copyTime(p.LastAttemptAt)
	c.CooldownUntil = copyTime(p.CooldownUntil)
	c.CompletedAt = copyTime(p.CompletedAt)
	if p.LastResult != nil {
		r := *p.LastResult
		c.LastResult = &r
	}
	return &c
}

func cloneEvidence(e *domain.Evidence) *domain.Evidence {
	c := *e
	c.ReviewedAt = copyTime(e.ReviewedAt)
	return &c
}

func cloneReward(r *domain.Reward) *domain.Reward {
	c := *r
	c.AvailableUntil = copyTime(r.AvailableUntil)
	return &c
}

func cloneRedemption(r *domain.Redemption) *domain.Redemption {
	c := *r
	c.UsedAt = copyTime(r.UsedAt)
	return &c
}

func cloneLeague(l *domain.League) *domain.League {
	c := *l
	c.Rewards = append([]domain.LeagueReward(nil), l.Rewards...)
	return &c
}

func cloneMembership(m *domain.LeagueMembership) *domain.LeagueMembership {
	c := *m
	c.FinalXP = copyInt64(m.FinalXP)
	c.FinalPosition = copyInt(m.FinalPosition)
	return &c
}
