package memory

import (
	"context"
	"sort"
	"time"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/repository"
)

type leagueRepo struct{ *Store }

func leagueTypeOrder(t domain.LeagueType) int {
	for i, lt := range domain.LeagueTypes {
		if lt == t {
			return i
		}
	}
	return len(domain.LeagueTypes)
}

func sortLeagues(out []domain.League) {
	sort.Slice(out, func(i, j int) bool {
		if out[i].CycleID != out[j].CycleID {
			return out[i].CycleID > out[j].CycleID
		}
		if out[i].City != out[j].City {
			return out[i].City < out[j].City
		}
		return leagueTypeOrder(out[i].Type) < leagueTypeOrder(out[j].Type)
	})
}

func (s *Store) GetLeague(ctx context.Context, leagueID string) (*domain.League, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.leagues[leagueID]
	if !ok {
		return nil, domain.ErrLeagueNotFound
	}
	return cloneLeague(l), nil
}

func (s *Store) ListLeagues(ctx context.Context, status domain.LeagueStatus) ([]domain.League, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.League
	for _, l := range s.leagues {
		if status == "" || l.Status == status {
			out = append(out, *cloneLeague(l))
		}
	}
	sortLeagues(out)
	return out, nil
}

func (s *Store) AddMember(ctx context.Context, leagueID, participantID string, at time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.leagues[leagueID]
	if !ok {
		return false, domain.ErrLeagueNotFound
	}
	if l.Status != domain.LeagueActive {
		return false, domain.ErrLeagueClosed
	}
	if _, ok := s.participants[participantID]; !ok {
		return false, domain.ErrParticipantNotFound
	}
	members := s.members[leagueID]
	if members == nil {
		members = make(map[string]*domain.LeagueMembership)
		s.members[leagueID] = members
	}
	if _, exists := members[participantID]; exists {
		return false, nil
	}
	members[participantID] = &domain.LeagueMembership{LeagueID: leagueID, ParticipantID: participantID, JoinedAt: at}
	return true, nil
}

func (s *Store) IsMember(ctx context.Context, leagueID, participantID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.members[leagueID][participantID]
	return ok, nil
}

func (s *Store) ListStandings(ctx context.Context, leagueID string) ([]domain.Standing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.standings(leagueID)
}

func (s *Store) GetState(ctx context.Context) (*domain.LeagueState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := s.state
	st.RolledOverAt = copyTime(s.state.RolledOverAt)
	return &st, nil
}

// standings must be called with the store lock held
func (s *Store) standings(leagueID string) ([]domain.Standing, error) {
	l, ok := s.leagues[leagueID]
	if !ok {
		return nil, domain.ErrLeagueNotFound
	}
	out := make([]domain.Standing, 0, len(s.members[leagueID]))
	for pid, m := range s.members[leagueID] {
		row := domain.Standing{ParticipantID: pid}
		if p, ok := s.participants[pid]; ok {
			row.Name = p.Name
			row.CurrentStreak = p.CurrentStreak
			if l.Status == domain.LeagueActive && p.XPCycle == l.CycleID {
				row.WeeklyXP = p.WeeklyXP
			}
		}
		if l.Status == domain.LeagueClosed && m.FinalXP != nil {
			row.WeeklyXP = *m.FinalXP
		}
		out = append(out, row)
	}
	return out, nil
}

func (r leagueRepo) BeginTx(ctx context.Context) (repository.LeagueTx, error) {
	t, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (t *tx) ListLeaguesByCycle(ctx context.Context, cycleID string) ([]domain.League, error) {
	var out []domain.League
	for _, l := range t.s.leagues {
		if l.CycleID == cycleID {
			out = append(out, *cloneLeague(l))
		}
	}
	sortLeagues(out)
	return out, nil
}

func (t *tx) ListStandings(ctx context.Context, leagueID string) ([]domain.Standing, error) {
	return t.s.standings(leagueID)
}

func (t *tx) FinalizeMembership(ctx context.Context, leagueID, participantID string, finalXP int64, position int) error {
	m, ok := t.s.members[leagueID][participantID]
	if !ok {
		return domain.ErrNotFound
	}
	prev := cloneMembership(m)
	t.onRollback(func() { t.s.members[leagueID][participantID] = prev })

	next := cloneMembership(m)
	next.FinalXP = &finalXP
	next.FinalPosition = &position
	t.s.members[leagueID][participantID] = next
	return nil
}

func (t *tx) CloseLeague(ctx context.Context, leagueID string) error {
	l, ok := t.s.leagues[leagueID]
	if !ok {
		return domain.ErrLeagueNotFound
	}
	prev := cloneLeague(l)
	t.onRollback(func() { t.s.leagues[leagueID] = prev })

	next := cloneLeague(l)
	next.Status = domain.LeagueClosed
	t.s.leagues[leagueID] = next
	return nil
}

// ResetWeeklyXP zeroes weekly XP earned in any cycle other than cycleID
func (t *tx) ResetWeeklyXP(ctx context.Context, cycleID string) (int64, error) {
	var n int64
	for id, p := range t.s.participants {
		if p.XPCycle == cycleID {
			continue
		}
		prev := cloneParticipant(p)
		pid := id
		t.onRollback(func() { t.s.participants[pid] = prev })

		next := cloneParticipant(p)
		next.WeeklyXP = 0
		next.XPCycle = cycleID
		t.s.participants[pid] = next
		n++
	}
	return n, nil
}

func (t *tx) CreateLeague(ctx context.Context, league *domain.League) error {
	if _, exists := t.s.leagues[league.ID]; exists {
		return nil
	}
	id := league.ID
	t.onRollback(func() { delete(t.s.leagues, id) })
	t.s.leagues[id] = cloneLeague(league)
	return nil
}

func (t *tx) SetCycle(ctx context.Context, cycleID string, at time.Time) error {
	prev := t.s.state
	t.onRollback(func() { t.s.state = prev })

	rolled := at
	t.s.state = domain.LeagueState{CurrentCycle: cycleID, RolledOverAt: &rolled}
	return nil
}
