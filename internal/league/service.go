package league

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gosimple/slug"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/clock"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/event"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/ledger"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/logger"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/metrics"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/repository"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/telemetry"
)

// Config lists the cities that get a league of every type each cycle and
// the position rewards stamped onto new leagues
type Config struct {
	Cities  []string
	Rewards map[domain.LeagueType][]domain.LeagueReward
}

// Service defines the league ranking operations
type Service interface {
	Current(ctx context.Context) ([]domain.League, error)
	Join(ctx context.Context, participantID, leagueID string) (*domain.JoinResult, error)
	Leaderboard(ctx context.Context, leagueID string) ([]domain.Standing, error)
	Rollover(ctx context.Context, now time.Time) (*domain.RolloverResult, error)
}

type service struct {
	repo         Repository
	participants Participants
	bus          event.Bus
	clock        clock.Clock
	cfg          Config
}

// NewService creates a new league service
func NewService(repo Repository, participants Participants, bus event.Bus, clk clock.Clock, cfg Config) (Service, error) {
	if len(cfg.Cities) == 0 {
		return nil, errors.New(ErrMsgNoCities)
	}
	return &service{
		repo:         repo,
		participants: participants,
		bus:          bus,
		clock:        clk,
		cfg:          cfg,
	}, nil
}

func (s *service) Current(ctx context.Context) ([]domain.League, error) {
	return s.repo.ListLeagues(ctx, domain.LeagueActive)
}

// Join adds the participant to an active league of their city. Joining twice
// is not an error; the result reports Joined=false.
func (s *service) Join(ctx context.Context, participantID, leagueID string) (*domain.JoinResult, error) {
	league, err := s.repo.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	state, err := s.repo.GetState(ctx)
	if err != nil {
		return nil, err
	}
	if league.Status != domain.LeagueActive || league.CycleID != state.CurrentCycle {
		return nil, fmt.Errorf("%w: %s belongs to cycle %s", domain.ErrLeagueClosed, league.ID, league.CycleID)
	}

	p, err := s.participants.Get(ctx, participantID)
	if err != nil {
		return nil, err
	}
	if !SameCity(p.City, league.City) {
		return nil, fmt.Errorf("%w: participant city %q, league city %q", domain.ErrScopeMismatch, p.City, league.City)
	}

	joined, err := s.repo.AddMember(ctx, leagueID, participantID, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if joined {
		logger.FromContext(ctx).Info(LogMsgJoined, "participant_id", participantID, "league_id", leagueID)
		s.publish(ctx, event.NewLeagueJoinedEvent(leagueID, participantID))
	}
	return &domain.JoinResult{LeagueID: leagueID, Joined: joined}, nil
}

func (s *service) Leaderboard(ctx context.Context, leagueID string) ([]domain.Standing, error) {
	league, err := s.repo.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ListStandings(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	metrics.LeaderboardSize.WithLabelValues(league.Slug).Set(float64(len(rows)))
	return Rank(rows), nil
}

// Rollover closes the leagues of the previous cycle and opens the cycle that
// contains now. Running it again inside the same cycle changes nothing.
func (s *service) Rollover(ctx context.Context, now time.Time) (res *domain.RolloverResult, err error) {
	ctx, span := telemetry.StartSpan(ctx, "league.Rollover")
	defer func() { telemetry.End(span, err) }()

	log := logger.FromContext(ctx)
	now = now.UTC()
	target := domain.CycleID(now)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	previous, err := tx.LockCycle(ctx, true)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLockCycle, err)
	}
	res = &domain.RolloverResult{PreviousCycle: previous, CurrentCycle: target}
	if previous == target {
		log.Debug(LogMsgRolloverSkipped, "cycle", target)
		return res, nil
	}

	if previous != "" {
		if err := s.closeCycle(ctx, tx, previous, now, res); err != nil {
			return nil, err
		}
	}

	if res.ParticipantsReset, err = tx.ResetWeeklyXP(ctx, target); err != nil {
		return nil, fmt.Errorf(ErrMsgResetXP, err)
	}

	start, end := domain.CycleBounds(now)
	for _, city := range s.cfg.Cities {
		for _, lt := range domain.LeagueTypes {
			l := s.newLeague(lt, city, target, start, end)
			if err := tx.CreateLeague(ctx, l); err != nil {
				return nil, fmt.Errorf(ErrMsgCreateLeague, l.ID, err)
			}
			res.LeaguesCreated++
		}
	}

	if err := tx.SetCycle(ctx, target, now); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTxFailed, err)
	}
	res.Performed = true

	metrics.LeagueRollovers.Inc()
	log.Info(LogMsgRolloverDone,
		"previous_cycle", previous,
		"cycle", target,
		"closed", res.LeaguesClosed,
		"created", res.LeaguesCreated,
		"rewards_paid", res.RewardsPaid)
	s.publish(ctx, event.NewLeagueRolledOverEvent(event.LeagueRolledOverPayloadV1{
		PreviousCycle:     res.PreviousCycle,
		CurrentCycle:      res.CurrentCycle,
		LeaguesClosed:     res.LeaguesClosed,
		LeaguesCreated:    res.LeaguesCreated,
		ParticipantsReset: res.ParticipantsReset,
		RewardsPaid:       res.RewardsPaid,
	}))
	return res, nil
}

// closeCycle snapshots standings, pays position rewards and closes every
// league of cycle inside tx
func (s *service) closeCycle(ctx context.Context, tx repository.LeagueTx, cycle string, now time.Time, res *domain.RolloverResult) error {
	leagues, err := tx.ListLeaguesByCycle(ctx, cycle)
	if err != nil {
		return err
	}
	for _, l := range leagues {
		if l.Status != domain.LeagueActive {
			continue
		}
		rows, err := tx.ListStandings(ctx, l.ID)
		if err != nil {
			return err
		}
		for _, row := range Rank(rows) {
			if err := tx.FinalizeMembership(ctx, l.ID, row.ParticipantID, row.WeeklyXP, row.Position); err != nil {
				return err
			}
			// members without XP this cycle are ranked but not paid
			coins := rewardFor(l.Rewards, row.Position)
			if coins <= 0 || row.WeeklyXP <= 0 {
				continue
			}
			if _, err := ledger.ApplyBonus(ctx, tx, row.ParticipantID, domain.Credit{Coins: coins}, now); err != nil {
				return fmt.Errorf(ErrMsgPayReward, row.ParticipantID, err)
			}
			res.RewardsPaid++
			logger.FromContext(ctx).Info(LogMsgRewardPaid, "league_id", l.ID, "participant_id", row.ParticipantID, "position", row.Position, "coins", coins)
		}
		if err := tx.CloseLeague(ctx, l.ID); err != nil {
			return fmt.Errorf(ErrMsgCloseLeague, l.ID, err)
		}
		res.LeaguesClosed++
	}
	return nil
}

func (s *service) newLeague(lt domain.LeagueType, city, cycle string, start, end time.Time) *domain.League {
	id := slug.Make(fmt.Sprintf("%s %s %s", lt, city, cycle))
	return &domain.League{
		ID:       id,
		Slug:     id,
		Type:     lt,
		City:     city,
		CycleID:  cycle,
		StartsAt: start,
		EndsAt:   end,
		Status:   domain.LeagueActive,
		Rewards:  append([]domain.LeagueReward(nil), s.cfg.Rewards[lt]...),
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
