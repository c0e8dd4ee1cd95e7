package bootstrap

import (
	"fmt"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/achievement"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/catalog"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/clock"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/config"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/eligibility"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/event"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/league"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/ledger"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/mission"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/rewards"
)

// Services holds every engine the HTTP layer and the workers call into
type Services struct {
	Participants ledger.Service
	Missions     mission.Service
	Eligibility  eligibility.Service
	Rewards      rewards.Service
	Leagues      league.Service
	Achievements achievement.Service
}

// InitializeServices wires the engines over the repositories. Every engine
// publishes through bus and reads time from clk.
func InitializeServices(cfg *config.Config, repos *Repositories, cat *catalog.Catalog, bus event.Bus, clk clock.Clock) (*Services, error) {
	b := repos.Backend

	participants := ledger.NewService(b.Participants(), b.Achievements(), bus, clk)

	leagues, err := league.NewService(b.Leagues(), participants, bus, clk, league.Config{
		Cities:  leagueCities(cfg.Cities, cat.Cities),
		Rewards: cat.LeagueRewards,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateLeagues, err)
	}

	return &Services{
		Participants: participants,
		Missions:     mission.NewService(b.Missions(), participants, repos.Blobs, bus, clk, cfg.MaxUploadBytes),
		Eligibility:  eligibility.NewService(newEligibilityRepo(b), b.Missions(), participants, repos.Blobs, bus, clk, cfg.MaxUploadBytes),
		Rewards:      rewards.NewService(b.Rewards(), bus, clk),
		Leagues:      leagues,
		Achievements: achievement.NewService(b.Achievements(), b.Participants()),
	}, nil
}

// leagueCities merges configured and catalog cities, first spelling wins
func leagueCities(configured, fromCatalog []string) []string {
	var out []string
	add := func(city string) {
		for _, c := range out {
			if league.SameCity(c, city) {
				return
			}
		}
		out = append(out, city)
	}
	for _, c := range configured {
		add(c)
	}
	for _, c := range fromCatalog {
		add(c)
	}
	return out
}
