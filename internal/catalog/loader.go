package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/validation"
)

//go:embed schema.json
var schemaJSON []byte

var schema = validation.MustCompile("catalog.schema.json", schemaJSON)

// Catalog is the validated seed data converted to domain types
type Catalog struct {
	Cities        []string
	LeagueRewards map[domain.LeagueType][]domain.LeagueReward
	Missions      []domain.Mission
	Events        []domain.Event
	Rewards       []domain.Reward
	Achievements  []domain.Achievement
}

// Load reads and validates the catalog file at path
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data)
}

// Parse checks a catalog document against the embedded schema and decodes it
func Parse(data []byte) (*Catalog, error) {
	if err := schema.ValidateYAML(data); err != nil {
		return nil, err
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return f.convert()
}

func (f *File) convert() (*Catalog, error) {
	c := &Catalog{LeagueRewards: make(map[domain.LeagueType][]domain.LeagueReward)}

	for _, city := range f.Cities {
		if city = strings.TrimSpace(city); city != "" {
			c.Cities = append(c.Cities, city)
		}
	}
	for name, rewards := range f.LeagueRewards {
		lt := domain.LeagueType(strings.ToLower(name))
		if !knownLeagueType(lt) {
			return nil, fmt.Errorf("league_rewards: unknown league type %q", name)
		}
		c.LeagueRewards[lt] = rewards
	}

	ids := make(map[string]bool, len(f.Missions))
	for i, m := range f.Missions {
		if m.ID == "" || m.Title == "" {
			return nil, fmt.Errorf("missions[%d]: id and title are required", i)
		}
		if ids[m.ID] {
			return nil, fmt.Errorf("missions[%d]: duplicate id %q", i, m.ID)
		}
		ids[m.ID] = true
		c.Missions = append(c.Missions, m.toDomain())
	}
	for _, m := range c.Missions {
		for _, req := range m.Requirements {
			if !ids[req] {
				return nil, fmt.Errorf("mission %s requires unknown mission %q", m.ID, req)
			}
		}
		if q, ok := m.Content.(domain.QuizContent); ok && len(q.Questions) == 0 {
			return nil, fmt.Errorf("mission %s: quiz has no questions", m.ID)
		}
	}

	for i, e := range f.Events {
		if e.ID == "" {
			return nil, fmt.Errorf("events[%d]: id is required", i)
		}
		c.Events = append(c.Events, domain.Event{
			ID:          e.ID,
			Title:       e.Title,
			Description: e.Description,
			Location:    e.Location,
			Organizer:   e.Organizer,
			Date:        e.Date.UTC(),
			Capacity:    e.Capacity,
			Rules:       e.Rules,
		})
	}

	for i, r := range f.Rewards {
		if r.ID == "" || r.CoinsCost < 0 {
			return nil, fmt.Errorf("rewards[%d]: id and a non-negative coins_cost are required", i)
		}
		stock := domain.UnlimitedStock
		if r.Stock != nil {
			stock = *r.Stock
		}
		c.Rewards = append(c.Rewards, domain.Reward{
			ID:             r.ID,
			Title:          r.Title,
			Description:    r.Description,
			Type:           r.Type,
			Partner:        r.Partner,
			CoinsCost:      r.CoinsCost,
			Stock:          stock,
			AvailableUntil: r.AvailableUntil,
			Instructions:   r.Instructions,
			ExternalURL:    r.ExternalURL,
		})
	}

	for _, a := range f.Achievements {
		c.Achievements = append(c.Achievements, domain.Achievement{
			ID:               a.ID,
			Title:            a.Title,
			Description:      a.Description,
			Icon:             a.Icon,
			MissionsRequired: a.MissionsRequired,
			PointsRequired:   a.PointsRequired,
		})
	}
	return c, nil
}

func (m MissionEntry) toDomain() domain.Mission {
	t := domain.MissionType(m.Type)
	out := domain.Mission{
		ID:               m.ID,
		Title:            m.Title,
		Description:      m.Description,
		Type:             t,
		PointsReward:     m.PointsReward,
		CoinsReward:      m.CoinsReward,
		CompetenceArea:   m.CompetenceArea,
		DifficultyLevel:  m.DifficultyLevel,
		EstimatedMinutes: m.EstimatedMinutes,
		EvidenceRequired: m.EvidenceRequired,
		AutoApprove:      m.AutoApprove,
		Position:         m.Position,
		Requirements:     m.Requirements,
	}
	switch domain.ContentKindFor(t, m.EvidenceRequired) {
	case domain.ContentKindQuiz:
		out.Content = domain.QuizContent{Questions: m.Content.Questions}
	case domain.ContentKindEvidence:
		out.Content = domain.EvidenceContent{
			Instructions:     m.Content.Instructions,
			TemplateSections: m.Content.TemplateSections,
			DeadlineHours:    m.Content.DeadlineHours,
		}
	default:
		out.Content = m.Content.PassiveContent
	}
	return out
}

func knownLeagueType(lt domain.LeagueType) bool {
	for _, t := range domain.LeagueTypes {
		if t == lt {
			return true
		}
	}
	return false
}
