package catalog

import (
	"time"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
)

// File is the on-disk shape of the seed catalog
type File struct {
	Cities        []string                         `yaml:"cities"`
	LeagueRewards map[string][]domain.LeagueReward `yaml:"league_rewards"`
	Missions      []MissionEntry                   `yaml:"missions"`
	Events        []EventEntry                     `yaml:"events"`
	Rewards       []RewardEntry                    `yaml:"rewards"`
	Achievements  []AchievementEntry               `yaml:"achievements"`
}

// MissionEntry is a mission template; Content holds the fields of every
// variant and is narrowed by mission type
type MissionEntry struct {
	ID               string       `yaml:"id"`
	Title            string       `yaml:"title"`
	Description      string       `yaml:"description"`
	Type             string       `yaml:"type"`
	PointsReward     int64        `yaml:"points_reward"`
	CoinsReward      int64        `yaml:"coins_reward"`
	CompetenceArea   string       `yaml:"competence_area"`
	DifficultyLevel  int          `yaml:"difficulty_level"`
	EstimatedMinutes int          `yaml:"estimated_time"`
	EvidenceRequired bool         `yaml:"evidence_required"`
	AutoApprove      bool         `yaml:"auto_approve"`
	Position         int          `yaml:"position"`
	Requirements     []string     `yaml:"requirements"`
	Content          ContentEntry `yaml:"content"`
}

// ContentEntry is the union of every content variant
type ContentEntry struct {
	domain.PassiveContent `yaml:",inline"`
	Questions        []domain.QuizQuestion `yaml:"questions"`
	TemplateSections []string              `yaml:"template_sections"`
	DeadlineHours    int                   `yaml:"deadline_hours"`
}

// EventEntry is an event with its eligibility rules
type EventEntry struct {
	ID          string                   `yaml:"id"`
	Title       string                   `yaml:"title"`
	Description string                   `yaml:"description"`
	Location    string                   `yaml:"location"`
	Organizer   string                   `yaml:"organizer"`
	Date        time.Time                `yaml:"date"`
	Capacity    int                      `yaml:"capacity"`
	Rules       []domain.EligibilityRule `yaml:"rules"`
}

// RewardEntry is a partner benefit
type RewardEntry struct {
	ID             string     `yaml:"id"`
	Title          string     `yaml:"title"`
	Description    string     `yaml:"description"`
	Type           string     `yaml:"type"`
	Partner        string     `yaml:"partner"`
	CoinsCost      int64      `yaml:"coins_cost"`
	Stock          *int       `yaml:"stock"`
	AvailableUntil *time.Time `yaml:"available_until"`
	Instructions   string     `yaml:"instructions"`
	ExternalURL    string     `yaml:"external_url"`
}

// AchievementEntry is a badge definition
type AchievementEntry struct {
	ID               string `yaml:"id"`
	Title            string `yaml:"title"`
	Description      string `yaml:"description"`
	Icon             string `yaml:"icon"`
	MissionsRequired int    `yaml:"missions_required"`
	PointsRequired   int64  `yaml:"points_required"`
}
