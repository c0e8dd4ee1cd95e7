package domain

import "time"

// Rank is a participant title derived from lifetime points
type Rank string

const (
	RankNovice Rank = "novice"
	RankJunior Rank = "junior"
	RankSenior Rank = "senior"
	RankExpert Rank = "expert"
	RankMaster Rank = "master"
)

// Rank thresholds in lifetime points
const (
	RankJuniorPoints = 100
	RankSeniorPoints = 250
	RankExpertPoints = 500
	RankMasterPoints = 1000
)

// RankForPoints returns the rank earned by a lifetime points total
func RankForPoints(points int64) Rank {
	switch {
	case points >= RankMasterPoints:
		return RankMaster
	case points >= RankExpertPoints:
		return RankExpert
	case points >= RankSeniorPoints:
		return RankSenior
	case points >= RankJuniorPoints:
		return RankJunior
	default:
		return RankNovice
	}
}

// Participant is an entrepreneur enrolled in the program.
// Balances and streaks are mutated only through ledger operations.
type Participant struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	City           string     `json:"city"`
	Cohort         string     `json:"cohort"`
	Points         int64      `json:"points"`
	Coins          int64      `json:"coins"`
	CurrentStreak  int        `json:"current_streak"`
	BestStreak     int        `json:"best_streak"`
	WeeklyXP       int64      `json:"weekly_xp"`
	XPCycle        string     `json:"xp_cycle"`
	Rank           Rank       `json:"rank"`
	LastActivityOn *time.Time `json:"last_activity_on,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Credit is an atomic increment applied to a participant's balances
type Credit struct {
	Points int64
	Coins  int64
	XP     int64
}

// IsZero reports whether the credit changes nothing
func (c Credit) IsZero() bool {
	return c.Points == 0 && c.Coins == 0 && c.XP == 0
}

// StreakUpdate is the outcome of registering activity on a given day
type StreakUpdate struct {
	Current int
	Best    int
	Day     time.Time
}

// NextStreak computes the streak after activity on day now.
// Activity on the same UTC day leaves the streak unchanged, activity on the
// following day extends it, any longer gap restarts it at 1.
func NextStreak(p *Participant, now time.Time) StreakUpdate {
	today := TruncateDay(now)
	current := 1
	if p.LastActivityOn != nil {
		last := TruncateDay(*p.LastActivityOn)
		switch {
		case last.Equal(today):
			current = p.CurrentStreak
			if current == 0 {
				current = 1
			}
		case last.AddDate(0, 0, 1).Equal(today):
			current = p.CurrentStreak + 1
		}
	}
	best := p.BestStreak
	if current > best {
		best = current
	}
	return StreakUpdate{Current: current, Best: best, Day: today}
}

// TruncateDay returns midnight UTC of t's day
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParticipantStats summarizes a participant's activity
type ParticipantStats struct {
	ParticipantID      string     `json:"participant_id"`
	TotalPoints        int64      `json:"total_points"`
	Coins              int64      `json:"coins"`
	MissionsCompleted  int        `json:"missions_completed"`
	MissionsAttempted  int        `json:"missions_attempted"`
	CompletionRate     float64    `json:"completion_rate"`
	CurrentStreak      int        `json:"current_streak"`
	BestStreak         int        `json:"best_streak"`
	Rank               Rank       `json:"rank"`
	WeeklyXP           int64      `json:"weekly_xp"`
	AchievementsEarned int        `json:"achievements_earned"`
	LastActivity       *time.Time `json:"last_activity,omitempty"`
}

// ActivityCounts are the mission counters behind participant stats
type ActivityCounts struct {
	Completed int
	Attempted int
}
