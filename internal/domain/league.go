package domain

import (
	"fmt"
	"time"
)

// LeagueType is the tier of a league
type LeagueType string

const (
	LeagueBronze  LeagueType = "bronze"
	LeagueSilver  LeagueType = "silver"
	LeagueGold    LeagueType = "gold"
	LeagueDiamond LeagueType = "diamond"
)

// LeagueTypes lists every tier in ascending order
var LeagueTypes = []LeagueType{LeagueBronze, LeagueSilver, LeagueGold, LeagueDiamond}

// LeagueStatus tells whether a league is in its running cycle
type LeagueStatus string

const (
	LeagueActive LeagueStatus = "active"
	LeagueClosed LeagueStatus = "closed"
)

// LeagueReward pays coins to a final position
type LeagueReward struct {
	Position int   `json:"position" yaml:"position"`
	Coins    int64 `json:"coins" yaml:"coins"`
}

// League is one tier in one city for one weekly cycle
type League struct {
	ID       string         `json:"id"`
	Slug     string         `json:"slug"`
	Type     LeagueType     `json:"type"`
	City     string         `json:"city"`
	CycleID  string         `json:"cycle_id"`
	StartsAt time.Time      `json:"starts_at"`
	EndsAt   time.Time      `json:"ends_at"`
	Status   LeagueStatus   `json:"status"`
	Rewards  []LeagueReward `json:"rewards"`
}

// LeagueMembership records a participant joining a league
type LeagueMembership struct {
	LeagueID      string    `json:"league_id"`
	ParticipantID string    `json:"participant_id"`
	JoinedAt      time.Time `json:"joined_at"`
	FinalXP       *int64    `json:"final_xp,omitempty"`
	FinalPosition *int      `json:"final_position,omitempty"`
}

// Standing is one leaderboard row
type Standing struct {
	ParticipantID string `json:"participant_id"`
	Name          string `json:"name"`
	WeeklyXP      int64  `json:"weekly_xp"`
	CurrentStreak int    `json:"current_streak"`
	Position      int    `json:"position"`
}

// LeagueState is the singleton guarding cycle rollover
type LeagueState struct {
	CurrentCycle string     `json:"current_cycle"`
	RolledOverAt *time.Time `json:"rolled_over_at,omitempty"`
}

// RolloverResult summarizes one rollover invocation
type RolloverResult struct {
	Performed         bool   `json:"performed"`
	PreviousCycle     string `json:"previous_cycle"`
	CurrentCycle      string `json:"current_cycle"`
	LeaguesClosed     int    `json:"leagues_closed"`
	LeaguesCreated    int    `json:"leagues_created"`
	ParticipantsReset int64  `json:"participants_reset"`
	RewardsPaid       int    `json:"rewards_paid"`
}

// JoinResult reports whether a join changed membership
type JoinResult struct {
	LeagueID string `json:"league_id"`
	Joined   bool   `json:"joined"`
}

// CycleID returns the ISO week identifier of t, e.g. 2026-W42
func CycleID(t time.Time) string {
	year, week := t.UTC().ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// CycleBounds returns Monday 00:00 UTC of t's ISO week and the following Monday
func CycleBounds(t time.Time) (time.Time, time.Time) {
	day := TruncateDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	start := day.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 7)
}
