package league

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
)

func TestRank_TieBreakByParticipantID(t *testing.T) {
	rows := []domain.Standing{
		{ParticipantID: "p-c", WeeklyXP: 40},
		{ParticipantID: "p-b", WeeklyXP: 90},
		{ParticipantID: "p-d", WeeklyXP: 40},
		{ParticipantID: "p-a", WeeklyXP: 40},
		{ParticipantID: "p-e", WeeklyXP: 0},
	}

	ranked := Rank(rows)

	var order []string
	for i, r := range ranked {
		order = append(order, r.ParticipantID)
		assert.Equal(t, i+1, r.Position)
	}
	assert.Equal(t, []string{"p-b", "p-a", "p-c", "p-d", "p-e"}, order)
}

func TestRank_StableAcrossInputOrder(t *testing.T) {
	a := []domain.Standing{{ParticipantID: "x", WeeklyXP: 5}, {ParticipantID: "w", WeeklyXP: 5}, {ParticipantID: "y", WeeklyXP: 7}}
	b := []domain.Standing{{ParticipantID: "w", WeeklyXP: 5}, {ParticipantID: "y", WeeklyXP: 7}, {ParticipantID: "x", WeeklyXP: 5}}
	assert.Equal(t, Rank(a), Rank(b))
}

func TestSameCity(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"Guayaquil", "guayaquil", true},
		{" GUAYAQUIL ", "Guayaquil", true},
		{"Quito", "Guayaquil", false},
		{"Durán", "DURÁN", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SameCity(tt.a, tt.b), "%q vs %q", tt.a, tt.b)
	}
}

func TestRewardFor(t *testing.T) {
	rewards := []domain.LeagueReward{{Position: 1, Coins: 100}, {Position: 2, Coins: 50}}
	assert.Equal(t, int64(100), rewardFor(rewards, 1))
	assert.Equal(t, int64(50), rewardFor(rewards, 2))
	assert.Zero(t, rewardFor(rewards, 3))
}
