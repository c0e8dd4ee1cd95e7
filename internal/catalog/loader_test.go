package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/database/memory"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
)

func TestLoad_ShippedCatalog(t *testing.T) {
	c, err := Load("../../configs/catalog.yaml")
	require.NoError(t, err)

	assert.Equal(t, []string{"Guayaquil"}, c.Cities)
	assert.Len(t, c.LeagueRewards, len(domain.LeagueTypes))
	assert.Len(t, c.Missions, 5)
	assert.Len(t, c.Achievements, 3)
	assert.Len(t, c.Rewards, 3)
	assert.Len(t, c.Events, 2)

	quiz := c.Missions[1]
	require.IsType(t, domain.QuizContent{}, quiz.Content)
	assert.Len(t, quiz.Content.(domain.QuizContent).Questions, 3)

	plan := c.Missions[3]
	require.IsType(t, domain.EvidenceContent{}, plan.Content)
	assert.Equal(t, 48, plan.Content.(domain.EvidenceContent).DeadlineHours)

	video := c.Missions[0]
	require.IsType(t, domain.PassiveContent{}, video.Content)
	assert.Equal(t, 60, video.Content.(domain.PassiveContent).MaxDuration)

	assert.Equal(t, domain.UnlimitedStock, c.Rewards[0].Stock)
	assert.Equal(t, 25, c.Rewards[1].Stock)
	require.NotNil(t, c.Rewards[2].AvailableUntil)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad yaml", "missions: [\n"},
		{"missing id", "missions:\n  - title: x\n"},
		{"duplicate id", "missions:\n  - {id: a, title: x}\n  - {id: a, title: y}\n"},
		{"unknown requirement", "missions:\n  - {id: a, title: x, requirements: [zzz]}\n"},
		{"empty quiz", "missions:\n  - {id: a, title: x, type: quiz}\n"},
		{"unknown league type", "league_rewards:\n  platinum: [{position: 1, coins: 5}]\n"},
		{"negative cost", "rewards:\n  - {id: r, coins_cost: -1}\n"},
		{"event without id", "events:\n  - {title: x}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestSeed_Idempotent(t *testing.T) {
	c, err := Load("../../configs/catalog.yaml")
	require.NoError(t, err)
	store := memory.NewStore()
	ctx := context.Background()

	res, err := c.Seed(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, SeedResult{Missions: 5, Events: 2, Rewards: 3, Achievements: 3}, res)

	_, err = c.Seed(ctx, store)
	require.NoError(t, err)

	missions, err := store.ListMissions(ctx)
	require.NoError(t, err)
	assert.Len(t, missions, 5)

	ev, err := store.GetEvent(ctx, "feria-emprendimiento")
	require.NoError(t, err)
	assert.Len(t, ev.Rules, 3)
}

func TestParse_SchemaRejectsStructure(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		errorMsg string
	}{
		{"unknown top level key", "missons: []\n", "additionalProperties"},
		{"string points", "missions:\n  - {id: a, title: x, points_reward: lots}\n", "/missions/0/points_reward"},
		{"zero position league reward", "league_rewards:\n  gold: [{position: 0, coins: 5}]\n", "minimum"},
		{"rule without kind", "events:\n  - {id: e, rules: [{name: r}]}\n", "required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}
