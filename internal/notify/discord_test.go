package notify

import (
	"context"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/event"
)

type fakeWebhook struct {
	params []*discordgo.WebhookParams
}

func (f *fakeWebhook) WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.params = append(f.params, data)
	return nil, nil
}

func TestNewDiscordNotifier_RequiresCredentials(t *testing.T) {
	_, err := NewDiscordNotifier("", "token")
	assert.Error(t, err)

	n, err := NewDiscordNotifier("123", "token")
	require.NoError(t, err)
	assert.NotNil(t, n.session)
}

func TestDiscordNotifier_Routing(t *testing.T) {
	hook := &fakeWebhook{}
	n := &DiscordNotifier{session: hook, webhookID: "1", token: "t"}
	ctx := context.Background()

	require.NoError(t, n.Notify(ctx, Message{Type: string(event.MissionCompleted), ParticipantID: "p-1"}))
	assert.Empty(t, hook.params, "personal messages stay off the staff channel")

	require.NoError(t, n.Notify(ctx, Message{Type: string(event.RewardRedeemed), ParticipantID: "p-1", Title: "Recompensa canjeada"}))
	require.NoError(t, n.Notify(ctx, Message{Type: string(event.LeagueRolledOver), Title: "Nueva semana"}))
	require.Len(t, hook.params, 2)

	redeemed := hook.params[0].Embeds[0]
	assert.Equal(t, ColorSuccess, redeemed.Color)
	assert.Equal(t, "p-1", redeemed.Fields[0].Value)
	assert.Equal(t, ColorWarning, hook.params[1].Embeds[0].Color)
	assert.Equal(t, FooterText, hook.params[1].Embeds[0].Footer.Text)
}
