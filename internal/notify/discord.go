package notify

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/event"
)

// webhookExecutor is the slice of *discordgo.Session used to post embeds
type webhookExecutor interface {
	WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// DiscordNotifier posts program-wide messages and redemptions to a staff
// channel webhook. Other participant messages are skipped.
type DiscordNotifier struct {
	session   webhookExecutor
	webhookID string
	token     string
}

// NewDiscordNotifier creates a webhook notifier; no bot token is needed
func NewDiscordNotifier(webhookID, token string) (*DiscordNotifier, error) {
	if webhookID == "" || token == "" {
		return nil, errors.New(ErrMsgWebhookRequired)
	}
	session, err := discordgo.New("")
	if err != nil {
		return nil, err
	}
	return &DiscordNotifier{session: session, webhookID: webhookID, token: token}, nil
}

func (n *DiscordNotifier) Notify(ctx context.Context, msg Message) error {
	if msg.ParticipantID != "" && msg.Type != string(event.RewardRedeemed) {
		return nil
	}
	_, err := n.session.WebhookExecute(n.webhookID, n.token, false, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{Embed(msg)},
	}, discordgo.WithContext(ctx))
	return err
}

// Embed renders msg the way staff channels show it
func Embed(msg Message) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       msg.Title,
		Description: msg.Body,
		Color:       ColorInfo,
		Footer:      &discordgo.MessageEmbedFooter{Text: FooterText},
	}
	switch msg.Type {
	case string(event.RewardRedeemed):
		embed.Color = ColorSuccess
		embed.Fields = []*discordgo.MessageEmbedField{{Name: "participant", Value: msg.ParticipantID, Inline: true}}
	case string(event.LeagueRolledOver):
		embed.Color = ColorWarning
	}
	return embed
}
