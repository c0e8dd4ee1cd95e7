package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/event"
)

type recorder struct {
	mu   sync.Mutex
	msgs []Message
	err  error
}

func (r *recorder) Notify(_ context.Context, msg Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
	return r.err
}

func TestFromEvent(t *testing.T) {
	retry := time.Date(2026, 10, 20, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		name        string
		evt         event.Event
		wantOK      bool
		participant string
		bodyHas     string
	}{
		{"mission completed", event.NewMissionCompletedEvent("p-1", "m-1", "quiz", 50, 20, 100, "attempt"), true, "p-1", "50 puntos"},
		{"quiz failed", event.NewMissionQuizFailedEvent("p-1", "m-1", 33.3, retry), true, "p-1", "2026-10-20"},
		{"evidence reviewed", event.NewEvidenceEvent(event.EvidenceReviewed, event.EvidencePayloadV1{ParticipantID: "p-2", MissionID: "m-2", MissionTitle: "Pitch", Status: "rejected", Notes: "Falta audio."}), true, "p-2", "Falta audio."},
		{"reward redeemed", event.NewRewardRedeemedEvent(event.RewardRedeemed, "p-3", "r-1", "IMP-AAAA-BBBB", 50, "redeemed"), true, "p-3", "IMP-AAAA-BBBB"},
		{"rollover is broadcast", event.NewLeagueRolledOverEvent(event.LeagueRolledOverPayloadV1{CurrentCycle: "2026-W43"}), true, "", "2026-W43"},
		{"join is silent", event.NewLeagueJoinedEvent("l-1", "p-1"), false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok, err := FromEvent(tt.evt)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, string(tt.evt.Type), msg.Type)
			assert.Equal(t, tt.participant, msg.ParticipantID)
			assert.Contains(t, msg.Body, tt.bodyHas)
			assert.NotEmpty(t, msg.ID)
		})
	}
}

func TestFromEvent_DecodesSerializedPayload(t *testing.T) {
	evt := event.Event{Type: event.MissionCompleted, Payload: map[string]interface{}{
		"participant_id": "p-9", "points_awarded": 10, "coins_awarded": 5,
	}}
	msg, ok, err := FromEvent(evt)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "p-9", msg.ParticipantID)
}

func TestMulti(t *testing.T) {
	a := &recorder{}
	b := &recorder{err: errors.New("sink down")}
	err := Multi{a, b, Nop{}}.Notify(context.Background(), Message{Type: "x"})
	assert.ErrorContains(t, err, "sink down")
	assert.Len(t, a.msgs, 1)
	assert.Len(t, b.msgs, 1)

	assert.NoError(t, Multi{}.Notify(context.Background(), Message{}))
}

func TestSubscriber_NeverFailsPublisher(t *testing.T) {
	bus := event.NewMemoryBus()
	rec := &recorder{err: errors.New("sink down")}
	NewSubscriber(bus, rec).Subscribe()

	err := bus.Publish(context.Background(), event.NewMissionCompletedEvent("p-1", "m-1", "video", 10, 5, 0, "attempt"))
	require.NoError(t, err)
	require.NoError(t, bus.Publish(context.Background(), event.NewLeagueJoinedEvent("l-1", "p-1")))
	require.NoError(t, bus.Publish(context.Background(), event.Event{Type: event.RewardRedeemed, Payload: "garbage"}))

	assert.Len(t, rec.msgs, 1)
}
