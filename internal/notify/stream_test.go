package notify

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/testing/leaktest"
)

func TestFormatSSE(t *testing.T) {
	frame, err := FormatSSE(Message{ID: "1", Type: "mission.completed", Title: "hi"})
	require.NoError(t, err)
	s := string(frame)
	assert.True(t, strings.HasPrefix(s, "id: 1\nevent: mission.completed\ndata: {"))
	assert.True(t, strings.HasSuffix(s, "}\n\n"))
}

func TestHub_FiltersByParticipant(t *testing.T) {
	h := NewHub()
	h.Start()
	defer h.Stop()

	ana := h.register("p-ana")
	beto := h.register("p-beto")
	assert.Equal(t, 2, h.ClientCount())

	ctx := context.Background()
	require.NoError(t, h.Notify(ctx, Message{Type: "mission.completed", ParticipantID: "p-ana"}))
	require.NoError(t, h.Notify(ctx, Message{Type: "league.rolled_over"}))

	got := func(c *streamClient) []string {
		var types []string
		deadline := time.After(time.Second)
		for len(types) < 2 {
			select {
			case m := <-c.messages:
				types = append(types, m.Type)
			case <-deadline:
				return types
			}
		}
		return types
	}
	assert.Equal(t, []string{"mission.completed", "league.rolled_over"}, got(ana))
	assert.Equal(t, []string{"league.rolled_over"}, got(beto))

	h.unregister(ana.id)
	assert.Equal(t, 1, h.ClientCount())
}

func TestHub_StopIsIdempotent(t *testing.T) {
	h := NewHub()
	h.Start()
	c := h.register("p-1")
	h.Stop()
	h.Stop()

	_, open := <-c.messages
	assert.False(t, open)
	h.unregister(c.id)
}

func TestHub_StopReleasesGoroutines(t *testing.T) {
	leaktest.Run(t, func() {
		h := NewHub()
		h.Start()
		c := h.register("p-1")
		require.NoError(t, h.Notify(context.Background(), Message{ID: "1", Type: "mission.completed", ParticipantID: "p-1"}))
		h.Stop()
		h.unregister(c.id)
	})
}

func TestStreamHandler(t *testing.T) {
	h := NewHub()
	h.Start()
	defer h.Stop()

	srv := httptest.NewServer(StreamHandler(h))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?participant_id=p-1", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	lines := bufio.NewScanner(resp.Body)
	next := func() string {
		for lines.Scan() {
			if l := lines.Text(); strings.HasPrefix(l, "event: ") {
				return strings.TrimPrefix(l, "event: ")
			}
		}
		return ""
	}
	require.Equal(t, StreamTypeConnected, next())

	require.NoError(t, h.Notify(ctx, Message{Type: "reward.redeemed", ParticipantID: "p-1"}))
	assert.Equal(t, "reward.redeemed", next())
}
