package event

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyBus fails the attempts selected by shouldFail
type flakyBus struct {
	mu           sync.Mutex
	calls        []Event
	shouldFail   func(attempt int) bool
	publishDelay time.Duration
}

func (b *flakyBus) Publish(ctx context.Context, evt Event) error {
	b.mu.Lock()
	b.calls = append(b.calls, evt)
	n := len(b.calls)
	b.mu.Unlock()

	if b.publishDelay > 0 {
		time.Sleep(b.publishDelay)
	}
	if b.shouldFail != nil && b.shouldFail(n) {
		return errors.New("subscriber unavailable")
	}
	return nil
}

func (b *flakyBus) Subscribe(Type, Handler) {}

func (b *flakyBus) CallCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.calls)
}

func failAlways(int) bool { return true }

func TestResilientPublisher_SuccessfulPublish(t *testing.T) {
	path := t.TempDir() + "/deadletter.jsonl"
	bus := &flakyBus{}

	rp, err := NewResilientPublisher(bus, 3, 50*time.Millisecond, path)
	require.NoError(t, err)
	defer rp.Shutdown(context.Background())

	require.NoError(t, rp.Publish(context.Background(), NewLeagueJoinedEvent("l-1", "p-1")))

	assert.Equal(t, 1, bus.CallCount())
	content, _ := os.ReadFile(path)
	assert.Empty(t, content)
}

func TestResilientPublisher_RetrySuccess(t *testing.T) {
	path := t.TempDir() + "/deadletter.jsonl"
	bus := &flakyBus{shouldFail: func(n int) bool { return n == 1 }}

	rp, err := NewResilientPublisher(bus, 3, 50*time.Millisecond, path)
	require.NoError(t, err)
	defer rp.Shutdown(context.Background())

	rp.PublishWithRetry(context.Background(), NewDocumentUploadedEvent("d-1", "p-1", "ruc"))

	assert.Eventually(t, func() bool { return bus.CallCount() == 2 }, time.Second, 10*time.Millisecond)
	content, _ := os.ReadFile(path)
	assert.Empty(t, content)
}

func TestResilientPublisher_RetryExhaustion(t *testing.T) {
	path := t.TempDir() + "/deadletter.jsonl"
	bus := &flakyBus{shouldFail: failAlways}

	rp, err := NewResilientPublisher(bus, 3, 20*time.Millisecond, path)
	require.NoError(t, err)
	defer rp.Shutdown(context.Background())

	rp.PublishWithRetry(context.Background(), NewMissionQuizFailedEvent("p-1", "m-1", 20, time.Now()))

	// initial attempt + 3 retries (20ms, 40ms, 80ms)
	require.Eventually(t, func() bool {
		content, _ := os.ReadFile(path)
		return len(content) > 0
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 4, bus.CallCount())

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry DeadLetterEntry
	require.NoError(t, json.Unmarshal(content, &entry))
	assert.Equal(t, DeadLetterSchemaVersion, entry.SchemaVersion)
	assert.Equal(t, MissionQuizFailed, entry.Event.Type)
	assert.Equal(t, 4, entry.Attempts)
	assert.Equal(t, "subscriber unavailable", entry.LastError)
}

func TestResilientPublisher_QueueOverflow(t *testing.T) {
	path := t.TempDir() + "/deadletter.jsonl"
	bus := &flakyBus{shouldFail: failAlways}

	dl, err := NewDeadLetterWriter(path)
	require.NoError(t, err)

	// No worker running, so the queue fills after two entries
	rp := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, 2),
		maxRetries: 3,
		retryDelay: time.Hour,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}

	for i := 0; i < 5; i++ {
		rp.PublishWithRetry(context.Background(), NewLeagueJoinedEvent("l", "p"))
	}

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := 0
	for _, b := range content {
		if b == '\n' {
			lines++
		}
	}
	assert.Equal(t, 3, lines, "Overflowing events go straight to the dead-letter file")
	require.NoError(t, dl.Close())
}

func TestResilientPublisher_ShutdownDrainsQueue(t *testing.T) {
	path := t.TempDir() + "/deadletter.jsonl"
	bus := &flakyBus{shouldFail: func(n int) bool { return n <= 2 }}

	rp, err := NewResilientPublisher(bus, 5, time.Hour, path)
	require.NoError(t, err)

	rp.PublishWithRetry(context.Background(), NewLeagueJoinedEvent("l-1", "p-1"))
	rp.PublishWithRetry(context.Background(), NewLeagueJoinedEvent("l-2", "p-2"))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, rp.Shutdown(ctx))

	assert.Equal(t, 4, bus.CallCount(), "Each queued event gets one final attempt")
	content, _ := os.ReadFile(path)
	assert.Empty(t, content)

	// second shutdown is a no-op
	assert.NoError(t, rp.Shutdown(context.Background()))
}

func TestResilientPublisher_ConcurrentPublishes(t *testing.T) {
	path := t.TempDir() + "/deadletter.jsonl"
	bus := &flakyBus{}
	rp, err := NewResilientPublisher(bus, 3, 50*time.Millisecond, path)
	require.NoError(t, err)
	defer rp.Shutdown(context.Background())

	const goroutines, perGoroutine = 10, 5
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				rp.PublishWithRetry(context.Background(), NewLeagueJoinedEvent("l", "p"))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines*perGoroutine, bus.CallCount())
}
