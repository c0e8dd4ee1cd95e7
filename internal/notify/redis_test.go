package notify

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestNewRedisNotifier_RequiresAddr(t *testing.T) {
	_, err := NewRedisNotifier(context.Background(), " ", "ch")
	assert.Error(t, err)
}

func TestRedisNotifier_Publish(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()

	var ctr *testcontainers.DockerContainer
	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("docker not available (panic): %v", r)
			}
		}()
		ctr, err = testcontainers.Run(ctx, "redis:7-alpine",
			testcontainers.WithExposedPorts("6379/tcp"),
			testcontainers.WithWaitStrategy(wait.ForListeningPort("6379/tcp").WithStartupTimeout(30*time.Second)),
		)
	}()
	if err != nil {
		t.Skipf("docker not available: %v", err)
	}
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(ctr) })

	addr, err := ctr.Endpoint(ctx, "")
	require.NoError(t, err)

	n, err := NewRedisNotifier(ctx, addr, "impulsa.test")
	require.NoError(t, err)
	defer n.Close()

	sub := goredis.NewClient(&goredis.Options{Addr: addr}).Subscribe(ctx, "impulsa.test")
	defer sub.Close()
	_, err = sub.Receive(ctx)
	require.NoError(t, err)

	require.NoError(t, n.Notify(ctx, Message{ID: "m-1", Type: "reward.redeemed", ParticipantID: "p-1"}))

	select {
	case raw := <-sub.Channel():
		var got Message
		require.NoError(t, json.Unmarshal([]byte(raw.Payload), &got))
		assert.Equal(t, "m-1", got.ID)
		assert.Equal(t, "p-1", got.ParticipantID)
	case <-time.After(5 * time.Second):
		t.Fatal("no message received")
	}
}
