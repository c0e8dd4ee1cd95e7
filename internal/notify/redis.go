package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// RedisNotifier publishes messages as JSON on a Redis pub/sub channel
type RedisNotifier struct {
	rdb     goredis.UniversalClient
	channel string
}

// NewRedisNotifier connects to addr and verifies the connection
func NewRedisNotifier(ctx context.Context, addr, channel string) (*RedisNotifier, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, errors.New(ErrMsgRedisAddrRequired)
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf(ErrMsgRedisPing, err)
	}
	return NewRedisNotifierFromClient(rdb, channel), nil
}

// NewRedisNotifierFromClient wraps an existing client
func NewRedisNotifierFromClient(rdb goredis.UniversalClient, channel string) *RedisNotifier {
	return &RedisNotifier{rdb: rdb, channel: channel}
}

func (n *RedisNotifier) Notify(ctx context.Context, msg Message) error {
	raw, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return n.rdb.Publish(ctx, n.channel, raw).Err()
}

// Close releases the client
func (n *RedisNotifier) Close() error {
	return n.rdb.Close()
}
