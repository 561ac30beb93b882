package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ProviderEventsChannel is the Redis channel provider failures are published on.
const ProviderEventsChannel = "provider-events"

// ProviderEvent describes a provider call that did not produce usable content.
type ProviderEvent struct {
	Provider    string    `json:"provider"`
	Operation   string    `json:"operation"`
	Destination string    `json:"destination"`
	Error       string    `json:"error"`
	FallbackTo  string    `json:"fallback_to"`
	At          time.Time `json:"at"`
}

type Publisher interface {
	Publish(ctx context.Context, ev ProviderEvent) error
}

// RedisPublisher emits provider events over Redis pub/sub.
type RedisPublisher struct {
	conn    *redis.Client
	channel string
}

func NewRedisPublisher(conn *redis.Client) *RedisPublisher {
	return &RedisPublisher{conn: conn, channel: ProviderEventsChannel}
}

func (p *RedisPublisher) Publish(ctx context.Context, ev ProviderEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal provider event: %w", err)
	}
	if err := p.conn.Publish(ctx, p.channel, data).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", p.channel, err)
	}
	return nil
}

// NopPublisher drops events. Used when no Redis is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, ProviderEvent) error { return nil }

// NewRedisClient mirrors the connection settings used across the service.
func NewRedisClient(addr, pass string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: pass,
		DB:       db,
	})
}

func Ping(ctx context.Context, c *redis.Client) error {
	return c.Ping(ctx).Err()
}
