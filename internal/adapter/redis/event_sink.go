package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"club-ads/internal/core/domain"
	"club-ads/internal/core/port"
)

// Envelope kinds pushed onto the events list.
const (
	KindDelivery   = "delivery"
	KindTransition = "transition"
)

// Envelope wraps every event pushed to Redis so consumers can dispatch on
// Kind before decoding Payload.
type Envelope struct {
	Kind      string          `json:"kind"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// EventSink appends delivery and transition events to a Redis list that
// downstream reporting jobs drain with BLPOP.
type EventSink struct {
	client *redis.Client
	key    string
}

var _ port.EventSink = (*EventSink)(nil)

// NewEventSink returns a sink writing to the list named key.
func NewEventSink(client *redis.Client, key string) *EventSink {
	return &EventSink{client: client, key: key}
}

func (s *EventSink) PublishDelivery(ctx context.Context, ev domain.DeliveryEvent) error {
	return s.push(ctx, KindDelivery, ev)
}

func (s *EventSink) PublishTransition(ctx context.Context, ev domain.TransitionEvent) error {
	return s.push(ctx, KindTransition, ev)
}

func (s *EventSink) push(ctx context.Context, kind string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", kind, err)
	}
	env, err := json.Marshal(Envelope{Kind: kind, Payload: body, CreatedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}
	if err = s.client.RPush(ctx, s.key, env).Err(); err != nil {
		return fmt.Errorf("rpush %s: %w", s.key, err)
	}
	return nil
}
