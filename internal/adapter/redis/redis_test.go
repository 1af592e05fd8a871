package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"club-ads/internal/core/domain"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestEventSink_PushesEnvelopes(t *testing.T) {
	mr, client := newTestClient(t)
	sink := NewEventSink(client, "ads:events")
	ctx := context.Background()

	require.NoError(t, sink.PublishDelivery(ctx, domain.DeliveryEvent{
		ID:         "e1",
		Type:       domain.EventImpression,
		CampaignID: 3,
		CreativeID: 7,
		ZoneID:     1,
		Cost:       decimal.RequireFromString("0.25"),
		Timestamp:  time.Unix(1700000000, 0).UTC(),
	}))
	require.NoError(t, sink.PublishTransition(ctx, domain.TransitionEvent{
		ID:         "e2",
		CampaignID: 3,
		From:       domain.StatusActive,
		To:         domain.StatusCompleted,
		Reason:     "budget exhausted",
	}))

	items, err := mr.List("ads:events")
	require.NoError(t, err)
	require.Len(t, items, 2)

	var env Envelope
	require.NoError(t, json.Unmarshal([]byte(items[0]), &env))
	assert.Equal(t, KindDelivery, env.Kind)
	var ev domain.DeliveryEvent
	require.NoError(t, json.Unmarshal(env.Payload, &ev))
	assert.Equal(t, int64(7), ev.CreativeID)
	assert.True(t, ev.Cost.Equal(decimal.RequireFromString("0.25")))

	require.NoError(t, json.Unmarshal([]byte(items[1]), &env))
	assert.Equal(t, KindTransition, env.Kind)
}

func TestEventSink_ReportsRedisErrors(t *testing.T) {
	mr, client := newTestClient(t)
	sink := NewEventSink(client, "ads:events")
	mr.Close()

	err := sink.PublishDelivery(context.Background(), domain.DeliveryEvent{ID: "e1"})
	assert.Error(t, err)
}

func TestUniqueViews_Observe(t *testing.T) {
	mr, client := newTestClient(t)
	uv := NewUniqueViews(client, time.Hour)
	ctx := context.Background()

	added, err := uv.Observe(ctx, 5, "viewer-a")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = uv.Observe(ctx, 5, "viewer-a")
	require.NoError(t, err)
	assert.False(t, added)

	added, err = uv.Observe(ctx, 5, "viewer-b")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = uv.Observe(ctx, 6, "viewer-a")
	require.NoError(t, err)
	assert.True(t, added)

	assert.Equal(t, time.Hour, mr.TTL("ads:uv:5"))
}
