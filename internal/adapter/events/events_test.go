package events

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"club-ads/internal/core/domain"
	"club-ads/internal/core/port/mocks"
	"club-ads/internal/metrics"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAsyncSink_ForwardsEvents(t *testing.T) {
	next := mocks.NewMockEventSink(t)
	m := metrics.NewNop()
	sink := NewAsyncSink(next, 8, discard(), m)

	delivered := make(chan struct{})
	next.EXPECT().PublishDelivery(mock.Anything, mock.MatchedBy(func(ev domain.DeliveryEvent) bool {
		return ev.CampaignID == 4
	})).Return(nil).Once()
	next.EXPECT().PublishTransition(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, domain.TransitionEvent) error {
			close(delivered)
			return nil
		}).Once()

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		_ = sink.Run(ctx)
		close(stopped)
	}()

	require.NoError(t, sink.PublishDelivery(context.Background(), domain.DeliveryEvent{CampaignID: 4}))
	require.NoError(t, sink.PublishTransition(context.Background(), domain.TransitionEvent{CampaignID: 4}))

	select {
	case <-delivered:
	case <-time.After(time.Second):
		t.Fatal("events were not forwarded")
	}
	cancel()
	<-stopped
	assert.Equal(t, 2.0, testutil.ToFloat64(m.EventsPublished.WithLabelValues("ok")))
}

func TestAsyncSink_DropsWhenFull(t *testing.T) {
	next := mocks.NewMockEventSink(t)
	m := metrics.NewNop()
	sink := NewAsyncSink(next, 1, discard(), m)

	require.NoError(t, sink.PublishDelivery(context.Background(), domain.DeliveryEvent{ID: "kept"}))
	require.NoError(t, sink.PublishDelivery(context.Background(), domain.DeliveryEvent{ID: "dropped"}))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsDropped))

	next.EXPECT().PublishDelivery(mock.Anything, mock.MatchedBy(func(ev domain.DeliveryEvent) bool {
		return ev.ID == "kept"
	})).Return(errors.New("redis down")).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, sink.Run(ctx))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsPublished.WithLabelValues("error")))
}

func TestAsyncSink_PublishAfterShutdownIsCounted(t *testing.T) {
	next := mocks.NewMockEventSink(t)
	m := metrics.NewNop()
	sink := NewAsyncSink(next, 8, discard(), m)

	next.EXPECT().PublishDelivery(mock.Anything, mock.Anything).Return(nil).Once()
	require.NoError(t, sink.PublishDelivery(context.Background(), domain.DeliveryEvent{ID: "before"}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, sink.Run(ctx))

	require.NoError(t, sink.PublishDelivery(context.Background(), domain.DeliveryEvent{ID: "after"}))
	require.NoError(t, sink.PublishTransition(context.Background(), domain.TransitionEvent{CampaignID: 1}))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsPublished.WithLabelValues("ok")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.EventsDropped))
	assert.Empty(t, sink.queue)
}

func TestAsyncSink_ConcurrentPublishDuringShutdown(t *testing.T) {
	next := mocks.NewMockEventSink(t)
	m := metrics.NewNop()
	sink := NewAsyncSink(next, 1024, discard(), m)
	next.EXPECT().PublishDelivery(mock.Anything, mock.Anything).Return(nil).Maybe()

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		_ = sink.Run(ctx)
		close(stopped)
	}()

	const publishers, each = 8, 50
	var wg sync.WaitGroup
	for range publishers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range each {
				_ = sink.PublishDelivery(context.Background(), domain.DeliveryEvent{CampaignID: 1})
			}
		}()
	}
	cancel()
	wg.Wait()
	<-stopped

	published := testutil.ToFloat64(m.EventsPublished.WithLabelValues("ok"))
	dropped := testutil.ToFloat64(m.EventsDropped)
	assert.Equal(t, float64(publishers*each), published+dropped)
	assert.Empty(t, sink.queue)
}

func TestLogSink_LogsTransitions(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(slog.New(slog.NewTextHandler(&buf, nil)))

	require.NoError(t, sink.PublishTransition(context.Background(), domain.TransitionEvent{
		CampaignID: 2,
		From:       domain.StatusActive,
		To:         domain.StatusCompleted,
		Reason:     "budget exhausted",
	}))
	assert.Contains(t, buf.String(), "to=completed")
	assert.Contains(t, buf.String(), `reason="budget exhausted"`)
}
