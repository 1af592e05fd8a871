package events

import (
	"context"
	"log/slog"
	"sync"

	"club-ads/internal/core/domain"
	"club-ads/internal/core/port"
	"club-ads/internal/metrics"
)

type envelope struct {
	delivery   *domain.DeliveryEvent
	transition *domain.TransitionEvent
}

// AsyncSink decouples the serve path from the downstream sink. Publish
// calls enqueue into a bounded buffer and return immediately; when the
// buffer is full the event is dropped and counted. Run drains the buffer
// until its context is cancelled, then flushes what is left. An event
// published after that is counted as dropped, never silently lost.
type AsyncSink struct {
	next    port.EventSink
	queue   chan envelope
	logger  *slog.Logger
	metrics *metrics.Metrics

	// mu is held shared by enqueue and exclusively while closing, so no
	// send can land in the queue after the final drain started.
	mu     sync.RWMutex
	closed bool
}

var _ port.EventSink = (*AsyncSink)(nil)

// NewAsyncSink buffers up to size events in front of next.
func NewAsyncSink(next port.EventSink, size int, logger *slog.Logger, m *metrics.Metrics) *AsyncSink {
	if size <= 0 {
		size = 1024
	}
	return &AsyncSink{
		next:    next,
		queue:   make(chan envelope, size),
		logger:  logger,
		metrics: m,
	}
}

func (s *AsyncSink) PublishDelivery(_ context.Context, ev domain.DeliveryEvent) error {
	s.enqueue(envelope{delivery: &ev})
	return nil
}

func (s *AsyncSink) PublishTransition(_ context.Context, ev domain.TransitionEvent) error {
	s.enqueue(envelope{transition: &ev})
	return nil
}

func (s *AsyncSink) enqueue(e envelope) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		s.metrics.EventsDropped.Inc()
		return
	}
	select {
	case s.queue <- e:
	default:
		s.metrics.EventsDropped.Inc()
	}
}

// Run forwards buffered events to the downstream sink until ctx is done.
func (s *AsyncSink) Run(ctx context.Context) error {
	for {
		select {
		case e := <-s.queue:
			s.forward(ctx, e)
		case <-ctx.Done():
			s.mu.Lock()
			s.closed = true
			s.mu.Unlock()
			s.drain()
			return nil
		}
	}
}

func (s *AsyncSink) drain() {
	ctx := context.Background()
	for {
		select {
		case e := <-s.queue:
			s.forward(ctx, e)
		default:
			return
		}
	}
}

func (s *AsyncSink) forward(ctx context.Context, e envelope) {
	var err error
	switch {
	case e.delivery != nil:
		err = s.next.PublishDelivery(ctx, *e.delivery)
	case e.transition != nil:
		err = s.next.PublishTransition(ctx, *e.transition)
	}
	if err != nil {
		s.metrics.EventsPublished.WithLabelValues("error").Inc()
		s.logger.Warn("event publish failed", slog.Any("error", err))
		return
	}
	s.metrics.EventsPublished.WithLabelValues("ok").Inc()
}
