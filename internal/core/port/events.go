package port

import (
	"context"

	"club-ads/internal/core/domain"
)

// EventSink receives delivery events and lifecycle notifications. It is
// fire-and-forget: errors are reported but never change engine outcomes.
type EventSink interface {
	PublishDelivery(ctx context.Context, ev domain.DeliveryEvent) error
	PublishTransition(ctx context.Context, ev domain.TransitionEvent) error
}

// UniqueViewTracker estimates distinct viewers per campaign.
type UniqueViewTracker interface {
	// Observe records viewerID for the campaign and reports whether the
	// distinct viewer estimate grew.
	Observe(ctx context.Context, campaignID int64, viewerID string) (bool, error)
}
