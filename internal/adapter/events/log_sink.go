package events

import (
	"context"
	"log/slog"

	"club-ads/internal/core/domain"
	"club-ads/internal/core/port"
)

// LogSink writes events to the structured log. It is the sink used when
// Redis is disabled.
type LogSink struct {
	logger *slog.Logger
}

var _ port.EventSink = (*LogSink)(nil)

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger.With(slog.String("component", "events"))}
}

func (s *LogSink) PublishDelivery(ctx context.Context, ev domain.DeliveryEvent) error {
	s.logger.DebugContext(ctx, "delivery event",
		slog.String("id", ev.ID),
		slog.String("type", string(ev.Type)),
		slog.Int64("campaign_id", ev.CampaignID),
		slog.Int64("creative_id", ev.CreativeID),
		slog.Int64("zone_id", ev.ZoneID),
		slog.String("cost", ev.Cost.String()),
	)
	return nil
}

func (s *LogSink) PublishTransition(ctx context.Context, ev domain.TransitionEvent) error {
	s.logger.InfoContext(ctx, "campaign transition",
		slog.String("id", ev.ID),
		slog.Int64("campaign_id", ev.CampaignID),
		slog.String("from", string(ev.From)),
		slog.String("to", string(ev.To)),
		slog.String("reason", ev.Reason),
	)
	return nil
}
