package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"club-ads/internal/core/domain"
	"club-ads/internal/core/port"
	"club-ads/internal/metrics"
)

// Meter is the only writer of campaign and creative counters. Budget
// enforcement lives in the store's atomic IncrementDelivery; the meter
// adds the terminal-state guard, unique viewer counting and delivery
// events around it.
type Meter struct {
	campaigns port.CampaignRepository
	unique    port.UniqueViewTracker
	sink      port.EventSink
	logger    *slog.Logger
	metrics   *metrics.Metrics
	now       func() time.Time
}

// NewMeter creates a Meter. unique may be nil, in which case viewer ids
// are ignored.
func NewMeter(campaigns port.CampaignRepository, unique port.UniqueViewTracker, sink port.EventSink, logger *slog.Logger, m *metrics.Metrics) *Meter {
	return &Meter{
		campaigns: campaigns,
		unique:    unique,
		sink:      sink,
		logger:    orDiscard(logger),
		metrics:   orNop(m),
		now:       time.Now,
	}
}

// RecordImpression charges one impression of cand at the campaign's cpv.
// A campaign that is not Active is refused before the store is touched.
// A result with Applied=false means the budget or the view target would
// have been exceeded; nothing was written in that case.
func (m *Meter) RecordImpression(ctx context.Context, cand *Candidate, viewerID string) (port.DeliveryResult, error) {
	c := &cand.Campaign
	if c.Status != domain.StatusActive {
		return port.DeliveryResult{}, fmt.Errorf("campaign %d is %s: %w", c.ID, c.Status, port.ErrCampaignNotActive)
	}

	res, err := m.campaigns.IncrementDelivery(ctx, port.DeliveryIncrement{
		CampaignID: c.ID,
		CreativeID: cand.Creative.ID,
		Cost:       c.CPV,
	})
	if err != nil || !res.Applied {
		return res, err
	}

	m.publish(ctx, domain.DeliveryEvent{
		Type:       domain.EventImpression,
		CampaignID: c.ID,
		CreativeID: cand.Creative.ID,
		ZoneID:     c.ZoneID,
		ViewerID:   viewerID,
		Cost:       c.CPV,
	})
	if viewerID != "" {
		m.observeViewer(ctx, c.ID, viewerID)
	}
	return res, nil
}

// RecordClick increments the click counter. Clicks are not billed, but a
// campaign in a terminal state keeps its counters frozen.
func (m *Meter) RecordClick(ctx context.Context, req port.ClickRequest) error {
	c, err := m.campaigns.GetCampaign(ctx, req.CampaignID)
	if err != nil {
		return err
	}
	if c.Status.IsTerminal() {
		return fmt.Errorf("campaign %d is %s: %w", c.ID, c.Status, port.ErrCampaignNotActive)
	}
	if err = m.campaigns.IncrementClicks(ctx, c.ID); err != nil {
		return err
	}
	m.metrics.Clicks.Inc()
	m.publish(ctx, domain.DeliveryEvent{
		Type:       domain.EventClick,
		CampaignID: c.ID,
		CreativeID: req.CreativeID,
		ZoneID:     c.ZoneID,
		ViewerID:   req.ViewerID,
		Cost:       decimal.Zero,
	})
	return nil
}

func (m *Meter) observeViewer(ctx context.Context, campaignID int64, viewerID string) {
	if m.unique == nil {
		return
	}
	added, err := m.unique.Observe(ctx, campaignID, viewerID)
	if err != nil {
		m.logger.WarnContext(ctx, "unique view tracking failed",
			slog.Int64("campaign_id", campaignID), slog.Any("error", err))
		return
	}
	if !added {
		return
	}
	if err = m.campaigns.IncrementUniqueViews(ctx, campaignID); err != nil {
		m.logger.WarnContext(ctx, "unique view increment failed",
			slog.Int64("campaign_id", campaignID), slog.Any("error", err))
	}
}

func (m *Meter) publish(ctx context.Context, ev domain.DeliveryEvent) {
	ev.ID = uuid.NewString()
	ev.Timestamp = m.now().UTC()
	if err := m.sink.PublishDelivery(ctx, ev); err != nil {
		m.logger.WarnContext(ctx, "delivery event dropped",
			slog.String("type", string(ev.Type)), slog.Any("error", err))
	}
}
