package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"club-ads/internal/core/domain"
	"club-ads/internal/core/port"
	"club-ads/internal/metrics"
)

// completer is the part of the lifecycle the serve path needs.
type completer interface {
	Complete(ctx context.Context, id int64, reason string) (*domain.Campaign, error)
}

// Delivery is the serve-ad entry point combining Selector and Meter.
type Delivery struct {
	selector  *Selector
	meter     *Meter
	lifecycle completer
	timeout   time.Duration
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

var _ port.AdDelivery = (*Delivery)(nil)

// NewDelivery creates the facade. timeout bounds a whole serve including
// its single retry; zero disables the bound.
func NewDelivery(selector *Selector, meter *Meter, lifecycle completer, timeout time.Duration, logger *slog.Logger, m *metrics.Metrics) *Delivery {
	return &Delivery{
		selector:  selector,
		meter:     meter,
		lifecycle: lifecycle,
		timeout:   timeout,
		logger:    orDiscard(logger),
		metrics:   orNop(m),
	}
}

// ServeAd selects and charges one impression for the zone. It returns nil
// with no error when there is nothing to serve, including when a store
// failed: the engine fails closed rather than risk an unbilled or
// over-budget delivery. When the chosen campaign turns out to be
// exhausted or lost a race, it is completed or skipped and selection is
// retried once without it.
func (d *Delivery) ServeAd(ctx context.Context, req port.ServeRequest) (*port.AdResponse, error) {
	if req.ZoneID <= 0 {
		return nil, fmt.Errorf("zone id must be positive: %w", port.ErrValidation)
	}
	start := time.Now()
	defer func() { d.metrics.ServeDuration.Observe(time.Since(start).Seconds()) }()

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	tags := domain.NormalizeTags(req.Tags)
	zone := strconv.FormatInt(req.ZoneID, 10)

	var exclude []int64
	for attempt := 0; attempt < 2; attempt++ {
		cand, err := d.selector.SelectAd(ctx, req.ZoneID, tags, exclude...)
		if err != nil {
			return d.noFill(ctx, zone, err), nil
		}

		res, err := d.meter.RecordImpression(ctx, cand, req.ViewerID)
		switch {
		case err == nil && res.Applied:
			d.completeIfExhausted(ctx, cand.Campaign, res)
			d.metrics.Served.WithLabelValues(zone).Inc()
			return toResponse(cand), nil
		case err == nil && res.BudgetExceeded:
			d.complete(ctx, cand.Campaign.ID, "budget exhausted")
		case err == nil && res.ViewCapReached:
			d.complete(ctx, cand.Campaign.ID, "view target reached")
		case errors.Is(err, port.ErrCampaignNotActive),
			errors.Is(err, port.ErrConflict),
			errors.Is(err, port.ErrNotFound):
			d.logger.DebugContext(ctx, "selected campaign lost a race",
				slog.Int64("campaign_id", cand.Campaign.ID), slog.Any("error", err))
		default:
			return d.noFill(ctx, zone, err), nil
		}
		exclude = append(exclude, cand.Campaign.ID)
	}
	return d.noFill(ctx, zone, &NoFillError{ZoneID: req.ZoneID, Reason: ReasonExhausted}), nil
}

// RecordClick counts a click. Clicks on campaigns in a terminal state are
// ignored.
func (d *Delivery) RecordClick(ctx context.Context, req port.ClickRequest) error {
	if req.CampaignID <= 0 {
		return fmt.Errorf("campaign id must be positive: %w", port.ErrValidation)
	}
	err := d.meter.RecordClick(ctx, req)
	if errors.Is(err, port.ErrCampaignNotActive) {
		d.logger.DebugContext(ctx, "click on ended campaign ignored", slog.Int64("campaign_id", req.CampaignID))
		return nil
	}
	return err
}

// completeIfExhausted completes the campaign as soon as the impression
// just charged leaves it unable to fund another one.
func (d *Delivery) completeIfExhausted(ctx context.Context, c domain.Campaign, res port.DeliveryResult) {
	c.Spent = res.NewSpent
	c.ViewsDelivered = res.NewViews
	switch {
	case c.ViewTargetReached():
		d.complete(ctx, c.ID, "view target reached")
	case !c.CanAffordImpression():
		d.complete(ctx, c.ID, "budget exhausted")
	}
}

func (d *Delivery) complete(ctx context.Context, id int64, reason string) {
	if _, err := d.lifecycle.Complete(ctx, id, reason); err != nil {
		d.logger.ErrorContext(ctx, "campaign completion failed",
			slog.Int64("campaign_id", id), slog.String("reason", reason), slog.Any("error", err))
	}
}

func (d *Delivery) noFill(ctx context.Context, zone string, err error) *port.AdResponse {
	var nf *NoFillError
	reason := ReasonStoreError
	switch {
	case errors.As(err, &nf):
		reason = nf.Reason
		d.logger.DebugContext(ctx, "no eligible ad", slog.String("zone", zone), slog.String("reason", reason))
		if reason == ReasonUnknownZone {
			zone = "unknown"
		}
	case errors.Is(err, context.DeadlineExceeded):
		reason = ReasonTimeout
		d.logger.ErrorContext(ctx, "serve timed out", slog.String("zone", zone), slog.Any("error", err))
	default:
		d.logger.ErrorContext(ctx, "serve failed closed", slog.String("zone", zone), slog.Any("error", err))
	}
	d.metrics.NoFill.WithLabelValues(zone, reason).Inc()
	return nil
}

func toResponse(cand *Candidate) *port.AdResponse {
	return &port.AdResponse{
		CampaignID:     cand.Campaign.ID,
		CreativeID:     cand.Creative.ID,
		Type:           cand.Creative.Type,
		URL:            cand.Creative.URL,
		DestinationURL: cand.Creative.DestinationURL,
		Width:          cand.Creative.Width,
		Height:         cand.Creative.Height,
		Zone: port.ZoneInfo{
			ID:     cand.Zone.ID,
			Name:   cand.Zone.Name,
			Width:  cand.Zone.Width,
			Height: cand.Zone.Height,
		},
	}
}
