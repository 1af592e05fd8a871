package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"club-ads/internal/core/domain"
	"club-ads/internal/core/port"
	"club-ads/internal/metrics"
)

// LifecycleConfig tunes payment handling.
type LifecycleConfig struct {
	// MaxPaymentAttempts is the number of failed payments after which a
	// pending campaign is rejected. Zero disables automatic rejection.
	MaxPaymentAttempts int
	Currency           string
}

// Lifecycle implements port.CampaignLifecycle. Every status change is a
// compare-and-set on the campaign's current status, so concurrent callers
// (two webhook deliveries, a serve completing a campaign while an admin
// pauses it) cannot both apply a transition.
type Lifecycle struct {
	campaigns port.CampaignRepository
	zones     port.ZoneReader
	payments  port.PaymentEventRepository
	gateway   port.PaymentGateway
	sink      port.EventSink
	cfg       LifecycleConfig
	logger    *slog.Logger
	metrics   *metrics.Metrics
	now       func() time.Time
}

var _ port.CampaignLifecycle = (*Lifecycle)(nil)

func NewLifecycle(
	campaigns port.CampaignRepository,
	zones port.ZoneReader,
	payments port.PaymentEventRepository,
	gateway port.PaymentGateway,
	sink port.EventSink,
	cfg LifecycleConfig,
	logger *slog.Logger,
	m *metrics.Metrics,
) *Lifecycle {
	return &Lifecycle{
		campaigns: campaigns,
		zones:     zones,
		payments:  payments,
		gateway:   gateway,
		sink:      sink,
		cfg:       cfg,
		logger:    orDiscard(logger),
		metrics:   orNop(m),
		now:       time.Now,
	}
}

// CreateCampaign validates req against its zone and stores a Draft
// campaign.
func (l *Lifecycle) CreateCampaign(ctx context.Context, req port.CreateCampaignReq) (*domain.Campaign, error) {
	if strings.TrimSpace(req.AdvertiserID) == "" {
		return nil, fmt.Errorf("advertiser id is required: %w", port.ErrValidation)
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("name is required: %w", port.ErrValidation)
	}
	zone, err := l.zones.GetZone(ctx, req.ZoneID)
	if errors.Is(err, port.ErrNotFound) {
		return nil, fmt.Errorf("zone %d does not exist: %w", req.ZoneID, port.ErrValidation)
	}
	if err != nil {
		return nil, err
	}
	if !zone.IsActive() {
		return nil, fmt.Errorf("zone %d is inactive: %w", zone.ID, port.ErrValidation)
	}

	cpv := req.CPV
	if cpv.IsZero() {
		cpv = zone.PricePerView
	}
	switch {
	case !req.Budget.IsPositive():
		return nil, fmt.Errorf("budget must be positive: %w", port.ErrValidation)
	case !cpv.IsPositive():
		return nil, fmt.Errorf("cpv must be positive: %w", port.ErrValidation)
	case cpv.GreaterThan(req.Budget):
		return nil, fmt.Errorf("cpv %s exceeds budget %s: %w", cpv, req.Budget, port.ErrValidation)
	case req.ViewsPurchased < 0:
		return nil, fmt.Errorf("views purchased must not be negative: %w", port.ErrValidation)
	}

	tags := domain.NormalizeTags(req.TargetingTags)
	if !zone.AllowsTags(tags) {
		return nil, fmt.Errorf("targeting tags %v not allowed in zone %d: %w", tags, zone.ID, port.ErrValidation)
	}

	now := l.now()
	if req.StartDate != nil && req.EndDate != nil && !req.EndDate.After(*req.StartDate) {
		return nil, fmt.Errorf("end date must be after start date: %w", port.ErrValidation)
	}
	if req.EndDate != nil && req.EndDate.Before(now) {
		return nil, fmt.Errorf("end date is in the past: %w", port.ErrValidation)
	}

	c := &domain.Campaign{
		AdvertiserID:   req.AdvertiserID,
		ZoneID:         zone.ID,
		Name:           strings.TrimSpace(req.Name),
		Budget:         req.Budget,
		Spent:          decimal.Zero,
		CPV:            cpv,
		ViewsPurchased: req.ViewsPurchased,
		TargetingTags:  tags,
		PaymentStatus:  domain.PaymentPending,
		Status:         domain.StatusDraft,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		CreatedAt:      now.UTC(),
	}
	if err = l.campaigns.CreateCampaign(ctx, c); err != nil {
		return nil, err
	}
	l.logger.InfoContext(ctx, "campaign created",
		slog.Int64("campaign_id", c.ID),
		slog.String("advertiser_id", c.AdvertiserID),
		slog.Int64("zone_id", c.ZoneID))
	return c, nil
}

func (l *Lifecycle) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	return l.campaigns.GetCampaign(ctx, id)
}

func (l *Lifecycle) ListCampaigns(ctx context.Context, filter port.CampaignFilter) ([]domain.Campaign, error) {
	return l.campaigns.ListCampaigns(ctx, filter)
}

// Submit requests a charge for the campaign budget and moves the campaign
// from Draft to PendingPayment.
func (l *Lifecycle) Submit(ctx context.Context, id int64) (*port.SubmitResult, error) {
	c, err := l.campaigns.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = domain.CheckTransition(c.Status, domain.StatusPendingPayment); err != nil {
		return nil, fmt.Errorf("campaign %d: %w", id, err)
	}

	charge, err := l.charge(ctx, c)
	if err != nil {
		return nil, err
	}
	updated, err := l.apply(ctx, c, port.StatusChange{
		To:               domain.StatusPendingPayment,
		PaymentStatus:    domain.PaymentPending,
		PaymentReference: charge.Reference,
	}, "submitted")
	if err != nil {
		return nil, err
	}
	return &port.SubmitResult{Campaign: updated, CheckoutURL: charge.CheckoutURL}, nil
}

// RequestPayment issues a new charge for a campaign still waiting for
// payment, typically after a failed attempt. The status does not change.
func (l *Lifecycle) RequestPayment(ctx context.Context, id int64) (*port.SubmitResult, error) {
	c, err := l.campaigns.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Status != domain.StatusPendingPayment {
		return nil, fmt.Errorf("campaign %d: %w", id, &domain.TransitionError{
			From:   c.Status,
			To:     domain.StatusPendingPayment,
			Reason: "payment can only be requested while pending payment",
		})
	}

	charge, err := l.charge(ctx, c)
	if err != nil {
		return nil, err
	}
	updated, err := l.campaigns.ChangeStatus(ctx, port.StatusChange{
		CampaignID:       id,
		From:             []domain.CampaignStatus{domain.StatusPendingPayment},
		To:               domain.StatusPendingPayment,
		PaymentStatus:    domain.PaymentPending,
		PaymentReference: charge.Reference,
		At:               l.now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	l.logger.InfoContext(ctx, "payment requested",
		slog.Int64("campaign_id", id), slog.Int("attempts", updated.PaymentAttempts))
	return &port.SubmitResult{Campaign: updated, CheckoutURL: charge.CheckoutURL}, nil
}

// ConfirmPayment applies a payment webhook. Deliveries are deduplicated by
// their required event id, and activation is a compare-and-set on
// PendingPayment, so a replayed success activates the campaign exactly
// once. When the store fails before anything was applied the event id is
// released again, so the provider's retry is not swallowed as a
// duplicate. A failure is recorded against the campaign and, once
// MaxPaymentAttempts is reached, rejects it. A failure never returns an
// error by itself.
func (l *Lifecycle) ConfirmPayment(ctx context.Context, n port.PaymentNotification) (*domain.Campaign, error) {
	if n.Reference == "" {
		return nil, fmt.Errorf("payment reference is required: %w", port.ErrValidation)
	}
	if n.EventID == "" {
		return nil, fmt.Errorf("payment event id is required: %w", port.ErrValidation)
	}
	c, err := l.campaigns.GetCampaignByPaymentReference(ctx, n.Reference)
	if err != nil {
		return nil, err
	}

	first, err := l.payments.RecordPaymentEvent(ctx, port.PaymentEvent{
		EventID:    n.EventID,
		CampaignID: c.ID,
		Reference:  n.Reference,
		Succeeded:  n.Succeeded,
		ReceivedAt: l.now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	if !first {
		l.logger.InfoContext(ctx, "duplicate payment event ignored",
			slog.String("event_id", n.EventID), slog.Int64("campaign_id", c.ID))
		return c, nil
	}

	var (
		updated *domain.Campaign
		written bool
	)
	if n.Succeeded {
		updated, err = l.activate(ctx, c)
	} else {
		updated, written, err = l.paymentFailed(ctx, c, n.Reason)
	}
	var terr *domain.TransitionError
	if err != nil && !written && !errors.As(err, &terr) {
		// Nothing was applied; let the provider's redelivery through.
		if forgetErr := l.payments.ForgetPaymentEvent(context.WithoutCancel(ctx), n.EventID); forgetErr != nil {
			l.logger.ErrorContext(ctx, "payment event release failed",
				slog.String("event_id", n.EventID), slog.Any("error", forgetErr))
		}
	}
	return updated, err
}

func (l *Lifecycle) activate(ctx context.Context, c *domain.Campaign) (*domain.Campaign, error) {
	if c.Status == domain.StatusActive && c.PaymentStatus == domain.PaymentPaid {
		return c, nil
	}
	if err := domain.CheckTransition(c.Status, domain.StatusActive); err != nil || c.Status != domain.StatusPendingPayment {
		return nil, fmt.Errorf("campaign %d: %w", c.ID, &domain.TransitionError{
			From: c.Status, To: domain.StatusActive, Reason: "payment confirmed outside pending payment",
		})
	}

	now := l.now().UTC()
	updated, err := l.apply(ctx, c, port.StatusChange{
		To:            domain.StatusActive,
		PaymentStatus: domain.PaymentPaid,
		StartDate:     now,
	}, "payment confirmed")
	if errors.Is(err, port.ErrConflict) {
		// A concurrent delivery of the same payment won the race.
		cur, getErr := l.campaigns.GetCampaign(ctx, c.ID)
		if getErr == nil && cur.Status == domain.StatusActive {
			return cur, nil
		}
	}
	return updated, err
}

// paymentFailed counts one failed attempt. written reports whether the
// attempt reached the store, even when the rejection that follows fails.
func (l *Lifecycle) paymentFailed(ctx context.Context, c *domain.Campaign, reason string) (_ *domain.Campaign, written bool, _ error) {
	if c.Status != domain.StatusPendingPayment {
		return nil, false, fmt.Errorf("campaign %d: %w", c.ID, &domain.TransitionError{
			From: c.Status, To: domain.StatusRejected, Reason: "payment failure outside pending payment",
		})
	}
	updated, err := l.campaigns.RecordPaymentFailure(ctx, c.ID, l.now().UTC())
	if err != nil {
		return nil, false, err
	}
	l.logger.WarnContext(ctx, "payment failed",
		slog.Int64("campaign_id", c.ID),
		slog.Int("attempts", updated.PaymentAttempts),
		slog.String("reason", reason))

	if l.cfg.MaxPaymentAttempts <= 0 || updated.PaymentAttempts < l.cfg.MaxPaymentAttempts {
		return updated, true, nil
	}
	rejected, err := l.apply(ctx, updated, port.StatusChange{To: domain.StatusRejected},
		fmt.Sprintf("payment failed %d times", updated.PaymentAttempts))
	if errors.Is(err, port.ErrConflict) {
		rejected, err = l.campaigns.GetCampaign(ctx, c.ID)
	}
	return rejected, true, err
}

// Pause stops delivery of an Active campaign immediately.
func (l *Lifecycle) Pause(ctx context.Context, id int64) (*domain.Campaign, error) {
	return l.transition(ctx, id, domain.StatusPaused, "paused")
}

// Resume reactivates a Paused campaign whose schedule has not ended and
// which can still fund an impression.
func (l *Lifecycle) Resume(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := l.campaigns.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = domain.CheckTransition(c.Status, domain.StatusActive); err != nil || c.Status != domain.StatusPaused {
		return nil, fmt.Errorf("campaign %d: %w", id, &domain.TransitionError{
			From: c.Status, To: domain.StatusActive, Reason: "only paused campaigns can be resumed",
		})
	}
	if c.Ended(l.now()) {
		return nil, fmt.Errorf("campaign %d: %w", id, &domain.TransitionError{
			From: c.Status, To: domain.StatusActive, Reason: "end date has passed",
		})
	}
	if c.Exhausted() {
		return nil, fmt.Errorf("campaign %d: %w", id, &domain.TransitionError{
			From: c.Status, To: domain.StatusActive, Reason: "budget exhausted",
		})
	}
	return l.apply(ctx, c, port.StatusChange{To: domain.StatusActive}, "resumed")
}

// Reject denies a campaign before it is activated.
func (l *Lifecycle) Reject(ctx context.Context, id int64, reason string) (*domain.Campaign, error) {
	if reason == "" {
		reason = "rejected"
	}
	return l.transition(ctx, id, domain.StatusRejected, reason)
}

// Complete ends an Active campaign. Completing an already completed
// campaign is a no-op, since concurrent serves may race to do it.
func (l *Lifecycle) Complete(ctx context.Context, id int64, reason string) (*domain.Campaign, error) {
	c, err := l.campaigns.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Status == domain.StatusCompleted {
		return c, nil
	}
	if err = domain.CheckTransition(c.Status, domain.StatusCompleted); err != nil {
		return nil, fmt.Errorf("campaign %d: %w", id, err)
	}
	updated, err := l.apply(ctx, c, port.StatusChange{To: domain.StatusCompleted}, reason)
	if errors.Is(err, port.ErrConflict) {
		if cur, getErr := l.campaigns.GetCampaign(ctx, id); getErr == nil && cur.Status == domain.StatusCompleted {
			return cur, nil
		}
	}
	return updated, err
}

// ExpireDue ends every campaign whose end date has passed. Active
// campaigns that already ran out of budget or views are Completed, the
// rest are Expired. It returns how many campaigns changed status.
func (l *Lifecycle) ExpireDue(ctx context.Context, now time.Time) (int, error) {
	due, err := l.campaigns.FindEnded(ctx, now, []domain.CampaignStatus{
		domain.StatusActive, domain.StatusPendingPayment, domain.StatusPaused,
	})
	if err != nil {
		return 0, err
	}

	var (
		changed int
		errs    []error
	)
	for i := range due {
		c := &due[i]
		to, reason := domain.StatusExpired, "end date passed"
		if c.Status == domain.StatusActive && c.Exhausted() {
			to, reason = domain.StatusCompleted, "budget exhausted"
		}
		_, err = l.apply(ctx, c, port.StatusChange{To: to}, reason)
		switch {
		case err == nil:
			changed++
		case errors.Is(err, port.ErrConflict):
		default:
			errs = append(errs, err)
		}
	}
	return changed, errors.Join(errs...)
}

// Retire removes a campaign from listings. A Draft or Rejected campaign
// that never delivered is deleted outright; anything with history keeps
// its row with retiredAt set. Active and Paused campaigns must be ended
// first.
func (l *Lifecycle) Retire(ctx context.Context, id int64) error {
	c, err := l.campaigns.GetCampaign(ctx, id)
	if err != nil {
		return err
	}
	if c.Status == domain.StatusActive || c.Status == domain.StatusPaused {
		return fmt.Errorf("campaign %d is %s, pause and complete it first: %w", id, c.Status, port.ErrConflict)
	}

	deletable := (c.Status == domain.StatusDraft || c.Status == domain.StatusRejected) && !c.HasDeliveryHistory()
	if deletable {
		err = l.campaigns.DeleteCampaign(ctx, id)
		if err == nil {
			l.logger.InfoContext(ctx, "campaign deleted", slog.Int64("campaign_id", id))
			return nil
		}
		if !errors.Is(err, port.ErrConflict) {
			return err
		}
	}
	if err = l.campaigns.RetireCampaign(ctx, id, l.now().UTC()); err != nil {
		return err
	}
	l.logger.InfoContext(ctx, "campaign retired", slog.Int64("campaign_id", id))
	return nil
}

// GetStats reports the delivery counters of a campaign.
func (l *Lifecycle) GetStats(ctx context.Context, id int64) (*port.CampaignStats, error) {
	c, err := l.campaigns.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	var ctr float64
	if c.ViewsDelivered > 0 {
		ctr = float64(c.Clicks) / float64(c.ViewsDelivered)
	}
	return &port.CampaignStats{
		CampaignID:     c.ID,
		Status:         c.Status,
		ViewsDelivered: c.ViewsDelivered,
		ViewsPurchased: c.ViewsPurchased,
		UniqueViews:    c.UniqueViews,
		Clicks:         c.Clicks,
		CTR:            ctr,
		Spent:          c.Spent,
		Budget:         c.Budget,
		Remaining:      c.Remaining(),
	}, nil
}

func (l *Lifecycle) transition(ctx context.Context, id int64, to domain.CampaignStatus, reason string) (*domain.Campaign, error) {
	c, err := l.campaigns.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = domain.CheckTransition(c.Status, to); err != nil {
		return nil, fmt.Errorf("campaign %d: %w", id, err)
	}
	return l.apply(ctx, c, port.StatusChange{To: to}, reason)
}

// apply moves c from its observed status to change.To and publishes the
// transition. change.CampaignID, From and At are filled in here.
func (l *Lifecycle) apply(ctx context.Context, c *domain.Campaign, change port.StatusChange, reason string) (*domain.Campaign, error) {
	if err := domain.CheckTransition(c.Status, change.To); err != nil {
		return nil, fmt.Errorf("campaign %d: %w", c.ID, err)
	}
	change.CampaignID = c.ID
	change.From = []domain.CampaignStatus{c.Status}
	change.At = l.now().UTC()

	updated, err := l.campaigns.ChangeStatus(ctx, change)
	if err != nil {
		return nil, err
	}

	l.metrics.Transitions.WithLabelValues(string(c.Status), string(updated.Status)).Inc()
	l.logger.InfoContext(ctx, "campaign transition",
		slog.Int64("campaign_id", c.ID),
		slog.String("from", string(c.Status)),
		slog.String("to", string(updated.Status)),
		slog.String("reason", reason))

	ev := domain.TransitionEvent{
		ID:         uuid.NewString(),
		CampaignID: c.ID,
		From:       c.Status,
		To:         updated.Status,
		Reason:     reason,
		Timestamp:  change.At,
	}
	if err = l.sink.PublishTransition(ctx, ev); err != nil {
		l.logger.WarnContext(ctx, "transition event dropped",
			slog.Int64("campaign_id", c.ID), slog.Any("error", err))
	}
	return updated, nil
}

func (l *Lifecycle) charge(ctx context.Context, c *domain.Campaign) (*port.Charge, error) {
	charge, err := l.gateway.CreateCharge(ctx, port.ChargeRequest{
		CampaignID:   c.ID,
		AdvertiserID: c.AdvertiserID,
		Amount:       c.Budget,
		Currency:     l.cfg.Currency,
		Description:  fmt.Sprintf("Campaign %d: %s", c.ID, c.Name),
	})
	if err != nil {
		if !errors.Is(err, port.ErrPaymentFailure) {
			err = fmt.Errorf("%v: %w", err, port.ErrPaymentFailure)
		}
		return nil, fmt.Errorf("campaign %d: %w", c.ID, err)
	}
	return charge, nil
}
