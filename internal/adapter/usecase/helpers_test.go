package usecase

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"club-ads/internal/adapter/memory"
	"club-ads/internal/adapter/payment"
	"club-ads/internal/core/domain"
	"club-ads/internal/core/port"
	"club-ads/internal/metrics"
)

// recordingSink keeps every published event for assertions.
type recordingSink struct {
	mu          sync.Mutex
	deliveries  []domain.DeliveryEvent
	transitions []domain.TransitionEvent
}

func (s *recordingSink) PublishDelivery(_ context.Context, ev domain.DeliveryEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deliveries = append(s.deliveries, ev)
	return nil
}

func (s *recordingSink) PublishTransition(_ context.Context, ev domain.TransitionEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transitions = append(s.transitions, ev)
	return nil
}

func (s *recordingSink) transitionsTo(campaignID int64, to domain.CampaignStatus) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, ev := range s.transitions {
		if ev.CampaignID == campaignID && ev.To == to {
			n++
		}
	}
	return n
}

func (s *recordingSink) deliveriesOf(typ domain.EventType) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, ev := range s.deliveries {
		if ev.Type == typ {
			n++
		}
	}
	return n
}

// interceptCampaigns lets a test take over IncrementDelivery while every
// other call reaches the wrapped repository.
type interceptCampaigns struct {
	port.CampaignRepository
	intercept func(ctx context.Context, inc port.DeliveryIncrement) *interception
}

type interception struct {
	res port.DeliveryResult
	err error
}

func (r *interceptCampaigns) IncrementDelivery(ctx context.Context, inc port.DeliveryIncrement) (port.DeliveryResult, error) {
	if r.intercept != nil {
		if got := r.intercept(ctx, inc); got != nil {
			return got.res, got.err
		}
	}
	return r.CampaignRepository.IncrementDelivery(ctx, inc)
}

type engine struct {
	store     *memory.Store
	campaigns port.CampaignRepository
	sink      *recordingSink
	metrics   *metrics.Metrics
	selector  *Selector
	meter     *Meter
	lifecycle *Lifecycle
	delivery  *Delivery
	inventory *Inventory
}

type engineOption func(*engineConfig)

type engineConfig struct {
	intercept func(ctx context.Context, inc port.DeliveryIncrement) *interception
	wrap      func(port.CampaignRepository) port.CampaignRepository
	unique    port.UniqueViewTracker
	gateway   port.PaymentGateway
	timeout   time.Duration
}

func withIntercept(fn func(ctx context.Context, inc port.DeliveryIncrement) *interception) engineOption {
	return func(c *engineConfig) { c.intercept = fn }
}

// withCampaigns decorates the campaign repository every use case sees.
func withCampaigns(wrap func(port.CampaignRepository) port.CampaignRepository) engineOption {
	return func(c *engineConfig) { c.wrap = wrap }
}

func withUnique(u port.UniqueViewTracker) engineOption {
	return func(c *engineConfig) { c.unique = u }
}

func withGateway(g port.PaymentGateway) engineOption {
	return func(c *engineConfig) { c.gateway = g }
}

func withTimeout(d time.Duration) engineOption {
	return func(c *engineConfig) { c.timeout = d }
}

func newEngine(t *testing.T, opts ...engineOption) *engine {
	t.Helper()
	store := memory.NewStore()
	cfg := engineConfig{unique: memory.NewUniqueViews(), gateway: payment.NewSandbox(""), timeout: time.Second}
	for _, opt := range opts {
		opt(&cfg)
	}
	var campaigns port.CampaignRepository = store
	if cfg.intercept != nil {
		campaigns = &interceptCampaigns{CampaignRepository: store, intercept: cfg.intercept}
	}
	if cfg.wrap != nil {
		campaigns = cfg.wrap(campaigns)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.NewNop()
	sink := &recordingSink{}

	e := &engine{store: store, campaigns: campaigns, sink: sink, metrics: m}
	e.selector = NewSelector(store, campaigns, store)
	e.meter = NewMeter(campaigns, cfg.unique, sink, logger, m)
	e.lifecycle = NewLifecycle(campaigns, store, store, cfg.gateway, sink,
		LifecycleConfig{MaxPaymentAttempts: 3, Currency: "GBP"}, logger, m)
	e.delivery = NewDelivery(e.selector, e.meter, e.lifecycle, cfg.timeout, logger, m)
	e.inventory = NewInventory(store, campaigns, store, logger)
	return e
}

func (e *engine) zone(t *testing.T, allowedTags ...string) *domain.Zone {
	t.Helper()
	z := &domain.Zone{
		Name:         "sidebar",
		Width:        300,
		Height:       250,
		PricePerView: decimal.NewFromInt(1),
		AllowedTags:  domain.NormalizeTags(allowedTags),
		Status:       domain.ZoneActive,
	}
	require.NoError(t, e.store.CreateZone(context.Background(), z))
	return z
}

type campaignSpec struct {
	budget, cpv    int64
	viewsPurchased int64
	viewsDelivered int64
	tags           []string
	status         domain.CampaignStatus
	createdAt      time.Time
	endDate        *time.Time
	creatives      int
}

// campaign stores a campaign straight into the memory store, bypassing
// the lifecycle, and attaches spec.creatives active creatives (one when
// zero).
func (e *engine) campaign(t *testing.T, zoneID int64, spec campaignSpec) *domain.Campaign {
	t.Helper()
	ctx := context.Background()
	if spec.status == "" {
		spec.status = domain.StatusActive
	}
	if spec.createdAt.IsZero() {
		spec.createdAt = time.Now().Add(-time.Hour)
	}
	c := &domain.Campaign{
		AdvertiserID:   "adv-1",
		ZoneID:         zoneID,
		Name:           "campaign",
		Budget:         decimal.NewFromInt(spec.budget),
		CPV:            decimal.NewFromInt(spec.cpv),
		Spent:          decimal.NewFromInt(spec.cpv * spec.viewsDelivered),
		ViewsPurchased: spec.viewsPurchased,
		ViewsDelivered: spec.viewsDelivered,
		TargetingTags:  domain.NormalizeTags(spec.tags),
		PaymentStatus:  domain.PaymentPaid,
		Status:         spec.status,
		EndDate:        spec.endDate,
		CreatedAt:      spec.createdAt,
	}
	require.NoError(t, e.store.CreateCampaign(ctx, c))

	n := max(spec.creatives, 1)
	for range n {
		e.creative(t, c.ID, 0)
	}
	return c
}

func (e *engine) creative(t *testing.T, campaignID int64, views int64) *domain.Creative {
	t.Helper()
	cr := &domain.Creative{
		CampaignID:    campaignID,
		Name:          "banner",
		Type:          domain.CreativeImage,
		URL:           "https://cdn.example.com/banner.png",
		Width:         300,
		Height:        250,
		NumberOfViews: views,
		Status:        domain.CreativeActive,
	}
	require.NoError(t, e.store.CreateCreative(context.Background(), cr))
	return cr
}

func (e *engine) get(t *testing.T, id int64) *domain.Campaign {
	t.Helper()
	c, err := e.store.GetCampaign(context.Background(), id)
	require.NoError(t, err)
	return c
}

func ptr[T any](v T) *T { return &v }
