package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"club-ads/internal/core/domain"
	"club-ads/internal/core/port"
	"club-ads/internal/core/port/mocks"
)

func validCampaignReq(zoneID int64) port.CreateCampaignReq {
	return port.CreateCampaignReq{
		AdvertiserID: "adv-1",
		ZoneID:       zoneID,
		Name:         "Season tickets",
		Budget:       decimal.NewFromInt(500),
	}
}

func TestLifecycle_CreateCampaign(t *testing.T) {
	e := newEngine(t)
	z := e.zone(t, "football", "tickets")

	req := validCampaignReq(z.ID)
	req.TargetingTags = []string{" Tickets", "football", "tickets"}
	c, err := e.lifecycle.CreateCampaign(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusDraft, c.Status)
	assert.Equal(t, domain.PaymentPending, c.PaymentStatus)
	assert.True(t, c.CPV.Equal(z.PricePerView), "cpv defaults to the zone price")
	assert.Equal(t, []string{"football", "tickets"}, c.TargetingTags)
	assert.True(t, c.Spent.IsZero())
}

func TestLifecycle_CreateCampaignValidation(t *testing.T) {
	e := newEngine(t)
	z := e.zone(t, "football")
	inactive := e.zone(t)
	_, err := e.store.SetZoneStatus(context.Background(), inactive.ID, domain.ZoneInactive)
	require.NoError(t, err)

	now := time.Now()
	cases := map[string]func(r *port.CreateCampaignReq){
		"missing advertiser": func(r *port.CreateCampaignReq) { r.AdvertiserID = "" },
		"missing name":       func(r *port.CreateCampaignReq) { r.Name = " " },
		"unknown zone":       func(r *port.CreateCampaignReq) { r.ZoneID = 99 },
		"inactive zone":      func(r *port.CreateCampaignReq) { r.ZoneID = inactive.ID },
		"zero budget":        func(r *port.CreateCampaignReq) { r.Budget = decimal.Zero },
		"negative cpv":       func(r *port.CreateCampaignReq) { r.CPV = decimal.NewFromInt(-1) },
		"cpv above budget":   func(r *port.CreateCampaignReq) { r.CPV = decimal.NewFromInt(501) },
		"negative views":     func(r *port.CreateCampaignReq) { r.ViewsPurchased = -1 },
		"disallowed tag":     func(r *port.CreateCampaignReq) { r.TargetingTags = []string{"cricket"} },
		"end before start": func(r *port.CreateCampaignReq) {
			r.StartDate, r.EndDate = ptr(now.Add(48*time.Hour)), ptr(now.Add(24*time.Hour))
		},
		"end in the past": func(r *port.CreateCampaignReq) { r.EndDate = ptr(now.Add(-time.Hour)) },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := validCampaignReq(z.ID)
			mutate(&req)
			_, err := e.lifecycle.CreateCampaign(context.Background(), req)
			assert.ErrorIs(t, err, port.ErrValidation)
		})
	}
}

func TestLifecycle_SubmitRequestsCharge(t *testing.T) {
	gateway := mocks.NewMockPaymentGateway(t)
	e := newEngine(t, withGateway(gateway))
	z := e.zone(t)
	c, err := e.lifecycle.CreateCampaign(context.Background(), validCampaignReq(z.ID))
	require.NoError(t, err)

	gateway.EXPECT().CreateCharge(mock.Anything, mock.MatchedBy(func(req port.ChargeRequest) bool {
		return req.CampaignID == c.ID && req.Amount.Equal(decimal.NewFromInt(500)) && req.Currency == "GBP"
	})).Return(&port.Charge{Reference: "ch_1", CheckoutURL: "https://pay.example/ch_1"}, nil).Once()

	res, err := e.lifecycle.Submit(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPendingPayment, res.Campaign.Status)
	assert.Equal(t, "ch_1", res.Campaign.PaymentReference)
	assert.Equal(t, "https://pay.example/ch_1", res.CheckoutURL)
	assert.Equal(t, 1, e.sink.transitionsTo(c.ID, domain.StatusPendingPayment))

	_, err = e.lifecycle.Submit(context.Background(), c.ID)
	assert.ErrorIs(t, err, port.ErrInvalidTransition)
}

func TestLifecycle_SubmitGatewayFailureKeepsDraft(t *testing.T) {
	gateway := mocks.NewMockPaymentGateway(t)
	e := newEngine(t, withGateway(gateway))
	z := e.zone(t)
	c, err := e.lifecycle.CreateCampaign(context.Background(), validCampaignReq(z.ID))
	require.NoError(t, err)

	gateway.EXPECT().CreateCharge(mock.Anything, mock.Anything).Return(nil, errors.New("gateway timeout")).Once()

	_, err = e.lifecycle.Submit(context.Background(), c.ID)
	assert.ErrorIs(t, err, port.ErrPaymentFailure)
	assert.Equal(t, domain.StatusDraft, e.get(t, c.ID).Status)
}

// submitted returns a campaign waiting for payment with its reference.
func submitted(t *testing.T, e *engine) *domain.Campaign {
	t.Helper()
	z := e.zone(t)
	c, err := e.lifecycle.CreateCampaign(context.Background(), validCampaignReq(z.ID))
	require.NoError(t, err)
	res, err := e.lifecycle.Submit(context.Background(), c.ID)
	require.NoError(t, err)
	return res.Campaign
}

func TestLifecycle_ConfirmPaymentIsIdempotent(t *testing.T) {
	e := newEngine(t)
	c := submitted(t, e)
	ctx := context.Background()
	n := port.PaymentNotification{EventID: "evt-1", Reference: c.PaymentReference, Succeeded: true}

	first, err := e.lifecycle.ConfirmPayment(ctx, n)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, first.Status)
	assert.Equal(t, domain.PaymentPaid, first.PaymentStatus)
	require.NotNil(t, first.StartDate)

	again, err := e.lifecycle.ConfirmPayment(ctx, n)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, again.Status)

	n.EventID = "evt-2"
	_, err = e.lifecycle.ConfirmPayment(ctx, n)
	require.NoError(t, err)

	assert.Equal(t, 1, e.sink.transitionsTo(c.ID, domain.StatusActive))
}

// failingCampaigns fails the first call of the chosen kind with a store
// error and passes everything else through.
type failingCampaigns struct {
	port.CampaignRepository
	mu           sync.Mutex
	failActivate int
	failFailure  int
}

func (r *failingCampaigns) ChangeStatus(ctx context.Context, change port.StatusChange) (*domain.Campaign, error) {
	r.mu.Lock()
	fail := change.To == domain.StatusActive && r.failActivate > 0
	if fail {
		r.failActivate--
	}
	r.mu.Unlock()
	if fail {
		return nil, errors.New("connection reset")
	}
	return r.CampaignRepository.ChangeStatus(ctx, change)
}

func (r *failingCampaigns) RecordPaymentFailure(ctx context.Context, id int64, at time.Time) (*domain.Campaign, error) {
	r.mu.Lock()
	fail := r.failFailure > 0
	if fail {
		r.failFailure--
	}
	r.mu.Unlock()
	if fail {
		return nil, errors.New("connection reset")
	}
	return r.CampaignRepository.RecordPaymentFailure(ctx, id, at)
}

func TestLifecycle_ConfirmPaymentRedeliveryAfterStoreError(t *testing.T) {
	flaky := &failingCampaigns{failActivate: 1}
	e := newEngine(t, withCampaigns(func(r port.CampaignRepository) port.CampaignRepository {
		flaky.CampaignRepository = r
		return flaky
	}))
	c := submitted(t, e)
	ctx := context.Background()
	n := port.PaymentNotification{EventID: "evt-1", Reference: c.PaymentReference, Succeeded: true}

	_, err := e.lifecycle.ConfirmPayment(ctx, n)
	require.Error(t, err)
	assert.Equal(t, domain.StatusPendingPayment, e.get(t, c.ID).Status)

	got, err := e.lifecycle.ConfirmPayment(ctx, n)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, got.Status)
	assert.Equal(t, domain.PaymentPaid, got.PaymentStatus)
	assert.Equal(t, 1, e.sink.transitionsTo(c.ID, domain.StatusActive))
}

func TestLifecycle_PaymentFailureRedelivery(t *testing.T) {
	flaky := &failingCampaigns{failFailure: 1}
	e := newEngine(t, withCampaigns(func(r port.CampaignRepository) port.CampaignRepository {
		flaky.CampaignRepository = r
		return flaky
	}))
	c := submitted(t, e)
	ctx := context.Background()
	n := port.PaymentNotification{EventID: "fail-1", Reference: c.PaymentReference, Reason: "card declined"}

	_, err := e.lifecycle.ConfirmPayment(ctx, n)
	require.Error(t, err)
	assert.Zero(t, e.get(t, c.ID).PaymentAttempts)

	got, err := e.lifecycle.ConfirmPayment(ctx, n)
	require.NoError(t, err)
	assert.Equal(t, 1, got.PaymentAttempts)

	again, err := e.lifecycle.ConfirmPayment(ctx, n)
	require.NoError(t, err)
	assert.Equal(t, 1, again.PaymentAttempts)
	assert.Equal(t, 1, e.get(t, c.ID).PaymentAttempts)
}

func TestLifecycle_ConcurrentWebhooksActivateOnce(t *testing.T) {
	e := newEngine(t)
	c := submitted(t, e)

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = e.lifecycle.ConfirmPayment(context.Background(), port.PaymentNotification{
				EventID:   fmt.Sprintf("evt-%d", i),
				Reference: c.PaymentReference,
				Succeeded: true,
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, domain.StatusActive, e.get(t, c.ID).Status)
	assert.Equal(t, 1, e.sink.transitionsTo(c.ID, domain.StatusActive))
}

func TestLifecycle_PaymentFailurePolicy(t *testing.T) {
	e := newEngine(t)
	c := submitted(t, e)
	ctx := context.Background()

	for attempt := 1; attempt <= 2; attempt++ {
		got, err := e.lifecycle.ConfirmPayment(ctx, port.PaymentNotification{
			EventID:   fmt.Sprintf("fail-%d", attempt),
			Reference: c.PaymentReference,
			Reason:    "card declined",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPendingPayment, got.Status)
		assert.Equal(t, domain.PaymentFailed, got.PaymentStatus)
		assert.Equal(t, attempt, got.PaymentAttempts)
	}

	retry, err := e.lifecycle.RequestPayment(ctx, c.ID)
	require.NoError(t, err)
	assert.NotEqual(t, c.PaymentReference, retry.Campaign.PaymentReference)
	assert.Equal(t, domain.PaymentPending, retry.Campaign.PaymentStatus)
	assert.Equal(t, domain.StatusPendingPayment, retry.Campaign.Status)

	got, err := e.lifecycle.ConfirmPayment(ctx, port.PaymentNotification{
		EventID:   "fail-3",
		Reference: retry.Campaign.PaymentReference,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, got.Status)
	assert.Equal(t, 3, got.PaymentAttempts)

	_, err = e.lifecycle.RequestPayment(ctx, c.ID)
	assert.ErrorIs(t, err, port.ErrInvalidTransition)
}

func TestLifecycle_ConfirmPaymentUnknownReference(t *testing.T) {
	e := newEngine(t)
	_, err := e.lifecycle.ConfirmPayment(context.Background(), port.PaymentNotification{EventID: "evt-1", Reference: "nope", Succeeded: true})
	assert.ErrorIs(t, err, port.ErrNotFound)

	_, err = e.lifecycle.ConfirmPayment(context.Background(), port.PaymentNotification{EventID: "evt-1", Succeeded: true})
	assert.ErrorIs(t, err, port.ErrValidation)
}

func TestLifecycle_ConfirmPaymentRequiresEventID(t *testing.T) {
	e := newEngine(t)
	c := submitted(t, e)

	_, err := e.lifecycle.ConfirmPayment(context.Background(), port.PaymentNotification{Reference: c.PaymentReference, Reason: "card declined"})
	assert.ErrorIs(t, err, port.ErrValidation)
	assert.Zero(t, e.get(t, c.ID).PaymentAttempts)
}

func TestLifecycle_PauseAndResume(t *testing.T) {
	e := newEngine(t)
	z := e.zone(t)
	c := e.campaign(t, z.ID, campaignSpec{budget: 1000, cpv: 1})
	ctx := context.Background()

	paused, err := e.lifecycle.Pause(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaused, paused.Status)

	resp, err := e.delivery.ServeAd(ctx, port.ServeRequest{ZoneID: z.ID})
	require.NoError(t, err)
	assert.Nil(t, resp, "paused campaigns are not served")

	_, err = e.lifecycle.Pause(ctx, c.ID)
	assert.ErrorIs(t, err, port.ErrInvalidTransition)

	resumed, err := e.lifecycle.Resume(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, resumed.Status)

	resp, err = e.delivery.ServeAd(ctx, port.ServeRequest{ZoneID: z.ID})
	require.NoError(t, err)
	assert.NotNil(t, resp)
}

func TestLifecycle_ResumeGuards(t *testing.T) {
	e := newEngine(t)
	z := e.zone(t)
	ended := e.campaign(t, z.ID, campaignSpec{budget: 1000, cpv: 1, status: domain.StatusPaused, endDate: ptr(time.Now().Add(-time.Hour))})
	spent := e.campaign(t, z.ID, campaignSpec{budget: 10, cpv: 1, viewsDelivered: 10, status: domain.StatusPaused})
	draft := e.campaign(t, z.ID, campaignSpec{budget: 10, cpv: 1, status: domain.StatusDraft})

	var te *domain.TransitionError
	for _, id := range []int64{ended.ID, spent.ID, draft.ID} {
		_, err := e.lifecycle.Resume(context.Background(), id)
		require.ErrorAs(t, err, &te)
		assert.ErrorIs(t, err, port.ErrInvalidTransition)
	}
}

func TestLifecycle_RejectOnlyBeforeActivation(t *testing.T) {
	e := newEngine(t)
	z := e.zone(t)
	draft := e.campaign(t, z.ID, campaignSpec{budget: 10, cpv: 1, status: domain.StatusDraft})
	active := e.campaign(t, z.ID, campaignSpec{budget: 10, cpv: 1})

	got, err := e.lifecycle.Reject(context.Background(), draft.ID, "creative violates policy")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, got.Status)

	_, err = e.lifecycle.Reject(context.Background(), active.ID, "")
	assert.ErrorIs(t, err, port.ErrInvalidTransition)

	_, err = e.lifecycle.Reject(context.Background(), draft.ID, "")
	assert.ErrorIs(t, err, port.ErrInvalidTransition, "terminal states are final")
}

func TestLifecycle_CompleteIsIdempotent(t *testing.T) {
	e := newEngine(t)
	z := e.zone(t)
	c := e.campaign(t, z.ID, campaignSpec{budget: 10, cpv: 1})

	for range 2 {
		got, err := e.lifecycle.Complete(context.Background(), c.ID, "manual")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, got.Status)
	}
	assert.Equal(t, 1, e.sink.transitionsTo(c.ID, domain.StatusCompleted))
}

func TestLifecycle_ExpireDue(t *testing.T) {
	e := newEngine(t)
	z := e.zone(t)
	past := ptr(time.Now().Add(-time.Hour))
	future := ptr(time.Now().Add(time.Hour))

	activeEnded := e.campaign(t, z.ID, campaignSpec{budget: 100, cpv: 1, endDate: past})
	exhaustedEnded := e.campaign(t, z.ID, campaignSpec{budget: 10, cpv: 1, viewsDelivered: 10, endDate: past})
	pausedEnded := e.campaign(t, z.ID, campaignSpec{budget: 100, cpv: 1, status: domain.StatusPaused, endDate: past})
	pendingEnded := e.campaign(t, z.ID, campaignSpec{budget: 100, cpv: 1, status: domain.StatusPendingPayment, endDate: past})
	draftEnded := e.campaign(t, z.ID, campaignSpec{budget: 100, cpv: 1, status: domain.StatusDraft, endDate: past})
	running := e.campaign(t, z.ID, campaignSpec{budget: 100, cpv: 1, endDate: future})

	n, err := e.lifecycle.ExpireDue(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	assert.Equal(t, domain.StatusExpired, e.get(t, activeEnded.ID).Status)
	assert.Equal(t, domain.StatusCompleted, e.get(t, exhaustedEnded.ID).Status)
	assert.Equal(t, domain.StatusExpired, e.get(t, pausedEnded.ID).Status)
	assert.Equal(t, domain.StatusExpired, e.get(t, pendingEnded.ID).Status)
	assert.Equal(t, domain.StatusDraft, e.get(t, draftEnded.ID).Status)
	assert.Equal(t, domain.StatusActive, e.get(t, running.ID).Status)

	n, err = e.lifecycle.ExpireDue(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestLifecycle_Retire(t *testing.T) {
	e := newEngine(t)
	z := e.zone(t)
	ctx := context.Background()
	draft := e.campaign(t, z.ID, campaignSpec{budget: 10, cpv: 1, status: domain.StatusDraft})
	done := e.campaign(t, z.ID, campaignSpec{budget: 10, cpv: 1, viewsDelivered: 10, status: domain.StatusCompleted})
	active := e.campaign(t, z.ID, campaignSpec{budget: 10, cpv: 1})

	require.NoError(t, e.lifecycle.Retire(ctx, draft.ID))
	_, err := e.store.GetCampaign(ctx, draft.ID)
	assert.ErrorIs(t, err, port.ErrNotFound)

	require.NoError(t, e.lifecycle.Retire(ctx, done.ID))
	kept := e.get(t, done.ID)
	require.NotNil(t, kept.RetiredAt)
	assert.Equal(t, int64(10), kept.ViewsDelivered)

	listed, err := e.lifecycle.ListCampaigns(ctx, port.CampaignFilter{AdvertiserID: "adv-1"})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, active.ID, listed[0].ID)

	assert.ErrorIs(t, e.lifecycle.Retire(ctx, active.ID), port.ErrConflict)
}

func TestLifecycle_GetStats(t *testing.T) {
	e := newEngine(t)
	z := e.zone(t)
	c := e.campaign(t, z.ID, campaignSpec{budget: 100, cpv: 2, viewsPurchased: 50, viewsDelivered: 20})
	for range 5 {
		require.NoError(t, e.store.IncrementClicks(context.Background(), c.ID))
	}

	stats, err := e.lifecycle.GetStats(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(20), stats.ViewsDelivered)
	assert.Equal(t, int64(50), stats.ViewsPurchased)
	assert.Equal(t, int64(5), stats.Clicks)
	assert.InDelta(t, 0.25, stats.CTR, 1e-9)
	assert.True(t, stats.Spent.Equal(decimal.NewFromInt(40)))
	assert.True(t, stats.Remaining.Equal(decimal.NewFromInt(60)))
}
