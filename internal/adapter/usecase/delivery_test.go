package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"club-ads/internal/core/domain"
	"club-ads/internal/core/port"
	"club-ads/internal/core/port/mocks"
)

func TestDelivery_BudgetExhaustionCompletesCampaign(t *testing.T) {
	e := newEngine(t)
	z := e.zone(t)
	c1 := e.campaign(t, z.ID, campaignSpec{budget: 1000, cpv: 100})
	ctx := context.Background()

	for i := 1; i <= 10; i++ {
		resp, err := e.delivery.ServeAd(ctx, port.ServeRequest{ZoneID: z.ID})
		require.NoError(t, err)
		require.NotNil(t, resp, "serve %d", i)
		assert.Equal(t, c1.ID, resp.CampaignID)
	}

	got := e.get(t, c1.ID)
	assert.True(t, got.Spent.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, int64(10), got.ViewsDelivered)

	resp, err := e.delivery.ServeAd(ctx, port.ServeRequest{ZoneID: z.ID})
	require.NoError(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, domain.StatusCompleted, e.get(t, c1.ID).Status)
	assert.Equal(t, 1, e.sink.transitionsTo(c1.ID, domain.StatusCompleted))
	assert.Equal(t, 10.0, testutil.ToFloat64(e.metrics.Served.WithLabelValues("1")))
}

func TestDelivery_ViewTargetExcludesCampaign(t *testing.T) {
	e := newEngine(t)
	z := e.zone(t)
	c2 := e.campaign(t, z.ID, campaignSpec{budget: 1000, cpv: 1, viewsPurchased: 5})
	ctx := context.Background()

	for range 5 {
		resp, err := e.delivery.ServeAd(ctx, port.ServeRequest{ZoneID: z.ID})
		require.NoError(t, err)
		require.NotNil(t, resp)
	}

	_, err := e.selector.SelectAd(ctx, z.ID, nil)
	assert.ErrorIs(t, err, port.ErrNoEligibleAd)

	got := e.get(t, c2.ID)
	assert.Equal(t, int64(5), got.ViewsDelivered)
	assert.True(t, got.Remaining().IsPositive())
	assert.Equal(t, domain.StatusCompleted, got.Status)
}

func TestDelivery_FairnessAcrossEqualCampaigns(t *testing.T) {
	e := newEngine(t)
	z := e.zone(t)
	a := e.campaign(t, z.ID, campaignSpec{budget: 1000, cpv: 1, viewsPurchased: 100})
	b := e.campaign(t, z.ID, campaignSpec{budget: 1000, cpv: 1, viewsPurchased: 100})

	for m := 1; m <= 51; m++ {
		resp, err := e.delivery.ServeAd(context.Background(), port.ServeRequest{ZoneID: z.ID})
		require.NoError(t, err)
		require.NotNil(t, resp)

		va, vb := e.get(t, a.ID).ViewsDelivered, e.get(t, b.ID).ViewsDelivered
		assert.LessOrEqual(t, max(va-vb, vb-va), int64(1), "after %d serves", m)
	}
}

func TestDelivery_TerminalCampaignsNeverServed(t *testing.T) {
	for _, status := range []domain.CampaignStatus{domain.StatusCompleted, domain.StatusExpired, domain.StatusRejected} {
		t.Run(string(status), func(t *testing.T) {
			e := newEngine(t)
			z := e.zone(t)
			c := e.campaign(t, z.ID, campaignSpec{budget: 1000, cpv: 1, status: status})
			ctx := context.Background()

			for range 3 {
				resp, err := e.delivery.ServeAd(ctx, port.ServeRequest{ZoneID: z.ID})
				require.NoError(t, err)
				assert.Nil(t, resp)
			}

			crs, err := e.store.ListCreatives(ctx, c.ID)
			require.NoError(t, err)
			_, err = e.meter.RecordImpression(ctx, &Candidate{Zone: z, Campaign: *c, Creative: crs[0]}, "")
			assert.ErrorIs(t, err, port.ErrCampaignNotActive)

			_, err = e.store.IncrementDelivery(ctx, port.DeliveryIncrement{CampaignID: c.ID, CreativeID: crs[0].ID, Cost: c.CPV})
			assert.ErrorIs(t, err, port.ErrCampaignNotActive)
			assert.Zero(t, e.get(t, c.ID).ViewsDelivered)
		})
	}
}

func TestDelivery_ConcurrentServesRespectBudget(t *testing.T) {
	e := newEngine(t)
	z := e.zone(t)
	c := e.campaign(t, z.ID, campaignSpec{budget: 1000, cpv: 100})

	var (
		wg     sync.WaitGroup
		served atomic.Int64
	)
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := e.delivery.ServeAd(context.Background(), port.ServeRequest{ZoneID: z.ID})
			if err == nil && resp != nil {
				served.Add(1)
			}
		}()
	}
	wg.Wait()

	got := e.get(t, c.ID)
	assert.Equal(t, int64(10), served.Load())
	assert.True(t, got.Spent.LessThanOrEqual(got.Budget))
	assert.True(t, got.Spent.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, domain.StatusCompleted, got.Status)
	assert.Equal(t, 1, e.sink.transitionsTo(c.ID, domain.StatusCompleted))
}

func TestDelivery_RetriesOnceAfterBudgetExceeded(t *testing.T) {
	var rejected int64
	e := newEngine(t, withIntercept(func(_ context.Context, inc port.DeliveryIncrement) *interception {
		if inc.CampaignID == atomic.LoadInt64(&rejected) {
			return &interception{res: port.DeliveryResult{BudgetExceeded: true}}
		}
		return nil
	}))
	z := e.zone(t)
	stale := e.campaign(t, z.ID, campaignSpec{budget: 1000, cpv: 1})
	other := e.campaign(t, z.ID, campaignSpec{budget: 1000, cpv: 1, viewsDelivered: 10})
	atomic.StoreInt64(&rejected, stale.ID)

	resp, err := e.delivery.ServeAd(context.Background(), port.ServeRequest{ZoneID: z.ID})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, other.ID, resp.CampaignID)
	assert.Equal(t, domain.StatusCompleted, e.get(t, stale.ID).Status)
}

func TestDelivery_ConflictRetriedOnceThenNoAd(t *testing.T) {
	var calls atomic.Int64
	e := newEngine(t, withIntercept(func(context.Context, port.DeliveryIncrement) *interception {
		calls.Add(1)
		return &interception{err: port.ErrConflict}
	}))
	z := e.zone(t)
	e.campaign(t, z.ID, campaignSpec{budget: 1000, cpv: 1})
	e.campaign(t, z.ID, campaignSpec{budget: 1000, cpv: 1})

	resp, err := e.delivery.ServeAd(context.Background(), port.ServeRequest{ZoneID: z.ID})
	require.NoError(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, int64(2), calls.Load())
	assert.Equal(t, 1.0, testutil.ToFloat64(e.metrics.NoFill.WithLabelValues("1", ReasonExhausted)))
}

func TestDelivery_TimeoutFailsClosed(t *testing.T) {
	e := newEngine(t, withTimeout(20*time.Millisecond), withIntercept(func(ctx context.Context, _ port.DeliveryIncrement) *interception {
		<-ctx.Done()
		return &interception{err: ctx.Err()}
	}))
	z := e.zone(t)
	c := e.campaign(t, z.ID, campaignSpec{budget: 1000, cpv: 1})

	resp, err := e.delivery.ServeAd(context.Background(), port.ServeRequest{ZoneID: z.ID})
	require.NoError(t, err)
	assert.Nil(t, resp)
	assert.Zero(t, e.get(t, c.ID).ViewsDelivered)
	assert.Equal(t, 1.0, testutil.ToFloat64(e.metrics.NoFill.WithLabelValues("1", ReasonTimeout)))
}

func TestDelivery_ResponseCarriesServableFields(t *testing.T) {
	e := newEngine(t)
	z := e.zone(t)
	c := e.campaign(t, z.ID, campaignSpec{budget: 1000, cpv: 1})

	resp, err := e.delivery.ServeAd(context.Background(), port.ServeRequest{ZoneID: z.ID, Tags: []string{}})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, c.ID, resp.CampaignID)
	assert.Equal(t, domain.CreativeImage, resp.Type)
	assert.Equal(t, "https://cdn.example.com/banner.png", resp.URL)
	assert.Equal(t, 300, resp.Width)
	assert.Equal(t, port.ZoneInfo{ID: z.ID, Name: "sidebar", Width: 300, Height: 250}, resp.Zone)
	assert.Equal(t, 1, e.sink.deliveriesOf(domain.EventImpression))
}

func TestDelivery_UniqueViewers(t *testing.T) {
	e := newEngine(t)
	z := e.zone(t)
	c := e.campaign(t, z.ID, campaignSpec{budget: 1000, cpv: 1})
	ctx := context.Background()

	for _, viewer := range []string{"a", "a", "b", ""} {
		resp, err := e.delivery.ServeAd(ctx, port.ServeRequest{ZoneID: z.ID, ViewerID: viewer})
		require.NoError(t, err)
		require.NotNil(t, resp)
	}

	got := e.get(t, c.ID)
	assert.Equal(t, int64(4), got.ViewsDelivered)
	assert.Equal(t, int64(2), got.UniqueViews)
}

func TestDelivery_UniqueTrackerFailureKeepsImpression(t *testing.T) {
	unique := mocks.NewMockUniqueViewTracker(t)
	e := newEngine(t, withUnique(unique))
	z := e.zone(t)
	c := e.campaign(t, z.ID, campaignSpec{budget: 1000, cpv: 1})

	unique.EXPECT().Observe(mock.Anything, c.ID, "viewer-1").Return(false, errors.New("redis down")).Once()
	unique.EXPECT().Observe(mock.Anything, c.ID, "viewer-2").Return(true, nil).Once()

	for _, viewer := range []string{"viewer-1", "viewer-2"} {
		resp, err := e.delivery.ServeAd(context.Background(), port.ServeRequest{ZoneID: z.ID, ViewerID: viewer})
		require.NoError(t, err)
		require.NotNil(t, resp)
	}

	got := e.get(t, c.ID)
	assert.Equal(t, int64(2), got.ViewsDelivered)
	assert.Equal(t, int64(1), got.UniqueViews)
}

func TestDelivery_RecordClick(t *testing.T) {
	e := newEngine(t)
	z := e.zone(t)
	active := e.campaign(t, z.ID, campaignSpec{budget: 1000, cpv: 1})
	ended := e.campaign(t, z.ID, campaignSpec{budget: 1000, cpv: 1, status: domain.StatusCompleted})
	ctx := context.Background()

	require.NoError(t, e.delivery.RecordClick(ctx, port.ClickRequest{CampaignID: active.ID}))
	require.NoError(t, e.delivery.RecordClick(ctx, port.ClickRequest{CampaignID: active.ID}))
	require.NoError(t, e.delivery.RecordClick(ctx, port.ClickRequest{CampaignID: ended.ID}))

	assert.Equal(t, int64(2), e.get(t, active.ID).Clicks)
	assert.Zero(t, e.get(t, ended.ID).Clicks)
	assert.True(t, e.get(t, active.ID).Spent.IsZero(), "clicks are not billed")
	assert.Equal(t, 2.0, testutil.ToFloat64(e.metrics.Clicks))

	assert.ErrorIs(t, e.delivery.RecordClick(ctx, port.ClickRequest{CampaignID: 404}), port.ErrNotFound)
	assert.ErrorIs(t, e.delivery.RecordClick(ctx, port.ClickRequest{}), port.ErrValidation)
}

func TestDelivery_RejectsInvalidZone(t *testing.T) {
	e := newEngine(t)
	_, err := e.delivery.ServeAd(context.Background(), port.ServeRequest{ZoneID: 0})
	assert.ErrorIs(t, err, port.ErrValidation)
}
