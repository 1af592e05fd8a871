package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"club-ads/internal/core/domain"
	"club-ads/internal/core/port"
)

func TestInventory_CreateZone(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	z, err := e.inventory.CreateZone(ctx, port.CreateZoneReq{
		Name:            " Home banner ",
		Width:           728,
		Height:          90,
		PricePerView:    decimal.RequireFromString("0.05"),
		MaxCreativeSize: 150_000,
		AllowedTags:     []string{"Football", "football", "tickets"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Home banner", z.Name)
	assert.Equal(t, domain.ZoneActive, z.Status)
	assert.Equal(t, []string{"football", "tickets"}, z.AllowedTags)

	zones, err := e.inventory.ListZones(ctx)
	require.NoError(t, err)
	assert.Len(t, zones, 1)

	for name, req := range map[string]port.CreateZoneReq{
		"no name":        {Width: 1, Height: 1, PricePerView: decimal.NewFromInt(1)},
		"no dimensions":  {Name: "z", PricePerView: decimal.NewFromInt(1)},
		"free":           {Name: "z", Width: 1, Height: 1},
		"negative limit": {Name: "z", Width: 1, Height: 1, PricePerView: decimal.NewFromInt(1), MaxCreativeSize: -1},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := e.inventory.CreateZone(ctx, req)
			assert.ErrorIs(t, err, port.ErrValidation)
		})
	}
}

func TestInventory_SetZoneStatus(t *testing.T) {
	e := newEngine(t)
	z := e.zone(t)
	c := e.campaign(t, z.ID, campaignSpec{budget: 10, cpv: 1})
	ctx := context.Background()

	_, err := e.inventory.SetZoneStatus(ctx, z.ID, "closed")
	assert.ErrorIs(t, err, port.ErrValidation)

	got, err := e.inventory.SetZoneStatus(ctx, z.ID, domain.ZoneInactive)
	require.NoError(t, err)
	assert.Equal(t, domain.ZoneInactive, got.Status)

	resp, err := e.delivery.ServeAd(ctx, port.ServeRequest{ZoneID: z.ID})
	require.NoError(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, domain.StatusActive, e.get(t, c.ID).Status, "closing a zone leaves campaigns alone")

	_, err = e.inventory.SetZoneStatus(ctx, 404, domain.ZoneActive)
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestInventory_CreateCreative(t *testing.T) {
	e := newEngine(t)
	z := e.zone(t)
	c := e.campaign(t, z.ID, campaignSpec{budget: 10, cpv: 1, status: domain.StatusDraft})
	ctx := context.Background()

	cr, err := e.inventory.CreateCreative(ctx, port.CreateCreativeReq{
		CampaignID:     c.ID,
		Name:           "Derby day",
		Type:           domain.CreativeImage,
		URL:            "https://cdn.example.com/derby.JPG?v=2",
		DestinationURL: "https://club.example.com/tickets",
		FileSize:       10_000,
	})
	require.NoError(t, err)
	assert.Equal(t, "jpg", cr.Format)
	assert.Equal(t, 300, cr.Width)
	assert.Equal(t, 250, cr.Height)
	assert.Equal(t, domain.CreativeActive, cr.Status)

	list, err := e.inventory.ListCreatives(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestInventory_CreateCreativeValidation(t *testing.T) {
	e := newEngine(t)
	z := e.zone(t)
	c := e.campaign(t, z.ID, campaignSpec{budget: 10, cpv: 1})
	ctx := context.Background()

	valid := func() port.CreateCreativeReq {
		return port.CreateCreativeReq{
			CampaignID: c.ID,
			Name:       "banner",
			Type:       domain.CreativeVideo,
			URL:        "https://cdn.example.com/clip.mp4",
		}
	}
	cases := map[string]func(r *port.CreateCreativeReq){
		"no name":            func(r *port.CreateCreativeReq) { r.Name = "" },
		"unknown type":       func(r *port.CreateCreativeReq) { r.Type = "audio" },
		"relative url":       func(r *port.CreateCreativeReq) { r.URL = "/clip.mp4" },
		"ftp url":            func(r *port.CreateCreativeReq) { r.URL = "ftp://cdn.example.com/clip.mp4" },
		"bad destination":    func(r *port.CreateCreativeReq) { r.DestinationURL = "javascript:alert(1)" },
		"negative file size": func(r *port.CreateCreativeReq) { r.FileSize = -1 },
		"wrong dimensions":   func(r *port.CreateCreativeReq) { r.Width, r.Height = 728, 90 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := valid()
			mutate(&req)
			_, err := e.inventory.CreateCreative(ctx, req)
			assert.ErrorIs(t, err, port.ErrValidation)
		})
	}

	t.Run("unknown campaign", func(t *testing.T) {
		req := valid()
		req.CampaignID = 999
		_, err := e.inventory.CreateCreative(ctx, req)
		assert.ErrorIs(t, err, port.ErrNotFound)
	})

	t.Run("terminal campaign", func(t *testing.T) {
		done := e.campaign(t, z.ID, campaignSpec{budget: 10, cpv: 1, status: domain.StatusExpired})
		req := valid()
		req.CampaignID = done.ID
		_, err := e.inventory.CreateCreative(ctx, req)
		assert.ErrorIs(t, err, port.ErrConflict)
	})
}

func TestInventory_CreativeSizeLimit(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()
	z, err := e.inventory.CreateZone(ctx, port.CreateZoneReq{
		Name: "small", Width: 120, Height: 600, PricePerView: decimal.NewFromInt(1), MaxCreativeSize: 1000,
	})
	require.NoError(t, err)
	c := e.campaign(t, z.ID, campaignSpec{budget: 10, cpv: 1, status: domain.StatusDraft})

	req := port.CreateCreativeReq{
		CampaignID: c.ID, Name: "skyscraper", Type: domain.CreativeImage,
		URL: "https://cdn.example.com/sky.png", FileSize: 1001,
	}
	_, err = e.inventory.CreateCreative(ctx, req)
	assert.ErrorIs(t, err, port.ErrValidation)

	req.FileSize = 1000
	_, err = e.inventory.CreateCreative(ctx, req)
	assert.NoError(t, err)
}

func TestInventory_SetCreativeStatus(t *testing.T) {
	e := newEngine(t)
	z := e.zone(t)
	c := e.campaign(t, z.ID, campaignSpec{budget: 10, cpv: 1})
	ctx := context.Background()

	creatives, err := e.inventory.ListCreatives(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, creatives, 1)

	_, err = e.inventory.SetCreativeStatus(ctx, creatives[0].ID, "deleted")
	assert.ErrorIs(t, err, port.ErrValidation)

	got, err := e.inventory.SetCreativeStatus(ctx, creatives[0].ID, domain.CreativeArchived)
	require.NoError(t, err)
	assert.Equal(t, domain.CreativeArchived, got.Status)

	resp, err := e.delivery.ServeAd(ctx, port.ServeRequest{ZoneID: z.ID})
	require.NoError(t, err)
	assert.Nil(t, resp, "a campaign without active creatives is not served")

	_, err = e.inventory.ListCreatives(ctx, 999)
	assert.ErrorIs(t, err, port.ErrNotFound)
}
