package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"strings"

	"club-ads/internal/core/domain"
	"club-ads/internal/core/port"
)

// Inventory implements port.Inventory: zones and the creatives attached
// to campaigns.
type Inventory struct {
	zones     port.ZoneRepository
	campaigns port.CampaignRepository
	creatives port.CreativeRepository
	logger    *slog.Logger
}

var _ port.Inventory = (*Inventory)(nil)

func NewInventory(zones port.ZoneRepository, campaigns port.CampaignRepository, creatives port.CreativeRepository, logger *slog.Logger) *Inventory {
	return &Inventory{zones: zones, campaigns: campaigns, creatives: creatives, logger: orDiscard(logger)}
}

func (i *Inventory) CreateZone(ctx context.Context, req port.CreateZoneReq) (*domain.Zone, error) {
	switch {
	case strings.TrimSpace(req.Name) == "":
		return nil, fmt.Errorf("name is required: %w", port.ErrValidation)
	case req.Width <= 0 || req.Height <= 0:
		return nil, fmt.Errorf("dimensions must be positive: %w", port.ErrValidation)
	case !req.PricePerView.IsPositive():
		return nil, fmt.Errorf("price per view must be positive: %w", port.ErrValidation)
	case req.MaxCreativeSize < 0:
		return nil, fmt.Errorf("max creative size must not be negative: %w", port.ErrValidation)
	}
	z := &domain.Zone{
		Name:            strings.TrimSpace(req.Name),
		Width:           req.Width,
		Height:          req.Height,
		PricePerView:    req.PricePerView,
		MaxCreativeSize: req.MaxCreativeSize,
		AllowedTags:     domain.NormalizeTags(req.AllowedTags),
		Status:          domain.ZoneActive,
	}
	if err := i.zones.CreateZone(ctx, z); err != nil {
		return nil, err
	}
	i.logger.InfoContext(ctx, "zone created", slog.Int64("zone_id", z.ID), slog.String("name", z.Name))
	return z, nil
}

func (i *Inventory) GetZone(ctx context.Context, id int64) (*domain.Zone, error) {
	return i.zones.GetZone(ctx, id)
}

func (i *Inventory) ListZones(ctx context.Context) ([]domain.Zone, error) {
	return i.zones.ListZones(ctx)
}

func (i *Inventory) SetZoneStatus(ctx context.Context, id int64, status domain.ZoneStatus) (*domain.Zone, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("unknown zone status %q: %w", status, port.ErrValidation)
	}
	return i.zones.SetZoneStatus(ctx, id, status)
}

// CreateCreative attaches a creative to a campaign. The creative must fit
// the campaign's zone: same dimensions and no larger than the zone's
// maximum file size.
func (i *Inventory) CreateCreative(ctx context.Context, req port.CreateCreativeReq) (*domain.Creative, error) {
	c, err := i.campaigns.GetCampaign(ctx, req.CampaignID)
	if err != nil {
		return nil, err
	}
	if c.Status.IsTerminal() {
		return nil, fmt.Errorf("campaign %d is %s: %w", c.ID, c.Status, port.ErrConflict)
	}
	zone, err := i.zones.GetZone(ctx, c.ZoneID)
	if err != nil {
		return nil, err
	}

	switch {
	case strings.TrimSpace(req.Name) == "":
		return nil, fmt.Errorf("name is required: %w", port.ErrValidation)
	case !req.Type.Valid():
		return nil, fmt.Errorf("unknown creative type %q: %w", req.Type, port.ErrValidation)
	case !validHTTPURL(req.URL):
		return nil, fmt.Errorf("url must be an absolute http(s) url: %w", port.ErrValidation)
	case req.DestinationURL != "" && !validHTTPURL(req.DestinationURL):
		return nil, fmt.Errorf("destination url must be an absolute http(s) url: %w", port.ErrValidation)
	case req.FileSize < 0:
		return nil, fmt.Errorf("file size must not be negative: %w", port.ErrValidation)
	case zone.MaxCreativeSize > 0 && req.FileSize > zone.MaxCreativeSize:
		return nil, fmt.Errorf("file size %d exceeds zone limit %d: %w", req.FileSize, zone.MaxCreativeSize, port.ErrValidation)
	}

	width, height := req.Width, req.Height
	if width == 0 && height == 0 {
		width, height = zone.Width, zone.Height
	}
	if width != zone.Width || height != zone.Height {
		return nil, fmt.Errorf("creative %dx%d does not fit zone %dx%d: %w",
			width, height, zone.Width, zone.Height, port.ErrValidation)
	}

	format := strings.ToLower(req.Format)
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(path.Ext(mustPath(req.URL))), ".")
	}

	cr := &domain.Creative{
		CampaignID:     c.ID,
		Name:           strings.TrimSpace(req.Name),
		Type:           req.Type,
		URL:            req.URL,
		DestinationURL: req.DestinationURL,
		Format:         format,
		Width:          width,
		Height:         height,
		FileSize:       req.FileSize,
		Status:         domain.CreativeActive,
	}
	if err = i.creatives.CreateCreative(ctx, cr); err != nil {
		return nil, err
	}
	i.logger.InfoContext(ctx, "creative created",
		slog.Int64("creative_id", cr.ID), slog.Int64("campaign_id", c.ID))
	return cr, nil
}

func (i *Inventory) GetCreative(ctx context.Context, id int64) (*domain.Creative, error) {
	return i.creatives.GetCreative(ctx, id)
}

func (i *Inventory) ListCreatives(ctx context.Context, campaignID int64) ([]domain.Creative, error) {
	if _, err := i.campaigns.GetCampaign(ctx, campaignID); err != nil {
		return nil, err
	}
	return i.creatives.ListCreatives(ctx, campaignID)
}

func (i *Inventory) SetCreativeStatus(ctx context.Context, id int64, status domain.CreativeStatus) (*domain.Creative, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("unknown creative status %q: %w", status, port.ErrValidation)
	}
	return i.creatives.SetCreativeStatus(ctx, id, status)
}

func validHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func mustPath(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Path
}
