package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"club-ads/internal/core/domain"
)

// AdDelivery is the entry point of the serve path. ServeAd returns nil
// when there is no ad to show, including when a dependency failed.
type AdDelivery interface {
	ServeAd(ctx context.Context, req ServeRequest) (*AdResponse, error)
	RecordClick(ctx context.Context, req ClickRequest) error
}

// CampaignLifecycle owns the campaign state machine.
type CampaignLifecycle interface {
	CreateCampaign(ctx context.Context, req CreateCampaignReq) (*domain.Campaign, error)
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context, filter CampaignFilter) ([]domain.Campaign, error)
	Submit(ctx context.Context, id int64) (*SubmitResult, error)
	RequestPayment(ctx context.Context, id int64) (*SubmitResult, error)
	ConfirmPayment(ctx context.Context, n PaymentNotification) (*domain.Campaign, error)
	Pause(ctx context.Context, id int64) (*domain.Campaign, error)
	Resume(ctx context.Context, id int64) (*domain.Campaign, error)
	Reject(ctx context.Context, id int64, reason string) (*domain.Campaign, error)
	Complete(ctx context.Context, id int64, reason string) (*domain.Campaign, error)
	ExpireDue(ctx context.Context, now time.Time) (int, error)
	Retire(ctx context.Context, id int64) error
	GetStats(ctx context.Context, id int64) (*CampaignStats, error)
}

// Inventory manages zones and creatives.
type Inventory interface {
	CreateZone(ctx context.Context, req CreateZoneReq) (*domain.Zone, error)
	GetZone(ctx context.Context, id int64) (*domain.Zone, error)
	ListZones(ctx context.Context) ([]domain.Zone, error)
	SetZoneStatus(ctx context.Context, id int64, status domain.ZoneStatus) (*domain.Zone, error)
	CreateCreative(ctx context.Context, req CreateCreativeReq) (*domain.Creative, error)
	GetCreative(ctx context.Context, id int64) (*domain.Creative, error)
	ListCreatives(ctx context.Context, campaignID int64) ([]domain.Creative, error)
	SetCreativeStatus(ctx context.Context, id int64, status domain.CreativeStatus) (*domain.Creative, error)
}

// ServeRequest is an ad request for one zone.
type ServeRequest struct {
	ZoneID   int64
	Tags     []string
	ViewerID string
}

// AdResponse carries only the servable fields of the selected creative.
// Budget and spend figures never leave the engine.
type AdResponse struct {
	CampaignID     int64
	CreativeID     int64
	Type           domain.CreativeType
	URL            string
	DestinationURL string
	Width          int
	Height         int
	Zone           ZoneInfo
}

// ZoneInfo is the public view of a zone.
type ZoneInfo struct {
	ID     int64
	Name   string
	Width  int
	Height int
}

// ClickRequest records a click on a served ad.
type ClickRequest struct {
	CampaignID int64
	CreativeID int64
	ViewerID   string
}

// CreateCampaignReq holds advertiser input for a new Draft campaign.
type CreateCampaignReq struct {
	AdvertiserID   string
	ZoneID         int64
	Name           string
	Budget         decimal.Decimal
	CPV            decimal.Decimal // zero means the zone price
	ViewsPurchased int64
	TargetingTags  []string
	StartDate      *time.Time
	EndDate        *time.Time
}

// SubmitResult is returned when a charge was requested for a campaign.
type SubmitResult struct {
	Campaign    *domain.Campaign
	CheckoutURL string
}

// CreateZoneReq holds admin input for a zone.
type CreateZoneReq struct {
	Name            string
	Width           int
	Height          int
	PricePerView    decimal.Decimal
	MaxCreativeSize int64
	AllowedTags     []string
}

// CreateCreativeReq holds input for a creative attached to a campaign.
type CreateCreativeReq struct {
	CampaignID     int64
	Name           string
	Type           domain.CreativeType
	URL            string
	DestinationURL string
	Format         string
	Width          int
	Height         int
	FileSize       int64
}

// CampaignStats is the reporting view of campaign counters.
type CampaignStats struct {
	CampaignID     int64
	Status         domain.CampaignStatus
	ViewsDelivered int64
	ViewsPurchased int64
	UniqueViews    int64
	Clicks         int64
	CTR            float64
	Spent          decimal.Decimal
	Budget         decimal.Decimal
	Remaining      decimal.Decimal
}
