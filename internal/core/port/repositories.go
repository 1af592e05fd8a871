package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"club-ads/internal/core/domain"
)

//go:generate otelwrap --out port_wrappers.go . ZoneRepository CampaignRepository CreativeRepository PaymentEventRepository AdDelivery CampaignLifecycle Inventory
//go:generate mockery --name CampaignRepository|ZoneRepository|PaymentGateway|EventSink|UniqueViewTracker --with-expecter --output mocks --outpkg mocks

// ZoneReader is the read side of the zone catalog used on the serve path.
type ZoneReader interface {
	GetZone(ctx context.Context, id int64) (*domain.Zone, error)
}

// ZoneRepository persists placement zones.
type ZoneRepository interface {
	ZoneReader
	CreateZone(ctx context.Context, z *domain.Zone) error
	ListZones(ctx context.Context) ([]domain.Zone, error)
	SetZoneStatus(ctx context.Context, id int64, status domain.ZoneStatus) (*domain.Zone, error)
}

// CampaignRepository is the durable campaign store. Counter columns are
// only changed through IncrementDelivery, IncrementClicks and
// IncrementUniqueViews; implementations must make those atomic.
type CampaignRepository interface {
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	GetCampaignByPaymentReference(ctx context.Context, ref string) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context, filter CampaignFilter) ([]domain.Campaign, error)

	// FindActiveForZone returns Active, non-retired campaigns of the zone
	// whose schedule contains now and, when tags are given, whose targeting
	// shares at least one tag.
	FindActiveForZone(ctx context.Context, zoneID int64, tags []string, now time.Time) ([]domain.Campaign, error)
	// FindEnded returns campaigns in one of statuses whose end date is
	// before now.
	FindEnded(ctx context.Context, now time.Time, statuses []domain.CampaignStatus) ([]domain.Campaign, error)

	// ChangeStatus applies change as a compare-and-set on the current
	// status. It returns ErrConflict when the status is no longer one of
	// change.From and ErrNotFound when the campaign is absent.
	ChangeStatus(ctx context.Context, change StatusChange) (*domain.Campaign, error)
	// RecordPaymentFailure bumps the failed attempt counter of a
	// PendingPayment campaign and marks its payment as failed.
	RecordPaymentFailure(ctx context.Context, id int64, at time.Time) (*domain.Campaign, error)

	// IncrementDelivery atomically adds one view and cost to the campaign
	// and one view to the creative. An increment that would push spent
	// above budget, or views above the purchased target, is not applied
	// and is reported through the result flags.
	IncrementDelivery(ctx context.Context, inc DeliveryIncrement) (DeliveryResult, error)
	IncrementClicks(ctx context.Context, campaignID int64) error
	IncrementUniqueViews(ctx context.Context, campaignID int64) error

	// DeleteCampaign removes a campaign without delivery history.
	DeleteCampaign(ctx context.Context, id int64) error
	RetireCampaign(ctx context.Context, id int64, at time.Time) error
}

// CreativeRepository persists creatives.
type CreativeRepository interface {
	CreateCreative(ctx context.Context, c *domain.Creative) error
	GetCreative(ctx context.Context, id int64) (*domain.Creative, error)
	ListCreatives(ctx context.Context, campaignID int64) ([]domain.Creative, error)
	// ListActiveCreatives returns the active creatives of the given
	// campaigns in one round trip.
	ListActiveCreatives(ctx context.Context, campaignIDs []int64) ([]domain.Creative, error)
	SetCreativeStatus(ctx context.Context, id int64, status domain.CreativeStatus) (*domain.Creative, error)
}

// PaymentEventRepository remembers processed payment webhook events.
type PaymentEventRepository interface {
	// RecordPaymentEvent stores the event id and reports whether it was
	// seen for the first time.
	RecordPaymentEvent(ctx context.Context, ev PaymentEvent) (bool, error)
	// ForgetPaymentEvent releases an event id whose processing failed so
	// the provider's redelivery is handled again.
	ForgetPaymentEvent(ctx context.Context, eventID string) error
}

// CampaignFilter narrows ListCampaigns.
type CampaignFilter struct {
	AdvertiserID string
	ZoneID       int64
	Status       domain.CampaignStatus
}

// StatusChange describes a compare-and-set status update. Zero-valued
// optional fields leave the column untouched.
type StatusChange struct {
	CampaignID int64
	From       []domain.CampaignStatus
	To         domain.CampaignStatus

	PaymentStatus    domain.PaymentStatus
	PaymentReference string
	// StartDate is stored only when the campaign has no start date yet.
	StartDate time.Time
	At        time.Time
}

// DeliveryIncrement is the input of the atomic metering update.
type DeliveryIncrement struct {
	CampaignID int64
	CreativeID int64
	Cost       decimal.Decimal
}

// DeliveryResult reports the counters after an increment. When Applied is
// false nothing was written and exactly one of the reason flags is set.
type DeliveryResult struct {
	Applied        bool
	NewSpent       decimal.Decimal
	NewViews       int64
	BudgetExceeded bool
	ViewCapReached bool
}

// PaymentEvent is one processed payment webhook delivery.
type PaymentEvent struct {
	EventID    string
	CampaignID int64
	Reference  string
	Succeeded  bool
	ReceivedAt time.Time
}
