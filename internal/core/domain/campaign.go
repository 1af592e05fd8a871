package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus mirrors the state of the charge for the campaign budget.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// Campaign represents an advertising campaign bought for a single zone.
// Money is kept as decimals; Spent never exceeds Budget.
type Campaign struct {
	ID           int64
	AdvertiserID string
	ZoneID       int64
	Name         string

	Budget decimal.Decimal
	Spent  decimal.Decimal
	CPV    decimal.Decimal // cost per view

	ViewsPurchased int64 // 0 means no view target
	ViewsDelivered int64
	UniqueViews    int64
	Clicks         int64

	TargetingTags []string

	PaymentStatus    PaymentStatus
	PaymentReference string
	PaymentAttempts  int

	Status    CampaignStatus
	StartDate *time.Time
	EndDate   *time.Time
	RetiredAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasViewTarget reports whether the campaign is capped by view count.
func (c *Campaign) HasViewTarget() bool {
	return c.ViewsPurchased > 0
}

// ViewTargetReached reports whether the purchased views are all delivered.
func (c *Campaign) ViewTargetReached() bool {
	return c.HasViewTarget() && c.ViewsDelivered >= c.ViewsPurchased
}

// Remaining returns the unspent part of the budget.
func (c *Campaign) Remaining() decimal.Decimal {
	r := c.Budget.Sub(c.Spent)
	if r.IsNegative() {
		return decimal.Zero
	}
	return r
}

// CanAffordImpression reports whether one more impression fits in the budget.
func (c *Campaign) CanAffordImpression() bool {
	return c.Spent.Add(c.CPV).LessThanOrEqual(c.Budget)
}

// Exhausted reports whether the campaign can no longer deliver, either
// because the budget cannot fund another view or the view target is met.
func (c *Campaign) Exhausted() bool {
	return !c.CanAffordImpression() || c.ViewTargetReached()
}

// InSchedule reports whether now lies within [StartDate, EndDate]. Unset
// bounds are open.
func (c *Campaign) InSchedule(now time.Time) bool {
	if c.StartDate != nil && now.Before(*c.StartDate) {
		return false
	}
	if c.EndDate != nil && now.After(*c.EndDate) {
		return false
	}
	return true
}

// Ended reports whether the end date has passed.
func (c *Campaign) Ended(now time.Time) bool {
	return c.EndDate != nil && now.After(*c.EndDate)
}

// Eligible reports whether the campaign may be served at now for the given
// request tags.
func (c *Campaign) Eligible(now time.Time, tags []string) bool {
	if c.Status != StatusActive || c.RetiredAt != nil {
		return false
	}
	if !c.InSchedule(now) || c.Exhausted() {
		return false
	}
	return len(tags) == 0 || Intersects(c.TargetingTags, tags)
}

// HasDeliveryHistory reports whether the campaign ever served an impression.
func (c *Campaign) HasDeliveryHistory() bool {
	return c.ViewsDelivered > 0 || c.Clicks > 0 || c.Spent.IsPositive()
}
