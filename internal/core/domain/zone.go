package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ZoneStatus tells whether a placement currently accepts ads.
type ZoneStatus string

const (
	ZoneActive   ZoneStatus = "active"
	ZoneInactive ZoneStatus = "inactive"
)

// Zone is a placement slot on the public site, e.g. the homepage banner.
// The ID is immutable once a campaign references it.
type Zone struct {
	ID              int64
	Name            string
	Width           int
	Height          int
	PricePerView    decimal.Decimal
	MaxCreativeSize int64 // bytes, 0 means unlimited
	AllowedTags     []string
	Status          ZoneStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsActive reports whether the zone can serve ads.
func (z *Zone) IsActive() bool {
	return z.Status == ZoneActive
}

// AllowsTags reports whether every tag is allowed by the zone. A zone
// without allowed tags accepts any targeting.
func (z *Zone) AllowsTags(tags []string) bool {
	if len(z.AllowedTags) == 0 {
		return true
	}
	return SubsetOf(tags, z.AllowedTags)
}

// Valid reports whether s is a known zone status.
func (s ZoneStatus) Valid() bool {
	return s == ZoneActive || s == ZoneInactive
}
