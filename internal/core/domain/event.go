package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventType distinguishes delivery events.
type EventType string

const (
	EventImpression EventType = "impression"
	EventClick      EventType = "click"
)

// DeliveryEvent is emitted for every served impression and recorded click.
// Only the counters are durable; the event itself goes to the event sink.
type DeliveryEvent struct {
	ID         string          `json:"id"`
	Type       EventType       `json:"type"`
	CampaignID int64           `json:"campaign_id"`
	CreativeID int64           `json:"creative_id,omitempty"`
	ZoneID     int64           `json:"zone_id,omitempty"`
	ViewerID   string          `json:"viewer_id,omitempty"`
	Cost       decimal.Decimal `json:"cost"`
	Timestamp  time.Time       `json:"timestamp"`
}

// TransitionEvent is the notification/audit record of a status change.
type TransitionEvent struct {
	ID         string         `json:"id"`
	CampaignID int64          `json:"campaign_id"`
	From       CampaignStatus `json:"from"`
	To         CampaignStatus `json:"to"`
	Reason     string         `json:"reason,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
}
