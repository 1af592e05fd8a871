package domain

import "time"

// CreativeType is the media kind of a creative.
type CreativeType string

const (
	CreativeImage CreativeType = "image"
	CreativeVideo CreativeType = "video"
)

// CreativeStatus controls whether a creative takes part in rotation.
type CreativeStatus string

const (
	CreativeActive   CreativeStatus = "active"
	CreativeInactive CreativeStatus = "inactive"
	CreativeArchived CreativeStatus = "archived"
)

// Creative represents an individual image or video asset of a campaign.
type Creative struct {
	ID             int64
	CampaignID     int64
	Name           string
	Type           CreativeType
	URL            string
	DestinationURL string
	Format         string // e.g. png, mp4
	Width          int
	Height         int
	FileSize       int64
	NumberOfViews  int64
	Status         CreativeStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsActive reports whether the creative can be selected.
func (c *Creative) IsActive() bool {
	return c.Status == CreativeActive
}

func (t CreativeType) Valid() bool {
	return t == CreativeImage || t == CreativeVideo
}

func (s CreativeStatus) Valid() bool {
	switch s {
	case CreativeActive, CreativeInactive, CreativeArchived:
		return true
	}
	return false
}
