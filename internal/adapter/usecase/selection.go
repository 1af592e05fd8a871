package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/bits"
	"slices"
	"time"

	"club-ads/internal/core/domain"
	"club-ads/internal/core/port"
)

// No-fill reasons, used as the reason label of ads_no_fill_total.
const (
	ReasonUnknownZone  = "unknown_zone"
	ReasonZoneInactive = "zone_inactive"
	ReasonNoCandidates = "no_candidates"
	ReasonNoCreatives  = "no_creatives"
	ReasonExhausted    = "exhausted"
	ReasonStoreError   = "store_error"
	ReasonTimeout      = "timeout"
)

// NoFillError explains why a zone request produced no ad. It unwraps to
// port.ErrNoEligibleAd.
type NoFillError struct {
	ZoneID int64
	Reason string
}

func (e *NoFillError) Error() string {
	return fmt.Sprintf("zone %d: no eligible ad (%s)", e.ZoneID, e.Reason)
}

func (e *NoFillError) Unwrap() error {
	return port.ErrNoEligibleAd
}

// Candidate is the result of a selection: the campaign and creative to
// serve and the zone they are served in.
type Candidate struct {
	Zone     *domain.Zone
	Campaign domain.Campaign
	Creative domain.Creative
}

// Selector picks the campaign and creative to serve for a zone. It only
// reads from the stores.
type Selector struct {
	zones     port.ZoneReader
	campaigns port.CampaignRepository
	creatives port.CreativeRepository
	now       func() time.Time
}

func NewSelector(zones port.ZoneReader, campaigns port.CampaignRepository, creatives port.CreativeRepository) *Selector {
	return &Selector{zones: zones, campaigns: campaigns, creatives: creatives, now: time.Now}
}

// SelectAd returns the least-served eligible campaign of the zone together
// with its least-viewed active creative. Campaigns listed in exclude are
// skipped. When nothing can be served the error is a *NoFillError; any
// other error comes from a store.
func (s *Selector) SelectAd(ctx context.Context, zoneID int64, tags []string, exclude ...int64) (*Candidate, error) {
	zone, err := s.zones.GetZone(ctx, zoneID)
	if errors.Is(err, port.ErrNotFound) {
		return nil, &NoFillError{ZoneID: zoneID, Reason: ReasonUnknownZone}
	}
	if err != nil {
		return nil, err
	}
	if !zone.IsActive() {
		return nil, &NoFillError{ZoneID: zoneID, Reason: ReasonZoneInactive}
	}

	now := s.now()
	found, err := s.campaigns.FindActiveForZone(ctx, zoneID, tags, now)
	if err != nil {
		return nil, err
	}
	eligible := make([]domain.Campaign, 0, len(found))
	for _, c := range found {
		if slices.Contains(exclude, c.ID) || !c.Eligible(now, tags) {
			continue
		}
		eligible = append(eligible, c)
	}
	if len(eligible) == 0 {
		return nil, &NoFillError{ZoneID: zoneID, Reason: ReasonNoCandidates}
	}

	ids := make([]int64, len(eligible))
	for i := range eligible {
		ids[i] = eligible[i].ID
	}
	creatives, err := s.creatives.ListActiveCreatives(ctx, ids)
	if err != nil {
		return nil, err
	}
	best := make(map[int64]domain.Creative, len(eligible))
	for _, cr := range creatives {
		if !cr.IsActive() {
			continue
		}
		if cur, ok := best[cr.CampaignID]; !ok || fewerViews(&cr, &cur) {
			best[cr.CampaignID] = cr
		}
	}

	var chosen *domain.Campaign
	for i := range eligible {
		c := &eligible[i]
		if _, ok := best[c.ID]; !ok {
			continue
		}
		if chosen == nil || lessServed(c, chosen) {
			chosen = c
		}
	}
	if chosen == nil {
		return nil, &NoFillError{ZoneID: zoneID, Reason: ReasonNoCreatives}
	}
	return &Candidate{Zone: zone, Campaign: *chosen, Creative: best[chosen.ID]}, nil
}

// lessServed reports whether a should be served before b. Campaigns are
// ranked by viewsDelivered/viewsPurchased, or by raw viewsDelivered when
// there is no view target. The fractions are compared exactly by
// cross-multiplying. Ties go to the older campaign, then the lower id.
func lessServed(a, b *domain.Campaign) bool {
	aNum, aDen := servedRatio(a)
	bNum, bDen := servedRatio(b)
	lhsHi, lhsLo := bits.Mul64(aNum, bDen)
	rhsHi, rhsLo := bits.Mul64(bNum, aDen)
	if lhsHi != rhsHi {
		return lhsHi < rhsHi
	}
	if lhsLo != rhsLo {
		return lhsLo < rhsLo
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID < b.ID
}

func servedRatio(c *domain.Campaign) (num, den uint64) {
	num = uint64(max(c.ViewsDelivered, 0))
	if c.HasViewTarget() {
		return num, uint64(c.ViewsPurchased)
	}
	return num, 1
}

func fewerViews(a, b *domain.Creative) bool {
	if a.NumberOfViews != b.NumberOfViews {
		return a.NumberOfViews < b.NumberOfViews
	}
	return a.ID < b.ID
}
