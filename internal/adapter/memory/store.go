package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"club-ads/internal/core/domain"
	"club-ads/internal/core/port"
)

// Store is an in-process implementation of the zone, campaign, creative
// and payment event repositories. A single mutex guards all state, so
// every method, including IncrementDelivery, is linearizable. It backs the
// memory store mode and the engine tests.
type Store struct {
	mu sync.Mutex

	zones     map[int64]domain.Zone
	campaigns map[int64]domain.Campaign
	creatives map[int64]domain.Creative
	events    map[string]port.PaymentEvent

	nextZone     int64
	nextCampaign int64
	nextCreative int64

	now func() time.Time
}

var (
	_ port.ZoneRepository         = (*Store)(nil)
	_ port.CampaignRepository     = (*Store)(nil)
	_ port.CreativeRepository     = (*Store)(nil)
	_ port.PaymentEventRepository = (*Store)(nil)
)

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		zones:     make(map[int64]domain.Zone),
		campaigns: make(map[int64]domain.Campaign),
		creatives: make(map[int64]domain.Creative),
		events:    make(map[string]port.PaymentEvent),
		now:       time.Now,
	}
}

func (s *Store) CreateZone(_ context.Context, z *domain.Zone) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextZone++
	z.ID = s.nextZone
	z.CreatedAt = s.now().UTC()
	z.UpdatedAt = z.CreatedAt
	s.zones[z.ID] = cloneZone(*z)
	return nil
}

func (s *Store) GetZone(_ context.Context, id int64) (*domain.Zone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	z, ok := s.zones[id]
	if !ok {
		return nil, fmt.Errorf("zone %d: %w", id, port.ErrNotFound)
	}
	z = cloneZone(z)
	return &z, nil
}

func (s *Store) ListZones(_ context.Context) ([]domain.Zone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Zone, 0, len(s.zones))
	for _, z := range s.zones {
		out = append(out, cloneZone(z))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) SetZoneStatus(_ context.Context, id int64, status domain.ZoneStatus) (*domain.Zone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	z, ok := s.zones[id]
	if !ok {
		return nil, fmt.Errorf("zone %d: %w", id, port.ErrNotFound)
	}
	z.Status = status
	z.UpdatedAt = s.now().UTC()
	s.zones[id] = z
	z = cloneZone(z)
	return &z, nil
}

func (s *Store) CreateCampaign(_ context.Context, c *domain.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.zones[c.ZoneID]; !ok {
		return fmt.Errorf("zone %d: %w", c.ZoneID, port.ErrNotFound)
	}
	s.nextCampaign++
	c.ID = s.nextCampaign
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.now().UTC()
	}
	c.UpdatedAt = c.CreatedAt
	s.campaigns[c.ID] = cloneCampaign(*c)
	return nil
}

func (s *Store) GetCampaign(_ context.Context, id int64) (*domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getCampaignLocked(id)
}

func (s *Store) getCampaignLocked(id int64) (*domain.Campaign, error) {
	c, ok := s.campaigns[id]
	if !ok {
		return nil, fmt.Errorf("campaign %d: %w", id, port.ErrNotFound)
	}
	c = cloneCampaign(c)
	return &c, nil
}

func (s *Store) GetCampaignByPaymentReference(_ context.Context, ref string) (*domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.campaigns {
		if ref != "" && c.PaymentReference == ref {
			c = cloneCampaign(c)
			return &c, nil
		}
	}
	return nil, fmt.Errorf("payment reference %q: %w", ref, port.ErrNotFound)
}

func (s *Store) ListCampaigns(_ context.Context, filter port.CampaignFilter) ([]domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Campaign
	for _, c := range s.campaigns {
		if c.RetiredAt != nil {
			continue
		}
		if filter.AdvertiserID != "" && c.AdvertiserID != filter.AdvertiserID {
			continue
		}
		if filter.ZoneID != 0 && c.ZoneID != filter.ZoneID {
			continue
		}
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		out = append(out, cloneCampaign(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) FindActiveForZone(_ context.Context, zoneID int64, tags []string, now time.Time) ([]domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Campaign
	for _, c := range s.campaigns {
		if c.ZoneID != zoneID || c.Status != domain.StatusActive || c.RetiredAt != nil {
			continue
		}
		if !c.InSchedule(now) {
			continue
		}
		if len(tags) > 0 && !domain.Intersects(c.TargetingTags, tags) {
			continue
		}
		out = append(out, cloneCampaign(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) FindEnded(_ context.Context, now time.Time, statuses []domain.CampaignStatus) ([]domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Campaign
	for _, c := range s.campaigns {
		if c.Ended(now) && slices.Contains(statuses, c.Status) {
			out = append(out, cloneCampaign(c))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) ChangeStatus(_ context.Context, change port.StatusChange) (*domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.campaigns[change.CampaignID]
	if !ok {
		return nil, fmt.Errorf("campaign %d: %w", change.CampaignID, port.ErrNotFound)
	}
	if !slices.Contains(change.From, c.Status) {
		return nil, fmt.Errorf("campaign %d is %s: %w", c.ID, c.Status, port.ErrConflict)
	}
	c.Status = change.To
	if change.PaymentStatus != "" {
		c.PaymentStatus = change.PaymentStatus
	}
	if change.PaymentReference != "" {
		c.PaymentReference = change.PaymentReference
	}
	if !change.StartDate.IsZero() && c.StartDate == nil {
		start := change.StartDate
		c.StartDate = &start
	}
	c.UpdatedAt = change.At
	s.campaigns[c.ID] = c
	c = cloneCampaign(c)
	return &c, nil
}

func (s *Store) RecordPaymentFailure(_ context.Context, id int64, at time.Time) (*domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.campaigns[id]
	if !ok {
		return nil, fmt.Errorf("campaign %d: %w", id, port.ErrNotFound)
	}
	if c.Status != domain.StatusPendingPayment {
		return nil, fmt.Errorf("campaign %d is %s: %w", id, c.Status, port.ErrConflict)
	}
	c.PaymentAttempts++
	c.PaymentStatus = domain.PaymentFailed
	c.UpdatedAt = at
	s.campaigns[id] = c
	c = cloneCampaign(c)
	return &c, nil
}

// IncrementDelivery checks and applies the increment under the store lock,
// which is what makes concurrent increments linearizable against budget.
func (s *Store) IncrementDelivery(_ context.Context, inc port.DeliveryIncrement) (port.DeliveryResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.campaigns[inc.CampaignID]
	if !ok {
		return port.DeliveryResult{}, fmt.Errorf("campaign %d: %w", inc.CampaignID, port.ErrNotFound)
	}
	if c.Status != domain.StatusActive {
		return port.DeliveryResult{}, fmt.Errorf("campaign %d is %s: %w", c.ID, c.Status, port.ErrCampaignNotActive)
	}
	cr, ok := s.creatives[inc.CreativeID]
	if !ok || cr.CampaignID != c.ID {
		return port.DeliveryResult{}, fmt.Errorf("creative %d: %w", inc.CreativeID, port.ErrNotFound)
	}
	if !cr.IsActive() {
		return port.DeliveryResult{}, fmt.Errorf("creative %d is %s: %w", cr.ID, cr.Status, port.ErrConflict)
	}

	result := port.DeliveryResult{NewSpent: c.Spent, NewViews: c.ViewsDelivered}
	if c.Spent.Add(inc.Cost).GreaterThan(c.Budget) {
		result.BudgetExceeded = true
		return result, nil
	}
	if c.ViewTargetReached() {
		result.ViewCapReached = true
		return result, nil
	}

	c.Spent = c.Spent.Add(inc.Cost)
	c.ViewsDelivered++
	c.UpdatedAt = s.now().UTC()
	cr.NumberOfViews++
	s.campaigns[c.ID] = c
	s.creatives[cr.ID] = cr

	return port.DeliveryResult{Applied: true, NewSpent: c.Spent, NewViews: c.ViewsDelivered}, nil
}

func (s *Store) IncrementClicks(_ context.Context, campaignID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.campaigns[campaignID]
	if !ok {
		return fmt.Errorf("campaign %d: %w", campaignID, port.ErrNotFound)
	}
	if c.Status.IsTerminal() {
		return fmt.Errorf("campaign %d is %s: %w", campaignID, c.Status, port.ErrCampaignNotActive)
	}
	c.Clicks++
	s.campaigns[campaignID] = c
	return nil
}

func (s *Store) IncrementUniqueViews(_ context.Context, campaignID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.campaigns[campaignID]
	if !ok {
		return fmt.Errorf("campaign %d: %w", campaignID, port.ErrNotFound)
	}
	c.UniqueViews++
	s.campaigns[campaignID] = c
	return nil
}

func (s *Store) DeleteCampaign(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.campaigns[id]
	if !ok {
		return fmt.Errorf("campaign %d: %w", id, port.ErrNotFound)
	}
	if c.HasDeliveryHistory() {
		return fmt.Errorf("campaign %d has delivery history: %w", id, port.ErrConflict)
	}
	delete(s.campaigns, id)
	for crID, cr := range s.creatives {
		if cr.CampaignID == id {
			delete(s.creatives, crID)
		}
	}
	return nil
}

func (s *Store) RetireCampaign(_ context.Context, id int64, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.campaigns[id]
	if !ok {
		return fmt.Errorf("campaign %d: %w", id, port.ErrNotFound)
	}
	if c.RetiredAt == nil {
		c.RetiredAt = &at
		c.UpdatedAt = at
		s.campaigns[id] = c
	}
	return nil
}

func (s *Store) CreateCreative(_ context.Context, cr *domain.Creative) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.campaigns[cr.CampaignID]; !ok {
		return fmt.Errorf("campaign %d: %w", cr.CampaignID, port.ErrNotFound)
	}
	s.nextCreative++
	cr.ID = s.nextCreative
	cr.CreatedAt = s.now().UTC()
	cr.UpdatedAt = cr.CreatedAt
	s.creatives[cr.ID] = *cr
	return nil
}

func (s *Store) GetCreative(_ context.Context, id int64) (*domain.Creative, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cr, ok := s.creatives[id]
	if !ok {
		return nil, fmt.Errorf("creative %d: %w", id, port.ErrNotFound)
	}
	return &cr, nil
}

func (s *Store) ListCreatives(_ context.Context, campaignID int64) ([]domain.Creative, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Creative
	for _, cr := range s.creatives {
		if cr.CampaignID == campaignID {
			out = append(out, cr)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) ListActiveCreatives(_ context.Context, campaignIDs []int64) ([]domain.Creative, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Creative
	for _, cr := range s.creatives {
		if cr.IsActive() && slices.Contains(campaignIDs, cr.CampaignID) {
			out = append(out, cr)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) SetCreativeStatus(_ context.Context, id int64, status domain.CreativeStatus) (*domain.Creative, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cr, ok := s.creatives[id]
	if !ok {
		return nil, fmt.Errorf("creative %d: %w", id, port.ErrNotFound)
	}
	cr.Status = status
	cr.UpdatedAt = s.now().UTC()
	s.creatives[id] = cr
	return &cr, nil
}

func (s *Store) RecordPaymentEvent(_ context.Context, ev port.PaymentEvent) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[ev.EventID]; ok {
		return false, nil
	}
	s.events[ev.EventID] = ev
	return true, nil
}

func (s *Store) ForgetPaymentEvent(_ context.Context, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.events, eventID)
	return nil
}

func cloneZone(z domain.Zone) domain.Zone {
	z.AllowedTags = slices.Clone(z.AllowedTags)
	return z
}

func cloneCampaign(c domain.Campaign) domain.Campaign {
	c.TargetingTags = slices.Clone(c.TargetingTags)
	if c.StartDate != nil {
		t := *c.StartDate
		c.StartDate = &t
	}
	if c.EndDate != nil {
		t := *c.EndDate
		c.EndDate = &t
	}
	if c.RetiredAt != nil {
		t := *c.RetiredAt
		c.RetiredAt = &t
	}
	return c
}
