package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"strconv"
	"time"

	"github.com/coocood/freecache"
	"golang.org/x/sync/singleflight"

	"club-ads/internal/config/configs"
	"club-ads/internal/core/domain"
	"club-ads/internal/core/port"
)

// ZoneRegistry is a read-through cache in front of a port.ZoneRepository.
// Zones are read on every serve and change rarely, so lookups are kept in
// a freecache arena for a short TTL and concurrent misses for the same zone
// share one repository call. Writes go straight to the repository and drop
// the cached entry.
type ZoneRegistry struct {
	repo   port.ZoneRepository
	cache  *freecache.Cache
	ttl    int
	group  singleflight.Group
	logger *slog.Logger
}

var _ port.ZoneRepository = (*ZoneRegistry)(nil)

// NewZoneRegistry wraps repo with a cache sized and timed by cfg.
func NewZoneRegistry(repo port.ZoneRepository, cfg configs.Cache, logger *slog.Logger) *ZoneRegistry {
	return &ZoneRegistry{
		repo:   repo,
		cache:  freecache.NewCache(cfg.SizeBytes),
		ttl:    cfg.ZoneTTLSeconds,
		logger: logger,
	}
}

// loadTimeout bounds a shared zone load that no caller waits for anymore.
const loadTimeout = 5 * time.Second

// GetZone returns the zone from cache, loading it on a miss. Lookups that
// fail are never cached.
func (r *ZoneRegistry) GetZone(ctx context.Context, id int64) (*domain.Zone, error) {
	key := zoneKey(id)
	if data, err := r.cache.Get(key); err == nil {
		var z domain.Zone
		if err = json.Unmarshal(data, &z); err == nil {
			return &z, nil
		}
		r.cache.Del(key)
	}

	// The shared load outlives any single caller so that one request
	// giving up does not fail the others waiting on it. Each caller still
	// stops waiting at its own deadline.
	ch := r.group.DoChan(string(key), func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()
		z, err := r.repo.GetZone(loadCtx, id)
		if err != nil {
			return nil, err
		}
		r.store(z)
		return z, nil
	})
	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if res.Err != nil {
		return nil, res.Err
	}
	z := *res.Val.(*domain.Zone)
	z.AllowedTags = slices.Clone(z.AllowedTags)
	return &z, nil
}

func (r *ZoneRegistry) CreateZone(ctx context.Context, z *domain.Zone) error {
	return r.repo.CreateZone(ctx, z)
}

func (r *ZoneRegistry) ListZones(ctx context.Context) ([]domain.Zone, error) {
	return r.repo.ListZones(ctx)
}

func (r *ZoneRegistry) SetZoneStatus(ctx context.Context, id int64, status domain.ZoneStatus) (*domain.Zone, error) {
	z, err := r.repo.SetZoneStatus(ctx, id, status)
	r.Invalidate(id)
	return z, err
}

// Invalidate drops the cached copy of zone id.
func (r *ZoneRegistry) Invalidate(id int64) {
	r.cache.Del(zoneKey(id))
}

func (r *ZoneRegistry) store(z *domain.Zone) {
	data, err := json.Marshal(z)
	if err != nil {
		return
	}
	if err = r.cache.Set(zoneKey(z.ID), data, r.ttl); err != nil {
		r.logger.Warn("zone cache set failed", slog.Int64("zone_id", z.ID), slog.Any("error", err))
	}
}

func zoneKey(id int64) []byte {
	return strconv.AppendInt([]byte("zone:"), id, 10)
}
