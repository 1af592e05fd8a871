package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"club-ads/internal/core/port"
)

// UniqueViews estimates distinct viewers per campaign with one HyperLogLog
// key per campaign. Keys expire after ttl of inactivity.
type UniqueViews struct {
	client *redis.Client
	ttl    time.Duration
}

var _ port.UniqueViewTracker = (*UniqueViews)(nil)

func NewUniqueViews(client *redis.Client, ttl time.Duration) *UniqueViews {
	return &UniqueViews{client: client, ttl: ttl}
}

// Observe adds viewerID to the campaign's HyperLogLog. PFADD reports 1
// when the cardinality estimate changed, which is taken as a new viewer.
func (u *UniqueViews) Observe(ctx context.Context, campaignID int64, viewerID string) (bool, error) {
	key := "ads:uv:" + strconv.FormatInt(campaignID, 10)

	pipe := u.client.TxPipeline()
	added := pipe.PFAdd(ctx, key, viewerID)
	if u.ttl > 0 {
		pipe.Expire(ctx, key, u.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("pfadd %s: %w", key, err)
	}
	return added.Val() == 1, nil
}
