package memory

import (
	"context"
	"sync"

	"club-ads/internal/core/port"
)

// UniqueViews tracks distinct viewers per campaign exactly. Memory grows
// with the number of viewers, so it is only meant for the memory store
// mode; production uses the Redis HyperLogLog tracker.
type UniqueViews struct {
	mu      sync.Mutex
	viewers map[int64]map[string]struct{}
}

var _ port.UniqueViewTracker = (*UniqueViews)(nil)

func NewUniqueViews() *UniqueViews {
	return &UniqueViews{viewers: make(map[int64]map[string]struct{})}
}

func (u *UniqueViews) Observe(_ context.Context, campaignID int64, viewerID string) (bool, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	set, ok := u.viewers[campaignID]
	if !ok {
		set = make(map[string]struct{})
		u.viewers[campaignID] = set
	}
	if _, seen := set[viewerID]; seen {
		return false, nil
	}
	set[viewerID] = struct{}{}
	return true, nil
}
