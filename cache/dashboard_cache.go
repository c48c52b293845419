// Package dashboard_cache holds the last computed analytics snapshot for a
// short TTL so a dashboard full of widgets does not recompute (and re-query
// the full order history) on every poll. The snapshot itself is still always
// produced by a full recompute; the cache only bounds how stale a read can be.
package dashboard_cache

import (
	"sync"
	"time"

	"github.com/MayankMaurya27/Ecommerce/models"
)

const TTL = 1 * time.Minute

type entry struct {
	snapshot  models.AnalyticsSnapshot
	fetchedAt time.Time
}

var (
	mu     sync.RWMutex
	cached *entry
)

func Get() (models.AnalyticsSnapshot, bool) {
	mu.RLock()
	defer mu.RUnlock()
	if cached != nil && time.Since(cached.fetchedAt) < TTL {
		return cached.snapshot, true
	}
	return models.AnalyticsSnapshot{}, false
}

func Set(snapshot models.AnalyticsSnapshot) {
	mu.Lock()
	defer mu.Unlock()
	cached = &entry{snapshot: snapshot, fetchedAt: time.Now()}
}

// Invalidate drops the cached snapshot (call on any product/order/user write).
func Invalidate() {
	mu.Lock()
	cached = nil
	mu.Unlock()
}
