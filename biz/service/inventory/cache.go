package inventory

import (
	"context"
	"sync"
	"time"

	"github.com/yi-nology/campus_inventory/biz/dal/model"
	"github.com/yi-nology/campus_inventory/pkg/metrics"
)

// Loader fetches the full record table.
type Loader interface {
	LoadAll(ctx context.Context) ([]model.AssetRecord, error)
}

// RecordCache holds the last successful LoadAll result. A zero ttl keeps it
// until Invalidate. Only successful loads are stored.
type RecordCache struct {
	loader Loader
	ttl    time.Duration
	now    func() time.Time

	mu       sync.Mutex
	data     []model.AssetRecord
	loadedAt time.Time
	valid    bool
}

func NewRecordCache(loader Loader, ttl time.Duration) *RecordCache {
	return &RecordCache{loader: loader, ttl: ttl, now: time.Now}
}

// Get returns the cached records, loading them when absent or expired.
// Callers must not modify the returned slice.
func (c *RecordCache) Get(ctx context.Context) ([]model.AssetRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.valid && (c.ttl <= 0 || c.now().Sub(c.loadedAt) < c.ttl) {
		metrics.CacheLookups.WithLabelValues("hit").Inc()
		return c.data, nil
	}
	metrics.CacheLookups.WithLabelValues("miss").Inc()

	records, err := c.loader.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []model.AssetRecord{}
	}
	c.data = records
	c.loadedAt = c.now()
	c.valid = true
	return c.data, nil
}

// LoadedAt reports when the cached data was loaded; zero when empty.
func (c *RecordCache) LoadedAt() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.valid {
		return time.Time{}
	}
	return c.loadedAt
}

// Invalidate drops the cached records.
func (c *RecordCache) Invalidate() {
	c.mu.Lock()
	c.data = nil
	c.loadedAt = time.Time{}
	c.valid = false
	c.mu.Unlock()
}

// OnStoreChanged is an EventHandler that invalidates the cache.
func (c *RecordCache) OnStoreChanged(ctx context.Context, e Event) {
	c.Invalidate()
}
