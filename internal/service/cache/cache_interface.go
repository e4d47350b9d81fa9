package cache

import "github.com/guttosm/shipping-service/internal/domain/model"

// Cache defines the interface for estimate cache operations. Keys are
// shipment request digests.
type Cache interface {
	Get(key uint64) (model.Estimate, bool)
	Set(key uint64, value model.Estimate)
	Invalidate(key uint64)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
