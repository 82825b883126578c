package tools

import (
	"sync"
	"time"

	"tally/internal/tally"
)

// AccumulateCacheItem represents a cached accumulation with its access time.
type AccumulateCacheItem struct {
	Result     int
	LastAccess time.Time
}

type rangeKey struct {
	from, to int
}

var accumulateCache = struct {
	sync.RWMutex

	items map[rangeKey]AccumulateCacheItem
}{items: make(map[rangeKey]AccumulateCacheItem)}

// accumulateWithCache runs tally.Accumulate and caches the result by range.
// Results never go stale, so entries are only refreshed on access.
func accumulateWithCache(from, to int) int {
	key := rangeKey{from: from, to: to}

	accumulateCache.RLock()
	item, exists := accumulateCache.items[key]
	accumulateCache.RUnlock()

	if exists {
		accumulateCache.Lock()

		item.LastAccess = time.Now()
		accumulateCache.items[key] = item
		accumulateCache.Unlock()

		return item.Result
	}

	result := tally.Accumulate(from, to)

	accumulateCache.Lock()
	accumulateCache.items[key] = AccumulateCacheItem{
		Result:     result,
		LastAccess: time.Now(),
	}
	accumulateCache.Unlock()

	return result
}

// PruneCache drops entries not accessed within maxAge and reports how many
// were removed.
func PruneCache(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)

	accumulateCache.Lock()
	defer accumulateCache.Unlock()

	removed := 0

	for key, item := range accumulateCache.items {
		if item.LastAccess.Before(cutoff) {
			delete(accumulateCache.items, key)
			removed++
		}
	}

	return removed
}
