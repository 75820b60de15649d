package stats

import (
	"sync"

	"github.com/hupe1980/dynoq/catalog"
	"github.com/hupe1980/dynoq/model"
)

type cacheKey struct {
	entry model.EntryKey
	attr  model.Attribute
}

// Cache memoizes ExtremePairs per (entry, attribute).
//
// The underlying catalog is immutable, so entries never invalidate. Only
// successful computations are cached; ErrNoData is cheap to re-derive and
// is recomputed on each call. Safe for concurrent use.
type Cache struct {
	cat *catalog.Catalog

	mu sync.RWMutex
	m  map[cacheKey]model.ExtremePair
}

// NewCache creates a cache over the given catalog.
func NewCache(cat *catalog.Catalog) *Cache {
	return &Cache{
		cat: cat,
		m:   make(map[cacheKey]model.ExtremePair),
	}
}

// Extremes returns the cached ExtremePair for the entry and attribute,
// computing it on first use. Error semantics match the package-level
// Extremes function.
func (c *Cache) Extremes(key model.EntryKey, attr model.Attribute) (model.ExtremePair, error) {
	ck := cacheKey{entry: key, attr: attr}

	c.mu.RLock()
	pair, ok := c.m[ck]
	c.mu.RUnlock()
	if ok {
		return pair, nil
	}

	pair, err := Extremes(c.cat, key, attr)
	if err != nil {
		return model.ExtremePair{}, err
	}

	c.mu.Lock()
	c.m[ck] = pair
	c.mu.Unlock()

	return pair, nil
}
