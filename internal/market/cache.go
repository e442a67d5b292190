package market

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/JellyBot_Go/internal/domain"
)

// cachedQuote wraps a quote with version metadata for cache invalidation
type cachedQuote struct {
	Version  string
	Quote    domain.PriceQuote
	CachedAt time.Time
}

// priceCache is an in-memory LRU of item quotes with time-based expiry.
// It is purged after every tick.
type priceCache struct {
	lru *expirable.LRU[string, *cachedQuote]
}

func newPriceCache(size int, ttl time.Duration) *priceCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &priceCache{
		lru: expirable.NewLRU[string, *cachedQuote](size, nil, ttl),
	}
}

// Get returns a cached quote. Entries from another schema version are dropped.
func (c *priceCache) Get(itemName string) (domain.PriceQuote, bool) {
	entry, found := c.lru.Get(itemName)
	if !found {
		return domain.PriceQuote{}, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(itemName)
		return domain.PriceQuote{}, false
	}
	return entry.Quote, true
}

func (c *priceCache) Set(itemName string, quote domain.PriceQuote) {
	c.lru.Add(itemName, &cachedQuote{
		Version:  CacheSchemaVersion,
		Quote:    quote,
		CachedAt: time.Now(),
	})
}

func (c *priceCache) Invalidate(itemName string) {
	c.lru.Remove(itemName)
}

func (c *priceCache) Clear() {
	c.lru.Purge()
}

func (c *priceCache) Len() int {
	return c.lru.Len()
}
