package cache

import (
	"time"

	"github.com/jellydator/ttlcache/v3"
)

type ttlResultCache[T any] struct {
	cache *ttlcache.Cache[string, Result[T]]
}

func (c *ttlResultCache[T]) Retrieve(key string) (Result[T], bool) {
	item := c.cache.Get(key)
	if item == nil {
		return Result[T]{}, false
	}
	return item.Value(), true
}

func (c *ttlResultCache[T]) Add(key string, result Result[T]) {
	c.cache.Set(key, result, ttlcache.DefaultTTL)
}

// disabledResultCache is used for non-positive TTLs: every lookup misses and
// nothing is stored. This keeps "TTL 0" meaning "no caching" rather than
// "expires immediately".
type disabledResultCache[T any] struct{}

func (disabledResultCache[T]) Retrieve(string) (Result[T], bool) {
	return Result[T]{}, false
}

func (disabledResultCache[T]) Add(string, Result[T]) {
}

// NewTTLResultCache returns a cache whose entries expire ttl after they were
// added. Expired entries are treated as absent on lookup but are not
// proactively deleted. A non-positive ttl disables caching entirely.
//
// There is no capacity bound: callers must not key the cache on unbounded
// input.
func NewTTLResultCache[T any](ttl time.Duration) ResultCache[T] {
	if ttl <= 0 {
		return disabledResultCache[T]{}
	}

	return &ttlResultCache[T]{
		cache: ttlcache.New[string, Result[T]](
			ttlcache.WithTTL[string, Result[T]](ttl),
			ttlcache.WithDisableTouchOnHit[string, Result[T]](),
		),
	}
}
