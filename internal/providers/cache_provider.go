package providers

import (
	"moodtracker/internal/structures"

	"github.com/coocood/freecache"
)

// CacheProviderInterface holds rendered API responses between two recorded moods.
type CacheProviderInterface interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Invalidate(keys ...string)
}

const responseKeyPrefix = "resp:"

// ResponseCache is a freecache-backed response store that reports hits and
// misses to the metrics provider.
type ResponseCache struct {
	entries *freecache.Cache
	ttl     int
	metrics MetricsProviderInterface
	logger  Logger
}

func NewResponseCacheProvider(conf *structures.Config, logger Logger, metrics MetricsProviderInterface) CacheProviderInterface {
	if !conf.Cache.Enabled || conf.Cache.Size <= 0 {
		logger.Infof(TypeApp, "Response cache disabled")
		return &disabledCache{}
	}

	// freecache expires in whole seconds
	ttl := max(int(conf.Cache.TTL.Seconds()), 1)
	logger.Infof(TypeApp, "Response cache: %dMB, entries live %ds or until the next recorded mood", conf.Cache.Size, ttl)

	return &ResponseCache{
		entries: freecache.NewCache(conf.Cache.Size << 20),
		ttl:     ttl,
		metrics: metrics,
		logger:  logger,
	}
}

func responseKey(key string) []byte {
	return []byte(responseKeyPrefix + key)
}

func (c *ResponseCache) Get(key string) ([]byte, bool) {
	body, err := c.entries.Get(responseKey(key))
	if err != nil {
		c.metrics.IncCacheMisses()
		return nil, false
	}
	c.metrics.IncCacheHits()
	return body, true
}

func (c *ResponseCache) Set(key string, value []byte) {
	if err := c.entries.Set(responseKey(key), value, c.ttl); err != nil {
		// freecache refuses entries over 1/1024 of its size
		c.logger.Debugf(TypeApp, "Response %q (%d bytes) not cached: %s", key, len(value), err)
	}
}

func (c *ResponseCache) Invalidate(keys ...string) {
	for _, key := range keys {
		c.entries.Del(responseKey(key))
	}
}

// Len reports the number of live entries.
func (c *ResponseCache) Len() int64 {
	return c.entries.EntryCount()
}

// disabledCache never stores anything, so every read is computed. It does
// not count misses: nothing was ever meant to hit.
type disabledCache struct{}

func (d *disabledCache) Get(_ string) ([]byte, bool) { return nil, false }
func (d *disabledCache) Set(_ string, _ []byte)      {}
func (d *disabledCache) Invalidate(_ ...string)      {}
