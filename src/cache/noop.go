package cache

import "time"

// -----------------------------------------------------------------------------
// NoopCache is the disabled-cache mode: every read misses and every write is
// discarded, so callers see pure pass-through behavior.
// -----------------------------------------------------------------------------

type NoopCache struct{}

func NewNoopCache() *NoopCache {
	return &NoopCache{}
}

func (c *NoopCache) Read(key string, ttl time.Duration) ([]byte, time.Time, bool) {
	return nil, time.Time{}, false
}

func (c *NoopCache) Write(key string, payload []byte) {}

func (c *NoopCache) Close() error {
	return nil
}
