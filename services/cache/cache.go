package cache

import (
	"time"
)

// CacheService is the cooldown cache the runner uses to avoid hammering a
// host that just failed or rate-limited us.
type CacheService interface {
	// Get retrieves a value from the cache
	Get(key string) ([]byte, error)

	// Set stores a value in the cache with an expiration time
	Set(key string, value []byte, expiration time.Duration) error

	// Delete removes a value from the cache
	Delete(key string) error
}
