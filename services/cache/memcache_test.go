package cache

import (
	"testing"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/stretchr/testify/assert"
)

// This test requires a running memcached instance and is skipped otherwise.
func TestMemcacheService(t *testing.T) {
	mc := NewMemcacheService("localhost:11211")

	_, err := mc.client.Get("probe")
	if err != nil && err != memcache.ErrCacheMiss {
		t.Skip("Memcached is not available, skipping test")
	}

	err = mc.Set("cooldown:example.com", []byte("1"), 1*time.Second)
	assert.NoError(t, err)

	value, err := mc.Get("cooldown:example.com")
	assert.NoError(t, err)
	assert.Equal(t, "1", string(value))

	err = mc.Delete("cooldown:example.com")
	assert.NoError(t, err)

	_, err = mc.Get("cooldown:example.com")
	assert.Error(t, err)
}
