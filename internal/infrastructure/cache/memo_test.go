package cache

import (
	"testing"
	"time"

	"hospital-dashboard/config"

	"github.com/stretchr/testify/assert"
)

func TestNewViewCache_ZeroTTLNeverExpires(t *testing.T) {
	c := NewViewCache(config.CacheConfig{})
	c.SetDefault("k", 1)

	_, expiry, found := c.GetWithExpiration("k")
	assert.True(t, found)
	assert.True(t, expiry.IsZero())
}

func TestNewViewCache_TTL(t *testing.T) {
	c := NewViewCache(config.CacheConfig{TTL: time.Minute, CleanupInterval: time.Minute})
	c.SetDefault("k", 1)

	_, expiry, found := c.GetWithExpiration("k")
	assert.True(t, found)
	assert.WithinDuration(t, time.Now().Add(time.Minute), expiry, 5*time.Second)
}
