package cache

import (
	"hospital-dashboard/config"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

// NewViewCache creates the in-process cache for derived view-models.
// A zero TTL keeps entries for the life of the process, which is safe because
// the record stores never change after start-up.
func NewViewCache(cfg config.CacheConfig) *gocache.Cache {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}

	c := gocache.New(ttl, cfg.CleanupInterval)
	logrus.Debugf("View cache ready (ttl=%v)", ttl)
	return c
}
