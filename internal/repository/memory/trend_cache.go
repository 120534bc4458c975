package memory

import (
	"context"
	"time"

	"style-weaver-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

type TrendCache struct {
	cache *cache.Cache
}

// NewTrendCache keeps trends for ttl and purges expired entries every 2*ttl.
func NewTrendCache(ttl time.Duration) *TrendCache {
	return &TrendCache{
		cache: cache.New(ttl, 2*ttl),
	}
}

func (c *TrendCache) Get(_ context.Context, key string) (*entity.Trend, bool) {
	if x, found := c.cache.Get(key); found {
		t := x.(entity.Trend).Clone()
		return &t, true
	}
	return nil, false
}

func (c *TrendCache) Set(_ context.Context, key string, trend *entity.Trend) {
	if trend == nil {
		return
	}
	c.cache.Set(key, trend.Clone(), cache.DefaultExpiration)
}

func (c *TrendCache) Delete(key string) {
	c.cache.Delete(key)
}
