package implementation

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"style-weaver-be/internal/entity"
	"style-weaver-be/internal/pkg/logger"
	"style-weaver-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

const trendCacheKeyPrefix = "styleweaver:trend:"

type redisTrend struct {
	Name     string   `json:"name"`
	Garments []string `json:"garments"`
	Vibes    []string `json:"vibes"`
}

type RedisTrendCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.ILogger
}

func NewRedisTrendCache(rdb *redis.Client, ttl time.Duration, log logger.ILogger) contract.TrendCache {
	return &RedisTrendCache{rdb: rdb, ttl: ttl, logger: log}
}

// Get treats any Redis failure as a cache miss.
func (c *RedisTrendCache) Get(ctx context.Context, key string) (*entity.Trend, bool) {
	raw, err := c.rdb.Get(ctx, trendCacheKeyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("TrendCache", "Redis get failed", map[string]interface{}{"key": key, "error": err.Error()})
		}
		return nil, false
	}

	var stored redisTrend
	if err := json.Unmarshal(raw, &stored); err != nil {
		c.logger.Warn("TrendCache", "Discarding undecodable cache entry", map[string]interface{}{"key": key, "error": err.Error()})
		return nil, false
	}
	return &entity.Trend{Name: stored.Name, Garments: stored.Garments, Vibes: stored.Vibes}, true
}

func (c *RedisTrendCache) Set(ctx context.Context, key string, trend *entity.Trend) {
	if trend == nil {
		return
	}
	raw, err := json.Marshal(redisTrend{Name: trend.Name, Garments: trend.Garments, Vibes: trend.Vibes})
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, trendCacheKeyPrefix+key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("TrendCache", "Redis set failed", map[string]interface{}{"key": key, "error": err.Error()})
	}
}
