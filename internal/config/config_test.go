package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STYLE_TOP_K", "")
	t.Setenv("CACHE_DRIVER", "memory")

	cfg := Load()

	assert.Equal(t, 5, cfg.Styling.TopK)
	assert.InDelta(t, 0.7, cfg.Styling.SimilarityWeight, 1e-9)
	assert.InDelta(t, 0.3, cfg.Styling.TagWeight, 1e-9)
	assert.Equal(t, 60*time.Second, cfg.Styling.RequestTimeout)
	require.NoError(t, cfg.Validate())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STYLE_TOP_K", "8")
	t.Setenv("STYLE_SIMILARITY_WEIGHT", "0.8")
	t.Setenv("STYLE_TAG_WEIGHT", "0.2")
	t.Setenv("STYLE_GRAPH_TIMEOUT", "750ms")
	t.Setenv("STYLE_IMAGE_TIMEOUT", "12")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("CACHE_DRIVER", "redis")

	cfg := Load()

	assert.Equal(t, 8, cfg.Styling.TopK)
	assert.InDelta(t, 0.8, cfg.Styling.SimilarityWeight, 1e-9)
	assert.Equal(t, 750*time.Millisecond, cfg.Styling.GraphTimeout)
	assert.Equal(t, 12*time.Second, cfg.Styling.ImageTimeout)
	assert.True(t, cfg.App.OtelEnabled)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			App: AppConfig{CacheDriver: "memory"},
			Styling: StylingConfig{
				TopK:             5,
				SimilarityWeight: 0.7,
				TagWeight:        0.3,
				RequestTimeout:   time.Second,
				GraphTimeout:     time.Second,
				VectorTimeout:    time.Second,
				ImageTimeout:     time.Second,
			},
			Breaker: BreakerConfig{FailureThreshold: 5},
		}
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "zero top-k", mutate: func(c *Config) { c.Styling.TopK = 0 }},
		{name: "weights do not sum to one", mutate: func(c *Config) { c.Styling.TagWeight = 0.5 }},
		{name: "tag weight dominates", mutate: func(c *Config) { c.Styling.SimilarityWeight, c.Styling.TagWeight = 0.2, 0.8 }},
		{name: "negative weight", mutate: func(c *Config) { c.Styling.SimilarityWeight, c.Styling.TagWeight = 1.1, -0.1 }},
		{name: "zero timeout", mutate: func(c *Config) { c.Styling.VectorTimeout = 0 }},
		{name: "unknown cache driver", mutate: func(c *Config) { c.App.CacheDriver = "memcached" }},
	}

	require.NoError(t, valid().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}
