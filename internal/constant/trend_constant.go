package constant

type StaticTrend struct {
	Name  string
	Vibes []string
}

// FallbackTrends is served by the trend listing when the graph store is unreachable.
var FallbackTrends = []StaticTrend{
	{Name: "90s Revival", Vibes: []string{"grunge", "casual", "streetwear"}},
	{Name: "Minimalist Chic", Vibes: []string{"clean", "simple", "professional"}},
	{Name: "Hacker Mode", Vibes: []string{"tech-inspired", "innovative"}},
}

const (
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"

	ImageProviderGemini   = "gemini"
	ImageProviderDisabled = "disabled"
)
