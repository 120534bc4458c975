package styling

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"style-weaver-be/internal/entity"
	"style-weaver-be/internal/pkg/logger"
)

var testLogger = logger.NewNopLogger()

type fakeTrendSource struct {
	trends map[string]entity.Trend
	err    error
	delay  time.Duration
	calls  atomic.Int32
}

func (f *fakeTrendSource) FindTrend(ctx context.Context, name string) (*entity.Trend, error) {
	f.calls.Add(1)
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	for k, t := range f.trends {
		if strings.EqualFold(k, name) {
			tt := t.Clone()
			return &tt, nil
		}
	}
	return nil, ErrNotFound
}

type fakeSearcher struct {
	mu       sync.Mutex
	items    map[entity.Category][]entity.ScoredWardrobeItem
	errs     map[entity.Category]error
	delay    time.Duration
	concepts []string
}

func (f *fakeSearcher) SearchByConcept(ctx context.Context, concept string, category entity.Category, limit int) ([]entity.ScoredWardrobeItem, error) {
	f.mu.Lock()
	f.concepts = append(f.concepts, concept)
	f.mu.Unlock()

	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err := f.errs[category]; err != nil {
		return nil, err
	}
	items := f.items[category]
	if len(items) > limit {
		items = items[:limit]
	}
	return append([]entity.ScoredWardrobeItem(nil), items...), nil
}

type fakeGenerator struct {
	ref     string
	err     error
	calls   atomic.Int32
	prompts []string
	mu      sync.Mutex
}

func (f *fakeGenerator) GenerateImage(ctx context.Context, prompt string) (string, error) {
	f.calls.Add(1)
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	return f.ref, nil
}

type mapCache struct {
	mu    sync.Mutex
	items map[string]entity.Trend
}

func newMapCache() *mapCache {
	return &mapCache{items: make(map[string]entity.Trend)}
}

func (c *mapCache) Get(_ context.Context, key string) (*entity.Trend, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	t, ok := c.items[key]
	if !ok {
		return nil, false
	}
	return &t, true
}

func (c *mapCache) Set(_ context.Context, key string, trend *entity.Trend) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = trend.Clone()
}

func item(id string, category entity.Category, description string, tags ...string) entity.WardrobeItem {
	return entity.WardrobeItem{
		Id:          id,
		Name:        description,
		Category:    category,
		Description: description,
		ImageUrl:    "https://example.com/" + id + ".jpg",
		StyleTags:   tags,
	}
}

func scored(it entity.WardrobeItem, similarity float64) entity.ScoredWardrobeItem {
	return entity.ScoredWardrobeItem{Item: it, Similarity: similarity}
}

func nineties() entity.Trend {
	return entity.Trend{
		Name:     "90s Revival",
		Garments: []string{"denim jeans", "graphic t-shirt", "oversized hoodie"},
		Vibes:    []string{"grunge", "casual", "streetwear", "nostalgic"},
	}
}

func minimalist() entity.Trend {
	return entity.Trend{
		Name:     "Minimalist Chic",
		Garments: []string{"crewneck t-shirt", "chinos", "blazer"},
		Vibes:    []string{"clean", "simple", "professional", "timeless"},
	}
}

// sampleWardrobe mirrors the seeded wardrobe with similarities typical for the 90s Revival concept.
func sampleWardrobe() *fakeSearcher {
	return &fakeSearcher{
		items: map[entity.Category][]entity.ScoredWardrobeItem{
			entity.CategoryTop: {
				scored(item("top_02", entity.CategoryTop, "A black oversized hoodie", "streetwear", "casual", "cozy"), 0.82),
				scored(item("top_01", entity.CategoryTop, "A white cotton crewneck t-shirt", "casual", "basic", "minimalist"), 0.80),
				scored(item("top_03", entity.CategoryTop, "A grey hacker t-shirt", "hackers-casual", "cozy"), 0.60),
			},
			entity.CategoryBottom: {
				scored(item("bottom_01", entity.CategoryBottom, "Dark wash denim jeans", "casual", "classic", "streetwear"), 0.78),
				scored(item("bottom_02", entity.CategoryBottom, "Khaki chinos", "business-casual", "preppy"), 0.55),
			},
		},
	}
}
