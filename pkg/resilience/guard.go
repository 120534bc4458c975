package resilience

import (
	"context"

	"style-weaver-be/internal/entity"
	"style-weaver-be/internal/pkg/logger"
	"style-weaver-be/pkg/styling"

	gobreaker "github.com/sony/gobreaker/v2"
)

type guardedTrendSource struct {
	next styling.TrendSource
	cb   *gobreaker.CircuitBreaker[*entity.Trend]
}

func GuardTrendSource(next styling.TrendSource, cfg Config, log logger.ILogger) styling.TrendSource {
	return &guardedTrendSource{next: next, cb: NewBreaker[*entity.Trend]("graph-store", cfg, log)}
}

func (g *guardedTrendSource) FindTrend(ctx context.Context, name string) (*entity.Trend, error) {
	return Execute(g.cb, func() (*entity.Trend, error) {
		return g.next.FindTrend(ctx, name)
	})
}

type guardedSearcher struct {
	next styling.WardrobeSearcher
	cb   *gobreaker.CircuitBreaker[[]entity.ScoredWardrobeItem]
}

func GuardWardrobeSearcher(next styling.WardrobeSearcher, cfg Config, log logger.ILogger) styling.WardrobeSearcher {
	return &guardedSearcher{next: next, cb: NewBreaker[[]entity.ScoredWardrobeItem]("vector-store", cfg, log)}
}

func (g *guardedSearcher) SearchByConcept(ctx context.Context, concept string, category entity.Category, limit int) ([]entity.ScoredWardrobeItem, error) {
	return Execute(g.cb, func() ([]entity.ScoredWardrobeItem, error) {
		return g.next.SearchByConcept(ctx, concept, category, limit)
	})
}

type guardedGenerator struct {
	next styling.ImageGenerator
	cb   *gobreaker.CircuitBreaker[string]
}

func GuardImageGenerator(next styling.ImageGenerator, cfg Config, log logger.ILogger) styling.ImageGenerator {
	return &guardedGenerator{next: next, cb: NewBreaker[string]("image-service", cfg, log)}
}

func (g *guardedGenerator) GenerateImage(ctx context.Context, prompt string) (string, error) {
	return Execute(g.cb, func() (string, error) {
		return g.next.GenerateImage(ctx, prompt)
	})
}
