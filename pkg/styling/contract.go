package styling

import (
	"context"

	"style-weaver-be/internal/entity"
)

// TrendSource looks a trend up by name, case-insensitively.
// It returns ErrNotFound when no trend matches.
type TrendSource interface {
	FindTrend(ctx context.Context, name string) (*entity.Trend, error)
}

// WardrobeSearcher returns up to limit nearest items of one category for a text concept.
type WardrobeSearcher interface {
	SearchByConcept(ctx context.Context, concept string, category entity.Category, limit int) ([]entity.ScoredWardrobeItem, error)
}

// ImageGenerator renders a prompt and returns an opaque image reference.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// TrendCache stores resolved trends keyed by folded name.
type TrendCache interface {
	Get(ctx context.Context, key string) (*entity.Trend, bool)
	Set(ctx context.Context, key string, trend *entity.Trend)
}

// Observer receives stage results, e.g. for metrics.
type Observer interface {
	ObserveStage(stage string, report entity.StageReport)
	ObserveRun(report entity.BoardStages, seconds float64)
}

type nopObserver struct{}

func (nopObserver) ObserveStage(string, entity.StageReport) {}
func (nopObserver) ObserveRun(entity.BoardStages, float64) {}
