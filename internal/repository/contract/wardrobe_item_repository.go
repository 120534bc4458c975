package contract

import (
	"context"

	"style-weaver-be/internal/entity"
	"style-weaver-be/internal/repository/specification"
)

type WardrobeItemRepository interface {
	Create(ctx context.Context, item *entity.WardrobeItem) error
	Upsert(ctx context.Context, item *entity.WardrobeItem) error
	UpdateEmbedding(ctx context.Context, id string, embedding []float32) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WardrobeItem, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WardrobeItem, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	DeleteAllUnscoped(ctx context.Context) error
	// SearchSimilar returns the nearest indexed items of one category, most similar first.
	SearchSimilar(ctx context.Context, embedding []float32, category entity.Category, limit int) ([]entity.ScoredWardrobeItem, error)
}
