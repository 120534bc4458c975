package service

import (
	"context"
	"errors"
	"fmt"

	"style-weaver-be/internal/entity"
	"style-weaver-be/internal/repository/contract"
	"style-weaver-be/pkg/embedding"
	"style-weaver-be/pkg/styling"
)

// wardrobeSearchService is the semantic wardrobe search used by the matcher:
// it embeds the concept as a retrieval query and asks the vector store for
// the nearest items.
type wardrobeSearchService struct {
	repository        contract.WardrobeItemRepository
	embeddingProvider embedding.EmbeddingProvider
}

func NewWardrobeSearchService(
	repository contract.WardrobeItemRepository,
	embeddingProvider embedding.EmbeddingProvider,
) styling.WardrobeSearcher {
	return &wardrobeSearchService{
		repository:        repository,
		embeddingProvider: embeddingProvider,
	}
}

func (s *wardrobeSearchService) SearchByConcept(ctx context.Context, concept string, category entity.Category, limit int) ([]entity.ScoredWardrobeItem, error) {
	if limit <= 0 {
		return nil, nil
	}

	res, err := s.embeddingProvider.Generate(ctx, concept, embedding.TaskRetrievalQuery)
	if err != nil {
		return nil, unavailable("embed concept", err)
	}

	items, err := s.repository.SearchSimilar(ctx, res.Embedding.Values, category, limit)
	if err != nil {
		return nil, unavailable("search wardrobe", err)
	}
	return items, nil
}

func unavailable(op string, err error) error {
	if errors.Is(err, styling.ErrUnavailable) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %v", op, styling.ErrUnavailable, err)
}
