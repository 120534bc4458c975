package service

import (
	"context"
	"errors"
	"testing"

	"style-weaver-be/internal/entity"
	"style-weaver-be/pkg/embedding"
	"style-weaver-be/pkg/styling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWardrobeSearchService_SearchByConcept(t *testing.T) {
	repo := newFakeWardrobeRepo()
	repo.hits = []entity.ScoredWardrobeItem{
		{Item: entity.WardrobeItem{Id: "top_02", Category: entity.CategoryTop}, Similarity: 0.9},
		{Item: entity.WardrobeItem{Id: "bottom_01", Category: entity.CategoryBottom}, Similarity: 0.8},
		{Item: entity.WardrobeItem{Id: "top_01", Category: entity.CategoryTop}, Similarity: 0.7},
	}
	emb := &fakeEmbedder{}
	svc := NewWardrobeSearchService(repo, emb)

	hits, err := svc.SearchByConcept(context.Background(), "hoodie grunge", entity.CategoryTop, 5)

	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "top_02", hits[0].Item.Id)
	assert.Equal(t, "hoodie grunge", emb.lastText)
	assert.Equal(t, embedding.TaskRetrievalQuery, emb.lastTask)
	assert.Equal(t, []float32{0.6, 0.8}, repo.lastQuery)
}

func TestWardrobeSearchService_Errors(t *testing.T) {
	t.Run("zero limit skips the search", func(t *testing.T) {
		emb := &fakeEmbedder{}
		hits, err := NewWardrobeSearchService(newFakeWardrobeRepo(), emb).
			SearchByConcept(context.Background(), "x", entity.CategoryTop, 0)
		require.NoError(t, err)
		assert.Empty(t, hits)
		assert.Zero(t, emb.calls)
	})

	t.Run("embedding failure is unavailable", func(t *testing.T) {
		emb := &fakeEmbedder{err: errors.New("timeout")}
		_, err := NewWardrobeSearchService(newFakeWardrobeRepo(), emb).
			SearchByConcept(context.Background(), "x", entity.CategoryTop, 5)
		assert.ErrorIs(t, err, styling.ErrUnavailable)
	})

	t.Run("store failure is unavailable", func(t *testing.T) {
		repo := newFakeWardrobeRepo()
		repo.searchErr = errors.New("connection reset")
		_, err := NewWardrobeSearchService(repo, &fakeEmbedder{}).
			SearchByConcept(context.Background(), "x", entity.CategoryBottom, 5)
		assert.ErrorIs(t, err, styling.ErrUnavailable)
	})
}
