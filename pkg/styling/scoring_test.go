package styling

import (
	"testing"

	"style-weaver-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightsValidate(t *testing.T) {
	tests := []struct {
		name    string
		weights Weights
		wantErr bool
	}{
		{name: "defaults", weights: DefaultWeights()},
		{name: "similarity only", weights: Weights{Similarity: 1, Tag: 0}},
		{name: "negative tag", weights: Weights{Similarity: 1.2, Tag: -0.2}, wantErr: true},
		{name: "does not sum to one", weights: Weights{Similarity: 0.6, Tag: 0.3}, wantErr: true},
		{name: "tag dominates", weights: Weights{Similarity: 0.4, Tag: 0.6}, wantErr: true},
		{name: "equal weights", weights: Weights{Similarity: 0.5, Tag: 0.5}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.weights.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTagOverlap(t *testing.T) {
	labels := LabelSet(nineties())

	tests := []struct {
		name        string
		tags        []string
		wantOverlap float64
		wantMatched []string
	}{
		{name: "no tags", tags: nil, wantOverlap: 0},
		{name: "blank tags only", tags: []string{" ", ""}, wantOverlap: 0},
		{name: "two of three", tags: []string{"streetwear", "casual", "cozy"}, wantOverlap: 2.0 / 3.0, wantMatched: []string{"streetwear", "casual"}},
		{name: "case and whitespace", tags: []string{"  GRUNGE ", "Nostalgic"}, wantOverlap: 1, wantMatched: []string{"grunge", "nostalgic"}},
		{name: "duplicates counted once", tags: []string{"casual", "Casual", "preppy"}, wantOverlap: 0.5, wantMatched: []string{"casual"}},
		{name: "nothing matches", tags: []string{"business-casual", "preppy"}, wantOverlap: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			overlap, matched := TagOverlap(tt.tags, labels)
			assert.InDelta(t, tt.wantOverlap, overlap, 1e-9)
			assert.Equal(t, tt.wantMatched, matched)
		})
	}
}

func TestCompositeScoreClampsSimilarity(t *testing.T) {
	w := DefaultWeights()

	assert.InDelta(t, 0.7, CompositeScore(1.4, 0, w), 1e-9)
	assert.InDelta(t, 0.3, CompositeScore(-0.2, 1, w), 1e-9)
	assert.InDelta(t, 0.7*0.5+0.3*0.5, CompositeScore(0.5, 0.5, w), 1e-9)
}

func TestSelectBest(t *testing.T) {
	w := DefaultWeights()
	labels := LabelSet(nineties())

	t.Run("empty candidates", func(t *testing.T) {
		assert.Nil(t, SelectBest(nil, labels, w))
	})

	t.Run("tag overlap lifts a slightly less similar item", func(t *testing.T) {
		candidates := []entity.ScoredWardrobeItem{
			scored(item("a", entity.CategoryTop, "plain", "formal"), 0.80),
			scored(item("b", entity.CategoryTop, "hoodie", "grunge", "streetwear"), 0.75),
		}
		best := SelectBest(candidates, labels, w)
		require.NotNil(t, best)
		assert.Equal(t, "b", best.Item.Id)
		assert.InDelta(t, 0.7*0.75+0.3, best.Score, 1e-9)
		assert.Equal(t, []string{"grunge", "streetwear"}, best.MatchedTags)
	})

	t.Run("equal composite prefers higher similarity", func(t *testing.T) {
		candidates := []entity.ScoredWardrobeItem{
			scored(item("low-sim", entity.CategoryTop, "x", "grunge", "casual", "cozy", "basic", "formal", "a", "b", "c", "d", "e"), 0.6),
			scored(item("high-sim", entity.CategoryTop, "y"), 0.6+0.3*0.2/0.7),
		}
		best := SelectBest(candidates, labels, w)
		require.NotNil(t, best)
		assert.Equal(t, "high-sim", best.Item.Id)
	})

	t.Run("full tie prefers smaller id", func(t *testing.T) {
		candidates := []entity.ScoredWardrobeItem{
			scored(item("top_09", entity.CategoryTop, "x", "casual"), 0.5),
			scored(item("top_03", entity.CategoryTop, "y", "casual"), 0.5),
			scored(item("top_05", entity.CategoryTop, "z", "casual"), 0.5),
		}
		best := SelectBest(candidates, labels, w)
		require.NotNil(t, best)
		assert.Equal(t, "top_03", best.Item.Id)
	})

	t.Run("order of input does not matter", func(t *testing.T) {
		a := scored(item("a", entity.CategoryTop, "x", "casual"), 0.7)
		b := scored(item("b", entity.CategoryTop, "y", "grunge"), 0.7)
		c := scored(item("c", entity.CategoryTop, "z"), 0.9)

		first := SelectBest([]entity.ScoredWardrobeItem{a, b, c}, labels, w)
		second := SelectBest([]entity.ScoredWardrobeItem{c, b, a}, labels, w)
		require.NotNil(t, first)
		require.NotNil(t, second)
		assert.Equal(t, first.Item.Id, second.Item.Id)
		assert.Equal(t, "a", first.Item.Id)
	})
}

func TestRankIsSortedBestFirst(t *testing.T) {
	ranked := Rank(sampleWardrobe().items[entity.CategoryTop], LabelSet(nineties()), DefaultWeights())

	require.Len(t, ranked, 3)
	assert.Equal(t, "top_02", ranked[0].Item.Id)
	assert.Equal(t, "top_01", ranked[1].Item.Id)
	assert.Equal(t, "top_03", ranked[2].Item.Id)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
}

func TestNormalizeLabels(t *testing.T) {
	got := NormalizeLabels([]string{" Denim Jeans", "denim jeans", "", "Grunge"})
	assert.Equal(t, []string{"denim jeans", "grunge"}, got)
}
