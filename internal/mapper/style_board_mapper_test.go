package mapper

import (
	"testing"
	"time"

	"style-weaver-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleBoardMapper_ToResponse(t *testing.T) {
	m := NewStyleBoardMapper()

	t.Run("nil board", func(t *testing.T) {
		assert.Nil(t, m.ToResponse(nil))
	})

	t.Run("full board lists both items", func(t *testing.T) {
		board := &entity.StyleBoard{
			Id:        uuid.New(),
			TrendName: "90s Revival",
			Trend: entity.Trend{
				Name:     "90s Revival",
				Garments: []string{"hoodie", "jeans"},
				Vibes:    []string{"grunge"},
			},
			Top: &entity.MatchedItem{
				Item:        entity.WardrobeItem{Id: "top_02", Category: entity.CategoryTop, StyleTags: []string{"grunge"}},
				Score:       0.8,
				MatchedTags: []string{"grunge"},
			},
			Bottom: &entity.MatchedItem{
				Item: entity.WardrobeItem{Id: "bottom_01", Category: entity.CategoryBottom},
			},
			Image: entity.GeneratedImage{Reference: "data:image/png;base64,AAA", Prompt: "p"},
			Stages: entity.BoardStages{
				Trend:    entity.StageReport{Status: entity.StageStatusOK},
				Wardrobe: entity.StageReport{Status: entity.StageStatusOK},
				Top:      entity.StageReport{Status: entity.StageStatusOK},
				Bottom:   entity.StageReport{Status: entity.StageStatusOK},
				Image:    entity.StageReport{Status: entity.StageStatusOK},
			},
			GeneratedAt: time.Now(),
		}

		res := m.ToResponse(board)
		require.NotNil(t, res)
		assert.Equal(t, "90s Revival", res.Trend)
		assert.True(t, res.Complete)
		require.Len(t, res.OutfitItems, 2)
		assert.Equal(t, "top_02", res.OutfitItems[0].ItemId)
		assert.Equal(t, "top", res.OutfitItems[0].Type)
		assert.Equal(t, "bottom_01", res.OutfitItems[1].ItemId)
		assert.Equal(t, []string{}, res.OutfitItems[1].StyleTags)
		assert.Equal(t, "ok", res.Stages.Image.Status)
	})

	t.Run("missing bottom is null", func(t *testing.T) {
		board := &entity.StyleBoard{
			Top: &entity.MatchedItem{Item: entity.WardrobeItem{Id: "top_01", Category: entity.CategoryTop}},
			Stages: entity.BoardStages{
				Wardrobe: entity.StageReport{Status: entity.StageStatusDegraded, Reason: entity.ReasonEmptyResult},
				Bottom:   entity.StageReport{Status: entity.StageStatusFailed, Reason: entity.ReasonEmptyResult},
			},
			Image: entity.GeneratedImage{Placeholder: true},
		}

		res := m.ToResponse(board)
		assert.Nil(t, res.Bottom)
		assert.Len(t, res.OutfitItems, 1)
		assert.False(t, res.Complete)
		assert.True(t, res.ImagePlaceholder)
		assert.Equal(t, "empty_result", res.Stages.Bottom.Reason)
		assert.Equal(t, []string{}, res.TrendDNA.Garments)
	})
}
