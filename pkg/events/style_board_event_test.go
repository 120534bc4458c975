package events

import (
	"testing"
	"time"

	"style-weaver-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewStyleBoardGenerated(t *testing.T) {
	id := uuid.New()
	board := &entity.StyleBoard{
		Id:          id,
		TrendName:   "Minimalist Chic",
		Top:         &entity.MatchedItem{Item: entity.WardrobeItem{Id: "top_01"}},
		GeneratedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		Stages: entity.BoardStages{
			Trend:    entity.StageReport{Status: entity.StageStatusOK},
			Wardrobe: entity.StageReport{Status: entity.StageStatusDegraded},
			Top:      entity.StageReport{Status: entity.StageStatusOK},
			Bottom:   entity.StageReport{Status: entity.StageStatusFailed},
			Image:    entity.StageReport{Status: entity.StageStatusOK},
		},
	}

	evt := NewStyleBoardGenerated(board)

	assert.Equal(t, "STYLE_BOARD_GENERATED", evt.EventType())
	p := evt.Payload()
	assert.Equal(t, id.String(), p["board_id"])
	assert.Equal(t, "Minimalist Chic", p["trend"])
	assert.Equal(t, false, p["complete"])
	assert.Equal(t, "top_01", p["top_id"])
	assert.Equal(t, "", p["bottom_id"])
	assert.Equal(t, "2024-05-01T10:00:00Z", p["generated_at"])
	stages := p["stages"].(map[string]interface{})
	assert.Equal(t, "degraded", stages["wardrobe"])
	assert.Equal(t, "failed", stages["bottom"])
}
