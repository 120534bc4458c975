package events

import (
	"time"

	"style-weaver-be/internal/constant"
	"style-weaver-be/internal/entity"
)

// NewStyleBoardGenerated summarises a finished board. Item ids are empty when
// the matcher found nothing for that category.
func NewStyleBoardGenerated(board *entity.StyleBoard) BaseEvent {
	data := map[string]interface{}{
		"board_id":       board.Id.String(),
		"trend":          board.TrendName,
		"trend_fallback": board.TrendFallback,
		"complete":       board.Complete(),
		"stages": map[string]interface{}{
			"trend":    string(board.Stages.Trend.Status),
			"wardrobe": string(board.Stages.Wardrobe.Status),
			"top":      string(board.Stages.Top.Status),
			"bottom":   string(board.Stages.Bottom.Status),
			"image":    string(board.Stages.Image.Status),
		},
		"top_id":       "",
		"bottom_id":    "",
		"generated_at": board.GeneratedAt.Format(time.RFC3339),
	}
	if board.Top != nil {
		data["top_id"] = board.Top.Item.Id
	}
	if board.Bottom != nil {
		data["bottom_id"] = board.Bottom.Item.Id
	}

	return BaseEvent{
		Type:       constant.EventStyleBoardGenerated,
		Data:       data,
		OccurredAt: time.Now(),
	}
}
