package styling

import (
	"time"

	"style-weaver-be/internal/entity"

	"github.com/google/uuid"
)

// Assembler merges stage outcomes into a StyleBoard. It performs no I/O and
// always produces a board.
type Assembler struct {
	now   func() time.Time
	newID func() uuid.UUID
}

func NewAssembler() *Assembler {
	return &Assembler{
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.New,
	}
}

func (a *Assembler) Assemble(
	trendName string,
	trend Outcome[entity.Trend],
	match MatchOutcome,
	image Outcome[entity.GeneratedImage],
) *entity.StyleBoard {
	board := &entity.StyleBoard{
		Id:        a.newID(),
		TrendName: trendName,
		Trend:     trend.Value,
		Stages: entity.BoardStages{
			Trend:    trend.Report,
			Wardrobe: match.Report(),
			Top:      match.Top.Report,
			Bottom:   match.Bottom.Report,
			Image:    image.Report,
		},
		GeneratedAt: a.now(),
	}

	board.TrendFallback = !trend.OK()

	if match.Top.Value != nil {
		top := *match.Top.Value
		board.Top = &top
	}
	if match.Bottom.Value != nil {
		bottom := *match.Bottom.Value
		board.Bottom = &bottom
	}

	board.Image = image.Value
	if !image.OK() {
		board.Image.Placeholder = true
	}

	return board
}
