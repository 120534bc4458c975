package styling

import (
	"context"
	"fmt"
	"strings"
	"time"

	"style-weaver-be/internal/entity"
	"style-weaver-be/internal/pkg/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const pipelineModule = "StylePipeline"

const (
	StageTrend    = "trend"
	StageWardrobe = "wardrobe"
	StageTop      = "wardrobe_top"
	StageBottom   = "wardrobe_bottom"
	StageImage    = "image"
)

const DefaultRequestTimeout = 60 * time.Second

type PipelineOption func(*Pipeline)

func WithRequestTimeout(d time.Duration) PipelineOption {
	return func(p *Pipeline) {
		if d > 0 {
			p.timeout = d
		}
	}
}

func WithObserver(o Observer) PipelineOption {
	return func(p *Pipeline) {
		if o != nil {
			p.observer = o
		}
	}
}

func WithAssembler(a *Assembler) PipelineOption {
	return func(p *Pipeline) {
		if a != nil {
			p.assembler = a
		}
	}
}

// Pipeline runs resolve, match, compose and assemble in that order.
type Pipeline struct {
	resolver   *Resolver
	matcher    *Matcher
	compositor *Compositor
	assembler  *Assembler
	timeout    time.Duration
	observer   Observer
	tracer     trace.Tracer
	logger     logger.ILogger
}

func NewPipeline(resolver *Resolver, matcher *Matcher, compositor *Compositor, logger logger.ILogger, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		resolver:   resolver,
		matcher:    matcher,
		compositor: compositor,
		assembler:  NewAssembler(),
		timeout:    DefaultRequestTimeout,
		observer:   nopObserver{},
		tracer:     otel.Tracer("style-weaver/styling"),
		logger:     logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run produces a style board for trendName. The only error it returns is
// ErrInvalidInput for a blank name; every upstream failure is folded into
// the board's stage statuses.
func (p *Pipeline) Run(ctx context.Context, trendName string) (*entity.StyleBoard, error) {
	name := strings.TrimSpace(trendName)
	if name == "" {
		return nil, fmt.Errorf("%w: trend name must not be empty", ErrInvalidInput)
	}

	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	ctx, span := p.tracer.Start(ctx, "styling.Run", trace.WithAttributes(attribute.String("trend.name", name)))
	defer span.End()

	p.logger.Info(pipelineModule, "Starting style board generation", map[string]interface{}{"trend": name})

	trendCtx, trendSpan := p.tracer.Start(ctx, "styling.ResolveTrend")
	trend := p.resolver.Resolve(trendCtx, name)
	endStage(trendSpan, trend.Report)
	p.observer.ObserveStage(StageTrend, trend.Report)

	matchCtx, matchSpan := p.tracer.Start(ctx, "styling.MatchWardrobe")
	match := p.matcher.Match(matchCtx, trend.Value)
	matchSpan.SetAttributes(attribute.String("wardrobe.concept", match.Concept))
	endStage(matchSpan, match.Report())
	p.observer.ObserveStage(StageTop, match.Top.Report)
	p.observer.ObserveStage(StageBottom, match.Bottom.Report)
	p.observer.ObserveStage(StageWardrobe, match.Report())

	imageCtx, imageSpan := p.tracer.Start(ctx, "styling.ComposeImage")
	image := p.compositor.Compose(imageCtx, trend.Value, match.Result())
	endStage(imageSpan, image.Report)
	p.observer.ObserveStage(StageImage, image.Report)

	board := p.assembler.Assemble(name, trend, match, image)
	span.SetAttributes(attribute.String("board.id", board.Id.String()))

	elapsed := time.Since(start)
	p.observer.ObserveRun(board.Stages, elapsed.Seconds())
	p.logger.Info(pipelineModule, "Style board generated", map[string]interface{}{
		"trend":       name,
		"board_id":    board.Id.String(),
		"trend_stage": board.Stages.Trend.Status,
		"wardrobe":    board.Stages.Wardrobe.Status,
		"image":       board.Stages.Image.Status,
		"duration_ms": elapsed.Milliseconds(),
	})

	return board, nil
}

func endStage(span trace.Span, report entity.StageReport) {
	span.SetAttributes(
		attribute.String("stage.status", string(report.Status)),
		attribute.String("stage.reason", string(report.Reason)),
	)
	if report.Status == entity.StageStatusFailed {
		span.SetStatus(codes.Error, report.Detail)
	}
	span.End()
}
