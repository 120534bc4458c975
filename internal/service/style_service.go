package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"style-weaver-be/internal/constant"
	"style-weaver-be/internal/dto"
	"style-weaver-be/internal/entity"
	"style-weaver-be/internal/mapper"
	"style-weaver-be/internal/pkg/logger"
	"style-weaver-be/internal/pkg/serverutils"
	"style-weaver-be/internal/repository/contract"
	"style-weaver-be/pkg/events"
	"style-weaver-be/pkg/styling"
)

const (
	styleModule         = "StyleService"
	publishTimeout      = 3 * time.Second
	defaultTrendTimeout = 3 * time.Second
)

// StyleBoardGenerator is satisfied by *styling.Pipeline.
type StyleBoardGenerator interface {
	Run(ctx context.Context, trendName string) (*entity.StyleBoard, error)
}

type IStyleService interface {
	Generate(ctx context.Context, trendName string) (*dto.StyleBoardResponse, error)
	ListTrends(ctx context.Context) (*dto.TrendListResponse, error)
}

type styleService struct {
	generator    StyleBoardGenerator
	trendRepo    contract.TrendRepository
	publisher    events.Publisher
	mapper       *mapper.StyleBoardMapper
	trendTimeout time.Duration
	logger       logger.ILogger
}

// NewStyleService wires the style board endpoints. trendRepo and publisher may be nil.
func NewStyleService(
	generator StyleBoardGenerator,
	trendRepo contract.TrendRepository,
	publisher events.Publisher,
	trendTimeout time.Duration,
	logger logger.ILogger,
) IStyleService {
	if trendTimeout <= 0 {
		trendTimeout = defaultTrendTimeout
	}
	return &styleService{
		generator:    generator,
		trendRepo:    trendRepo,
		publisher:    publisher,
		mapper:       mapper.NewStyleBoardMapper(),
		trendTimeout: trendTimeout,
		logger:       logger,
	}
}

func (s *styleService) Generate(ctx context.Context, trendName string) (*dto.StyleBoardResponse, error) {
	board, err := s.generator.Run(ctx, trendName)
	if err != nil {
		if errors.Is(err, styling.ErrInvalidInput) {
			return nil, serverutils.BadRequest("trend_name must not be empty", err)
		}
		return nil, serverutils.Internal(err)
	}

	s.publishGenerated(ctx, board)
	return s.mapper.ToResponse(board), nil
}

func (s *styleService) publishGenerated(ctx context.Context, board *entity.StyleBoard) {
	if s.publisher == nil {
		return
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := s.publisher.Publish(pubCtx, events.NewStyleBoardGenerated(board)); err != nil {
		s.logger.Warn(styleModule, "Failed to publish style board event", map[string]interface{}{
			"board_id": board.Id.String(),
			"error":    err.Error(),
		})
	}
}

func (s *styleService) ListTrends(ctx context.Context) (*dto.TrendListResponse, error) {
	if s.trendRepo != nil {
		listCtx, cancel := context.WithTimeout(ctx, s.trendTimeout)
		defer cancel()

		summaries, err := s.trendRepo.ListTrends(listCtx)
		if err == nil {
			trends := make([]dto.TrendResponse, 0, len(summaries))
			for _, t := range summaries {
				trends = append(trends, toTrendResponse(t.Name, t.Vibes))
			}
			return &dto.TrendListResponse{Trends: trends, Count: len(trends)}, nil
		}

		s.logger.Warn(styleModule, "Could not list trends from graph store, serving static list", map[string]interface{}{
			"error": err.Error(),
		})
	}

	trends := make([]dto.TrendResponse, 0, len(constant.FallbackTrends))
	for _, t := range constant.FallbackTrends {
		trends = append(trends, toTrendResponse(t.Name, t.Vibes))
	}
	return &dto.TrendListResponse{Trends: trends, Count: len(trends), Fallback: true}, nil
}

func toTrendResponse(name string, vibes []string) dto.TrendResponse {
	return dto.TrendResponse{
		Name:        name,
		Description: DescribeTrend(vibes),
		Vibes:       append([]string{}, vibes...),
	}
}

// DescribeTrend renders "A style with <first three vibes> vibes".
func DescribeTrend(vibes []string) string {
	if len(vibes) > 3 {
		vibes = vibes[:3]
	}
	return "A style with " + strings.Join(vibes, ", ") + " vibes"
}
