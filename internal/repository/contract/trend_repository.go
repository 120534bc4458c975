package contract

import (
	"context"

	"style-weaver-be/internal/entity"
)

type TrendRepository interface {
	// FindTrend matches the trend name case-insensitively.
	FindTrend(ctx context.Context, name string) (*entity.Trend, error)
	ListTrends(ctx context.Context) ([]*entity.TrendSummary, error)
	// ReplaceAll removes every trend, garment and vibe and writes trends in their place.
	ReplaceAll(ctx context.Context, trends []*entity.Trend) error
	VerifyConnectivity(ctx context.Context) error
}
