package contract

import (
	"context"

	"style-weaver-be/internal/entity"
)

type TrendCache interface {
	Get(ctx context.Context, key string) (*entity.Trend, bool)
	Set(ctx context.Context, key string, trend *entity.Trend)
}
