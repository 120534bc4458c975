package styling

import (
	"context"
	"fmt"
	"time"

	"style-weaver-be/internal/entity"
	"style-weaver-be/internal/pkg/logger"

	"golang.org/x/sync/singleflight"
)

const resolverModule = "TrendResolver"

// DefaultTrend is used whenever the real trend DNA cannot be obtained.
func DefaultTrend() entity.Trend {
	return entity.Trend{
		Name:     "Everyday Classic",
		Garments: []string{"t-shirt", "jeans"},
		Vibes:    []string{"casual", "classic"},
	}
}

type ResolverConfig struct {
	Timeout  time.Duration
	Fallback entity.Trend
}

func DefaultResolverConfig() ResolverConfig {
	return ResolverConfig{
		Timeout:  3 * time.Second,
		Fallback: DefaultTrend(),
	}
}

// Resolver turns a trend name into trend DNA. Concurrent lookups of the same
// name share a single upstream fetch.
type Resolver struct {
	source TrendSource
	cache  TrendCache
	config ResolverConfig
	group  singleflight.Group
	logger logger.ILogger
}

// NewResolver builds a resolver. cache may be nil.
func NewResolver(source TrendSource, cache TrendCache, config ResolverConfig, logger logger.ILogger) *Resolver {
	if config.Timeout <= 0 {
		config.Timeout = DefaultResolverConfig().Timeout
	}
	if config.Fallback.IsEmpty() {
		config.Fallback = DefaultTrend()
	}
	return &Resolver{
		source: source,
		cache:  cache,
		config: config,
		logger: logger,
	}
}

func (r *Resolver) Resolve(ctx context.Context, name string) Outcome[entity.Trend] {
	key := NormalizeLabel(name)

	if r.cache != nil {
		if cached, ok := r.cache.Get(ctx, key); ok {
			r.logger.Debug(resolverModule, "Trend cache hit", map[string]interface{}{"trend": name})
			return Ok(cached.Clone())
		}
	}

	trend, err := r.fetch(ctx, key, name)
	if err != nil {
		return r.fallback(name, err)
	}

	if trend.IsEmpty() {
		return r.fallback(name, fmt.Errorf("%w: trend %q has no garments or vibes", ErrEmptyResult, name))
	}

	if r.cache != nil {
		r.cache.Set(ctx, key, &trend)
	}

	r.logger.Info(resolverModule, "Trend resolved", map[string]interface{}{
		"trend":    trend.Name,
		"garments": len(trend.Garments),
		"vibes":    len(trend.Vibes),
	})
	return Ok(trend.Clone())
}

// fetch joins an in-flight lookup for key or starts one. The shared lookup
// is detached from the caller's cancellation and bounded by the stage
// timeout. A caller whose context ends stops waiting with ErrUnavailable.
func (r *Resolver) fetch(ctx context.Context, key, name string) (entity.Trend, error) {
	ch := r.group.DoChan(key, func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.config.Timeout)
		defer cancel()

		found, err := r.source.FindTrend(fetchCtx, name)
		if err != nil {
			return nil, err
		}
		if found == nil {
			return nil, fmt.Errorf("%w: trend %q", ErrNotFound, name)
		}
		return sanitizeTrend(*found, name), nil
	})

	select {
	case <-ctx.Done():
		return entity.Trend{}, fmt.Errorf("%w: waiting for trend %q: %v", ErrUnavailable, name, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return entity.Trend{}, res.Err
		}
		return res.Val.(entity.Trend).Clone(), nil
	}
}

func (r *Resolver) fallback(name string, err error) Outcome[entity.Trend] {
	err = asUnavailable(err)
	status := entity.StageStatusDegraded
	if ReasonOf(err) == entity.ReasonNotFound {
		status = entity.StageStatusFailed
	}

	r.logger.Warn(resolverModule, "Using default trend DNA", map[string]interface{}{
		"trend":  name,
		"status": status,
		"reason": ReasonOf(err),
		"error":  err.Error(),
	})
	return Fallback(r.config.Fallback.Clone(), status, err)
}

// sanitizeTrend normalizes labels coming from the graph store.
func sanitizeTrend(t entity.Trend, requested string) entity.Trend {
	name := t.Name
	if name == "" {
		name = requested
	}
	return entity.Trend{
		Name:     name,
		Garments: NormalizeLabels(t.Garments),
		Vibes:    NormalizeLabels(t.Vibes),
	}
}
