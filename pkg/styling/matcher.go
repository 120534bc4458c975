package styling

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"style-weaver-be/internal/entity"
	"style-weaver-be/internal/pkg/logger"
)

const matcherModule = "WardrobeMatcher"

type MatcherConfig struct {
	TopK    int
	Weights Weights
	Timeout time.Duration
}

func DefaultMatcherConfig() MatcherConfig {
	return MatcherConfig{
		TopK:    5,
		Weights: DefaultWeights(),
		Timeout: 5 * time.Second,
	}
}

// MatchOutcome holds the independent results of the two category searches.
type MatchOutcome struct {
	Concept string
	Top     Outcome[*entity.MatchedItem]
	Bottom  Outcome[*entity.MatchedItem]
}

func (m MatchOutcome) Result() entity.MatchResult {
	return entity.MatchResult{Top: m.Top.Value, Bottom: m.Bottom.Value}
}

// Report folds the per-category results: ok when both are found,
// degraded when one is, failed when none is.
func (m MatchOutcome) Report() entity.StageReport {
	found := 0
	var details []string
	var reason entity.FailureReason
	for _, o := range []Outcome[*entity.MatchedItem]{m.Top, m.Bottom} {
		if o.Value != nil {
			found++
			continue
		}
		if reason == entity.ReasonNone {
			reason = o.Report.Reason
		}
		if o.Report.Detail != "" {
			details = append(details, o.Report.Detail)
		}
	}

	switch found {
	case 2:
		return entity.StageReport{Status: entity.StageStatusOK}
	case 1:
		return entity.StageReport{Status: entity.StageStatusDegraded, Reason: reason, Detail: strings.Join(details, "; ")}
	default:
		return entity.StageReport{Status: entity.StageStatusFailed, Reason: reason, Detail: strings.Join(details, "; ")}
	}
}

type Matcher struct {
	searcher WardrobeSearcher
	config   MatcherConfig
	logger   logger.ILogger
}

func NewMatcher(searcher WardrobeSearcher, config MatcherConfig, logger logger.ILogger) (*Matcher, error) {
	if config.TopK <= 0 {
		return nil, fmt.Errorf("%w: top-k must be positive", ErrInvalidInput)
	}
	if err := config.Weights.Validate(); err != nil {
		return nil, err
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultMatcherConfig().Timeout
	}
	return &Matcher{searcher: searcher, config: config, logger: logger}, nil
}

// BuildConcept is the search text for a trend: garments then vibes, space separated.
func BuildConcept(trend entity.Trend) string {
	labels := append(NormalizeLabels(trend.Garments), NormalizeLabels(trend.Vibes)...)
	return strings.Join(labels, " ")
}

// Match searches tops and bottoms concurrently. A failure in one category
// never cancels or affects the other.
func (m *Matcher) Match(ctx context.Context, trend entity.Trend) MatchOutcome {
	concept := BuildConcept(trend)
	labels := LabelSet(trend)

	out := MatchOutcome{Concept: concept}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		out.Top = m.matchCategory(ctx, concept, labels, entity.CategoryTop)
	}()
	go func() {
		defer wg.Done()
		out.Bottom = m.matchCategory(ctx, concept, labels, entity.CategoryBottom)
	}()
	wg.Wait()

	return out
}

func (m *Matcher) matchCategory(ctx context.Context, concept string, labels map[string]struct{}, category entity.Category) Outcome[*entity.MatchedItem] {
	searchCtx, cancel := context.WithTimeout(ctx, m.config.Timeout)
	defer cancel()

	candidates, err := m.searcher.SearchByConcept(searchCtx, concept, category, m.config.TopK)
	if err == nil && searchCtx.Err() != nil {
		err = searchCtx.Err()
	}
	if err != nil {
		m.logger.Warn(matcherModule, "Wardrobe search failed", map[string]interface{}{
			"category": category,
			"error":    err.Error(),
		})
		err = asUnavailable(err)
		return Fallback[*entity.MatchedItem](nil, entity.StageStatusFailed, err)
	}

	candidates = filterCategory(candidates, category)
	best := SelectBest(candidates, labels, m.config.Weights)
	if best == nil {
		m.logger.Info(matcherModule, "No candidates for category", map[string]interface{}{"category": category})
		return Fallback[*entity.MatchedItem](nil, entity.StageStatusFailed, fmt.Errorf("%w: no %s candidates", ErrEmptyResult, category))
	}

	m.logger.Debug(matcherModule, "Selected item", map[string]interface{}{
		"category":   category,
		"item_id":    best.Item.Id,
		"score":      best.Score,
		"similarity": best.Similarity,
		"candidates": len(candidates),
	})
	return Ok(best)
}

// filterCategory drops hits whose category does not match the search filter.
func filterCategory(candidates []entity.ScoredWardrobeItem, category entity.Category) []entity.ScoredWardrobeItem {
	out := candidates[:0:0]
	for _, c := range candidates {
		if c.Item.Category == category && c.Item.Id != "" {
			out = append(out, c)
		}
	}
	return out
}
