package styling

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"style-weaver-be/internal/entity"
)

// scoreEpsilon is the tolerance under which two composite scores are treated as equal.
const scoreEpsilon = 1e-9

type Weights struct {
	Similarity float64
	Tag        float64
}

func DefaultWeights() Weights {
	return Weights{Similarity: 0.7, Tag: 0.3}
}

func (w Weights) Validate() error {
	if w.Similarity < 0 || w.Tag < 0 {
		return fmt.Errorf("%w: weights must be non-negative (similarity=%v, tag=%v)", ErrInvalidInput, w.Similarity, w.Tag)
	}
	if math.Abs(w.Similarity+w.Tag-1) > 1e-6 {
		return fmt.Errorf("%w: weights must sum to 1 (got %v)", ErrInvalidInput, w.Similarity+w.Tag)
	}
	if w.Similarity <= w.Tag {
		return fmt.Errorf("%w: similarity weight must dominate tag weight", ErrInvalidInput)
	}
	return nil
}

func NormalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// NormalizeLabels trims, lower-cases and de-duplicates labels while keeping
// the first occurrence order. Blank labels are dropped.
func NormalizeLabels(labels []string) []string {
	out := make([]string, 0, len(labels))
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		n := NormalizeLabel(l)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// LabelSet is garments ∪ vibes, normalized.
func LabelSet(trend entity.Trend) map[string]struct{} {
	set := make(map[string]struct{})
	for _, l := range NormalizeLabels(trend.Labels()) {
		set[l] = struct{}{}
	}
	return set
}

// TagOverlap returns |tags ∩ labels| / |tags| and the matching tags.
// An item without tags overlaps nothing.
func TagOverlap(tags []string, labels map[string]struct{}) (float64, []string) {
	normalized := NormalizeLabels(tags)
	if len(normalized) == 0 {
		return 0, nil
	}
	var matched []string
	for _, t := range normalized {
		if _, ok := labels[t]; ok {
			matched = append(matched, t)
		}
	}
	return float64(len(matched)) / float64(len(normalized)), matched
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

func CompositeScore(similarity, overlap float64, w Weights) float64 {
	return w.Similarity*clamp01(similarity) + w.Tag*overlap
}

func ScoreCandidate(c entity.ScoredWardrobeItem, labels map[string]struct{}, w Weights) entity.MatchedItem {
	sim := clamp01(c.Similarity)
	overlap, matched := TagOverlap(c.Item.StyleTags, labels)
	return entity.MatchedItem{
		Item:        c.Item,
		Score:       CompositeScore(sim, overlap, w),
		Similarity:  sim,
		TagOverlap:  overlap,
		MatchedTags: matched,
	}
}

// ranksAbove orders by composite score, then raw similarity, then smaller id.
func ranksAbove(a, b entity.MatchedItem) bool {
	if d := a.Score - b.Score; math.Abs(d) > scoreEpsilon {
		return d > 0
	}
	if d := a.Similarity - b.Similarity; math.Abs(d) > scoreEpsilon {
		return d > 0
	}
	return a.Item.Id < b.Item.Id
}

// Rank scores every candidate and returns them best first.
func Rank(candidates []entity.ScoredWardrobeItem, labels map[string]struct{}, w Weights) []entity.MatchedItem {
	ranked := make([]entity.MatchedItem, 0, len(candidates))
	for _, c := range candidates {
		ranked = append(ranked, ScoreCandidate(c, labels, w))
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranksAbove(ranked[i], ranked[j])
	})
	return ranked
}

// SelectBest returns the top ranked candidate, or nil when there are none.
func SelectBest(candidates []entity.ScoredWardrobeItem, labels map[string]struct{}, w Weights) *entity.MatchedItem {
	ranked := Rank(candidates, labels, w)
	if len(ranked) == 0 {
		return nil
	}
	best := ranked[0]
	return &best
}
