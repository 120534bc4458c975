package entity

import (
	"time"

	"github.com/google/uuid"
)

type StageStatus string

const (
	StageStatusOK       StageStatus = "ok"
	StageStatusDegraded StageStatus = "degraded"
	StageStatusFailed   StageStatus = "failed"
)

type FailureReason string

const (
	ReasonNone               FailureReason = ""
	ReasonNotFound           FailureReason = "not_found"
	ReasonUnavailable        FailureReason = "unavailable"
	ReasonEmptyResult        FailureReason = "empty_result"
	ReasonGenerationRejected FailureReason = "generation_rejected"
)

type StageReport struct {
	Status StageStatus
	Reason FailureReason
	Detail string
}

func (r StageReport) OK() bool {
	return r.Status == StageStatusOK
}

type BoardStages struct {
	Trend    StageReport
	Wardrobe StageReport
	Top      StageReport
	Bottom   StageReport
	Image    StageReport
}

// MatchedItem is a selected wardrobe item together with the numbers that selected it.
type MatchedItem struct {
	Item        WardrobeItem
	Score       float64
	Similarity  float64
	TagOverlap  float64
	MatchedTags []string
}

type MatchResult struct {
	Top    *MatchedItem
	Bottom *MatchedItem
}

type GeneratedImage struct {
	Reference   string
	Prompt      string
	Placeholder bool
}

type StyleBoard struct {
	Id            uuid.UUID
	TrendName     string
	Trend         Trend
	TrendFallback bool
	Top           *MatchedItem
	Bottom        *MatchedItem
	Image         GeneratedImage
	Stages        BoardStages
	GeneratedAt   time.Time
}

// Complete reports whether every stage succeeded.
func (b *StyleBoard) Complete() bool {
	return b.Stages.Trend.OK() && b.Stages.Wardrobe.OK() && b.Stages.Image.OK()
}
