package dto

import (
	"time"

	"github.com/google/uuid"
)

type GenerateStyleRequest struct {
	TrendName string `json:"trend_name" validate:"required"`
}

// WeaveStyleRequest accepts either trend_name or trend.
type WeaveStyleRequest struct {
	TrendName string `json:"trend_name"`
	Trend     string `json:"trend"`
}

func (r WeaveStyleRequest) Name() string {
	if r.TrendName != "" {
		return r.TrendName
	}
	return r.Trend
}

type StageStatusResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
	Detail string `json:"detail,omitempty"`
}

type StyleStagesResponse struct {
	Trend    StageStatusResponse `json:"trend"`
	Wardrobe StageStatusResponse `json:"wardrobe"`
	Top      StageStatusResponse `json:"top"`
	Bottom   StageStatusResponse `json:"bottom"`
	Image    StageStatusResponse `json:"image"`
}

type TrendDNAResponse struct {
	Name     string   `json:"name"`
	Garments []string `json:"garments"`
	Vibes    []string `json:"vibes"`
	Fallback bool     `json:"fallback"`
}

type OutfitItemResponse struct {
	ItemId      string   `json:"item_id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	ImageUrl    string   `json:"image_url"`
	StyleTags   []string `json:"style_tags"`
	Score       float64  `json:"score"`
	Similarity  float64  `json:"similarity"`
	TagOverlap  float64  `json:"tag_overlap"`
	MatchedTags []string `json:"matched_tags"`
}

type StyleBoardResponse struct {
	Id                uuid.UUID            `json:"id"`
	Trend             string               `json:"trend"`
	TrendDNA          TrendDNAResponse     `json:"trend_dna"`
	Top               *OutfitItemResponse  `json:"top"`
	Bottom            *OutfitItemResponse  `json:"bottom"`
	OutfitItems       []OutfitItemResponse `json:"outfit_items"`
	GeneratedImageUrl string               `json:"generated_image_url"`
	ImagePlaceholder  bool                 `json:"image_placeholder"`
	Prompt            string               `json:"prompt"`
	Stages            StyleStagesResponse  `json:"stages"`
	Complete          bool                 `json:"complete"`
	GeneratedAt       time.Time            `json:"generated_at"`
}

type TrendResponse struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Vibes       []string `json:"vibes"`
}

type TrendListResponse struct {
	Trends   []TrendResponse `json:"trends"`
	Count    int             `json:"count"`
	Fallback bool            `json:"fallback"`
}
