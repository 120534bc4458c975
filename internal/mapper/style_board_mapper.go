package mapper

import (
	"style-weaver-be/internal/dto"
	"style-weaver-be/internal/entity"
)

type StyleBoardMapper struct{}

func NewStyleBoardMapper() *StyleBoardMapper {
	return &StyleBoardMapper{}
}

func (m *StyleBoardMapper) ToResponse(b *entity.StyleBoard) *dto.StyleBoardResponse {
	if b == nil {
		return nil
	}

	res := &dto.StyleBoardResponse{
		Id:    b.Id,
		Trend: b.TrendName,
		TrendDNA: dto.TrendDNAResponse{
			Name:     b.Trend.Name,
			Garments: nonNil(b.Trend.Garments),
			Vibes:    nonNil(b.Trend.Vibes),
			Fallback: b.TrendFallback,
		},
		Top:               m.toItem(b.Top),
		Bottom:            m.toItem(b.Bottom),
		OutfitItems:       make([]dto.OutfitItemResponse, 0, 2),
		GeneratedImageUrl: b.Image.Reference,
		ImagePlaceholder:  b.Image.Placeholder,
		Prompt:            b.Image.Prompt,
		Stages: dto.StyleStagesResponse{
			Trend:    toStage(b.Stages.Trend),
			Wardrobe: toStage(b.Stages.Wardrobe),
			Top:      toStage(b.Stages.Top),
			Bottom:   toStage(b.Stages.Bottom),
			Image:    toStage(b.Stages.Image),
		},
		Complete:    b.Complete(),
		GeneratedAt: b.GeneratedAt,
	}

	if res.Top != nil {
		res.OutfitItems = append(res.OutfitItems, *res.Top)
	}
	if res.Bottom != nil {
		res.OutfitItems = append(res.OutfitItems, *res.Bottom)
	}
	return res
}

func (m *StyleBoardMapper) toItem(mi *entity.MatchedItem) *dto.OutfitItemResponse {
	if mi == nil {
		return nil
	}
	return &dto.OutfitItemResponse{
		ItemId:      mi.Item.Id,
		Name:        mi.Item.Name,
		Type:        string(mi.Item.Category),
		Description: mi.Item.Description,
		ImageUrl:    mi.Item.ImageUrl,
		StyleTags:   nonNil(mi.Item.StyleTags),
		Score:       mi.Score,
		Similarity:  mi.Similarity,
		TagOverlap:  mi.TagOverlap,
		MatchedTags: nonNil(mi.MatchedTags),
	}
}

func toStage(r entity.StageReport) dto.StageStatusResponse {
	return dto.StageStatusResponse{
		Status: string(r.Status),
		Reason: string(r.Reason),
		Detail: r.Detail,
	}
}

// nonNil keeps empty lists as [] in JSON.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return append([]string(nil), s...)
}
