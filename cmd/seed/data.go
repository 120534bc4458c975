package main

import "style-weaver-be/internal/entity"

const assetBaseURL = "https://raw.githubusercontent.com/lil-Zlang/StyleSync/main/assets/"

func seedTrends() []*entity.Trend {
	return []*entity.Trend{
		{
			Name:     "90s Revival",
			Garments: []string{"denim jeans", "graphic t-shirt", "oversized hoodie"},
			Vibes:    []string{"grunge", "casual", "streetwear", "nostalgic"},
		},
		{
			Name:     "Minimalist Chic",
			Garments: []string{"crewneck t-shirt", "chinos", "blazer"},
			Vibes:    []string{"clean", "simple", "professional", "timeless"},
		},
	}
}

func seedWardrobe() []*entity.WardrobeItem {
	return []*entity.WardrobeItem{
		{
			Id:          "top_01",
			Name:        "White Crewneck Tee",
			Category:    entity.CategoryTop,
			Description: "A classic white cotton crewneck t-shirt.",
			ImageUrl:    assetBaseURL + "white_tee.jpg",
			StyleTags:   []string{"casual", "basic", "minimalist"},
		},
		{
			Id:          "top_02",
			Name:        "Black Oversized Hoodie",
			Category:    entity.CategoryTop,
			Description: "A comfortable black oversized hoodie.",
			ImageUrl:    assetBaseURL + "black_hoodie.jpg",
			StyleTags:   []string{"streetwear", "casual", "cozy"},
		},
		{
			Id:          "bottom_01",
			Name:        "Dark Wash Jeans",
			Category:    entity.CategoryBottom,
			Description: "Dark wash slim-fit denim jeans.",
			ImageUrl:    assetBaseURL + "blue_jeans.jpg",
			StyleTags:   []string{"casual", "classic", "streetwear"},
		},
		{
			Id:          "bottom_02",
			Name:        "Khaki Chinos",
			Category:    entity.CategoryBottom,
			Description: "Light brown khaki chinos.",
			ImageUrl:    assetBaseURL + "khaki_chinos.jpg",
			StyleTags:   []string{"business-casual", "preppy"},
		},
		{
			Id:          "top_03",
			Name:        "Hacker Tee",
			Category:    entity.CategoryTop,
			Description: "hacker tee.",
			ImageUrl:    assetBaseURL + "hacker_tee.jpg",
			StyleTags:   []string{"hackers-casual", "cozy"},
		},
	}
}
