package dto

import "time"

type CreateWardrobeItemRequest struct {
	Id          string   `json:"id" validate:"omitempty,max=64"`
	Name        string   `json:"name" validate:"required,max=255"`
	Category    string   `json:"category" validate:"required,oneof=top bottom"`
	Description string   `json:"description" validate:"required"`
	ImageUrl    string   `json:"image_url" validate:"omitempty,url"`
	StyleTags   []string `json:"style_tags"`
}

type WardrobeItemResponse struct {
	Id          string     `json:"id"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	ImageUrl    string     `json:"image_url"`
	StyleTags   []string   `json:"style_tags"`
	Indexed     bool       `json:"indexed"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type EmbedWardrobeItemMessage struct {
	ItemId string `json:"item_id"`
}
