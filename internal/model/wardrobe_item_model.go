package model

import (
	"time"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type WardrobeItem struct {
	Id          string                      `gorm:"type:varchar(64);primaryKey"`
	Name        string                      `gorm:"type:varchar(255);not null"`
	Category    string                      `gorm:"type:varchar(16);not null;index"`
	Description string                      `gorm:"type:text"`
	ImageUrl    string                      `gorm:"type:text"`
	StyleTags   datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Embedding   *pgvector.Vector            `gorm:"type:vector(768)"` // Gemini text-embedding-004 and nomic-embed-text both use 768 dimensions
	CreatedAt   time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt   time.Time                   `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt              `gorm:"index"`
}

func (WardrobeItem) TableName() string {
	return "wardrobe_items"
}
