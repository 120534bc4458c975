package specification

import (
	"style-weaver-be/internal/entity"

	"gorm.io/gorm"
)

type ByCategory struct {
	Category entity.Category
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", string(s.Category))
}
