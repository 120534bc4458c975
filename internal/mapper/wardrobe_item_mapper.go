package mapper

import (
	"time"

	"style-weaver-be/internal/entity"
	"style-weaver-be/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type WardrobeItemMapper struct{}

func NewWardrobeItemMapper() *WardrobeItemMapper {
	return &WardrobeItemMapper{}
}

func (m *WardrobeItemMapper) ToEntity(w *model.WardrobeItem) *entity.WardrobeItem {
	if w == nil {
		return nil
	}

	var deletedAt *time.Time
	if w.DeletedAt.Valid {
		t := w.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !w.UpdatedAt.IsZero() {
		t := w.UpdatedAt
		updatedAt = &t
	}

	var embedding []float32
	if w.Embedding != nil {
		embedding = w.Embedding.Slice()
	}

	return &entity.WardrobeItem{
		Id:          w.Id,
		Name:        w.Name,
		Category:    entity.Category(w.Category),
		Description: w.Description,
		ImageUrl:    w.ImageUrl,
		StyleTags:   append([]string(nil), w.StyleTags...),
		Embedding:   embedding,
		IsIndexed:   w.Embedding != nil,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
		IsDeleted:   w.DeletedAt.Valid,
	}
}

func (m *WardrobeItemMapper) ToModel(e *entity.WardrobeItem) *model.WardrobeItem {
	if e == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if e.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *e.DeletedAt, Valid: true}
	} else if e.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	var embedding *pgvector.Vector
	if len(e.Embedding) > 0 {
		v := pgvector.NewVector(e.Embedding)
		embedding = &v
	}

	return &model.WardrobeItem{
		Id:          e.Id,
		Name:        e.Name,
		Category:    string(e.Category),
		Description: e.Description,
		ImageUrl:    e.ImageUrl,
		StyleTags:   datatypes.NewJSONSlice(append([]string(nil), e.StyleTags...)),
		Embedding:   embedding,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
	}
}

func (m *WardrobeItemMapper) ToEntities(items []*model.WardrobeItem) []*entity.WardrobeItem {
	entities := make([]*entity.WardrobeItem, len(items))
	for i, w := range items {
		entities[i] = m.ToEntity(w)
	}
	return entities
}
