package implementation

import (
	"context"
	"errors"

	"style-weaver-be/internal/entity"
	"style-weaver-be/internal/mapper"
	"style-weaver-be/internal/model"
	"style-weaver-be/internal/repository/contract"
	"style-weaver-be/internal/repository/specification"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WardrobeItemRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WardrobeItemMapper
}

func NewWardrobeItemRepository(db *gorm.DB) contract.WardrobeItemRepository {
	return &WardrobeItemRepositoryImpl{
		db:     db,
		mapper: mapper.NewWardrobeItemMapper(),
	}
}

func (r *WardrobeItemRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *WardrobeItemRepositoryImpl) Create(ctx context.Context, item *entity.WardrobeItem) error {
	m := r.mapper.ToModel(item)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ToEntity(m)
	return nil
}

// Upsert inserts the item or overwrites every column of an existing row with the same id.
func (r *WardrobeItemRepositoryImpl) Upsert(ctx context.Context, item *entity.WardrobeItem) error {
	m := r.mapper.ToModel(item)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "category", "description", "image_url", "style_tags", "embedding", "updated_at", "deleted_at"}),
		}).
		Create(m).Error
	if err != nil {
		return err
	}
	*item = *r.mapper.ToEntity(m)
	return nil
}

func (r *WardrobeItemRepositoryImpl) UpdateEmbedding(ctx context.Context, id string, embedding []float32) error {
	res := r.db.WithContext(ctx).
		Model(&model.WardrobeItem{}).
		Where("id = ?", id).
		Update("embedding", pgvector.NewVector(embedding))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *WardrobeItemRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WardrobeItem, error) {
	var m model.WardrobeItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *WardrobeItemRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WardrobeItem, error) {
	var models []*model.WardrobeItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *WardrobeItemRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.WardrobeItem{}).Count(&count).Error
	return count, err
}

func (r *WardrobeItemRepositoryImpl) DeleteAllUnscoped(ctx context.Context) error {
	return r.db.WithContext(ctx).Unscoped().Where("1 = 1").Delete(&model.WardrobeItem{}).Error
}

func (r *WardrobeItemRepositoryImpl) SearchSimilar(ctx context.Context, embedding []float32, category entity.Category, limit int) ([]entity.ScoredWardrobeItem, error) {
	if limit <= 0 {
		limit = 5
	}

	// Cosine distance in pgvector is 1 - cosine_similarity
	type result struct {
		model.WardrobeItem
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("wardrobe_items").
		Select("wardrobe_items.*, 1 - (embedding <=> ?) as similarity", queryVector).
		Where("category = ?", string(category)).
		Where("embedding IS NOT NULL").
		Where("deleted_at IS NULL").
		Order(gorm.Expr("embedding <=> ?", queryVector)).
		Order("id ASC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	scored := make([]entity.ScoredWardrobeItem, len(results))
	for i := range results {
		scored[i] = entity.ScoredWardrobeItem{
			Item:       *r.mapper.ToEntity(&results[i].WardrobeItem),
			Similarity: results[i].Similarity,
		}
	}
	return scored, nil
}
