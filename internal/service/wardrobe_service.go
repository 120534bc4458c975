package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"style-weaver-be/internal/dto"
	"style-weaver-be/internal/entity"
	"style-weaver-be/internal/pkg/logger"
	"style-weaver-be/internal/pkg/serverutils"
	"style-weaver-be/internal/repository/contract"
	"style-weaver-be/internal/repository/specification"
	"style-weaver-be/pkg/embedding"
	"style-weaver-be/pkg/styling"

	"github.com/google/uuid"
)

const wardrobeModule = "WardrobeService"

type IWardrobeService interface {
	Create(ctx context.Context, req *dto.CreateWardrobeItemRequest) (*dto.WardrobeItemResponse, error)
	GetAll(ctx context.Context, category string) ([]*dto.WardrobeItemResponse, error)
	// Index computes and stores the embedding of an already persisted item.
	Index(ctx context.Context, item *entity.WardrobeItem) error
}

type wardrobeService struct {
	repository        contract.WardrobeItemRepository
	publisherService  IPublisherService
	embeddingProvider embedding.EmbeddingProvider
	logger            logger.ILogger
}

func NewWardrobeService(
	repository contract.WardrobeItemRepository,
	publisherService IPublisherService,
	embeddingProvider embedding.EmbeddingProvider,
	logger logger.ILogger,
) IWardrobeService {
	return &wardrobeService{
		repository:        repository,
		publisherService:  publisherService,
		embeddingProvider: embeddingProvider,
		logger:            logger,
	}
}

func (c *wardrobeService) Create(ctx context.Context, req *dto.CreateWardrobeItemRequest) (*dto.WardrobeItemResponse, error) {
	id := strings.TrimSpace(req.Id)
	if id == "" {
		id = uuid.NewString()
	}

	existing, err := c.repository.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.NewAppError(http.StatusConflict, fmt.Sprintf("Wardrobe item %s already exists", id), nil)
	}

	category, ok := entity.ParseCategory(req.Category)
	if !ok {
		return nil, serverutils.BadRequest(fmt.Sprintf("Invalid category %q", req.Category), nil)
	}

	item := entity.WardrobeItem{
		Id:          id,
		Name:        strings.TrimSpace(req.Name),
		Category:    category,
		Description: strings.TrimSpace(req.Description),
		ImageUrl:    req.ImageUrl,
		StyleTags:   styling.NormalizeLabels(req.StyleTags),
		CreatedAt:   time.Now(),
	}

	if err := c.repository.Create(ctx, &item); err != nil {
		return nil, err
	}

	msg := dto.EmbedWardrobeItemMessage{ItemId: item.Id}
	msgJson, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}

	if err := c.publisherService.Publish(ctx, msgJson); err != nil {
		return nil, err
	}

	c.logger.Info(wardrobeModule, "Wardrobe item created", map[string]interface{}{
		"item_id":  item.Id,
		"category": item.Category,
	})

	return toWardrobeResponse(&item), nil
}

func (c *wardrobeService) GetAll(ctx context.Context, category string) ([]*dto.WardrobeItemResponse, error) {
	specs := []specification.Specification{
		specification.OrderBy{Field: "category"},
		specification.OrderBy{Field: "id"},
	}

	if category != "" {
		cat, ok := entity.ParseCategory(category)
		if !ok {
			return nil, serverutils.BadRequest(fmt.Sprintf("Invalid category %q", category), nil)
		}
		specs = append(specs, specification.ByCategory{Category: cat})
	}

	items, err := c.repository.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.WardrobeItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, toWardrobeResponse(item))
	}
	return result, nil
}

func (c *wardrobeService) Index(ctx context.Context, item *entity.WardrobeItem) error {
	res, err := c.embeddingProvider.Generate(ctx, item.EmbeddingDocument(), embedding.TaskRetrievalDocument)
	if err != nil {
		return fmt.Errorf("embed wardrobe item %s: %w", item.Id, err)
	}

	if err := c.repository.UpdateEmbedding(ctx, item.Id, res.Embedding.Values); err != nil {
		return fmt.Errorf("store embedding for %s: %w", item.Id, err)
	}

	item.Embedding = res.Embedding.Values
	item.IsIndexed = true
	return nil
}

func toWardrobeResponse(item *entity.WardrobeItem) *dto.WardrobeItemResponse {
	tags := item.StyleTags
	if tags == nil {
		tags = []string{}
	}
	return &dto.WardrobeItemResponse{
		Id:          item.Id,
		Name:        item.Name,
		Category:    string(item.Category),
		Description: item.Description,
		ImageUrl:    item.ImageUrl,
		StyleTags:   tags,
		Indexed:     item.IsIndexed,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
