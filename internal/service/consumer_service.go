package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"style-weaver-be/internal/dto"
	"style-weaver-be/internal/pkg/logger"
	"style-weaver-be/internal/repository/contract"
	"style-weaver-be/internal/repository/specification"

	"github.com/ThreeDotsLabs/watermill/message"
)

const (
	consumerModule     = "WardrobeConsumer"
	maxEmbedAttempts   = 3
	embedRetryInterval = 2 * time.Second
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber      message.Subscriber
	topicName       string
	repository      contract.WardrobeItemRepository
	wardrobeService IWardrobeService
	logger          logger.ILogger

	retryInterval time.Duration

	mu       sync.Mutex
	attempts map[string]int
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	repository contract.WardrobeItemRepository,
	wardrobeService IWardrobeService,
	logger logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber:      subscriber,
		topicName:       topicName,
		repository:      repository,
		wardrobeService: wardrobeService,
		logger:          logger,
		retryInterval:   embedRetryInterval,
		attempts:        make(map[string]int),
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.EmbedWardrobeItemMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil || payload.ItemId == "" {
		cs.logger.Error(consumerModule, "Dropping invalid embed message", map[string]interface{}{
			"message_id": msg.UUID,
			"payload":    string(msg.Payload),
		})
		msg.Ack()
		return
	}

	item, err := cs.repository.FindOne(ctx, specification.ByID{ID: payload.ItemId})
	if err != nil {
		cs.retry(ctx, msg, payload.ItemId, err)
		return
	}
	if item == nil {
		cs.logger.Warn(consumerModule, "Wardrobe item no longer exists", map[string]interface{}{"item_id": payload.ItemId})
		cs.done(msg)
		return
	}

	if err := cs.wardrobeService.Index(ctx, item); err != nil {
		cs.retry(ctx, msg, payload.ItemId, err)
		return
	}

	cs.logger.Info(consumerModule, "Wardrobe item indexed", map[string]interface{}{
		"item_id":    item.Id,
		"dimensions": len(item.Embedding),
	})
	cs.done(msg)
}

// retry nacks msg for redelivery until it has failed maxEmbedAttempts times.
func (cs *consumerService) retry(ctx context.Context, msg *message.Message, itemId string, err error) {
	cs.mu.Lock()
	cs.attempts[msg.UUID]++
	attempt := cs.attempts[msg.UUID]
	cs.mu.Unlock()

	details := map[string]interface{}{
		"item_id": itemId,
		"attempt": attempt,
		"error":   err.Error(),
	}

	if attempt >= maxEmbedAttempts {
		cs.logger.Error(consumerModule, "Giving up on wardrobe item embedding", details)
		cs.done(msg)
		return
	}

	cs.logger.Warn(consumerModule, "Wardrobe item embedding failed, retrying", details)
	select {
	case <-ctx.Done():
	case <-time.After(cs.retryInterval):
	}
	msg.Nack()
}

func (cs *consumerService) done(msg *message.Message) {
	cs.mu.Lock()
	delete(cs.attempts, msg.UUID)
	cs.mu.Unlock()
	msg.Ack()
}
