package embedding

import (
	"context"

	"golang.org/x/sync/singleflight"
)

// CoalescingProvider shares one upstream call between concurrent requests
// for the same text and task type.
type CoalescingProvider struct {
	next  EmbeddingProvider
	group singleflight.Group
}

func NewCoalescingProvider(next EmbeddingProvider) *CoalescingProvider {
	return &CoalescingProvider{next: next}
}

func (p *CoalescingProvider) Generate(ctx context.Context, text string, taskType string) (*EmbeddingResponse, error) {
	key := taskType + "\x00" + text
	ch := p.group.DoChan(key, func() (interface{}, error) {
		return p.next.Generate(context.WithoutCancel(ctx), text, taskType)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		shared := res.Val.(*EmbeddingResponse)
		values := make([]float32, len(shared.Embedding.Values))
		copy(values, shared.Embedding.Values)
		return &EmbeddingResponse{Embedding: EmbeddingResponseEmbedding{Values: values}}, nil
	}
}
