package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"style-weaver-be/internal/entity"
	"style-weaver-be/internal/repository/specification"
	"style-weaver-be/pkg/embedding"
	"style-weaver-be/pkg/events"
)

type fakeWardrobeRepo struct {
	mu        sync.Mutex
	items     map[string]*entity.WardrobeItem
	findErr   error
	searchErr error
	hits      []entity.ScoredWardrobeItem
	lastQuery []float32
}

func newFakeWardrobeRepo(items ...*entity.WardrobeItem) *fakeWardrobeRepo {
	r := &fakeWardrobeRepo{items: make(map[string]*entity.WardrobeItem)}
	for _, it := range items {
		r.items[it.Id] = it
	}
	return r
}

func (r *fakeWardrobeRepo) Create(ctx context.Context, item *entity.WardrobeItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *item
	r.items[item.Id] = &cp
	return nil
}

func (r *fakeWardrobeRepo) Upsert(ctx context.Context, item *entity.WardrobeItem) error {
	return r.Create(ctx, item)
}

func (r *fakeWardrobeRepo) UpdateEmbedding(ctx context.Context, id string, emb []float32) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[id]
	if !ok {
		return errors.New("record not found")
	}
	it.Embedding = emb
	it.IsIndexed = true
	return nil
}

func (r *fakeWardrobeRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WardrobeItem, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range specs {
		if byID, ok := s.(specification.ByID); ok {
			if it, ok := r.items[byID.ID]; ok {
				cp := *it
				return &cp, nil
			}
			return nil, nil
		}
	}
	return nil, nil
}

func (r *fakeWardrobeRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WardrobeItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var category entity.Category
	for _, s := range specs {
		if c, ok := s.(specification.ByCategory); ok {
			category = c.Category
		}
	}
	res := make([]*entity.WardrobeItem, 0, len(r.items))
	for _, it := range r.items {
		if category != "" && it.Category != category {
			continue
		}
		cp := *it
		res = append(res, &cp)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Id < res[j].Id })
	return res, nil
}

func (r *fakeWardrobeRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func (r *fakeWardrobeRepo) DeleteAllUnscoped(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = make(map[string]*entity.WardrobeItem)
	return nil
}

func (r *fakeWardrobeRepo) SearchSimilar(ctx context.Context, emb []float32, category entity.Category, limit int) ([]entity.ScoredWardrobeItem, error) {
	r.mu.Lock()
	r.lastQuery = emb
	r.mu.Unlock()
	if r.searchErr != nil {
		return nil, r.searchErr
	}
	var res []entity.ScoredWardrobeItem
	for _, h := range r.hits {
		if h.Item.Category == category && len(res) < limit {
			res = append(res, h)
		}
	}
	return res, nil
}

func (r *fakeWardrobeRepo) get(id string) *entity.WardrobeItem {
	r.mu.Lock()
	defer r.mu.Unlock()
	if it, ok := r.items[id]; ok {
		cp := *it
		return &cp
	}
	return nil
}

type fakeEmbedder struct {
	mu       sync.Mutex
	err      error
	calls    int
	lastText string
	lastTask string
}

func (f *fakeEmbedder) Generate(ctx context.Context, text string, taskType string) (*embedding.EmbeddingResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastText = text
	f.lastTask = taskType
	if f.err != nil {
		return nil, f.err
	}
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: []float32{0.6, 0.8}},
	}, nil
}

type fakePublisher struct {
	mu       sync.Mutex
	err      error
	payloads [][]byte
}

func (f *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.payloads = append(f.payloads, payload)
	return nil
}

type fakeEventPublisher struct {
	mu     sync.Mutex
	err    error
	events []events.Event
}

func (f *fakeEventPublisher) Publish(ctx context.Context, event events.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return f.err
}

type fakeTrendRepo struct {
	summaries []*entity.TrendSummary
	err       error
}

func (f *fakeTrendRepo) FindTrend(ctx context.Context, name string) (*entity.Trend, error) {
	return nil, errors.New("not used")
}

func (f *fakeTrendRepo) ListTrends(ctx context.Context) ([]*entity.TrendSummary, error) {
	return f.summaries, f.err
}

func (f *fakeTrendRepo) ReplaceAll(ctx context.Context, trends []*entity.Trend) error {
	return nil
}

func (f *fakeTrendRepo) VerifyConnectivity(ctx context.Context) error {
	return f.err
}
