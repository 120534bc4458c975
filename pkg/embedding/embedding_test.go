package embedding

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitVector(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want []float32
	}{
		{name: "3-4-5", in: []float64{3, 4}, want: []float32{0.6, 0.8}},
		{name: "already unit", in: []float64{1, 0, 0}, want: []float32{1, 0, 0}},
		{name: "zero vector unchanged", in: []float64{0, 0}, want: []float32{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := unitVector(tt.in)
			require.Len(t, got, len(tt.want))
			for i := range got {
				assert.InDelta(t, tt.want[i], got[i], 1e-6)
			}
		})
	}
}

func TestOllamaProviderNormalizes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/embed", r.URL.Path)
		var body ollamaEmbedRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "nomic-embed-text", body.Model)
		assert.Equal(t, "black hoodie", body.Input)
		_ = json.NewEncoder(w).Encode(ollamaEmbedResponse{Embeddings: [][]float64{{2, 0, 0, 0}}})
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL+"/", "")
	res, err := p.Generate(context.Background(), "black hoodie", TaskRetrievalQuery)

	require.NoError(t, err)
	var norm float64
	for _, v := range res.Embedding.Values {
		norm += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-6)
}

func TestGeminiProviderErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.Header.Get("x-goog-api-key"))
		http.Error(w, `{"error":"quota"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := &GeminiProvider{ApiKey: "secret", Model: defaultGeminiModel, Endpoint: srv.URL, client: srv.Client()}
	_, err := p.Generate(context.Background(), "jeans", TaskRetrievalQuery)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

type countingProvider struct {
	calls atomic.Int32
}

func (c *countingProvider) Generate(ctx context.Context, text string, taskType string) (*EmbeddingResponse, error) {
	c.calls.Add(1)
	time.Sleep(30 * time.Millisecond)
	return &EmbeddingResponse{Embedding: EmbeddingResponseEmbedding{Values: []float32{1, 0}}}, nil
}

func TestCoalescingProvider(t *testing.T) {
	inner := &countingProvider{}
	p := NewCoalescingProvider(inner)

	var wg sync.WaitGroup
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := p.Generate(context.Background(), "denim jeans grunge", TaskRetrievalQuery)
			assert.NoError(t, err)
			assert.Equal(t, []float32{1, 0}, res.Embedding.Values)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), inner.calls.Load())
}

func TestNewProvider(t *testing.T) {
	_, err := NewProvider("gemini", "", "", "")
	assert.Error(t, err)

	_, err = NewProvider("openai", "key", "", "")
	assert.Error(t, err)

	p, err := NewProvider("ollama", "", "http://localhost:11434", "nomic-embed-text")
	require.NoError(t, err)
	assert.IsType(t, &CoalescingProvider{}, p)
}
