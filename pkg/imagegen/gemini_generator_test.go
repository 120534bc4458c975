package imagegen

import (
	"context"
	"testing"

	"style-weaver-be/pkg/styling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestExtractImage(t *testing.T) {
	png := []byte{0x89, 0x50, 0x4e, 0x47}

	tests := []struct {
		name     string
		result   *genai.GenerateContentResponse
		want     string
		rejected bool
	}{
		{
			name:     "nil response",
			result:   nil,
			rejected: true,
		},
		{
			name: "inline image after text",
			result: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{
					Content: &genai.Content{Parts: []*genai.Part{
						{Text: "Here is your outfit"},
						{InlineData: &genai.Blob{MIMEType: "image/png", Data: png}},
					}},
				}},
			},
			want: "data:image/png;base64,iVBORw==",
		},
		{
			name: "prompt blocked",
			result: &genai.GenerateContentResponse{
				PromptFeedback: &genai.GenerateContentResponsePromptFeedback{BlockReason: "SAFETY"},
			},
			rejected: true,
		},
		{
			name: "candidate blocked",
			result: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{
					SafetyRatings: []*genai.SafetyRating{{Blocked: true}},
					Content: &genai.Content{Parts: []*genai.Part{
						{InlineData: &genai.Blob{MIMEType: "image/png", Data: png}},
					}},
				}},
			},
			rejected: true,
		},
		{
			name: "text only",
			result: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{
					Content: &genai.Content{Parts: []*genai.Part{{Text: "I cannot draw that"}}},
				}},
			},
			rejected: true,
		},
		{
			name: "non image inline data is skipped",
			result: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{
					Content: &genai.Content{Parts: []*genai.Part{
						{InlineData: &genai.Blob{MIMEType: "application/json", Data: []byte("{}")}},
					}},
				}},
			},
			rejected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractImage(tt.result)
			if tt.rejected {
				assert.ErrorIs(t, err, styling.ErrGenerationRejected)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDisabledIsUnavailable(t *testing.T) {
	_, err := Disabled{}.GenerateImage(context.Background(), "prompt")
	assert.ErrorIs(t, err, styling.ErrUnavailable)
}

func TestNewGeminiGeneratorRequiresKey(t *testing.T) {
	_, err := NewGeminiGenerator(context.Background(), "", "")
	assert.Error(t, err)
}
