package imagegen

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"style-weaver-be/pkg/styling"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.0-flash-preview-image-generation"

// GeminiGenerator renders prompts with a Gemini image model and returns the
// first inline image as a data URL.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini image generator requires an API key")
	}
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

func (g *GeminiGenerator) GenerateImage(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
	})
	if err != nil {
		return "", fmt.Errorf("%w: gemini generate content: %v", styling.ErrUnavailable, err)
	}
	return ExtractImage(result)
}

// ExtractImage returns the first inline image of result as a data URL.
// A blocked prompt, a blocked candidate or a response without an image is
// reported as styling.ErrGenerationRejected.
func ExtractImage(result *genai.GenerateContentResponse) (string, error) {
	if result == nil {
		return "", fmt.Errorf("%w: empty response", styling.ErrGenerationRejected)
	}
	if fb := result.PromptFeedback; fb != nil && (fb.BlockReason != "" || fb.BlockReasonMessage != "") {
		return "", fmt.Errorf("%w: prompt blocked: %s %s", styling.ErrGenerationRejected, fb.BlockReason, fb.BlockReasonMessage)
	}

	for _, cand := range result.Candidates {
		for _, rating := range cand.SafetyRatings {
			if rating.Blocked {
				return "", fmt.Errorf("%w: content blocked by safety setting: %s", styling.ErrGenerationRejected, rating.Category)
			}
		}
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part == nil || part.InlineData == nil {
				continue
			}
			if strings.HasPrefix(part.InlineData.MIMEType, "image/") && len(part.InlineData.Data) > 0 {
				return DataURL(part.InlineData.MIMEType, part.InlineData.Data), nil
			}
		}
	}

	return "", fmt.Errorf("%w: response contained no image", styling.ErrGenerationRejected)
}

func DataURL(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
