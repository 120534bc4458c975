package embedding

import (
	"fmt"
	"strings"
)

const (
	ProviderGemini = "gemini"
	ProviderOllama = "ollama"
)

// NewProvider returns the configured provider wrapped in a CoalescingProvider.
func NewProvider(name, geminiApiKey, ollamaBaseURL, ollamaModel string) (EmbeddingProvider, error) {
	var p EmbeddingProvider
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ProviderGemini:
		if geminiApiKey == "" {
			return nil, fmt.Errorf("gemini embedding provider requires an API key")
		}
		p = NewGeminiProvider(geminiApiKey)
	case ProviderOllama:
		p = NewOllamaProvider(ollamaBaseURL, ollamaModel)
	default:
		return nil, fmt.Errorf("unknown embedding provider %q", name)
	}
	return NewCoalescingProvider(p), nil
}
