package providers

import (
	"context"
	"fmt"
)

// NarrateRequest contains the prompt sent to a narrative generator.
type NarrateRequest struct {
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
	Temperature  float64
}

// NarrateResponse contains the raw response from a narrative generator.
type NarrateResponse struct {
	Content    string
	TokensUsed int
}

// Narrator is the narrative generator abstraction. Implementations perform
// a single blocking call bounded by their own HTTP timeout; callers decide
// what to do on failure.
type Narrator interface {
	Narrate(ctx context.Context, req NarrateRequest) (NarrateResponse, error)
	Name() string
}

// New creates a narrator by provider name.
func New(provider, model string) (Narrator, error) {
	switch provider {
	case "groq":
		return NewGroq(model)
	case "openai":
		return NewOpenAI(model)
	case "anthropic":
		return NewAnthropic(model)
	case "gemini", "google":
		return NewGemini(model)
	case "ollama", "lmstudio":
		return NewOllama(model)
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}
