package providers

import (
	"context"
	"net/http"
	"os"
	"time"
)

const (
	defaultGroqURL   = "https://api.groq.com/openai/v1/chat/completions"
	defaultGroqModel = "llama-3.1-8b-instant"
)

// Groq implements the Narrator interface for Groq's OpenAI-compatible API.
type Groq struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewGroq creates a new Groq narrator. The model falls back to
// llama-3.1-8b-instant (overridable via GROQ_MODEL) when unset.
func NewGroq(model string) (*Groq, error) {
	key := os.Getenv("GROQ_API_KEY")
	if key == "" {
		return nil, &credentialError{envVar: "GROQ_API_KEY"}
	}
	if model == "" {
		model = os.Getenv("GROQ_MODEL")
	}
	if model == "" {
		model = defaultGroqModel
	}
	baseURL := os.Getenv("PRCOACH_GROQ_BASE_URL")
	if baseURL == "" {
		baseURL = defaultGroqURL
	}
	return &Groq{
		apiKey:  key,
		model:   model,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}, nil
}

func (g *Groq) Name() string { return "groq" }

func (g *Groq) Narrate(ctx context.Context, req NarrateRequest) (NarrateResponse, error) {
	return chatCompletion(ctx, g.client, g.baseURL, g.apiKey, g.model, req)
}
