package ai

import (
	"context"
	"fmt"

	"meeting-notes-backend/pkg/gemini"
	"meeting-notes-backend/pkg/metrics"
)

// Config holds AI provider configuration
type Config struct {
	Provider ProviderType // "gemini" or "ollama"

	// Gemini config
	GeminiAPIKey string
	GeminiModel  string

	// Ollama config
	OllamaBaseURL string // e.g., "http://localhost:11434"
	OllamaModel   string // e.g., "llama3", "mistral"
}

// NewTextGenerator creates a TextGenerator based on the config.
// Switch AI provider by changing config.Provider; an empty provider means Gemini.
func NewTextGenerator(ctx context.Context, cfg Config) (TextGenerator, error) {
	switch cfg.Provider {
	case ProviderGemini, "":
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for Gemini provider")
		}
		svc, err := gemini.NewGeminiService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		return Instrument(ProviderGemini, svc), nil

	case ProviderOllama:
		return Instrument(ProviderOllama, NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel)), nil

	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.Provider)
	}
}

// Unavailable returns a generator that fails every call with err. It stands in
// for a provider that could not be constructed at startup so the failure is
// reported per request instead of preventing the server from starting.
func Unavailable(err error) TextGenerator {
	return unavailable{err: err}
}

type unavailable struct {
	err error
}

func (u unavailable) GenerateText(ctx context.Context, prompt string) (string, error) {
	return "", u.err
}

// Instrument counts calls to gen by provider and outcome.
func Instrument(provider ProviderType, gen TextGenerator) TextGenerator {
	return &instrumented{provider: provider, next: gen}
}

type instrumented struct {
	provider ProviderType
	next     TextGenerator
}

func (i *instrumented) GenerateText(ctx context.Context, prompt string) (string, error) {
	text, err := i.next.GenerateText(ctx, prompt)
	metrics.CollaboratorRequestsTotal.WithLabelValues(string(i.provider), metrics.Outcome(err)).Inc()
	return text, err
}
