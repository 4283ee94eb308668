package ai

import (
	"context"
)

// TextGenerator is the language-model collaborator: one prompt in, the
// model's raw text out. Implement this interface to add new AI providers.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderGemini ProviderType = "gemini"
	ProviderOllama ProviderType = "ollama"
)
