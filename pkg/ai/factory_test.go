package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTextGeneratorGeminiNeedsKey(t *testing.T) {
	_, err := NewTextGenerator(context.Background(), Config{Provider: ProviderGemini})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestNewTextGeneratorOllama(t *testing.T) {
	gen, err := NewTextGenerator(context.Background(), Config{Provider: ProviderOllama})
	require.NoError(t, err)
	assert.NotNil(t, gen)
}

func TestNewTextGeneratorUnknownProvider(t *testing.T) {
	_, err := NewTextGenerator(context.Background(), Config{Provider: "bard"})
	assert.Error(t, err)
}

func TestUnavailableAlwaysFails(t *testing.T) {
	cause := errors.New("GEMINI_API_KEY is required for Gemini provider")
	_, err := Unavailable(cause).GenerateText(context.Background(), "anything")
	assert.ErrorIs(t, err, cause)
}
