package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGeminiSchema(t *testing.T) {
	s := geminiSchema(map[string]any{
		"type":        "object",
		"description": "flashcards",
		"properties": map[string]any{
			"items": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"front": map[string]any{"type": "string"},
						"kind":  map[string]any{"type": "string", "enum": []any{"term", "fact"}},
					},
					"required": []string{"front"},
				},
			},
		},
		"required": []any{"items"},
	})

	assert.Equal(t, genai.TypeObject, s.Type)
	assert.Equal(t, "flashcards", s.Description)
	assert.Equal(t, []string{"items"}, s.Required)

	items := s.Properties["items"]
	require.NotNil(t, items)
	assert.Equal(t, genai.TypeArray, items.Type)
	require.NotNil(t, items.Items)
	assert.Equal(t, []string{"front"}, items.Items.Required)
	assert.Equal(t, []string{"term", "fact"}, items.Items.Properties["kind"].Enum)
}

func TestGeminiSchema_UnknownTypeDefaultsToString(t *testing.T) {
	assert.Equal(t, genai.TypeString, geminiSchema(map[string]any{"type": "null"}).Type)
	assert.Equal(t, genai.TypeString, geminiSchema(map[string]any{}).Type)
}

func TestNewGeminiProvider_RequiresKey(t *testing.T) {
	_, err := NewGeminiProvider(t.Context(), GeminiConfig{})
	assert.Error(t, err)
}
