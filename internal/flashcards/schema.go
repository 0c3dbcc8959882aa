package flashcards

import "github.com/abhisek/studyquiz/internal/llm"

// CardsSchema is the structured output requested for every chunk.
var CardsSchema = &llm.Schema{
	Name:        "study-flashcards",
	Description: "Flashcards covering one topic of a study document",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"items": map[string]any{
				"type":        "array",
				"description": "Between 3 and 5 flashcards",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"front": map[string]any{
							"type":        "string",
							"description": "A question or prompt about one fact from the content",
						},
						"back": map[string]any{
							"type":        "string",
							"description": "The concise answer, taken from the content",
						},
					},
					"required":             []any{"front", "back"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"items"},
		"additionalProperties": false,
	},
}
