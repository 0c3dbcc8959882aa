package llm

const (
	defaultOllamaBaseURL = "http://localhost:11434/v1"
	defaultOllamaModel   = "mistral"

	// Ollama ignores the key but the client refuses to send an empty one.
	ollamaAPIKey = "ollama"
)

// OllamaProvider talks to a local Ollama server. Structured output uses JSON
// mode with the schema described in the system prompt, and the result is
// validated locally.
type OllamaProvider struct {
	*OpenAIProvider
}

// NewOllamaProvider creates a provider for a local Ollama server.
func NewOllamaProvider(cfg OllamaConfig) *OllamaProvider {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOllamaBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultOllamaModel
	}
	return &OllamaProvider{
		OpenAIProvider: newOpenAICompatible(ollamaAPIKey, baseURL, model, modeJSONObject),
	}
}
