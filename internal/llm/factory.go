package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/studyquiz/internal/logger"
)

// NewProvider builds the provider selected by cfg wrapped as
// timeout(retry(logging(base))), so every attempt is logged and cfg.Timeout
// bounds the call including retries.
func NewProvider(ctx context.Context, cfg Config, log *logger.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error
	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderOllama:
		base = NewOllamaProvider(cfg.Ollama)
	case ProviderMock:
		base = NewMockProvider()
	}
	if err != nil {
		return nil, fmt.Errorf("initialize %s provider: %w", cfg.Provider, err)
	}

	log = logger.OrNop(log).With("provider", cfg.Provider)
	return WithTimeout(WithRetry(WithLogging(base, log), cfg.Retry, log), cfg.Timeout), nil
}
