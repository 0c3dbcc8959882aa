package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// EnvPrefix prefixes every environment variable read by ConfigFromEnv.
const EnvPrefix = "STUDYQUIZ_"

// Provider names accepted in Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderOllama     = "ollama"
	ProviderMock       = "mock"
)

// Config selects and configures a provider.
type Config struct {
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Ollama     OllamaConfig
	Retry      RetryConfig

	// Timeout bounds one Generate call including retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// OllamaConfig targets a local Ollama server through its OpenAI-compatible
// endpoint. No API key is needed.
type OllamaConfig struct {
	Model   string
	BaseURL string
}

// RetryConfig controls exponential backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig uses a local Ollama model so flashcards work without keys.
func DefaultConfig() Config {
	return Config{
		Provider:   ProviderOllama,
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp", BaseURL: defaultOpenRouterBaseURL},
		Ollama:     OllamaConfig{Model: defaultOllamaModel, BaseURL: defaultOllamaBaseURL},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: 60 * time.Second,
	}
}

// ConfigFromEnv overlays STUDYQUIZ_* environment variables on base.
func ConfigFromEnv(base Config) Config {
	cfg := base
	bindings := []struct {
		name string
		dst  *string
	}{
		{"LLM_PROVIDER", &cfg.Provider},
		{"ANTHROPIC_API_KEY", &cfg.Anthropic.APIKey},
		{"ANTHROPIC_MODEL", &cfg.Anthropic.Model},
		{"OPENAI_API_KEY", &cfg.OpenAI.APIKey},
		{"OPENAI_MODEL", &cfg.OpenAI.Model},
		{"OPENAI_BASE_URL", &cfg.OpenAI.BaseURL},
		{"GEMINI_API_KEY", &cfg.Gemini.APIKey},
		{"GEMINI_MODEL", &cfg.Gemini.Model},
		{"OPENROUTER_API_KEY", &cfg.OpenRouter.APIKey},
		{"OPENROUTER_MODEL", &cfg.OpenRouter.Model},
		{"OLLAMA_MODEL", &cfg.Ollama.Model},
		{"OLLAMA_BASE_URL", &cfg.Ollama.BaseURL},
	}
	for _, b := range bindings {
		if v := os.Getenv(EnvPrefix + b.name); v != "" {
			*b.dst = v
		}
	}
	return cfg
}

// DiscoverConfig looks for a vendor API key in the conventional variables,
// in the order Gemini, OpenAI, Anthropic, OpenRouter, and selects the first
// provider found. It reports false when none is set.
func DiscoverConfig(base Config) (Config, bool) {
	cfg := base
	candidates := []struct {
		env      string
		provider string
		dst      *string
	}{
		{"GEMINI_API_KEY", ProviderGemini, &cfg.Gemini.APIKey},
		{"OPENAI_API_KEY", ProviderOpenAI, &cfg.OpenAI.APIKey},
		{"ANTHROPIC_API_KEY", ProviderAnthropic, &cfg.Anthropic.APIKey},
		{"OPENROUTER_API_KEY", ProviderOpenRouter, &cfg.OpenRouter.APIKey},
	}
	for _, c := range candidates {
		if k := os.Getenv(c.env); k != "" {
			cfg.Provider = c.provider
			*c.dst = k
			return cfg, true
		}
	}
	return base, false
}

// Validate checks that the selected provider can be constructed.
func (c Config) Validate() error {
	missing := func(name string) error {
		return fmt.Errorf("%s%s_API_KEY is required for the %s provider", EnvPrefix, strings.ToUpper(name), name)
	}
	switch c.Provider {
	case ProviderAnthropic:
		if c.Anthropic.APIKey == "" {
			return missing(c.Provider)
		}
	case ProviderOpenAI:
		if c.OpenAI.APIKey == "" {
			return missing(c.Provider)
		}
	case ProviderGemini:
		if c.Gemini.APIKey == "" {
			return missing(c.Provider)
		}
	case ProviderOpenRouter:
		if c.OpenRouter.APIKey == "" {
			return missing(c.Provider)
		}
	case ProviderOllama:
		if c.Ollama.Model == "" {
			return fmt.Errorf("%sOLLAMA_MODEL is required for the ollama provider", EnvPrefix)
		}
	case ProviderMock:
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}

