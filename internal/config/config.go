// Package config loads studyquiz settings from a TOML file, a .env file and
// STUDYQUIZ_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/abhisek/studyquiz/internal/llm"
)

// FileName is the config file looked up in the working directory and in
// ~/.studyquiz when no path is given.
const FileName = "studyquiz.toml"

type Config struct {
	NumQuestions int    `toml:"num_questions"`
	Seed         uint64 `toml:"seed"`

	Log        Log        `toml:"log"`
	Chemistry  Chemistry  `toml:"chemistry"`
	General    General    `toml:"general"`
	Flashcards Flashcards `toml:"flashcards"`
	LLM        LLM        `toml:"llm"`
}

type Log struct {
	Mode    string `toml:"mode"`
	Verbose bool   `toml:"verbose"`
}

type Chemistry struct {
	WindowSize    int    `toml:"window_size"`
	FallbackTopic string `toml:"fallback_topic"`
	MinQuestions  int    `toml:"min_questions"`
}

type General struct {
	ContextWindow       int     `toml:"context_window"`
	MinSentenceLength   int     `toml:"min_sentence_length"`
	SimilarityThreshold float64 `toml:"similarity_threshold"`
	DistractorMin       float64 `toml:"distractor_min"`
	DistractorMax       float64 `toml:"distractor_max"`
}

type Flashcards struct {
	MaxTokens      int     `toml:"max_tokens"`
	Temperature    float64 `toml:"temperature"`
	Concurrency    int     `toml:"concurrency"`
	TimeoutSeconds int     `toml:"timeout_seconds"`
}

// Timeout is the per-chunk request timeout.
func (f Flashcards) Timeout() time.Duration {
	return time.Duration(f.TimeoutSeconds) * time.Second
}

// LLM selects the model backend. Environment variables override every field.
type LLM struct {
	Provider       string `toml:"provider"`
	Model          string `toml:"model"`
	BaseURL        string `toml:"base_url"`
	APIKey         string `toml:"api_key"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	MaxAttempts    int    `toml:"max_attempts"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		NumQuestions: 20,
		Log:          Log{Mode: "dev"},
		Chemistry: Chemistry{
			WindowSize:    500,
			FallbackTopic: "General",
			MinQuestions:  5,
		},
		General: General{
			ContextWindow:       3,
			MinSentenceLength:   10,
			SimilarityThreshold: 0.75,
			DistractorMin:       0.3,
			DistractorMax:       0.8,
		},
		Flashcards: Flashcards{
			MaxTokens:      1024,
			Temperature:    0.3,
			Concurrency:    4,
			TimeoutSeconds: 60,
		},
		LLM: LLM{
			TimeoutSeconds: 120,
			MaxAttempts:    3,
		},
	}
}

// Load reads path over the defaults. An empty path tries FileName in the
// working directory, then ~/.studyquiz/FileName, and falls back to the
// defaults when neither exists. Unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = discover()
		if path == "" {
			return cfg, nil
		}
	}

	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return cfg, fmt.Errorf("config %s: %s", path, strict.String())
		}
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func discover() string {
	candidates := []string{FileName}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".studyquiz", FileName))
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}

// LoadDotEnv loads KEY=VALUE pairs from files (".env" when none are given)
// into the environment without overriding variables already set. Missing
// files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Validate rejects settings no pipeline can run with.
func (c Config) Validate() error {
	var errs []error
	if c.NumQuestions < 0 {
		errs = append(errs, fmt.Errorf("num_questions must not be negative"))
	}
	g := c.General
	if g.SimilarityThreshold <= 0 || g.SimilarityThreshold > 1 {
		errs = append(errs, fmt.Errorf("general.similarity_threshold must be in (0, 1]"))
	}
	if g.DistractorMin < 0 || g.DistractorMax > 1 || g.DistractorMin >= g.DistractorMax {
		errs = append(errs, fmt.Errorf("general.distractor_min must be below general.distractor_max, both in [0, 1]"))
	}
	if c.Flashcards.Temperature < 0 || c.Flashcards.Temperature > 1 {
		errs = append(errs, fmt.Errorf("flashcards.temperature must be in [0, 1]"))
	}
	return errors.Join(errs...)
}

// LLMConfig resolves the provider configuration. The file's [llm] section
// overlays the llm defaults and STUDYQUIZ_* variables overlay the result.
// When neither names a provider, a vendor API key found in the environment
// selects one; otherwise the local Ollama default stays.
func (c Config) LLMConfig() llm.Config {
	cfg := llm.DefaultConfig()
	if c.LLM.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(c.LLM.TimeoutSeconds) * time.Second
	}
	if c.LLM.MaxAttempts > 0 {
		cfg.Retry.MaxAttempts = c.LLM.MaxAttempts
	}

	if c.LLM.Provider == "" && os.Getenv(llm.EnvPrefix+"LLM_PROVIDER") == "" {
		if discovered, ok := llm.DiscoverConfig(cfg); ok {
			cfg = discovered
		}
	} else if c.LLM.Provider != "" {
		cfg.Provider = c.LLM.Provider
	}
	c.applyProviderFields(&cfg)

	return llm.ConfigFromEnv(cfg)
}

func (c Config) applyProviderFields(cfg *llm.Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	l := c.LLM
	switch cfg.Provider {
	case llm.ProviderAnthropic:
		set(&cfg.Anthropic.Model, l.Model)
		set(&cfg.Anthropic.APIKey, l.APIKey)
	case llm.ProviderOpenAI:
		set(&cfg.OpenAI.Model, l.Model)
		set(&cfg.OpenAI.APIKey, l.APIKey)
		set(&cfg.OpenAI.BaseURL, l.BaseURL)
	case llm.ProviderGemini:
		set(&cfg.Gemini.Model, l.Model)
		set(&cfg.Gemini.APIKey, l.APIKey)
	case llm.ProviderOpenRouter:
		set(&cfg.OpenRouter.Model, l.Model)
		set(&cfg.OpenRouter.APIKey, l.APIKey)
		set(&cfg.OpenRouter.BaseURL, l.BaseURL)
	case llm.ProviderOllama:
		set(&cfg.Ollama.Model, l.Model)
		set(&cfg.Ollama.BaseURL, l.BaseURL)
	}
}
