package flashcards

import "time"

const (
	DefaultMaxTokens   = 1024
	DefaultTemperature = 0.3
	DefaultConcurrency = 4
	DefaultTimeout     = 60 * time.Second
)

// Config controls a Generator. Zero values select the defaults.
type Config struct {
	// Validators run in order on every card; the first failure drops it.
	Validators []Validator

	MaxTokens   int
	Temperature float64

	// Concurrency bounds in-flight chunk requests.
	Concurrency int
	// Timeout bounds each chunk request.
	Timeout time.Duration

	// WindowSize and FallbackTopic configure header chunking.
	WindowSize    int
	FallbackTopic string
}

// DefaultConfig returns the standard validator chain and limits.
func DefaultConfig() Config {
	return Config{
		Validators:  []Validator{&StructuralValidator{MaxLength: 500}},
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
		Concurrency: DefaultConcurrency,
		Timeout:     DefaultTimeout,
	}
}

func (c Config) withDefaults() Config {
	if c.MaxTokens <= 0 {
		c.MaxTokens = DefaultMaxTokens
	}
	if c.Concurrency <= 0 {
		c.Concurrency = DefaultConcurrency
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}
