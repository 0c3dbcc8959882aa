// Package llm talks to hosted and local language models behind one Provider
// interface. Providers return JSON validated against a caller-supplied schema
// and are composed with retry and logging decorators by NewProvider.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates a completion for a Request.
type Provider interface {
	// Generate sends req to the model. When req.Schema is set the returned
	// Content is JSON that validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the model the provider sends requests to.
	ModelID() string
}

// Request is a single completion request.
type Request struct {
	System   string
	Messages []Message

	// Schema selects structured output. Nil asks for plain text.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]. Zero leaves the provider default.
	Temperature float64
}

// UserRequest builds a single-turn request.
func UserRequest(system, prompt string) Request {
	return Request{
		System:   system,
		Messages: []Message{{Role: RoleUser, Content: prompt}},
	}
}

// Message is one turn of a conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the sender of a Message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a JSON Schema the response must satisfy. Name doubles as the
// tool or schema name on providers that need one and should be kebab-case.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Normalized stop reasons.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

// Response is a completed generation.
type Response struct {
	// Content is validated JSON for schema requests and the raw model text
	// otherwise.
	Content json.RawMessage

	Usage      Usage
	Model      string
	StopReason string
}

// Text returns Content as a string.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	return string(r.Content)
}

// Usage is the token accounting of one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// finish applies the checks every provider runs on a raw completion.
func finish(req Request, content json.RawMessage, usage Usage, model, stop string) (*Response, error) {
	if req.Schema != nil {
		if stop == StopMaxTokens {
			return nil, &ErrMaxTokensExceeded{Content: content}
		}
		if err := validateResponse(req.Schema, content); err != nil {
			return nil, err
		}
	}
	return &Response{Content: content, Usage: usage, Model: model, StopReason: stop}, nil
}

// resolveModel maps a friendly alias to a model ID. Unknown names pass
// through unchanged.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
