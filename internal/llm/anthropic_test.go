package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func anthropicServer(t *testing.T, status int, payload map[string]any) *AnthropicProvider {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(payload)
	}))
	t.Cleanup(srv.Close)

	p, err := NewAnthropicProvider(AnthropicConfig{APIKey: "k", Model: "claude-sonnet"},
		option.WithBaseURL(srv.URL), option.WithMaxRetries(0))
	require.NoError(t, err)
	return p
}

func anthropicMessage(text, stop string) map[string]any {
	return map[string]any{
		"id":          "msg_test",
		"type":        "message",
		"role":        "assistant",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"model":       "claude-sonnet-4-20250514",
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
	}
}

func TestAnthropicProvider_HappyPath(t *testing.T) {
	p := anthropicServer(t, http.StatusOK, anthropicMessage(`{"front":"Q","back":"A"}`, "end_turn"))
	assert.Equal(t, "claude-sonnet-4-20250514", p.ModelID())

	req := UserRequest("You write flashcards.", "notes")
	req.Schema = cardSchema()
	resp, err := p.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"front":"Q","back":"A"}`, resp.Text())
	assert.Equal(t, Usage{InputTokens: 50, OutputTokens: 30, TotalTokens: 80}, resp.Usage)
	assert.Equal(t, StopEnd, resp.StopReason)
	assert.Equal(t, "claude-sonnet-4-20250514", resp.Model)
}

func TestAnthropicProvider_MaxTokens(t *testing.T) {
	p := anthropicServer(t, http.StatusOK, anthropicMessage(`{"front":"Q"`, "max_tokens"))
	req := UserRequest("", "notes")
	req.Schema = cardSchema()
	_, err := p.Generate(context.Background(), req)
	var maxTokens *ErrMaxTokensExceeded
	assert.ErrorAs(t, err, &maxTokens)
}

func TestAnthropicProvider_Errors(t *testing.T) {
	errBody := map[string]any{"type": "error", "error": map[string]any{"type": "rate_limit_error", "message": "slow down"}}

	_, err := anthropicServer(t, http.StatusTooManyRequests, errBody).Generate(context.Background(), UserRequest("", "x"))
	var rl *ErrRateLimit
	assert.ErrorAs(t, err, &rl)

	_, err = anthropicServer(t, http.StatusInternalServerError, errBody).Generate(context.Background(), UserRequest("", "x"))
	var unavailable *ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavailable)
}

func TestAnthropicProvider_RequiresKey(t *testing.T) {
	_, err := NewAnthropicProvider(AnthropicConfig{})
	assert.Error(t, err)
}
