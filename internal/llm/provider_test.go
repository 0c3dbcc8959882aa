package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cardSchema() *Schema {
	return &Schema{
		Name: "test-card",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"front": map[string]any{"type": "string"},
				"back":  map[string]any{"type": "string"},
			},
			"required": []any{"front", "back"},
		},
	}
}

func TestMockProvider_FIFO(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Content: json.RawMessage(`{"b":2}`)},
	)

	first, err := mock.Generate(context.Background(), UserRequest("", "first"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, first.Text())
	assert.Equal(t, 10, first.Usage.InputTokens)
	assert.Equal(t, StopEnd, first.StopReason)
	assert.Equal(t, "mock", first.Model)

	second, err := mock.Generate(context.Background(), UserRequest("", "second"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"b":2}`, second.Text())

	_, err = mock.Generate(context.Background(), Request{})
	var unavailable *ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavailable)
	assert.Equal(t, 3, mock.CallCount())
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	_, err := mock.Generate(context.Background(), UserRequest("sys", "hello"))
	require.NoError(t, err)

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "sys", calls[0].System)
	assert.Equal(t, "hello", calls[0].Messages[0].Content)
}

func TestMockProvider_ConfiguredError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})
	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	assert.ErrorAs(t, err, &rl)
}

func TestMockProvider_ValidatesSchema(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"front":"q"}`)})
	req := UserRequest("", "card")
	req.Schema = cardSchema()

	_, err := mock.Generate(context.Background(), req)
	var invalid *ErrInvalidResponse
	assert.ErrorAs(t, err, &invalid)
}

func TestMockProviderFunc_Concurrent(t *testing.T) {
	mock := NewMockProviderFunc(func(req Request) MockResponse {
		return MockResponse{Content: json.RawMessage(`"` + req.Messages[0].Content + `"`)}
	})

	var wg sync.WaitGroup
	for _, prompt := range []string{"a", "b", "c", "d"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := mock.Generate(context.Background(), UserRequest("", prompt))
			assert.NoError(t, err)
			assert.Equal(t, `"`+prompt+`"`, resp.Text())
		}()
	}
	wg.Wait()
	assert.Equal(t, 4, mock.CallCount())
}

func TestMockProvider_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMockProvider(MockResponse{}).Generate(ctx, Request{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFinish_MaxTokensWithSchema(t *testing.T) {
	req := Request{Schema: cardSchema()}
	_, err := finish(req, json.RawMessage(`{"front":`), Usage{}, "m", StopMaxTokens)
	var maxTokens *ErrMaxTokensExceeded
	assert.ErrorAs(t, err, &maxTokens)

	resp, err := finish(Request{}, json.RawMessage("plain text"), Usage{}, "m", StopMaxTokens)
	require.NoError(t, err)
	assert.Equal(t, "plain text", resp.Text())
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "unknown", PurposeFrom(ctx))
	assert.Equal(t, "flashcards", PurposeFrom(WithPurpose(ctx, "flashcards")))
}

func TestRetryable(t *testing.T) {
	assert.False(t, Retryable(nil))
	assert.False(t, Retryable(context.Canceled))
	assert.False(t, Retryable(&ErrMaxTokensExceeded{}))
	assert.True(t, Retryable(&ErrRateLimit{}))
	assert.True(t, Retryable(&ErrProviderUnavailable{Err: errors.New("down")}))
	assert.True(t, Retryable(errors.New("connection reset")))
}

func TestErrorsUnwrap(t *testing.T) {
	cause := errors.New("cause")
	assert.ErrorIs(t, &ErrRateLimit{Err: cause}, cause)
	assert.ErrorIs(t, &ErrInvalidResponse{Err: cause}, cause)
	assert.ErrorIs(t, &ErrProviderUnavailable{Err: cause}, cause)
	assert.Equal(t, "model provider unavailable", (&ErrProviderUnavailable{}).Error())
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gpt-4o-mini")
	require.NotNil(t, c)
	assert.InDelta(t, 0.15+0.6, c.Cost(1_000_000, 1_000_000), 1e-9)
	assert.Nil(t, LookupCost("no-such-model"))
	assert.Zero(t, LookupCost("mistral").Cost(1000, 1000))
}

func TestResolveModel(t *testing.T) {
	assert.Equal(t, "claude-haiku-4-5-20251001", resolveModel("claude-haiku", anthropicModels))
	assert.Equal(t, "gemini-2.0-flash", resolveModel("gemini-flash", geminiModels))
	assert.Equal(t, "custom-model", resolveModel("custom-model", openaiModels))
}
