package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is one canned reply of a MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider replies from a FIFO queue of canned responses, or from a
// handler when one is set, and records every request. It is safe for
// concurrent use.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	handler   func(Request) MockResponse
	calls     []Request
}

// NewMockProvider queues responses in order.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// NewMockProviderFunc answers every request with fn. Use it when requests
// arrive concurrently and replies must depend on the request.
func NewMockProviderFunc(fn func(Request) MockResponse) *MockProvider {
	return &MockProvider{handler: fn}
}

// Generate returns the next reply. An empty queue yields
// ErrProviderUnavailable.
func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.calls = append(m.calls, req)
	var reply MockResponse
	switch {
	case m.handler != nil:
		handler := m.handler
		m.mu.Unlock()
		reply = handler(req)
	case len(m.responses) == 0:
		m.mu.Unlock()
		return nil, &ErrProviderUnavailable{}
	default:
		reply = m.responses[0]
		m.responses = m.responses[1:]
		m.mu.Unlock()
	}

	if reply.Err != nil {
		return nil, reply.Err
	}
	return finish(req, reply.Content, reply.Usage, "mock", StopEnd)
}

func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse queues another reply.
func (m *MockProvider) AddResponse(r MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, r)
}

// Calls returns a copy of the recorded requests.
func (m *MockProvider) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Request(nil), m.calls...)
}

// CallCount is the number of Generate calls so far.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}
