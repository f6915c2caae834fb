package generation

import (
	"context"
	"sync"
)

// MockResponse is a canned reply for MockCompleter.
type MockResponse struct {
	Content string
	Err     error
}

// MockCompleter is a deterministic Completer for tests. It replays canned
// responses in FIFO order and records every request.
type MockCompleter struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []Request
}

// NewMockCompleter creates a MockCompleter with the given canned responses.
func NewMockCompleter(responses ...MockResponse) *MockCompleter {
	return &MockCompleter{responses: responses}
}

// Complete returns the next canned response, or ErrUpstream once the queue
// is empty.
func (m *MockCompleter) Complete(_ context.Context, req Request) (*Completion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.responses) == 0 {
		return nil, ErrUpstream
	}
	resp := m.responses[0]
	m.responses = m.responses[1:]

	if resp.Err != nil {
		return nil, resp.Err
	}
	return &Completion{Content: resp.Content, Model: "mock"}, nil
}

// Model returns "mock".
func (m *MockCompleter) Model() string { return "mock" }

// CallCount returns the number of Complete calls made.
func (m *MockCompleter) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// LastRequest returns the most recent request, or the zero Request.
func (m *MockCompleter) LastRequest() Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Calls) == 0 {
		return Request{}
	}
	return m.Calls[len(m.Calls)-1]
}
