package providers

import (
	"context"
	"fmt"
	"sync"
	"time"
)

const MockClientName = "mock"

// MockClient is a ChatClient for testing. Responses are either scripted in
// order via Responses, or computed per request via Respond. Every request is
// recorded for assertions.
type MockClient struct {
	// Respond, if set, computes the response for each request.
	Respond func(req *ChatRequest) (string, error)

	// Responses are returned in order when Respond is nil.
	Responses []string

	// Err, if set, is returned for every request.
	Err error

	mu       sync.Mutex
	requests []*ChatRequest
	next     int
}

// NewMockClient creates a new mock client.
func NewMockClient(responses ...string) *MockClient {
	return &MockClient{Responses: responses}
}

// Name returns the client identifier.
func (c *MockClient) Name() string {
	return MockClientName
}

// Chat returns the next scripted response.
func (c *MockClient) Chat(ctx context.Context, req *ChatRequest) (*ChatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.requests = append(c.requests, req)

	if c.Err != nil {
		return nil, c.Err
	}

	var content string
	if c.Respond != nil {
		var err error
		content, err = c.Respond(req)
		if err != nil {
			return nil, err
		}
	} else {
		if c.next >= len(c.Responses) {
			return nil, fmt.Errorf("%w: mock has no response for request %d", ErrExternalService, c.next+1)
		}
		content = c.Responses[c.next]
		c.next++
	}

	return &ChatResult{
		Content:       content,
		Provider:      MockClientName,
		ModelUsed:     req.Model,
		ExecutionTime: time.Millisecond,
	}, nil
}

// Requests returns a copy of all requests seen so far.
func (c *MockClient) Requests() []*ChatRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*ChatRequest, len(c.requests))
	copy(out, c.requests)
	return out
}

// Verify interface
var _ ChatClient = (*MockClient)(nil)
