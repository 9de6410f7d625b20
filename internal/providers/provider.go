// Package providers contains the hosted-model client used by every pipeline
// stage. The model is a black box: messages in, text out. Failures surface as
// ErrExternalService; callers decide what to do (this system never retries).
package providers

import (
	"context"
	"errors"
	"time"
)

// ErrExternalService indicates a model API call failed (network, auth, quota,
// malformed response). It is never retried automatically.
var ErrExternalService = errors.New("external model service error")

// ChatClient is the interface for chat/completion requests.
type ChatClient interface {
	// Chat sends a chat completion request and returns the model's text.
	Chat(ctx context.Context, req *ChatRequest) (*ChatResult, error)

	// Name returns the client identifier (e.g., "openai").
	Name() string
}

// Message roles.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message represents a chat message.
type Message struct {
	Role    string   `json:"role"`
	Content string   `json:"content"`
	Images  [][]byte `json:"-"` // PNG bytes, base64-encoded into the request
}

// ChatRequest is a request to the model.
type ChatRequest struct {
	Messages  []Message `json:"messages"`
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens,omitempty"`
}

// ChatResult is the response from a model call.
type ChatResult struct {
	Content string `json:"content"`

	// Token counts
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`

	// Provider info
	Provider  string `json:"provider"`
	ModelUsed string `json:"model_used"`

	ExecutionTime time.Duration `json:"execution_time"`
}
