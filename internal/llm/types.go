package llm

import (
	"context"
	"errors"
	"fmt"
)

// generates a completion for a system instruction plus conversation turns
type ChatCompleter interface {
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	Model() string
}

// input for a single completion call
type CompletionRequest struct {
	SystemPrompt string
	Messages     []Message
	MaxTokens    int
}

// a single conversation turn
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// output of a completion call
type CompletionResponse struct {
	Text  string
	Usage Usage
}

// token accounting reported by the gateway
type Usage struct {
	InputTokens  int
	OutputTokens int
}

var (
	// gateway rejected the call with HTTP 429
	ErrRateLimited = errors.New("gateway rate limit exceeded")

	// gateway rejected the call with HTTP 402
	ErrPaymentRequired = errors.New("gateway payment required")

	// gateway answered 200 but the completion carried no text
	ErrNoContent = errors.New("no content in gateway response")
)

// StatusError reports a non-success gateway status outside the 429/402 taxonomy
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gateway request failed with status %d: %s", e.Code, e.Body)
}
