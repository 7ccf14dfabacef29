package providers

import (
	"context"
	"fmt"
)

// Request contains the data sent to the remote capability for one call.
type Request struct {
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
}

// Response contains the raw text response from the remote capability.
type Response struct {
	Content    string
	TokensUsed int
}

// Completer is the remote-capability abstraction: given a prompt, it
// returns raw model output. Failures are classified by the taxonomy in
// errors.go so that callers can decide retry behavior.
type Completer interface {
	Complete(ctx context.Context, req Request) (Response, error)
	Name() string
}

// New creates a completer by provider name.
func New(provider, model, apiKey string) (Completer, error) {
	switch provider {
	case "anthropic":
		return NewAnthropic(model, apiKey)
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}
