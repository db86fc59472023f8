package coach

import "context"

// CompletionRequest is a single system+user chat turn.
type CompletionRequest struct {
	System      string
	Prompt      string
	Model       string
	Temperature float64
	MaxTokens   int
}

// Completer returns the assistant text for one chat turn.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
