package llm

import "context"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one prior conversation turn handed to the model as context.
type Message struct {
	Role    Role
	Content string
}

// Request is a single completion call: a system instruction, a bounded window
// of prior turns, and the prompt for the current turn.
type Request struct {
	System  string
	History []Message
	Prompt  string
}

type Provider interface {
	// Complete returns the model's full text response for one request.
	Complete(ctx context.Context, req Request) (string, error)
	Close() error
}
