package llm

import "context"

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of a chat prompt.
type Message struct {
	Role    Role
	Content string
}

// Request is a single chat completion call. APIKey travels with the request
// so the provider holds no credential of its own.
type Request struct {
	APIKey      string
	Model       string
	Temperature float32
	Messages    []Message
}

// Provider is a minimal abstraction for chat-based LLMs used by the domain.
// It hides concrete SDKs to preserve dependency direction.
type Provider interface {
	Complete(ctx context.Context, req Request) (string, error)
}
