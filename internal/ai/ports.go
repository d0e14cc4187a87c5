package ai

import "context"

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of the conversation passed to the model.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completer is the external completion capability. Given a message
// list it returns assistant text or fails; an empty string with a nil
// error means the model produced no usable content.
type Completer interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}
