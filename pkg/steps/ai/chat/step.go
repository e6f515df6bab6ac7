package chat

import (
	"context"

	"github.com/go-go-golems/gptbot/pkg/conversation"
)

// Step is the completion boundary: given the full conversation, it produces the
// text of the next assistant turn. Implementations block until the reply is
// available or the call failed.
type Step interface {
	RunInference(ctx context.Context, messages conversation.Conversation) (string, error)
}

// StepFunc adapts a plain function to the Step interface.
type StepFunc func(ctx context.Context, messages conversation.Conversation) (string, error)

func (f StepFunc) RunInference(ctx context.Context, messages conversation.Conversation) (string, error) {
	return f(ctx, messages)
}
