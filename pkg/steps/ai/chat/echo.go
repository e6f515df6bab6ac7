package chat

import (
	"context"

	"github.com/go-go-golems/gptbot/pkg/conversation"
	"github.com/pkg/errors"
)

// EchoStep answers with the text of the last user message. It is used to run the
// chat loop without a completion service.
type EchoStep struct{}

var _ Step = &EchoStep{}

func NewEchoStep() *EchoStep {
	return &EchoStep{}
}

func (e *EchoStep) RunInference(ctx context.Context, input conversation.Conversation) (string, error) {
	msg, ok := input.LastMessageWithRole(conversation.RoleUser)
	if !ok {
		return "", errors.New("no user message to echo")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	return msg.Text, nil
}
