package chat

import (
	"context"
	"sync"

	"github.com/go-go-golems/gptbot/pkg/conversation"
)

// MockStep returns canned replies in a round-robin fashion and records every
// conversation it was called with.
type MockStep struct {
	replies []string
	err     error
	mu      sync.Mutex
	index   int
	inputs  []conversation.Conversation
}

var _ Step = &MockStep{}

func NewMockStep(replies ...string) *MockStep {
	return &MockStep{
		replies: replies,
		index:   0,
	}
}

// NewFailingMockStep returns a step whose every call fails with err.
func NewFailingMockStep(err error) *MockStep {
	return &MockStep{err: err}
}

func (s *MockStep) RunInference(ctx context.Context, input conversation.Conversation) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inputs = append(s.inputs, input)

	if s.err != nil {
		return "", s.err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(s.replies) == 0 {
		return "", nil
	}

	reply := s.replies[s.index]
	s.index = (s.index + 1) % len(s.replies)

	return reply, nil
}

// Inputs returns the conversations passed to RunInference, oldest first.
func (s *MockStep) Inputs() []conversation.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	ret := make([]conversation.Conversation, len(s.inputs))
	copy(ret, s.inputs)
	return ret
}
