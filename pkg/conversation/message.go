package conversation

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleSystem    Role = "system"
	RoleAssistant Role = "assistant"
	RoleUser      Role = "user"
)

// NodeID identifies a single message in a transcript.
type NodeID uuid.UUID

func NewNodeID() NodeID {
	return NodeID(uuid.New())
}

func (id NodeID) String() string {
	return uuid.UUID(id).String()
}

// Message represents a single turn in the conversation transcript.
type Message struct {
	ID   NodeID    `json:"id"`
	Time time.Time `json:"time"`
	Role Role      `json:"role"`
	Text string    `json:"text"`
}

func NewChatMessage(role Role, text string) *Message {
	return &Message{
		ID:   NewNodeID(),
		Time: time.Now(),
		Role: role,
		Text: text,
	}
}

func (m *Message) String() string {
	return m.Text
}

type Conversation []*Message

// LastMessageWithRole returns the most recent message with the given role.
func (messages Conversation) LastMessageWithRole(role Role) (*Message, bool) {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == role {
			return messages[i], true
		}
	}
	return nil, false
}
