package conversation

import (
	"os"

	"github.com/google/uuid"
	"github.com/huandu/go-clone"
	"github.com/rs/zerolog/log"
)

// DefaultSystemPrompt is used when a session is created without an explicit system prompt.
const DefaultSystemPrompt = `You are a helpful AI assistant. You provide clear, accurate, and helpful responses.
When working with documents, you analyze them carefully and provide insights based on their content.
If you're unsure about something, you acknowledge the uncertainty.`

// FileReader reads a whole file. It matches the signature of os.ReadFile.
type FileReader func(path string) ([]byte, error)

type ManagerImpl struct {
	ConversationID uuid.UUID

	systemPrompt string
	messages     Conversation
	documents    map[string]string
	readFile     FileReader
}

var _ Manager = (*ManagerImpl)(nil)

type ManagerOption func(*ManagerImpl)

func WithManagerConversationID(conversationID uuid.UUID) ManagerOption {
	return func(m *ManagerImpl) {
		m.ConversationID = conversationID
	}
}

// WithFileReader replaces the function used by LoadDocument to read files.
func WithFileReader(readFile FileReader) ManagerOption {
	return func(m *ManagerImpl) {
		if readFile != nil {
			m.readFile = readFile
		}
	}
}

// NewManager creates a session whose transcript is seeded with a single system message.
// An empty systemPrompt selects DefaultSystemPrompt.
func NewManager(systemPrompt string, options ...ManagerOption) *ManagerImpl {
	if systemPrompt == "" {
		systemPrompt = DefaultSystemPrompt
	}

	ret := &ManagerImpl{
		ConversationID: uuid.Nil,
		systemPrompt:   systemPrompt,
		messages:       Conversation{NewChatMessage(RoleSystem, systemPrompt)},
		documents:      map[string]string{},
		readFile:       os.ReadFile,
	}
	for _, option := range options {
		option(ret)
	}

	if ret.ConversationID == uuid.Nil {
		ret.ConversationID = uuid.New()
	}

	log.Debug().
		Str("conversation_id", ret.ConversationID.String()).
		Int("system_prompt_len", len(systemPrompt)).
		Msg("created conversation")

	return ret
}

// GetConversation returns a copy of the transcript. Mutating the result does not
// affect the manager.
func (c *ManagerImpl) GetConversation() Conversation {
	return clone.Clone(c.messages).(Conversation)
}

func (c *ManagerImpl) GetSystemPrompt() string {
	return c.systemPrompt
}

// GetDocuments returns a copy of the loaded documents, keyed by filename.
func (c *ManagerImpl) GetDocuments() map[string]string {
	return clone.Clone(c.documents).(map[string]string)
}

func (c *ManagerImpl) GetDocument(filename string) (string, bool) {
	content, ok := c.documents[filename]
	return content, ok
}

func (c *ManagerImpl) Len() int {
	return len(c.messages)
}

func (c *ManagerImpl) AppendMessages(messages ...*Message) {
	for _, msg := range messages {
		log.Trace().
			Str("conversation_id", c.ConversationID.String()).
			Str("message_id", msg.ID.String()).
			Str("role", string(msg.Role)).
			Int("text_len", len(msg.Text)).
			Msg("appending message")
	}
	c.messages = append(c.messages, messages...)
}

func (c *ManagerImpl) AppendUserMessage(text string) *Message {
	msg := NewChatMessage(RoleUser, text)
	c.AppendMessages(msg)
	return msg
}

func (c *ManagerImpl) AppendAssistantMessage(text string) *Message {
	msg := NewChatMessage(RoleAssistant, text)
	c.AppendMessages(msg)
	return msg
}

// UpdateSystemPrompt replaces the system prompt and discards the whole transcript.
// Loaded documents are kept in the document table, but their injection messages
// are gone from the transcript.
func (c *ManagerImpl) UpdateSystemPrompt(prompt string) {
	log.Debug().
		Str("conversation_id", c.ConversationID.String()).
		Int("dropped_messages", len(c.messages)).
		Int("documents", len(c.documents)).
		Msg("resetting conversation with new system prompt")

	c.systemPrompt = prompt
	c.messages = Conversation{NewChatMessage(RoleSystem, prompt)}
}
