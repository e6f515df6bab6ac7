// Package conversation keeps the state of a single chat session.
//
// A session consists of a linear transcript of role-tagged messages, whose first
// element is always the system prompt, and a table of documents that were loaded
// into the conversation. The transcript is sent verbatim as context for every
// completion request.
//
// Loading a document injects its content as a user/assistant message pair.
// Replacing the system prompt discards the transcript but keeps the document
// table.
package conversation

// Manager defines the interface for the conversation operations used by the chat loop.
type Manager interface {
	GetConversation() Conversation
	GetSystemPrompt() string
	GetDocuments() map[string]string
	AppendMessages(msgs ...*Message)
	AppendUserMessage(text string) *Message
	AppendAssistantMessage(text string) *Message
	LoadDocument(path string) (string, error)
	UpdateSystemPrompt(prompt string)
}
