package conversation

import (
	"fmt"
	"path/filepath"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var ErrInvalidUTF8 = errors.New("file is not valid UTF-8 text")

func documentInjectionText(filename string, content string) string {
	return fmt.Sprintf("I'm sharing a document with you. Filename: %s\nContent: %s", filename, content)
}

func documentAcknowledgementText(filename string) string {
	return fmt.Sprintf("I've received the document '%s' and will consider its contents in our conversation.", filename)
}

// LoadDocument reads the file at path and injects its content into the transcript
// as a user message followed by an assistant acknowledgement. It returns the
// filename under which the content is stored.
//
// Loading a file with the same name again overwrites the stored content and
// appends a new pair of messages. On failure nothing is changed and a
// *DocumentLoadError is returned.
func (c *ManagerImpl) LoadDocument(path string) (string, error) {
	data, err := c.readFile(path)
	if err != nil {
		return "", &DocumentLoadError{Path: path, Cause: err}
	}
	if !utf8.Valid(data) {
		return "", &DocumentLoadError{Path: path, Cause: ErrInvalidUTF8}
	}

	filename := filepath.Base(path)
	content := string(data)

	_, replaced := c.documents[filename]
	c.documents[filename] = content

	c.AppendMessages(
		NewChatMessage(RoleUser, documentInjectionText(filename, content)),
		NewChatMessage(RoleAssistant, documentAcknowledgementText(filename)),
	)

	log.Debug().
		Str("conversation_id", c.ConversationID.String()).
		Str("path", path).
		Str("filename", filename).
		Int("bytes", len(data)).
		Bool("replaced", replaced).
		Msg("loaded document")

	return filename, nil
}
