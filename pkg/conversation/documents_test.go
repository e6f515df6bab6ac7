package conversation

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir string, name string, content []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, content, 0o644))
	return p
}

func TestLoadDocumentAppendsInjectionPair(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "notes.txt", []byte("line one\nline two"))

	m := NewManager("")
	filename, err := m.LoadDocument(p)
	require.NoError(t, err)
	assert.Equal(t, "notes.txt", filename)

	conv := m.GetConversation()
	require.Len(t, conv, 3)
	assert.Equal(t, RoleUser, conv[1].Role)
	assert.Equal(t, "I'm sharing a document with you. Filename: notes.txt\nContent: line one\nline two", conv[1].Text)
	assert.Equal(t, RoleAssistant, conv[2].Role)
	assert.Equal(t, "I've received the document 'notes.txt' and will consider its contents in our conversation.", conv[2].Text)

	assert.Equal(t, map[string]string{"notes.txt": "line one\nline two"}, m.GetDocuments())
}

func TestLoadDocumentMissingFile(t *testing.T) {
	m := NewManager("")
	m.AppendUserMessage("hi")
	m.AppendAssistantMessage("hello")

	filename, err := m.LoadDocument(filepath.Join(t.TempDir(), "notes.txt"))
	require.Error(t, err)
	assert.Empty(t, filename)

	var loadErr *DocumentLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	assert.Equal(t, 3, m.Len())
	assert.Empty(t, m.GetDocuments())
}

func TestLoadDocumentRejectsInvalidUTF8(t *testing.T) {
	p := writeFile(t, t.TempDir(), "blob.bin", []byte{0xff, 0xfe, 0x00, 0x80})

	m := NewManager("")
	_, err := m.LoadDocument(p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidUTF8))
	assert.Equal(t, 1, m.Len())
	assert.Empty(t, m.GetDocuments())
}

func TestLoadDocumentDirectoryFails(t *testing.T) {
	m := NewManager("")
	_, err := m.LoadDocument(t.TempDir())
	require.Error(t, err)
	assert.Equal(t, 1, m.Len())
}

func TestLoadDocumentTwiceAlwaysAppends(t *testing.T) {
	p := writeFile(t, t.TempDir(), "a.md", []byte("# Title"))

	m := NewManager("")
	_, err := m.LoadDocument(p)
	require.NoError(t, err)
	_, err = m.LoadDocument(p)
	require.NoError(t, err)

	assert.Equal(t, 5, m.Len())
	assert.Equal(t, map[string]string{"a.md": "# Title"}, m.GetDocuments())
}

func TestLoadDocumentSameNameOverwrites(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "data.txt", []byte("first"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	second := writeFile(t, filepath.Join(dir, "sub"), "data.txt", []byte("second"))

	m := NewManager("")
	_, err := m.LoadDocument(first)
	require.NoError(t, err)
	_, err = m.LoadDocument(second)
	require.NoError(t, err)

	docs := m.GetDocuments()
	require.Len(t, docs, 1)
	assert.Equal(t, "second", docs["data.txt"])
	assert.Equal(t, 5, m.Len())
}

func TestLoadDocumentEmptyFile(t *testing.T) {
	p := writeFile(t, t.TempDir(), "empty.txt", nil)

	m := NewManager("")
	filename, err := m.LoadDocument(p)
	require.NoError(t, err)
	assert.Equal(t, "empty.txt", filename)
	content, ok := m.GetDocument("empty.txt")
	assert.True(t, ok)
	assert.Equal(t, "", content)
}
