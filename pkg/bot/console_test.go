package bot

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsolePlainOutput(t *testing.T) {
	out := &bytes.Buffer{}
	c, err := NewConsole(out)
	require.NoError(t, err)

	c.Say("Successfully loaded %s", "a.txt")
	c.Error("Error loading document: %s", "boom")
	c.Reply("Hi there")
	c.Prompt()

	assert.Equal(t,
		"GPTBot: Successfully loaded a.txt\nError loading document: boom\n\nGPTBot: Hi there\n\nYou: ",
		out.String(),
	)
}

func TestConsoleColors(t *testing.T) {
	out := &bytes.Buffer{}
	c, err := NewConsole(out, WithColors(true))
	require.NoError(t, err)

	c.Say("hello")
	assert.Contains(t, out.String(), "\x1b[")
	assert.Contains(t, out.String(), "hello")

	out.Reset()
	c, err = NewConsole(out, WithColors(false))
	require.NoError(t, err)
	c.Say("hello")
	assert.NotContains(t, out.String(), "\x1b[")
}

func TestConsoleMarkdown(t *testing.T) {
	out := &bytes.Buffer{}
	c, err := NewConsole(out, WithMarkdown("notty", 80))
	require.NoError(t, err)

	c.Reply("# Title\n\nsome plain text")
	assert.Contains(t, out.String(), "GPTBot:")
	assert.Contains(t, out.String(), "Title")
	assert.Contains(t, out.String(), "some plain text")
}

func TestConsoleWaitingWithoutSpinner(t *testing.T) {
	c, err := NewConsole(&bytes.Buffer{})
	require.NoError(t, err)
	c.StartWaiting()
	c.StopWaiting()
}
