package conversation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wordCounter counts whitespace separated words as tokens.
type wordCounter struct{}

func (wordCounter) CountTokens(text string) (int, error) {
	return len(strings.Fields(text)), nil
}

// sampleConversation costs 6, 7, 8, 5 and 12 tokens per message with wordCounter.
func sampleConversation() Conversation {
	return Conversation{
		NewChatMessage(RoleSystem, "one two"),
		NewChatMessage(RoleUser, "a b c"),
		NewChatMessage(RoleAssistant, "d e f g"),
		NewChatMessage(RoleUser, "h"),
		NewChatMessage(RoleAssistant, "i j k l m n o p"),
	}
}

func TestCountConversationTokens(t *testing.T) {
	n, err := CountConversationTokens(sampleConversation(), wordCounter{})
	require.NoError(t, err)
	assert.Equal(t, 18+20, n)
}

func TestTrimToTokenBudgetDisabled(t *testing.T) {
	conv := sampleConversation()
	ret, err := TrimToTokenBudget(conv, 0, wordCounter{})
	require.NoError(t, err)
	assert.Equal(t, conv, ret)
}

func TestTrimToTokenBudgetEverythingFits(t *testing.T) {
	conv := sampleConversation()
	ret, err := TrimToTokenBudget(conv, 1000, wordCounter{})
	require.NoError(t, err)
	assert.Equal(t, conv, ret)
}

func TestTrimToTokenBudgetKeepsSystemAndSuffix(t *testing.T) {
	conv := sampleConversation()

	// system (6) + last (12) + "h" (5) = 23, adding "d e f g" (8) would be 31
	ret, err := TrimToTokenBudget(conv, 30, wordCounter{})
	require.NoError(t, err)
	require.Len(t, ret, 3)
	assert.Equal(t, conv[0], ret[0])
	assert.Equal(t, conv[3], ret[1])
	assert.Equal(t, conv[4], ret[2])
}

func TestTrimToTokenBudgetAlwaysKeepsNewestMessage(t *testing.T) {
	conv := sampleConversation()

	// the last message (12) does not fit next to the system prompt (6) but is kept
	ret, err := TrimToTokenBudget(conv, 10, wordCounter{})
	require.NoError(t, err)
	require.Len(t, ret, 2)
	assert.Equal(t, RoleSystem, ret[0].Role)
	assert.Equal(t, conv[4], ret[1])
}

func TestTrimToTokenBudgetStopsAfterNewestMessage(t *testing.T) {
	conv := sampleConversation()

	// system (6) + last (12) = 18, adding "h" (5) would be 23
	ret, err := TrimToTokenBudget(conv, 20, wordCounter{})
	require.NoError(t, err)
	require.Len(t, ret, 2)
	assert.Equal(t, conv[0], ret[0])
	assert.Equal(t, conv[4], ret[1])
}

func TestTrimToTokenBudgetWithoutSystemMessage(t *testing.T) {
	conv := sampleConversation()[1:]
	ret, err := TrimToTokenBudget(conv, 16, wordCounter{})
	require.NoError(t, err)
	require.Len(t, ret, 1)
	assert.Equal(t, conv[3], ret[0])
}

func TestTiktokenCounter(t *testing.T) {
	counter, err := NewTiktokenCounter("gpt-4")
	require.NoError(t, err)

	n, err := counter.CountTokens("hello world")
	require.NoError(t, err)
	assert.Greater(t, n, 0)

	fallback, err := NewTiktokenCounter("some-unknown-model")
	require.NoError(t, err)
	m, err := fallback.CountTokens("hello world")
	require.NoError(t, err)
	assert.Equal(t, n, m)
}
