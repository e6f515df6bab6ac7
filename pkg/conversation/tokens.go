package conversation

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/tiktoken-go/tokenizer"
)

// Every chat message carries a few tokens of framing on top of its text.
const tokensPerMessage = 4

type TokenCounter interface {
	CountTokens(text string) (int, error)
}

type TiktokenCounter struct {
	codec tokenizer.Codec
}

var _ TokenCounter = (*TiktokenCounter)(nil)

// NewTiktokenCounter returns a counter using the encoding of the given model.
// Models unknown to the tokenizer fall back to cl100k_base.
func NewTiktokenCounter(model string) (*TiktokenCounter, error) {
	codec, err := tokenizer.ForModel(tokenizer.Model(model))
	if err != nil {
		log.Debug().Err(err).Str("model", model).Msg("unknown tokenizer model, falling back to cl100k_base")
		codec, err = tokenizer.Get(tokenizer.Cl100kBase)
		if err != nil {
			return nil, errors.Wrap(err, "could not load cl100k_base encoding")
		}
	}
	return &TiktokenCounter{codec: codec}, nil
}

func (t *TiktokenCounter) CountTokens(text string) (int, error) {
	ids, _, err := t.codec.Encode(text)
	if err != nil {
		return 0, errors.Wrap(err, "could not encode text")
	}
	return len(ids), nil
}

// CountConversationTokens estimates the prompt size of a conversation.
func CountConversationTokens(messages Conversation, counter TokenCounter) (int, error) {
	total := 0
	for _, m := range messages {
		n, err := counter.CountTokens(m.Text)
		if err != nil {
			return 0, err
		}
		total += n + tokensPerMessage
	}
	return total, nil
}

// TrimToTokenBudget returns the longest suffix of messages that fits into budget
// tokens, always keeping a leading system message and the newest message, even
// if those two alone exceed the budget. A budget <= 0 returns the messages
// unchanged.
func TrimToTokenBudget(messages Conversation, budget int, counter TokenCounter) (Conversation, error) {
	if budget <= 0 || len(messages) == 0 {
		return messages, nil
	}

	var head Conversation
	rest := messages
	used := 0
	if messages[0].Role == RoleSystem {
		n, err := counter.CountTokens(messages[0].Text)
		if err != nil {
			return nil, err
		}
		head = Conversation{messages[0]}
		rest = messages[1:]
		used = n + tokensPerMessage
	}

	start := len(rest)
	for i := len(rest) - 1; i >= 0; i-- {
		n, err := counter.CountTokens(rest[i].Text)
		if err != nil {
			return nil, err
		}
		if used+n+tokensPerMessage > budget && i < len(rest)-1 {
			break
		}
		used += n + tokensPerMessage
		start = i
	}

	if used > budget {
		log.Warn().
			Int("budget", budget).
			Int("used", used).
			Msg("newest message does not fit into the token budget, sending it anyway")
	}
	if start > 0 {
		log.Debug().
			Int("budget", budget).
			Int("used", used).
			Int("dropped_messages", start).
			Msg("trimmed conversation to token budget")
	}

	ret := make(Conversation, 0, len(head)+len(rest)-start)
	ret = append(ret, head...)
	ret = append(ret, rest[start:]...)
	return ret, nil
}
