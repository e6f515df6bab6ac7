package bot

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-go-golems/gptbot/pkg/conversation"
	"github.com/go-go-golems/gptbot/pkg/steps/ai/chat"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// maxLineSize bounds a single line of input. Pasted prompts can be long.
const maxLineSize = 16 * 1024 * 1024

// Bot drives one interactive chat session: it reads a line at a time, dispatches
// commands to the conversation manager and sends plain messages to the
// completion step.
type Bot struct {
	manager conversation.Manager
	step    chat.Step
	console *Console
	input   io.Reader

	maxContextTokens int
	counter          conversation.TokenCounter
}

type Option func(*Bot)

func WithInput(r io.Reader) Option {
	return func(b *Bot) {
		b.input = r
	}
}

func WithConsole(c *Console) Option {
	return func(b *Bot) {
		b.console = c
	}
}

// WithTokenBudget limits the conversation sent with each request to budget
// tokens, dropping the oldest turns first. The stored transcript is not changed.
// A budget of 0 sends the whole transcript.
func WithTokenBudget(budget int, counter conversation.TokenCounter) Option {
	return func(b *Bot) {
		b.maxContextTokens = budget
		b.counter = counter
	}
}

func NewBot(manager conversation.Manager, step chat.Step, options ...Option) (*Bot, error) {
	ret := &Bot{
		manager: manager,
		step:    step,
		input:   os.Stdin,
	}
	for _, option := range options {
		option(ret)
	}

	if ret.console == nil {
		c, err := NewConsole(os.Stdout)
		if err != nil {
			return nil, err
		}
		ret.console = c
	}
	if ret.maxContextTokens > 0 && ret.counter == nil {
		return nil, errors.New("a token budget requires a token counter")
	}

	return ret, nil
}

// Run prints the banner and processes input lines until the exit command or the
// end of the input. Completion and document errors are reported on the console
// and never end the loop.
func (b *Bot) Run(ctx context.Context) error {
	b.console.Banner()

	scanner := bufio.NewScanner(b.input)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for {
		b.console.Prompt()
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return errors.Wrap(err, "could not read input")
			}
			log.Debug().Msg("end of input, leaving chat")
			b.console.printf("\n")
			return nil
		}

		if !b.HandleLine(ctx, scanner.Text()) {
			log.Debug().Msg("exit command, leaving chat")
			return nil
		}
	}
}

// HandleLine processes one line of input and reports whether the loop should
// keep running.
func (b *Bot) HandleLine(ctx context.Context, line string) bool {
	cmd := ParseCommand(line)
	log.Trace().Str("command", cmd.Kind.String()).Int("argument_len", len(cmd.Argument)).Msg("dispatching input")

	switch cmd.Kind {
	case CommandExit:
		return false

	case CommandLoadFile:
		filename, err := b.manager.LoadDocument(cmd.Argument)
		if err != nil {
			log.Debug().Err(err).Str("path", cmd.Argument).Msg("could not load document")
			var loadErr *conversation.DocumentLoadError
			if errors.As(err, &loadErr) {
				err = loadErr.Cause
			}
			b.console.Error("Error loading document: %v", err)
			return true
		}
		b.console.Say("Successfully loaded %s", filename)

	case CommandSystemPrompt:
		b.manager.UpdateSystemPrompt(cmd.Argument)
		b.console.Say("System prompt updated. Conversation history cleared.")

	case CommandMessage:
		reply := b.Reply(ctx, cmd.Argument)
		b.console.Reply(reply)
	}

	return true
}

// Reply runs one conversation turn. The user message is appended first and stays
// in the transcript even if the completion fails. On failure the error text is
// returned and stored as the assistant's turn.
func (b *Bot) Reply(ctx context.Context, text string) string {
	b.manager.AppendUserMessage(text)

	reply, err := b.complete(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("completion failed")
		reply = fmt.Sprintf("Error generating response: %v", err)
	}

	b.manager.AppendAssistantMessage(reply)
	return reply
}

func (b *Bot) complete(ctx context.Context) (string, error) {
	messages := b.requestConversation()

	b.console.StartWaiting()
	defer b.console.StopWaiting()

	return b.step.RunInference(ctx, messages)
}

func (b *Bot) requestConversation() conversation.Conversation {
	messages := b.manager.GetConversation()
	if b.maxContextTokens <= 0 {
		return messages
	}

	trimmed, err := conversation.TrimToTokenBudget(messages, b.maxContextTokens, b.counter)
	if err != nil {
		log.Warn().Err(err).Msg("could not count tokens, sending the whole conversation")
		return messages
	}

	if tokens, err := conversation.CountConversationTokens(trimmed, b.counter); err == nil {
		log.Debug().
			Int("messages", len(trimmed)).
			Int("transcript_messages", len(messages)).
			Int("tokens", tokens).
			Int("budget", b.maxContextTokens).
			Msg("prepared request conversation")
	}
	return trimmed
}
