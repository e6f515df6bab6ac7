package bot

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const botName = "GPTBot"

// Console renders the chat loop on a line-oriented terminal.
type Console struct {
	out io.Writer

	nameColor  *color.Color
	userColor  *color.Color
	errorColor *color.Color

	renderer *glamour.TermRenderer
	spinner  *spinner.Spinner
}

type ConsoleOption func(*Console) error

// WithColors enables or disables ANSI colors, independently of whether the output
// is a terminal.
func WithColors(enabled bool) ConsoleOption {
	return func(c *Console) error {
		for _, col := range []*color.Color{c.nameColor, c.userColor, c.errorColor} {
			if enabled {
				col.EnableColor()
			} else {
				col.DisableColor()
			}
		}
		return nil
	}
}

// WithMarkdown renders assistant replies as markdown. style is a glamour standard
// style name ("dark", "light", "notty") or "auto".
func WithMarkdown(style string, wordWrap int) ConsoleOption {
	return func(c *Console) error {
		styleOption := glamour.WithStandardStyle(style)
		if style == "" || style == "auto" {
			styleOption = glamour.WithAutoStyle()
		}
		r, err := glamour.NewTermRenderer(styleOption, glamour.WithWordWrap(wordWrap))
		if err != nil {
			return errors.Wrap(err, "could not create markdown renderer")
		}
		c.renderer = r
		return nil
	}
}

// WithSpinner shows a spinner on w while waiting for a reply.
func WithSpinner(w io.Writer) ConsoleOption {
	return func(c *Console) error {
		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
		s.Suffix = " thinking..."
		c.spinner = s
		return nil
	}
}

func NewConsole(out io.Writer, options ...ConsoleOption) (*Console, error) {
	ret := &Console{
		out:        out,
		nameColor:  color.New(color.FgCyan, color.Bold),
		userColor:  color.New(color.FgGreen, color.Bold),
		errorColor: color.New(color.FgRed),
	}
	// plain text unless colors are asked for
	ret.nameColor.DisableColor()
	ret.userColor.DisableColor()
	ret.errorColor.DisableColor()

	for _, option := range options {
		if err := option(ret); err != nil {
			return nil, err
		}
	}

	return ret, nil
}

func (c *Console) printf(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(c.out, format, args...); err != nil {
		log.Debug().Err(err).Msg("could not write to console")
	}
}

func (c *Console) Banner() {
	c.printf("%s Hello! I'm ready to help. You can:\n", c.nameColor.Sprint(botName+":"))
	c.printf("- Chat normally\n")
	c.printf("- Type 'load file: <path>' to load a document\n")
	c.printf("- Type 'exit' to end the conversation\n")
	c.printf("- Type 'system prompt: <new prompt>' to update the system prompt\n")
}

func (c *Console) Prompt() {
	c.printf("\n%s ", c.userColor.Sprint("You:"))
}

// Say prints a status line from the bot.
func (c *Console) Say(format string, args ...interface{}) {
	c.printf("%s %s\n", c.nameColor.Sprint(botName+":"), fmt.Sprintf(format, args...))
}

func (c *Console) Error(format string, args ...interface{}) {
	c.printf("%s\n", c.errorColor.Sprintf(format, args...))
}

// Reply prints an assistant turn, rendered as markdown if configured.
func (c *Console) Reply(text string) {
	if c.renderer != nil {
		rendered, err := c.renderer.Render(text)
		if err == nil {
			c.printf("\n%s\n%s\n", c.nameColor.Sprint(botName+":"), strings.TrimRight(rendered, "\n"))
			return
		}
		log.Debug().Err(err).Msg("could not render markdown, printing raw reply")
	}
	c.printf("\n%s %s\n", c.nameColor.Sprint(botName+":"), text)
}

func (c *Console) StartWaiting() {
	if c.spinner != nil {
		c.spinner.Start()
	}
}

func (c *Console) StopWaiting() {
	if c.spinner != nil {
		c.spinner.Stop()
	}
}
