package bot

import (
	"strings"
)

type CommandKind int

const (
	// CommandMessage is a plain conversational message.
	CommandMessage CommandKind = iota
	CommandExit
	CommandLoadFile
	CommandSystemPrompt
)

func (k CommandKind) String() string {
	switch k {
	case CommandMessage:
		return "message"
	case CommandExit:
		return "exit"
	case CommandLoadFile:
		return "load-file"
	case CommandSystemPrompt:
		return "system-prompt"
	default:
		return "unknown"
	}
}

const (
	exitCommand        = "exit"
	loadFilePrefix     = "load file:"
	systemPromptPrefix = "system prompt:"
)

// Command is a classified line of user input. Argument holds the path for
// CommandLoadFile, the new prompt for CommandSystemPrompt and the message text
// for CommandMessage.
type Command struct {
	Kind     CommandKind
	Argument string
}

func hasPrefixFold(s string, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// ParseCommand classifies a line of input. Commands are matched case-insensitively;
// the argument keeps its original case and is trimmed.
func ParseCommand(line string) Command {
	line = strings.TrimSpace(line)

	switch {
	case strings.EqualFold(line, exitCommand):
		return Command{Kind: CommandExit}
	case hasPrefixFold(line, loadFilePrefix):
		return Command{
			Kind:     CommandLoadFile,
			Argument: strings.TrimSpace(line[len(loadFilePrefix):]),
		}
	case hasPrefixFold(line, systemPromptPrefix):
		return Command{
			Kind:     CommandSystemPrompt,
			Argument: strings.TrimSpace(line[len(systemPromptPrefix):]),
		}
	default:
		return Command{Kind: CommandMessage, Argument: line}
	}
}
