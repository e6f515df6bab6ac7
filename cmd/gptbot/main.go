package main

import (
	"context"
	"os"

	"github.com/go-go-golems/gptbot/pkg/bot"
	"github.com/go-go-golems/gptbot/pkg/conversation"
	"github.com/go-go-golems/gptbot/pkg/steps/ai"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "gptbot",
	Short: "gptbot is an interactive chat with an LLM that can read your documents",
	Long: `gptbot keeps a running conversation with an OpenAI compatible chat completion service.

While chatting, type:
  load file: <path>            to share the contents of a text file
  system prompt: <new prompt>  to replace the system prompt and clear the history
  exit                         to leave`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(viper.GetString("config")); err != nil {
			return err
		}
		// reinitialize the logger because we can now parse --log-level and co
		// from the command line flag and the config file
		return initLogger()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd.Context())
	},
}

func runChat(ctx context.Context) error {
	stepSettings, err := loadStepSettings()
	if err != nil {
		return err
	}
	systemPrompt, err := loadSystemPrompt()
	if err != nil {
		return err
	}

	step, err := (&ai.StandardStepFactory{Settings: stepSettings}).NewStep()
	if err != nil {
		return err
	}

	manager := conversation.NewManager(systemPrompt)
	log.Debug().Str("conversation_id", manager.ConversationID.String()).Msg("starting chat")

	isTerminal := isatty.IsTerminal(os.Stdout.Fd())
	consoleOptions := []bot.ConsoleOption{
		bot.WithColors(isTerminal && !viper.GetBool("no-color")),
	}
	if isTerminal && !viper.GetBool("no-markdown") {
		consoleOptions = append(consoleOptions, bot.WithMarkdown(viper.GetString("markdown-style"), 100))
	}
	if isTerminal && isatty.IsTerminal(os.Stderr.Fd()) {
		consoleOptions = append(consoleOptions, bot.WithSpinner(os.Stderr))
	}
	console, err := bot.NewConsole(os.Stdout, consoleOptions...)
	if err != nil {
		return err
	}

	botOptions := []bot.Option{
		bot.WithInput(os.Stdin),
		bot.WithConsole(console),
	}
	if budget := stepSettings.Chat.MaxContextTokens; budget > 0 {
		counter, err := conversation.NewTiktokenCounter(*stepSettings.Chat.Engine)
		if err != nil {
			return err
		}
		botOptions = append(botOptions, bot.WithTokenBudget(budget, counter))
	}

	b, err := bot.NewBot(manager, step, botOptions...)
	if err != nil {
		return err
	}

	return b.Run(ctx)
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to the config file")
	pf.String("log-level", "error", "Log level (trace, debug, info, warn, error)")
	pf.String("log-format", "text", "Log format (json, text)")
	pf.String("log-file", "", "Also write logs to this file")
	pf.Bool("with-caller", false, "Log caller")
	pf.BoolP("verbose", "v", false, "Verbose output (debug logging)")

	f := rootCmd.Flags()
	f.String("system-prompt", "", "System prompt to start the conversation with")
	f.String("system-prompt-file", "", "Read the system prompt from this file")
	f.String("profile-file", "", "YAML file with chat, client and api settings")
	f.String("openai-api-key", "", "OpenAI API key (default from OPENAI_API_KEY)")
	f.String("openai-base-url", "", "Base URL of the OpenAI compatible API")
	f.String("ai-engine", "", "Model to use (default gpt-4o)")
	f.String("ai-api-type", "", "Completion backend: openai or echo")
	f.Int("ai-max-response-tokens", 0, "Maximum number of tokens in a reply (default 4024)")
	f.Float64("ai-temperature", 0, "Sampling temperature (0 uses the service default)")
	f.Float64("ai-top-p", 0, "Nucleus sampling probability mass (0 uses the service default)")
	f.Int("max-context-tokens", 0, "Only send the most recent messages that fit into this many tokens (0 sends everything)")
	f.Int("timeout", 0, "Timeout in seconds of a completion request (0 waits forever)")
	f.String("user-agent", "", "User-Agent header sent to the API")
	f.Bool("no-markdown", false, "Print replies as raw text instead of rendered markdown")
	f.String("markdown-style", "dark", "Markdown style (dark, light, notty, auto)")
	f.Bool("no-color", false, "Disable colors")

	cobra.CheckErr(viper.BindPFlags(pf))
	cobra.CheckErr(viper.BindPFlags(f))
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
