package main

import (
	"os"
	"strings"

	"github.com/go-go-golems/gptbot/pkg/steps/ai/settings"
	"github.com/go-go-golems/gptbot/pkg/steps/ai/types"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const appName = "gptbot"

// initConfig wires the config file, the environment and the command line flags
// into viper. A .env file in the working directory is loaded first.
func initConfig(configPath string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Wrap(err, "could not load .env")
	}

	viper.SetEnvPrefix(appName)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	// GPTBOT_OPENAI_API_KEY takes precedence over OPENAI_API_KEY
	if err := viper.BindEnv("openai-api-key", "GPTBOT_OPENAI_API_KEY", "OPENAI_API_KEY"); err != nil {
		return err
	}
	if err := viper.BindEnv("openai-base-url", "GPTBOT_OPENAI_BASE_URL", "OPENAI_BASE_URL"); err != nil {
		return err
	}

	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/." + appName)

		xdgConfigPath, err := os.UserConfigDir()
		if err == nil {
			viper.AddConfigPath(xdgConfigPath + "/" + appName)
		}
	}

	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		// Config file not found; ignore error
	} else if err != nil {
		return errors.Wrap(err, "could not read config file")
	}

	return nil
}

// loadStepSettings builds the completion settings from the optional profile file,
// then applies every value set in the config file, the environment or on the
// command line.
func loadStepSettings() (*settings.StepSettings, error) {
	stepSettings := settings.NewStepSettings()

	if profileFile := viper.GetString("profile-file"); profileFile != "" {
		f, err := os.Open(profileFile)
		if err != nil {
			return nil, errors.Wrap(err, "could not open profile file")
		}
		defer func() {
			_ = f.Close()
		}()

		stepSettings, err = settings.NewStepSettingsFromYAML(f)
		if err != nil {
			return nil, errors.Wrapf(err, "could not parse profile file %s", profileFile)
		}
		log.Debug().Str("profile", profileFile).Msg("loaded step settings profile")
	}

	if viper.IsSet("openai-api-key") {
		stepSettings.API.SetAPIKey(types.ApiTypeOpenAI, viper.GetString("openai-api-key"))
	}
	if viper.IsSet("openai-base-url") {
		stepSettings.API.SetBaseURL(types.ApiTypeOpenAI, viper.GetString("openai-base-url"))
	}
	if viper.IsSet("ai-engine") {
		engine := viper.GetString("ai-engine")
		stepSettings.Chat.Engine = &engine
	}
	if viper.IsSet("ai-api-type") {
		apiType := types.ApiType(viper.GetString("ai-api-type"))
		stepSettings.Chat.ApiType = &apiType
	}
	if viper.IsSet("ai-max-response-tokens") {
		maxTokens := viper.GetInt("ai-max-response-tokens")
		stepSettings.Chat.MaxResponseTokens = &maxTokens
	}
	// the completion request cannot carry a zero temperature or top-p, so 0
	// selects the service default
	if temperature := viper.GetFloat64("ai-temperature"); viper.IsSet("ai-temperature") && temperature != 0 {
		stepSettings.Chat.Temperature = &temperature
	}
	if topP := viper.GetFloat64("ai-top-p"); viper.IsSet("ai-top-p") && topP != 0 {
		stepSettings.Chat.TopP = &topP
	}
	if viper.IsSet("max-context-tokens") {
		stepSettings.Chat.MaxContextTokens = viper.GetInt("max-context-tokens")
	}
	if viper.IsSet("timeout") {
		timeout := viper.GetInt("timeout")
		stepSettings.Client.TimeoutSeconds = &timeout
	}
	if viper.IsSet("user-agent") {
		userAgent := viper.GetString("user-agent")
		stepSettings.Client.UserAgent = &userAgent
	}

	log.Debug().Fields(stepSettings.GetMetadata()).Msg("step settings")

	return stepSettings, nil
}

// loadSystemPrompt returns the prompt given on the command line or in a file.
// An empty result selects the default prompt.
func loadSystemPrompt() (string, error) {
	prompt := viper.GetString("system-prompt")
	promptFile := viper.GetString("system-prompt-file")
	if prompt != "" && promptFile != "" {
		return "", errors.New("--system-prompt and --system-prompt-file are mutually exclusive")
	}
	if promptFile != "" {
		b, err := os.ReadFile(promptFile)
		if err != nil {
			return "", errors.Wrap(err, "could not read system prompt file")
		}
		prompt = strings.TrimSpace(string(b))
	}
	return prompt, nil
}
