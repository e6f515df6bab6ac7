package settings

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type StepSettings struct {
	API    *APISettings    `yaml:"api,omitempty"`
	Chat   *ChatSettings   `yaml:"chat,omitempty"`
	Client *ClientSettings `yaml:"client,omitempty"`
}

func NewStepSettings() *StepSettings {
	return &StepSettings{
		API:    NewAPISettings(),
		Chat:   NewChatSettings(),
		Client: NewClientSettings(),
	}
}

// NewStepSettingsFromYAML decodes a settings profile on top of the defaults.
// Keys missing from the document keep their default value.
func NewStepSettingsFromYAML(s io.Reader) (*StepSettings, error) {
	settings_ := NewStepSettings()
	if err := yaml.NewDecoder(s).Decode(settings_); err != nil {
		if errors.Is(err, io.EOF) {
			return settings_, nil
		}
		return nil, errors.Wrap(err, "could not decode step settings")
	}

	// a document like "chat:" with no body decodes to nil
	if settings_.API == nil {
		settings_.API = NewAPISettings()
	}
	if settings_.Chat == nil {
		settings_.Chat = NewChatSettings()
	}
	if settings_.Client == nil {
		settings_.Client = NewClientSettings()
	}

	return settings_, nil
}

// GetMetadata returns the settings that influence a completion, without credentials.
func (ss *StepSettings) GetMetadata() map[string]interface{} {
	metadata := make(map[string]interface{})

	if ss.Chat != nil {
		if ss.Chat.Engine != nil {
			metadata["ai-engine"] = *ss.Chat.Engine
		}
		if ss.Chat.ApiType != nil {
			metadata["ai-api-type"] = string(*ss.Chat.ApiType)
		}
		if ss.Chat.MaxResponseTokens != nil {
			metadata["ai-max-response-tokens"] = *ss.Chat.MaxResponseTokens
		}
		if ss.Chat.TopP != nil && *ss.Chat.TopP != 1 {
			metadata["ai-top-p"] = *ss.Chat.TopP
		}
		if ss.Chat.Temperature != nil {
			metadata["ai-temperature"] = *ss.Chat.Temperature
		}
		if len(ss.Chat.Stop) > 0 {
			metadata["ai-stop"] = ss.Chat.Stop
		}
		if ss.Chat.MaxContextTokens > 0 {
			metadata["ai-max-context-tokens"] = ss.Chat.MaxContextTokens
		}
	}

	if ss.API != nil {
		for k, v := range ss.API.BaseUrls {
			metadata[k] = v
		}
	}

	if ss.Client != nil {
		if ss.Client.TimeoutSeconds != nil {
			metadata["timeout"] = *ss.Client.TimeoutSeconds
		}
		if ss.Client.Organization != nil && *ss.Client.Organization != "" {
			metadata["organization"] = *ss.Client.Organization
		}
		if ss.Client.UserAgent != nil {
			metadata["user-agent"] = *ss.Client.UserAgent
		}
	}

	return metadata
}

func (ss *StepSettings) Clone() *StepSettings {
	return &StepSettings{
		API:    ss.API.Clone(),
		Chat:   ss.Chat.Clone(),
		Client: ss.Client.Clone(),
	}
}
