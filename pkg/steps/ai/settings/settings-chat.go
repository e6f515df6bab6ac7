package settings

import (
	"github.com/go-go-golems/gptbot/pkg/steps/ai/types"
	"github.com/huandu/go-clone"
)

const (
	DefaultEngine            = "gpt-4o"
	DefaultMaxResponseTokens = 4024
)

type ChatSettings struct {
	Engine            *string        `yaml:"engine,omitempty"`
	ApiType           *types.ApiType `yaml:"api_type,omitempty"`
	MaxResponseTokens *int           `yaml:"max_response_tokens,omitempty"`
	TopP              *float64       `yaml:"top_p,omitempty"`
	Temperature       *float64       `yaml:"temperature,omitempty"`
	Stop              []string       `yaml:"stop,omitempty"`
	// MaxContextTokens bounds the part of the transcript sent with each request.
	// 0 sends the whole transcript.
	MaxContextTokens int `yaml:"max_context_tokens,omitempty"`
}

func NewChatSettings() *ChatSettings {
	engine := DefaultEngine
	apiType := types.ApiTypeOpenAI
	maxResponseTokens := DefaultMaxResponseTokens

	return &ChatSettings{
		Engine:            &engine,
		ApiType:           &apiType,
		MaxResponseTokens: &maxResponseTokens,
		TopP:              nil,
		Temperature:       nil,
		Stop:              []string{},
	}
}

func (s *ChatSettings) Clone() *ChatSettings {
	if s == nil {
		return nil
	}
	return clone.Clone(s).(*ChatSettings)
}
