package ai

import (
	"testing"

	"github.com/go-go-golems/gptbot/pkg/steps/ai/chat"
	"github.com/go-go-golems/gptbot/pkg/steps/ai/openai"
	"github.com/go-go-golems/gptbot/pkg/steps/ai/settings"
	"github.com/go-go-golems/gptbot/pkg/steps/ai/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardStepFactory(t *testing.T) {
	tests := []struct {
		name    string
		apiType *types.ApiType
		check   func(t *testing.T, step chat.Step)
	}{
		{
			name:    "default is openai",
			apiType: nil,
			check: func(t *testing.T, step chat.Step) {
				assert.IsType(t, &openai.ChatStep{}, step)
			},
		},
		{
			name:    "echo",
			apiType: apiTypePtr(types.ApiTypeEcho),
			check: func(t *testing.T, step chat.Step) {
				assert.IsType(t, &chat.EchoStep{}, step)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := settings.NewStepSettings()
			s.Chat.ApiType = tt.apiType

			step, err := (&StandardStepFactory{Settings: s}).NewStep()
			require.NoError(t, err)
			tt.check(t, step)
		})
	}
}

func TestStandardStepFactoryUnsupportedApiType(t *testing.T) {
	s := settings.NewStepSettings()
	s.Chat.ApiType = apiTypePtr("claude")

	_, err := (&StandardStepFactory{Settings: s}).NewStep()
	require.Error(t, err)
}

func TestStandardStepFactoryMissingEngine(t *testing.T) {
	s := settings.NewStepSettings()
	s.Chat.Engine = nil

	_, err := (&StandardStepFactory{Settings: s}).NewStep()
	require.Error(t, err)
}

func apiTypePtr(t types.ApiType) *types.ApiType {
	return &t
}

func TestStandardStepFactoryNilSections(t *testing.T) {
	s := &settings.StepSettings{
		API:  settings.NewAPISettings(),
		Chat: settings.NewChatSettings(),
	}
	step, err := (&StandardStepFactory{Settings: s}).NewStep()
	require.NoError(t, err)
	assert.IsType(t, &openai.ChatStep{}, step)

	s = &settings.StepSettings{Chat: settings.NewChatSettings()}
	_, err = (&StandardStepFactory{Settings: s}).NewStep()
	require.Error(t, err)

	s = &settings.StepSettings{API: settings.NewAPISettings(), Client: settings.NewClientSettings()}
	_, err = (&StandardStepFactory{Settings: s}).NewStep()
	require.Error(t, err)
}
