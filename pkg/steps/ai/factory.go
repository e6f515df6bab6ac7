package ai

import (
	"github.com/go-go-golems/gptbot/pkg/steps/ai/chat"
	"github.com/go-go-golems/gptbot/pkg/steps/ai/openai"
	"github.com/go-go-golems/gptbot/pkg/steps/ai/settings"
	"github.com/go-go-golems/gptbot/pkg/steps/ai/types"
	"github.com/pkg/errors"
)

type StandardStepFactory struct {
	Settings *settings.StepSettings
}

// NewStep creates the completion step selected by the api type of the chat
// settings. The settings are cloned, later changes do not affect the step.
func (s *StandardStepFactory) NewStep() (chat.Step, error) {
	if s.Settings == nil {
		return nil, errors.New("no step settings")
	}
	settings_ := s.Settings.Clone()

	if settings_.Chat == nil || settings_.Chat.Engine == nil {
		return nil, errors.New("no chat engine specified")
	}

	apiType := types.ApiTypeOpenAI
	if settings_.Chat.ApiType != nil {
		apiType = *settings_.Chat.ApiType
	}

	switch apiType {
	case types.ApiTypeOpenAI:
		return openai.NewStep(settings_)
	case types.ApiTypeEcho:
		return chat.NewEchoStep(), nil
	default:
		return nil, errors.Errorf("api type %s is not supported", apiType)
	}
}
