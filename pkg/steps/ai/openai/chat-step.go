package openai

import (
	"context"
	"time"

	"github.com/go-go-golems/gptbot/pkg/conversation"
	"github.com/go-go-golems/gptbot/pkg/steps/ai/chat"
	"github.com/go-go-golems/gptbot/pkg/steps/ai/settings"
	ai_types "github.com/go-go-golems/gptbot/pkg/steps/ai/types"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	go_openai "github.com/sashabaranov/go-openai"
)

var _ chat.Step = &ChatStep{}

// ChatStep sends the whole conversation to the OpenAI chat completions endpoint and
// returns the text of the first choice. It does not stream and does not retry.
type ChatStep struct {
	Settings *settings.StepSettings
	client   *go_openai.Client
}

type StepOption func(*ChatStep) error

// WithClient replaces the client built from the settings.
func WithClient(client *go_openai.Client) StepOption {
	return func(step *ChatStep) error {
		step.client = client
		return nil
	}
}

func NewStep(settings *settings.StepSettings, options ...StepOption) (*ChatStep, error) {
	ret := &ChatStep{
		Settings: settings,
	}

	for _, option := range options {
		err := option(ret)
		if err != nil {
			return nil, err
		}
	}

	if ret.client == nil {
		client, err := MakeClient(settings.API, settings.Client, ai_types.ApiTypeOpenAI)
		if err != nil {
			return nil, errors.Wrap(err, "could not create openai client")
		}
		ret.client = client
	}

	return ret, nil
}

func (csf *ChatStep) RunInference(
	ctx context.Context,
	messages conversation.Conversation,
) (string, error) {
	req, err := MakeCompletionRequest(csf.Settings, messages)
	if err != nil {
		return "", newCompletionRequestError("", err)
	}

	start := time.Now()
	log.Debug().
		Str("model", req.Model).
		Int("messages", len(req.Messages)).
		Int("max_tokens", req.MaxTokens).
		Msg("sending chat completion request")

	resp, err := csf.client.CreateChatCompletion(ctx, *req)
	if err != nil {
		log.Debug().Err(err).Str("model", req.Model).Dur("duration", time.Since(start)).Msg("chat completion failed")
		return "", newCompletionRequestError(req.Model, err)
	}
	if len(resp.Choices) == 0 {
		return "", newCompletionRequestError(req.Model, ErrNoChoices)
	}

	choice := resp.Choices[0]
	log.Debug().
		Str("model", resp.Model).
		Str("finish_reason", string(choice.FinishReason)).
		Int("prompt_tokens", resp.Usage.PromptTokens).
		Int("completion_tokens", resp.Usage.CompletionTokens).
		Dur("duration", time.Since(start)).
		Msg("chat completion received")

	return choice.Message.Content, nil
}
