package openai

import (
	"net/http"

	"github.com/go-go-golems/gptbot/pkg/conversation"
	"github.com/go-go-golems/gptbot/pkg/steps"
	"github.com/go-go-golems/gptbot/pkg/steps/ai/settings"
	ai_types "github.com/go-go-golems/gptbot/pkg/steps/ai/types"
	"github.com/pkg/errors"
	go_openai "github.com/sashabaranov/go-openai"
)

type userAgentTransport struct {
	userAgent string
	base      http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(req)
}

// MakeClient creates a go-openai client. A missing API key is not an error here:
// the service rejects the request when the first completion is attempted.
func MakeClient(
	apiSettings *settings.APISettings,
	clientSettings *settings.ClientSettings,
	apiType ai_types.ApiType,
) (*go_openai.Client, error) {
	if apiSettings == nil {
		return nil, steps.ErrMissingAPISettings
	}
	baseURL := apiSettings.GetBaseURL(apiType)
	if baseURL == "" {
		return nil, errors.Errorf("no base URL for %s", apiType)
	}

	config := go_openai.DefaultConfig(apiSettings.GetAPIKey(apiType))
	config.BaseURL = baseURL

	if clientSettings != nil {
		if clientSettings.Organization != nil {
			config.OrgID = *clientSettings.Organization
		}

		httpClient := clientSettings.HTTPClient
		if httpClient == nil {
			httpClient = &http.Client{}
		} else {
			c := *httpClient
			httpClient = &c
		}
		httpClient.Timeout = clientSettings.GetTimeout()
		if clientSettings.UserAgent != nil && *clientSettings.UserAgent != "" {
			base := httpClient.Transport
			if base == nil {
				base = http.DefaultTransport
			}
			httpClient.Transport = &userAgentTransport{userAgent: *clientSettings.UserAgent, base: base}
		}
		config.HTTPClient = httpClient
	}

	return go_openai.NewClientWithConfig(config), nil
}

func roleToOpenAI(role conversation.Role) (string, error) {
	switch role {
	case conversation.RoleSystem:
		return go_openai.ChatMessageRoleSystem, nil
	case conversation.RoleUser:
		return go_openai.ChatMessageRoleUser, nil
	case conversation.RoleAssistant:
		return go_openai.ChatMessageRoleAssistant, nil
	default:
		return "", errors.Errorf("unsupported role %q", role)
	}
}

// MakeCompletionRequest builds a chat completion request carrying every message of
// the conversation, in order.
func MakeCompletionRequest(
	settings *settings.StepSettings,
	messages conversation.Conversation,
) (*go_openai.ChatCompletionRequest, error) {
	if settings.Chat == nil {
		return nil, steps.ErrMissingChatSettings
	}
	chatSettings := settings.Chat

	engine := ""
	if chatSettings.Engine != nil {
		engine = *chatSettings.Engine
	} else {
		return nil, errors.New("no engine specified")
	}

	msgs_ := make([]go_openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		role, err := roleToOpenAI(m.Role)
		if err != nil {
			return nil, err
		}
		msgs_ = append(msgs_, go_openai.ChatCompletionMessage{
			Role:    role,
			Content: m.Text,
		})
	}

	maxTokens := 0
	if chatSettings.MaxResponseTokens != nil {
		maxTokens = *chatSettings.MaxResponseTokens
	}
	temperature := 0.0
	if chatSettings.Temperature != nil {
		temperature = *chatSettings.Temperature
	}
	topP := 0.0
	if chatSettings.TopP != nil {
		topP = *chatSettings.TopP
	}

	return &go_openai.ChatCompletionRequest{
		Model:       engine,
		Messages:    msgs_,
		MaxTokens:   maxTokens,
		Temperature: float32(temperature),
		TopP:        float32(topP),
		Stop:        chatSettings.Stop,
	}, nil
}
