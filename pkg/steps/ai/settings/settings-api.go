package settings

import (
	"github.com/go-go-golems/gptbot/pkg/steps/ai/types"
	"github.com/huandu/go-clone"
)

const DefaultOpenAIBaseURL = "https://api.openai.com/v1"

// APISettings holds the credentials and endpoints per api type. Keys are
// "<api-type>-api-key" and "<api-type>-base-url".
type APISettings struct {
	APIKeys  map[string]string `yaml:"api_keys,omitempty"`
	BaseUrls map[string]string `yaml:"base_urls,omitempty"`
}

func NewAPISettings() *APISettings {
	return &APISettings{
		APIKeys: map[string]string{},
		BaseUrls: map[string]string{
			string(types.ApiTypeOpenAI) + "-base-url": DefaultOpenAIBaseURL,
		},
	}
}

func (a *APISettings) GetAPIKey(apiType types.ApiType) string {
	return a.APIKeys[string(apiType)+"-api-key"]
}

func (a *APISettings) SetAPIKey(apiType types.ApiType, key string) {
	if a.APIKeys == nil {
		a.APIKeys = map[string]string{}
	}
	a.APIKeys[string(apiType)+"-api-key"] = key
}

func (a *APISettings) GetBaseURL(apiType types.ApiType) string {
	return a.BaseUrls[string(apiType)+"-base-url"]
}

func (a *APISettings) SetBaseURL(apiType types.ApiType, url string) {
	if a.BaseUrls == nil {
		a.BaseUrls = map[string]string{}
	}
	a.BaseUrls[string(apiType)+"-base-url"] = url
}

func (a *APISettings) Clone() *APISettings {
	if a == nil {
		return nil
	}
	return clone.Clone(a).(*APISettings)
}
