package settings

import (
	"net/http"
	"time"

	"github.com/huandu/go-clone"
)

type ClientSettings struct {
	// TimeoutSeconds bounds every HTTP request to the completion service.
	// nil or 0 means requests never time out.
	TimeoutSeconds *int         `yaml:"timeout,omitempty"`
	Organization   *string      `yaml:"organization,omitempty"`
	UserAgent      *string      `yaml:"user_agent,omitempty"`
	HTTPClient     *http.Client `yaml:"-" json:"-"`
}

func (cs *ClientSettings) GetTimeout() time.Duration {
	if cs.TimeoutSeconds == nil || *cs.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(*cs.TimeoutSeconds) * time.Second
}

func (cs *ClientSettings) Clone() *ClientSettings {
	if cs == nil {
		return nil
	}
	httpClient := cs.HTTPClient
	ret := clone.Clone(&ClientSettings{
		TimeoutSeconds: cs.TimeoutSeconds,
		Organization:   cs.Organization,
		UserAgent:      cs.UserAgent,
	}).(*ClientSettings)
	// the http client holds a transport and is shared, not copied
	ret.HTTPClient = httpClient
	return ret
}

func NewClientSettings() *ClientSettings {
	return &ClientSettings{}
}
