package openai

import (
	"fmt"

	"github.com/pkg/errors"
	go_openai "github.com/sashabaranov/go-openai"
)

var ErrNoChoices = errors.New("response contained no choices")

// CompletionRequestError collapses every failure of a completion call: transport,
// authentication, rate limiting, or a malformed response.
type CompletionRequestError struct {
	Model string
	// StatusCode is the HTTP status returned by the service, 0 if none was received.
	StatusCode int
	Cause      error
}

func newCompletionRequestError(model string, cause error) *CompletionRequestError {
	ret := &CompletionRequestError{Model: model, Cause: cause}

	var apiErr *go_openai.APIError
	var reqErr *go_openai.RequestError
	switch {
	case errors.As(cause, &apiErr):
		ret.StatusCode = apiErr.HTTPStatusCode
	case errors.As(cause, &reqErr):
		ret.StatusCode = reqErr.HTTPStatusCode
	}

	return ret
}

func (e *CompletionRequestError) Error() string {
	return fmt.Sprintf("completion request to %s failed: %v", e.Model, e.Cause)
}

func (e *CompletionRequestError) Unwrap() error {
	return e.Cause
}
