package types

type ApiType string

const (
	ApiTypeOpenAI ApiType = "openai"
	// ApiTypeEcho answers locally with the last user message, without any network call.
	ApiTypeEcho ApiType = "echo"
)
