package llm

import "errors"

var (
	// ErrMissingAPIKey indicates no Gemini API key is configured. Its
	// message is shown to the user verbatim.
	ErrMissingAPIKey = errors.New("GEMINI_API_KEY environment variable not set. Please refer to the project README for setup instructions.")

	// ErrUnavailable indicates the generation endpoint is unreachable.
	ErrUnavailable = errors.New("generation service unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)
