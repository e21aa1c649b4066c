package coach

import (
	"errors"
)

// FallbackMessage is shown instead of a plan when generation fails.
const FallbackMessage = "Sorry, there was an error generating the response."

var (
	ErrTimeout           = errors.New("plan generation timed out")
	ErrUpstream          = errors.New("llm api returned an error status")
	ErrTransport         = errors.New("llm api request failed")
	ErrEmptyResponse     = errors.New("llm api returned no content")
	ErrMissingCredential = errors.New("llm api key not configured")
	ErrInvalidInput      = errors.New("goal and metrics are required")
	ErrReportNotFound    = errors.New("report not found")
)

// Outcome maps a generation error to a short label used in metrics and logs.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrUpstream):
		return "upstream"
	case errors.Is(err, ErrTransport):
		return "transport"
	case errors.Is(err, ErrEmptyResponse):
		return "empty"
	case errors.Is(err, ErrMissingCredential):
		return "missing_credential"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	default:
		return "unknown"
	}
}
