package llm

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/liushuangls/go-anthropic/v2"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/googleapi"
)

// Kind classifies a remote model failure. Extraction failures are scoped to
// the record being processed; the kind is for logs and callers that want to
// layer policy (retries, backoff) on top without parsing provider messages.
type Kind string

const (
	KindInvalidRequest   Kind = "invalid_request"
	KindRateLimited      Kind = "rate_limited"
	KindAccessDenied     Kind = "access_denied"
	KindModelNotFound    Kind = "model_not_found"
	KindUpstreamInternal Kind = "upstream_internal_error"
	KindUnknown          Kind = "unknown"
)

// Error wraps a provider error with its classified kind.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("llm %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, err error) *Error {
	return &Error{Kind: kind, Message: err.Error(), Err: err}
}

// KindOf extracts the classified kind from an error chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func kindFromStatus(code int) Kind {
	switch {
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		return KindInvalidRequest
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return KindAccessDenied
	case code == http.StatusNotFound:
		return KindModelNotFound
	case code == http.StatusTooManyRequests:
		return KindRateLimited
	case code >= 500:
		return KindUpstreamInternal
	default:
		return KindUnknown
	}
}

func classifyAnthropic(err error) *Error {
	var apiErr *anthropic.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.IsInvalidRequestErr():
			return newError(KindInvalidRequest, err)
		case apiErr.IsAuthenticationErr(), apiErr.IsPermissionErr():
			return newError(KindAccessDenied, err)
		case apiErr.IsNotFoundErr():
			return newError(KindModelNotFound, err)
		case apiErr.IsRateLimitErr():
			return newError(KindRateLimited, err)
		case apiErr.IsApiErr(), apiErr.IsOverloadedErr():
			return newError(KindUpstreamInternal, err)
		}
	}
	var reqErr *anthropic.RequestError
	if errors.As(err, &reqErr) {
		return newError(kindFromStatus(reqErr.StatusCode), err)
	}
	return newError(KindUnknown, err)
}

func classifyOpenAI(err error) *Error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return newError(kindFromStatus(apiErr.HTTPStatusCode), err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return newError(kindFromStatus(reqErr.HTTPStatusCode), err)
	}
	return newError(KindUnknown, err)
}

func classifyGemini(err error) *Error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return newError(kindFromStatus(apiErr.Code), err)
	}
	return newError(KindUnknown, err)
}
