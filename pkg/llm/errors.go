package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrorKind classifies a generation failure so callers can distinguish
// a config problem (auth) from a transient one (rate limit, timeout).
type ErrorKind string

const (
	KindAuth        ErrorKind = "auth"
	KindRateLimit   ErrorKind = "rate_limit"
	KindTimeout     ErrorKind = "timeout"
	KindBadResponse ErrorKind = "bad_response"
)

// GenerationError is the single error type that crosses the pipeline boundary.
// The upstream cause is always attached.
type GenerationError struct {
	Kind ErrorKind
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed (%s): %v", e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// NewGenerationError wraps an upstream cause with a classification.
func NewGenerationError(kind ErrorKind, err error) *GenerationError {
	return &GenerationError{Kind: kind, Err: err}
}

// ClassifyHTTPStatus maps a provider HTTP status code to an error kind.
func ClassifyHTTPStatus(status int) ErrorKind {
	switch {
	case status == 401 || status == 403:
		return KindAuth
	case status == 429:
		return KindRateLimit
	case status == 408 || status == 504:
		return KindTimeout
	default:
		return KindBadResponse
	}
}

// ClassifyTransportError maps a transport-level failure to an error kind.
func ClassifyTransportError(err error) ErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}
	return KindBadResponse
}

// IsRetryable reports whether a failure is transient enough to retry.
// Auth and malformed-response failures will not improve on retry.
func IsRetryable(err error) bool {
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		return false
	}
	return genErr.Kind == KindRateLimit || genErr.Kind == KindTimeout
}
