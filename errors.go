package fio

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidOrder marks validation failures raised by TransactionOrder
// constructors and setters. These never reach the network layer.
var ErrInvalidOrder = errors.New("invalid transaction order")

// Kind classifies an API error so callers can pick a retry policy.
type Kind int

const (
	// Failure is a permanent or unexpected condition: malformed JSON/XML,
	// an unexpected HTTP status, or a transport-level error. Not retryable
	// without caller intervention.
	Failure Kind = iota

	// Warning means the upload was accepted but the bank flagged an issue.
	// Individual orders may still have been sent.
	Warning

	// TemporaryUnavailable is the bank's rate limit (HTTP 409). Wait
	// RetryAfter and retry the same request unchanged.
	TemporaryUnavailable
)

func (k Kind) String() string {
	switch k {
	case Warning:
		return "warning"
	case TemporaryUnavailable:
		return "temporary unavailable"
	default:
		return "failure"
	}
}

// Error is the error type returned by all Client operations.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int           // HTTP status, 0 when the exchange never completed
	RetryAfter time.Duration // backoff hint, set for TemporaryUnavailable
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fio: %s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("fio: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func failure(message string, cause error) *Error {
	return &Error{Kind: Failure, Message: message, Cause: cause}
}

// IsTemporaryUnavailable reports whether err is the bank's rate-limit
// response and the caller should back off before retrying.
func IsTemporaryUnavailable(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == TemporaryUnavailable
}

// IsWarning reports whether err is an upload warning.
func IsWarning(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == Warning
}
