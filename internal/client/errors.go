// ABOUTME: Error taxonomy for API exchanges
// ABOUTME: Classifies failures so callers can route auth errors to the login flow

package client

import "errors"

// Kind classifies an exchange failure.
type Kind int

const (
	// KindConfiguration: the API base URL is missing; no call was attempted.
	KindConfiguration Kind = iota
	// KindValidation: a required input was empty after trimming.
	KindValidation
	// KindTransport: network failure, timeout, or a non-JSON response.
	KindTransport
	// KindAuthentication: HTTP 401 outside the auth endpoints; the session
	// has already been cleared when this is returned.
	KindAuthentication
	// KindRateLimit: HTTP 429 from recipe generation.
	KindRateLimit
	// KindLogical: an HTTP-successful response carrying an application-level
	// failure, or a server-reported error status.
	KindLogical
)

// String returns the kind's name for logs and JSON output.
func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindValidation:
		return "validation"
	case KindTransport:
		return "transport"
	case KindAuthentication:
		return "authentication"
	case KindRateLimit:
		return "rate_limit"
	case KindLogical:
		return "logical"
	default:
		return "unknown"
	}
}

// Error is an exchange failure with a user-displayable message.
type Error struct {
	Kind    Kind
	Message string
	Status  int // HTTP status when one was received, else 0
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a client Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var ce *Error
	if !errors.As(err, &ce) {
		return false
	}
	return ce.Kind == kind
}

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func wrapError(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

func httpError(kind Kind, msg string, status int) *Error {
	return &Error{Kind: kind, Message: msg, Status: status}
}
