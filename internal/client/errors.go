package client

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of failure categories the backend client can
// produce. Callers branch on the kind, never on message text.
type ErrorKind string

const (
	// KindTransport: no usable response was received.
	KindTransport ErrorKind = "transport"
	// KindUnauthorized: the backend rejected the credential (401). The
	// persisted session has already been torn down by the time callers see
	// this.
	KindUnauthorized ErrorKind = "unauthorized"
	// KindValidation: a 4xx business/validation rejection with a
	// server-supplied message.
	KindValidation ErrorKind = "validation"
	// KindNotFound: the resource does not exist (404).
	KindNotFound ErrorKind = "not_found"
	// KindUnknown: anything else, including 5xx.
	KindUnknown ErrorKind = "unknown"
)

// APIError is the only error type the typed API modules return for failed
// calls.
type APIError struct {
	Kind    ErrorKind
	Status  int    // HTTP status, 0 for transport failures
	Message string // user-presentable message
	Err     error  // underlying cause, if any
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Kind classifies any error returned by this package. Non-API errors
// (e.g. response decode failures) report KindUnknown.
func Kind(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnknown
}

// IsUnauthorized reports whether err is the 401 session-teardown path.
func IsUnauthorized(err error) bool {
	return Kind(err) == KindUnauthorized
}

// Message extracts the user-presentable message from an error, falling
// back to a generic string so raw internals never reach the user.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "An error occurred"
}
