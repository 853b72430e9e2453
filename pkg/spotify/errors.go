package spotify

import (
	"errors"
	"fmt"
)

// Predefined errors for common cases.
var (
	// ErrNoToken is returned when a catalog request is made before a
	// bearer token has been acquired.
	ErrNoToken = errors.New("spotify: bearer token required")

	// ErrInvalidConfig is returned when client configuration is invalid.
	ErrInvalidConfig = errors.New("spotify: invalid configuration")
)

// AuthenticationError is returned when the client-credentials exchange
// fails: the token endpoint could not be reached, answered with a non-200
// status, or returned no access token.
//
// It is fatal for a run; the client never retries it.
type AuthenticationError struct {
	StatusCode int   // HTTP status from the token endpoint, 0 if none was received
	Err        error // Underlying cause
}

// Error returns the error message.
func (e *AuthenticationError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("spotify: authentication failed (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("spotify: authentication failed: %v", e.Err)
}

// Unwrap returns the underlying cause.
func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// RequestError is returned when a catalog request fails at the transport
// or HTTP level.
//
// StatusCode is 0 for transport failures (DNS, connection refused,
// cancelled context). Message holds the service's error message when the
// response body carried one.
type RequestError struct {
	Path       string // Request path relative to the base URL
	StatusCode int    // HTTP status, 0 for transport failures
	Message    string // Error message reported by the service, if any
	Err        error  // Underlying transport error, if any
}

// Error returns the error message.
func (e *RequestError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("spotify: request %s failed: %v", e.Path, e.Err)
	case e.Message != "":
		return fmt.Sprintf("spotify: request %s failed with status %d: %s", e.Path, e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("spotify: request %s failed with status %d", e.Path, e.StatusCode)
	}
}

// Unwrap returns the underlying transport error.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a *RequestError with the same status code.
//
// This allows errors.Is() to match on status, e.g.
// errors.Is(err, &RequestError{StatusCode: 404}).
func (e *RequestError) Is(target error) bool {
	t, ok := target.(*RequestError)
	if !ok {
		return false
	}
	return e.StatusCode == t.StatusCode
}

// ResponseError is returned when a catalog response body is not valid
// JSON or lacks fields the client depends on.
type ResponseError struct {
	Path string // Request path relative to the base URL
	Err  error  // Decode or validation failure
}

// Error returns the error message.
func (e *ResponseError) Error() string {
	return fmt.Sprintf("spotify: invalid response from %s: %v", e.Path, e.Err)
}

// Unwrap returns the decode or validation failure.
func (e *ResponseError) Unwrap() error {
	return e.Err
}

// errMissingField builds a validation failure for a required field.
func errMissingField(field string) error {
	return fmt.Errorf("missing required field %q", field)
}
