package schema

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedVersion means the configured API version is outside the supported set.
	ErrUnsupportedVersion = errors.New("unsupported api version")
	// ErrUnknownOperation means the operation is not in the endpoint table for the version.
	ErrUnknownOperation = errors.New("unknown operation")
	// ErrMalformedResponse means the body was not a valid {success, message, result} envelope.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrCredentialsRequired means a private operation was called on a public-only client.
	ErrCredentialsRequired = errors.New("api key and secret required")
	// ErrInvalidArgument means an operation argument failed local validation.
	ErrInvalidArgument = errors.New("invalid argument")
)

// RemoteAPIError is a failure reported by the exchange itself (success=false).
// Message is passed through verbatim.
type RemoteAPIError struct {
	Message string
}

func (e *RemoteAPIError) Error() string {
	return e.Message
}

// TransportError wraps failures of the HTTP layer, including non-2xx statuses.
// StatusCode is zero when no response was received.
type TransportError struct {
	StatusCode int
	Err        error
}

func NewHTTPStatusError(statusCode int, status string) *TransportError {
	return &TransportError{
		StatusCode: statusCode,
		Err:        fmt.Errorf("server responded with %s", status),
	}
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("transport error (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
