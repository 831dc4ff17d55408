package client

import (
	"errors"
	"net/http"
)

// FallbackMessage is used when a failed response does not say what went wrong.
const FallbackMessage = "request failed"

// RequestError is the only failure kind returned by the client.
type RequestError struct {
	// StatusCode is the HTTP status, or 0 when no response was received.
	StatusCode int
	Message    string
	Err        error
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// IsUnauthorized reports whether the server rejected the credentials.
func (e *RequestError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// AsRequestError unwraps err to a *RequestError, if it is one.
func AsRequestError(err error) (*RequestError, bool) {
	var re *RequestError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

func newTransportError(err error) *RequestError {
	return &RequestError{Message: err.Error(), Err: err}
}
