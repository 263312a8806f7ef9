package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthorized matches a [*StatusError] with status 401.
	ErrUnauthorized = errors.New("client unauthorized")
	// ErrTransport wraps failures that produced no HTTP response.
	ErrTransport = errors.New("transport failure")
	// ErrDecodeResponse wraps a 200 response whose body could not be decoded.
	ErrDecodeResponse = errors.New("cannot decode response")
)

// StatusError is returned for every response whose status is not 200.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

// Is reports a 401 StatusError as [ErrUnauthorized].
func (e *StatusError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}
