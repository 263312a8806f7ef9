package service

import (
	"errors"
	"fmt"

	"github.com/mikud-go/mikud/models"
)

var (
	// ErrInvalidArgument is returned, wrapped with details, when a lookup is
	// called with an unusable combination of parameters. No request is sent.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnexpectedResponse is returned when a 200 response cannot be decoded
	// or holds a value of the wrong type for a normalized field.
	ErrUnexpectedResponse = errors.New("unexpected response")
)

// RequestError is returned when the API answers with a status other than
// 200, including a 401 that persists after one token refresh.
type RequestError struct {
	StatusCode int
	// Message is the server provided "message" field, or the status text
	// when the response carried none.
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Message)
}

// AuthenticationError is returned when no access token could be obtained.
type AuthenticationError struct {
	// Payload is the decoded answer of the authentication endpoint.
	Payload models.TokenResponse
	// Body is the raw answer of the authentication endpoint.
	Body string
	// Err is the underlying failure, if the endpoint did not answer 200.
	Err error
}

func (e *AuthenticationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot generate new access token: %v", e.Err)
	}
	return fmt.Sprintf("cannot generate new access token: %s", e.Body)
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// TransportError is returned when a request produced no HTTP response
// (DNS, TLS, connection or timeout failures).
type TransportError struct {
	// Op is the lookup that failed.
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
