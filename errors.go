package mikud

import "github.com/mikud-go/mikud/internal/service"

var (
	// ErrInvalidArgument matches errors returned for unusable lookup
	// parameters. No request is sent in that case.
	ErrInvalidArgument = service.ErrInvalidArgument

	// ErrUnexpectedResponse matches errors returned when a response cannot
	// be decoded or normalized.
	ErrUnexpectedResponse = service.ErrUnexpectedResponse
)

type (
	// RequestError reports a response with a status other than 200,
	// including a 401 that persists after one token refresh.
	RequestError = service.RequestError

	// AuthenticationError reports that no access token could be obtained.
	AuthenticationError = service.AuthenticationError

	// TransportError reports a request that produced no HTTP response.
	TransportError = service.TransportError
)
