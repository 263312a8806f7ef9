// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for the Israel Post zip code
// API.
//
// The primary abstraction is [PostAPI], which decouples the service layer
// from HTTP. The package ships a resty based implementation
// ([NewHTTPPostAPI]) that attaches the fixed application headers to every
// request and the bearer token to authenticated ones.
//
// HTTP failures are mapped by mapHTTPError to [*StatusError] values so that
// callers can use [errors.Is] with [ErrUnauthorized] to detect an expired
// token, and [errors.As] to read the status code and server message.
package adapter

import (
	"context"
	"encoding/json"

	"github.com/mikud-go/mikud/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/post_api_mock.go -package=mock

// PostAPI defines the calls the client makes to the zip code API.
// Implementations are responsible for serialisation, header management and
// mapping transport-level errors to the values defined in this package.
type PostAPI interface {
	// SetToken stores the Authorization header value ("Bearer <token>")
	// attached to all subsequent authenticated requests.
	SetToken(token string)

	// Token returns the Authorization header value currently stored, or an
	// empty string if no token has been set yet.
	Token() string

	// RequestToken exchanges credentials for a new access token. The request
	// is sent without an Authorization header. A 200 response is decoded as
	// is, so a payload with IsSuccess false is returned without error.
	RequestToken(ctx context.Context, creds models.Credentials) (models.TokenResponse, error)

	// SearchZip looks up the zip code of an address and returns the raw
	// Result of the response envelope.
	SearchZip(ctx context.Context, req models.SearchZipRequest) (json.RawMessage, error)

	// SearchAddress looks up the address of a zip code and returns the raw
	// Result of the response envelope.
	SearchAddress(ctx context.Context, req models.SearchAddressRequest) (json.RawMessage, error)

	// GetCities searches cities by name prefix and returns the raw Result of
	// the response envelope.
	GetCities(ctx context.Context, req models.GetCitiesRequest) (json.RawMessage, error)

	// GetStreets searches streets of a city by name prefix and returns the raw
	// Result of the response envelope.
	GetStreets(ctx context.Context, req models.GetStreetsRequest) (json.RawMessage, error)
}
