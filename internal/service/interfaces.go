// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the client's business logic: the bearer token
// manager ([TokenService]) and the zip code lookup facade ([MikudService]).
//
// The facade builds request bodies, attaches the bearer token through the
// adapter, refreshes the token once when the API answers 401, and
// normalizes the loosely named API fields into [models.Address],
// [models.City] and [models.Street].
package service

import (
	"context"

	"github.com/mikud-go/mikud/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TokenService produces the bearer token used in the Authorization header,
// minimizing round-trips to the authentication endpoint.
type TokenService interface {
	// GetToken returns the cached token unless forceRefresh is set or the
	// cache holds no usable token. A malformed cache is deleted and replaced
	// without surfacing an error. A refreshed token overwrites the cache.
	//
	// Returns an [*AuthenticationError] when the authentication endpoint
	// refuses to issue a token.
	GetToken(ctx context.Context, forceRefresh bool) (models.Token, error)
}

// MikudService exposes the four lookups of the zip code API.
type MikudService interface {
	// SearchMikud returns the zip code of the address described by q. The
	// query must name a city, a street and a house number, or a post office
	// box; otherwise [ErrInvalidArgument] is returned before any network
	// call. An empty API result yields a zero Address.
	SearchMikud(ctx context.Context, q models.MikudQuery) (models.Address, error)

	// SearchAddress returns the address of a 7-digit zip code. Any other
	// input is rejected with [ErrInvalidArgument]. An empty API result
	// yields a zero Address.
	SearchAddress(ctx context.Context, zip string) (models.Address, error)

	// SearchCities returns the cities whose name starts with prefix. An
	// empty API result yields an empty, non-nil slice.
	SearchCities(ctx context.Context, prefix string) ([]models.City, error)

	// SearchStreets returns the streets of a city (by name, or by id when
	// cityID is non-zero) whose name starts with prefix. An empty API result
	// yields an empty, non-nil slice.
	SearchStreets(ctx context.Context, cityName, prefix string, cityID int) ([]models.Street, error)
}
