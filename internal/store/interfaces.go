// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the client's only durable state: the cached bearer
// token.
//
// [TokenStore] abstracts the cache so the token manager can be tested with
// mocks; [NewFileTokenStore] is the JSON file implementation whose format
// ({"access_token": "Bearer <token>"}) is shared with other tools reading the
// same cache file.
package store

import (
	"context"

	"github.com/mikud-go/mikud/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/token_store_mock.go -package=mock

// TokenStore is the persistent token cache.
type TokenStore interface {
	// Load returns the cached token. It returns [ErrTokenNotFound] when the
	// cache does not exist or holds no token, and [ErrTokenCorrupted] when
	// the cache cannot be decoded.
	Load(ctx context.Context) (models.Token, error)

	// Save replaces the cached token.
	Save(ctx context.Context, token models.Token) error

	// Delete removes the cache. Deleting a missing cache is not an error.
	Delete(ctx context.Context) error
}
