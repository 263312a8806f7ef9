package store

import "errors"

// Sentinel errors returned by [TokenStore] implementations. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrTokenNotFound is returned when the cache file does not exist or
	// decodes to an empty access token.
	ErrTokenNotFound = errors.New("token not found in cache")

	// ErrTokenCorrupted is returned when the cache file exists but is not a
	// valid token document.
	ErrTokenCorrupted = errors.New("token cache is corrupted")

	// ErrReadingToken is returned when the cache file exists but cannot be
	// read.
	ErrReadingToken = errors.New("error reading token cache")

	// ErrSavingToken is returned when the cache file cannot be written.
	ErrSavingToken = errors.New("error saving token cache")

	// ErrDeletingToken is returned when the cache file cannot be removed.
	ErrDeletingToken = errors.New("error deleting token cache")
)
