package config

import "errors"

// Validation errors returned by [StructuredConfig.Validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAPIConfigs indicates invalid transport settings (for
	// example, a missing base URL, API key or subscription key).
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
	// ErrInvalidCredentialsConfigs indicates a missing token username or
	// password.
	ErrInvalidCredentialsConfigs = errors.New("invalid credentials configuration")
	// ErrInvalidTokenConfigs indicates an unusable token cache location.
	ErrInvalidTokenConfigs = errors.New("invalid token cache configuration")
)
