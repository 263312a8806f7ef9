// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the mikud
// client. It is populated by merging values from environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
//
// Every variable is additionally prefixed with [EnvPrefix].
type StructuredConfig struct {
	// API holds the endpoint address, the fixed application headers and the
	// request timeout.
	API API `envPrefix:"API_"`

	// Auth holds the token credentials and the token cache location.
	Auth Auth `envPrefix:"AUTH_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the MIKUD_CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// API holds the settings of the outbound HTTP transport.
type API struct {
	// BaseURL is the scheme and host of the zip code API.
	// Env: MIKUD_API_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Key is sent as the Application-API-Key header.
	// Env: MIKUD_API_KEY
	Key string `env:"KEY"`

	// SubscriptionKey is sent as the Ocp-Apim-Subscription-Key header.
	// Env: MIKUD_API_SUBSCRIPTION_KEY
	SubscriptionKey string `env:"SUBSCRIPTION_KEY"`

	// ApplicationName is sent as the Application-Name header.
	// Env: MIKUD_API_APPLICATION_NAME
	ApplicationName string `env:"APPLICATION_NAME"`

	// UserAgent is sent as the User-Agent header.
	// Env: MIKUD_API_USER_AGENT
	UserAgent string `env:"USER_AGENT"`

	// RequestTimeout bounds a single HTTP round-trip (e.g. "30s").
	// Env: MIKUD_API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Auth holds the credentials used to obtain bearer tokens.
type Auth struct {
	// Env: MIKUD_AUTH_USERNAME
	Username string `env:"USERNAME"`

	// Env: MIKUD_AUTH_PASSWORD
	Password string `env:"PASSWORD"`

	// TokenFile is the path of the JSON file the bearer token is cached in.
	// The file holds a live credential and is written with mode 0600.
	// Env: MIKUD_AUTH_TOKEN_FILE
	TokenFile string `env:"TOKEN_FILE"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: MIKUD_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
//
// It returns the positional arguments left after flag parsing.
func GetConfig(args []string) (*StructuredConfig, []string, error) {
	b := newConfigBuilder(args).
		withEnv().
		withFlags().
		withJSON()

	cfg, err := b.build()
	return cfg, b.rest, err
}
