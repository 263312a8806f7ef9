// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// BearerPrefix is the authorization scheme prepended to every access token.
const BearerPrefix = "Bearer "

// Token is the cached access token. It is persisted as-is in the token cache
// file, so AccessToken already carries the "Bearer " scheme prefix.
type Token struct {
	AccessToken string `json:"access_token"`
}

// NewBearerToken builds a Token from the raw access token returned by the
// authentication endpoint.
func NewBearerToken(raw string) Token {
	return Token{AccessToken: BearerPrefix + strings.TrimSpace(raw)}
}

// IsEmpty reports whether the token holds no usable value.
func (t Token) IsEmpty() bool {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(t.AccessToken), strings.TrimSpace(BearerPrefix))) == ""
}

// Header returns the value of the Authorization header for t. Tokens written
// without the scheme prefix by older caches get it added.
func (t Token) Header() string {
	v := strings.TrimSpace(t.AccessToken)
	if v == "" {
		return ""
	}
	if strings.HasPrefix(v, BearerPrefix) {
		return v
	}
	return BearerPrefix + v
}

// Raw returns the token without the scheme prefix.
func (t Token) Raw() string {
	return strings.TrimPrefix(t.Header(), BearerPrefix)
}

// String implements [fmt.Stringer]. It never prints the secret itself.
func (t Token) String() string {
	if t.IsEmpty() {
		return "<empty token>"
	}
	return "<bearer token>"
}
