// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiry is returned by TokenExpiry when the token carries no "exp" claim.
var ErrNoExpiry = errors.New("token has no expiration claim")

// TokenExpiry reads the "exp" claim of a bearer token without verifying its
// signature. The "Bearer " scheme prefix is stripped if present.
//
// The result is informational only: the client never refreshes a token
// based on it, it only logs it.
func TokenExpiry(token string) (time.Time, error) {
	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, err
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiry
	}

	return exp.Time, nil
}
