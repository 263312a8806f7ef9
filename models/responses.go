// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Envelope wraps every data response of the zip API. Result is kept raw
// because its shape differs per endpoint (object for lookups, array for
// searches) and its field names are not stable.
type Envelope struct {
	ReturnCode   int             `json:"ReturnCode"`
	ErrorMessage *string         `json:"ErrorMessage"`
	Result       json.RawMessage `json:"Result"`
}

// TokenResponse is the body returned by the authentication endpoint.
type TokenResponse struct {
	IsSuccess   bool   `json:"IsSuccess"`
	AccessToken string `json:"AccessToken"`

	// Raw is the undecoded response body, kept for error reporting.
	Raw json.RawMessage `json:"-"`
}

// APIError is the body the API gateway returns for rejected requests
// (e.g. {"statusCode": 401, "message": "Unauthorized"}).
type APIError struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}
