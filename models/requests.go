// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strconv"

// StreetSearchMode is the only search mode the street endpoint is queried with.
const StreetSearchMode = "ID-StartsWith"

// Credentials is the body of the authentication request.
type Credentials struct {
	Password string `json:"Password"`
	Username string `json:"Username"`
}

// SearchZipRequest is the body of POST /zip/SearchZip. Every field is sent
// as a string; unset values are sent as empty strings.
type SearchZipRequest struct {
	ByMaanimID string `json:"ByMaanimID"`
	City       string `json:"City"`
	CityID     string `json:"CityID"`
	Entry      string `json:"Entry"`
	House      string `json:"House"`
	POB        string `json:"POB"`
	Street     string `json:"Street"`
	StreetID   string `json:"StreetID"`
}

// SearchAddressRequest is the body of POST /zip/SearchAddress.
type SearchAddressRequest struct {
	Zipcode string `json:"Zipcode"`
}

// GetCitiesRequest is the body of POST /zip/GetCities.
type GetCitiesRequest struct {
	CityStartsWith string `json:"CityStartsWith"`
}

// GetStreetsRequest is the body of POST /zip/GetStreets.
type GetStreetsRequest struct {
	CityID     string `json:"CityID"`
	CityName   string `json:"CityName"`
	SearchMode string `json:"SearchMode"`
	StartsWith string `json:"StartsWith"`
}

// MikudQuery describes an address whose zip code is looked up.
//
// A query is complete when it names a city (by name or id), a street (by
// name or id) and a house number, or when it names a post office box.
// Zero values mean "not supplied".
type MikudQuery struct {
	CityName    string
	CityID      int
	StreetName  string
	StreetID    int
	HouseNumber int
	POB         int

	// Entry disambiguates multi-entrance buildings (e.g. "א", "ב").
	Entry string
}

// HasCity reports whether the query names a city.
func (q MikudQuery) HasCity() bool {
	return q.CityName != "" || q.CityID != 0
}

// HasStreet reports whether the query names a street.
func (q MikudQuery) HasStreet() bool {
	return q.StreetName != "" || q.StreetID != 0
}

// Request converts q into the wire body of the zip search.
func (q MikudQuery) Request() SearchZipRequest {
	return SearchZipRequest{
		ByMaanimID: "true",
		City:       q.CityName,
		CityID:     FormatOptionalInt(q.CityID),
		Entry:      q.Entry,
		House:      FormatOptionalInt(q.HouseNumber),
		POB:        FormatOptionalInt(q.POB),
		Street:     q.StreetName,
		StreetID:   FormatOptionalInt(q.StreetID),
	}
}

// FormatOptionalInt renders n in base 10, or "" when n is zero.
func FormatOptionalInt(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
