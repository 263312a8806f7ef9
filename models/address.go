// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// Address is the normalized result of a zip code (mikud) lookup or of a
// reverse lookup by zip code. Any field the API did not return is left at
// its zero value.
type Address struct {
	// Zip is the 7-digit postal code.
	Zip int `json:"zip,omitempty"`

	// CityName is the human-readable city name.
	CityName string `json:"city_name,omitempty"`

	// CityID is the API identifier of the city.
	CityID int `json:"city_id,omitempty"`

	// StreetName is the human-readable street name.
	StreetName string `json:"street_name,omitempty"`

	// StreetID is the API identifier of the street.
	StreetID int `json:"street_id,omitempty"`

	// HouseNumber is the house number on the street.
	HouseNumber int `json:"house_number,omitempty"`

	// POB is the post office box number.
	POB int `json:"pob,omitempty"`

	// Message is the free-text result message returned by the API.
	Message string `json:"message,omitempty"`
}

// IsZero reports whether the API returned nothing for the lookup.
func (a Address) IsZero() bool {
	return a == Address{}
}

// String implements [fmt.Stringer].
func (a Address) String() string {
	return fmt.Sprintf("ADDRESS: [city: %s, street: %s, zip: %d]", a.CityName, a.StreetName, a.Zip)
}

// City is a city entry returned by the city name search.
type City struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name,omitempty"`

	// Zip is set only for cities that have a single postal code.
	Zip int `json:"zip,omitempty"`
}

// String implements [fmt.Stringer].
func (c City) String() string {
	return fmt.Sprintf("CITY: [name: %s, id: %d, zip: %d]", c.Name, c.ID, c.Zip)
}

// Street is a street entry returned by the street name search. It is scoped
// to the city identified by CityID.
type Street struct {
	ID     int    `json:"id,omitempty"`
	Name   string `json:"name,omitempty"`
	CityID int    `json:"city_id,omitempty"`
}

// String implements [fmt.Stringer].
func (s Street) String() string {
	return fmt.Sprintf("STREET: [name: %s, id: %d]", s.Name, s.ID)
}
