// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mikud is a client for the Israel Post zip code ("mikud") API.
//
// Given an address (city, street and house number, or a post office box) it
// returns the zip code, and given a zip code it returns the address. It also
// searches cities and streets by name prefix to resolve the identifiers the
// API expects.
//
// The client authenticates with a bearer token that is cached in a JSON file
// ({"access_token": "Bearer <token>"}) and refreshed once when the API
// rejects it:
//
//	client, err := mikud.NewClient(mikud.Options{
//		APIKey:          os.Getenv("MIKUD_API_KEY"),
//		SubscriptionKey: os.Getenv("MIKUD_API_SUBSCRIPTION_KEY"),
//		Username:        os.Getenv("MIKUD_AUTH_USERNAME"),
//		Password:        os.Getenv("MIKUD_AUTH_PASSWORD"),
//	})
//	if err != nil {
//		return err
//	}
//	addr, err := client.SearchAddress(ctx, "9546432")
package mikud

import (
	"context"
	"fmt"

	"github.com/mikud-go/mikud/internal/adapter"
	"github.com/mikud-go/mikud/internal/logger"
	"github.com/mikud-go/mikud/internal/service"
	"github.com/mikud-go/mikud/internal/store"
	"github.com/mikud-go/mikud/models"
)

type (
	// Address is a normalized address lookup result.
	Address = models.Address
	// City is a city search result.
	City = models.City
	// Street is a street search result.
	Street = models.Street
	// Query describes an address whose zip code is looked up.
	Query = models.MikudQuery
	// Token is the cached bearer token.
	Token = models.Token
)

// Client is safe for concurrent use.
type Client struct {
	services *service.ClientServices
}

// NewClient validates opts, fills unset fields with defaults and returns a
// ready client. No request is sent until the first lookup.
func NewClient(opts Options) (*Client, error) {
	cfg, err := opts.config()
	if err != nil {
		return nil, err
	}

	log := logger.Nop()
	if opts.Logger != nil {
		log = &logger.Logger{Logger: *opts.Logger}
	}

	api, err := adapter.NewHTTPPostAPI(cfg.API, log)
	if err != nil {
		return nil, fmt.Errorf("create api adapter: %w", err)
	}

	creds := models.Credentials{Username: cfg.Auth.Username, Password: cfg.Auth.Password}
	storages := store.NewClientStorages(cfg.Auth, log)

	return &Client{
		services: service.NewClientServices(storages, api, creds, log),
	}, nil
}

// SearchMikud returns the zip code of the address described by q.
//
// q must name a city (by name or id), a street (by name or id) and a house
// number, or a post office box. Otherwise an error matching
// [ErrInvalidArgument] is returned and no request is sent. If the API finds
// nothing the zero Address is returned.
func (c *Client) SearchMikud(ctx context.Context, q Query) (Address, error) {
	return c.services.MikudService.SearchMikud(ctx, q)
}

// SearchAddress returns the address of a zip code. zip must be exactly 7
// digits, surrounding whitespace aside. If the API finds nothing the zero
// Address is returned.
func (c *Client) SearchAddress(ctx context.Context, zip string) (Address, error) {
	return c.services.MikudService.SearchAddress(ctx, zip)
}

// SearchCities returns the cities whose name starts with prefix. The result
// is never nil.
func (c *Client) SearchCities(ctx context.Context, prefix string) ([]City, error) {
	return c.services.MikudService.SearchCities(ctx, prefix)
}

// SearchStreets returns the streets whose name starts with prefix in the
// city named cityName, or identified by cityID when it is non-zero. The
// result is never nil.
func (c *Client) SearchStreets(ctx context.Context, cityName, prefix string, cityID int) ([]Street, error) {
	return c.services.MikudService.SearchStreets(ctx, cityName, prefix, cityID)
}

// GetToken returns the cached bearer token, or a fresh one when
// forceRefresh is set or the cache is empty.
func (c *Client) GetToken(ctx context.Context, forceRefresh bool) (Token, error) {
	return c.services.TokenService.GetToken(ctx, forceRefresh)
}
