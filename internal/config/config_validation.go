// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks that the merged [StructuredConfig] holds everything the
// client needs before any request is made.
func (cfg *StructuredConfig) Validate() error {
	if err := cfg.API.validate(); err != nil {
		return err
	}

	if strings.TrimSpace(cfg.Auth.Username) == "" || cfg.Auth.Password == "" {
		return fmt.Errorf("%w: username and password are required", ErrInvalidCredentialsConfigs)
	}

	if strings.TrimSpace(cfg.Auth.TokenFile) == "" {
		return fmt.Errorf("%w: token file path is empty", ErrInvalidTokenConfigs)
	}

	return nil
}

func (a API) validate() error {
	if strings.TrimSpace(a.BaseURL) == "" {
		return fmt.Errorf("%w: base url is empty", ErrInvalidAPIConfigs)
	}
	if u, err := url.Parse(a.BaseURL); err != nil || u.Host == "" {
		return fmt.Errorf("%w: base url %q is not an absolute url", ErrInvalidAPIConfigs, a.BaseURL)
	}
	if a.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAPIConfigs)
	}
	if a.Key == "" || a.SubscriptionKey == "" {
		return fmt.Errorf("%w: api key and subscription key are required", ErrInvalidAPIConfigs)
	}

	return nil
}
