// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the value types exchanged with the Israel Post zip
// code API: request bodies, response envelopes, the bearer token and the
// normalized Address, City and Street results returned to callers.
package models
