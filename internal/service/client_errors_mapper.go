// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/mikud-go/mikud/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service error
func mapAdapterError(op string, err error) error {
	if err == nil {
		return nil
	}

	var statusErr *adapter.StatusError
	switch {
	case errors.As(err, &statusErr):
		return &RequestError{StatusCode: statusErr.StatusCode, Message: statusErr.Message}

	case errors.Is(err, adapter.ErrTransport):
		return &TransportError{Op: op, Err: err}

	case errors.Is(err, adapter.ErrDecodeResponse):
		return fmt.Errorf("%w: %s: %w", ErrUnexpectedResponse, op, err)
	}

	return err
}
