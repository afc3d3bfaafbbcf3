// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the admin API of a running devconf
// process.
//
// The primary abstraction is [AdminClient]; [NewHTTPAdminClient] is its
// HTTP/REST implementation. Non-2xx responses are mapped by mapHTTPError to
// the sentinel values in errors.go so callers can use [errors.Is] (e.g.
// [ErrInternalServerError] when the process failed to persist the flag).
package adapter

import (
	"context"

	"github.com/MKhiriev/devconf/models"
)

// AdminClient reads the configuration of a running process and persists
// its simulation flag for the next start.
type AdminClient interface {
	// GetConfig returns the resolved configuration in effect.
	GetConfig(ctx context.Context) (models.ConfigResponse, error)

	// GetSimMode returns the flag in effect and the one stored in the
	// runtime override file.
	GetSimMode(ctx context.Context) (models.SimModeResponse, error)

	// SetSimMode stores simMode in the runtime override file of the
	// process. The running process keeps its current flag; the response
	// reports the change as pending.
	SetSimMode(ctx context.Context, simMode bool) (models.SimModeResponse, error)
}
