// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidSimModeRequest is reported when a PUT /api/sim-mode body is
	// not JSON or lacks a boolean sim_mode.
	ErrInvalidSimModeRequest = errors.New(`request body must be {"sim_mode": true|false}`)

	// ErrSimModeNotSaved is reported when the runtime override file could
	// not be written.
	ErrSimModeNotSaved = errors.New("simulation mode not saved")
)
