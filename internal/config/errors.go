// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Errors reported by the store and the options builder. None of them is
// fatal: the store keeps its previous state whenever one is returned.
var (
	// ErrConfigNotFound indicates that a config file does not exist.
	ErrConfigNotFound = errors.New("config file not found")
	// ErrConfigParse indicates that a config file could not be read or
	// decoded, or failed validation.
	ErrConfigParse = errors.New("config file parse error")
	// ErrRuntimeWrite indicates that the runtime override file could not be
	// written.
	ErrRuntimeWrite = errors.New("runtime config write failure")
	// ErrInvalidOptions indicates unusable process options (for example an
	// empty config path after all layers were merged).
	ErrInvalidOptions = errors.New("invalid options")
)
