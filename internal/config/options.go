// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"

	"github.com/MKhiriev/devconf/internal/orb"
)

// Options are the process-level settings that locate configuration and
// shape start-up. They are resolved from, in priority order, command-line
// flags, environment variables and [DefaultOptions].
type Options struct {
	// ConfigPath is the main JSON config file.
	// Env: DEVCONF_CONFIG
	ConfigPath string `env:"DEVCONF_CONFIG"`

	// RuntimePath is the runtime override file. When no layer sets it, it
	// is derived from ConfigPath with [RuntimePathFor].
	// Env: DEVCONF_RUNTIME_CONFIG
	RuntimePath string `env:"DEVCONF_RUNTIME_CONFIG"`

	// ORBEndpoint is the value passed with the ORB endpoint flag, e.g.
	// "giop:tcp:192.168.1.5:".
	// Env: DEVCONF_ORB_ENDPOINT
	ORBEndpoint string `env:"DEVCONF_ORB_ENDPOINT"`

	// AdminAddress is the "host:port" of the admin HTTP API. Empty disables
	// the API.
	// Env: DEVCONF_ADMIN_ADDRESS
	AdminAddress string `env:"DEVCONF_ADMIN_ADDRESS"`

	// MiddlewareArgs are the arguments that are not devconf flags. They
	// are handed to the device-control middleware.
	MiddlewareArgs []string
}

// DefaultOptions returns the lowest-priority option layer.
func DefaultOptions() *Options {
	return &Options{
		ConfigPath:  DefaultConfigPath,
		ORBEndpoint: orb.DefaultEndpoint,
	}
}

// GetOptions extracts the devconf flags from args (without the program
// name) and merges them with the environment and the defaults. All other
// arguments are kept, in order, in [Options.MiddlewareArgs]; see
// [RegisterFlags].
func GetOptions(args []string) (*Options, error) {
	fs := flag.NewFlagSet("devconf", flag.ContinueOnError)
	values := RegisterFlags(fs)

	own, passthrough := splitArgs(fs, args)
	if err := fs.Parse(own); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	flagOpts := values.Options()
	flagOpts.MiddlewareArgs = passthrough

	return BuildOptions(flagOpts)
}

// BuildOptions merges flagOpts over the environment and the defaults. It is
// used by tools that register extra flags of their own on the same set.
func BuildOptions(flagOpts *Options) (*Options, error) {
	return newOptionsBuilder().
		withFlags(flagOpts).
		withEnv().
		withDefaults().
		build()
}
