// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// normalizeInterval maps the optional interval from a config file onto the
// merge layer: nil stays unset (zero), non-positive values resolve to
// DefaultProxyReconnectIntervalSec and values above
// MaxProxyReconnectIntervalSec are capped.
func normalizeInterval(v *int) int {
	switch {
	case v == nil:
		return 0
	case *v <= 0:
		return DefaultProxyReconnectIntervalSec
	case *v > MaxProxyReconnectIntervalSec:
		return MaxProxyReconnectIntervalSec
	}
	return *v
}

// validate checks the invariants every resolved snapshot must satisfy.
func (s Snapshot) validate() error {
	switch {
	case s.Endpoints.ControllerIP == "":
		return fmt.Errorf("%w: empty controller ip", ErrConfigParse)
	case s.Endpoints.PLCIP == "":
		return fmt.Errorf("%w: empty plc ip", ErrConfigParse)
	case s.Endpoints.TangoHost == "":
		return fmt.Errorf("%w: empty tango host", ErrConfigParse)
	case s.Endpoints.ProxyReconnectIntervalSec <= 0:
		return fmt.Errorf("%w: non-positive proxy reconnect interval", ErrConfigParse)
	case s.Endpoints.ProxyReconnectIntervalSec > MaxProxyReconnectIntervalSec:
		return fmt.Errorf("%w: proxy reconnect interval above %d s", ErrConfigParse, MaxProxyReconnectIntervalSec)
	}
	return nil
}

func (o *Options) validate() error {
	if o.ConfigPath == "" {
		return fmt.Errorf("%w: empty config path", ErrInvalidOptions)
	}
	if o.RuntimePath == "" {
		return fmt.Errorf("%w: empty runtime config path", ErrInvalidOptions)
	}
	return nil
}
