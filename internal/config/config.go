// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

const (
	// DefaultConfigPath is the main config file location relative to the
	// working directory of the device servers.
	DefaultConfigPath = "../config/system_config.json"

	// RuntimeFileName is the name of the user-writable override file kept
	// next to the main config file.
	RuntimeFileName = "runtime_config.json"

	// DefaultControllerIP is the motion-controller / six-DOF platform endpoint.
	DefaultControllerIP = "192.168.1.10"
	// DefaultPLCIP is the PLC / vacuum-system endpoint.
	DefaultPLCIP = "192.168.1.20"
	// DefaultTangoHost is the Tango database address.
	DefaultTangoHost = "localhost:10000"
	// DefaultSimMode selects real hardware.
	DefaultSimMode = false
	// DefaultProxyReconnectIntervalSec applies when the interval is missing
	// on first load or configured as zero or negative.
	DefaultProxyReconnectIntervalSec = 5
	// MaxProxyReconnectIntervalSec caps the interval at one day; larger
	// values are reduced to it.
	MaxProxyReconnectIntervalSec = 24 * 60 * 60
)

// Source names the layer that decided a value.
type Source string

const (
	SourceDefault Source = "default"
	SourceMain    Source = "main"
	SourceRuntime Source = "runtime"
)

// Stage tracks how far start-up resolution has progressed.
type Stage int

const (
	// StageDefaults means only built-in defaults are in effect.
	StageDefaults Stage = iota
	// StageMainLoaded means the main config file was applied.
	StageMainLoaded
	// StageRuntimeResolved means the runtime override layer was consulted.
	StageRuntimeResolved
)

func (s Stage) String() string {
	switch s {
	case StageDefaults:
		return "defaults"
	case StageMainLoaded:
		return "main-loaded"
	case StageRuntimeResolved:
		return "runtime-resolved"
	default:
		return "unknown"
	}
}

// Endpoints holds the connection parameters read by device hooks.
//
// Zero values mean "not set" when layers are merged.
type Endpoints struct {
	// ControllerIP is the default endpoint for motion-controller and
	// platform devices.
	ControllerIP string

	// PLCIP is the default endpoint for PLC and vacuum-system devices.
	PLCIP string

	// TangoHost is the address of the device database used by the
	// middleware, in "host:port" format.
	TangoHost string

	// ProxyReconnectIntervalSec is the minimum number of seconds between
	// reconnect attempts for proxy-based devices.
	ProxyReconnectIntervalSec int
}

// Snapshot is an immutable view of the resolved configuration.
type Snapshot struct {
	Endpoints Endpoints

	// SimMode reports whether hardware calls are answered by the internal
	// simulator instead of real device I/O.
	SimMode bool

	// SimModeSource is the layer that decided SimMode.
	SimModeSource Source
}

// ProxyReconnectInterval returns the reconnect interval as a duration.
// Values outside 1..MaxProxyReconnectIntervalSec are clamped into range.
func (s Snapshot) ProxyReconnectInterval() time.Duration {
	sec := min(max(s.Endpoints.ProxyReconnectIntervalSec, 1), MaxProxyReconnectIntervalSec)
	return time.Duration(sec) * time.Second
}

// DefaultSnapshot returns the built-in configuration.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Endpoints: Endpoints{
			ControllerIP:              DefaultControllerIP,
			PLCIP:                     DefaultPLCIP,
			TangoHost:                 DefaultTangoHost,
			ProxyReconnectIntervalSec: DefaultProxyReconnectIntervalSec,
		},
		SimMode:       DefaultSimMode,
		SimModeSource: SourceDefault,
	}
}
