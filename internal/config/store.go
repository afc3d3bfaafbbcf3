// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/devconf/internal/logger"
)

// Store holds the resolved configuration of the process.
//
// A process creates exactly one Store at start-up and hands it to every
// consumer. The expected call order is [Store.LoadConfig] followed by
// [Store.ResolveRuntime]; skipping the latter leaves main-file or default
// values in effect. All methods are safe for concurrent use.
type Store struct {
	mu sync.RWMutex
	// base is the built-in defaults merged with the main config file.
	base Snapshot
	// runtime is the simulation flag read by the last ResolveRuntime call,
	// nil when the runtime file was absent or invalid.
	runtime  *bool
	resolved Snapshot
	stage    Stage

	// fileMu serializes access to the runtime override file.
	fileMu      sync.Mutex
	runtimePath string

	now    func() time.Time
	logger *logger.Logger
}

// NewStore returns a Store holding the built-in defaults. runtimePath is the
// location of the runtime override file; an empty value selects the file
// next to [DefaultConfigPath].
func NewStore(runtimePath string, log *logger.Logger) *Store {
	if runtimePath == "" {
		runtimePath = RuntimePathFor(DefaultConfigPath)
	}

	defaults := DefaultSnapshot()
	return &Store{
		base:        defaults,
		resolved:    defaults,
		stage:       StageDefaults,
		runtimePath: runtimePath,
		now:         time.Now,
		logger:      log.WithComponent("config-store"),
	}
}

// LoadConfig applies the main JSON config file at path on top of the current
// values. An empty path selects [DefaultConfigPath]. Keys missing from the
// file keep their current values.
//
// A missing file ([ErrConfigNotFound]) or an unreadable or malformed one
// ([ErrConfigParse]) leaves the store untouched. The failure is logged and
// returned for callers that want to report it; it is never fatal.
func (s *Store) LoadConfig(path string) error {
	if path == "" {
		path = DefaultConfigPath
	}

	layer, err := parseMainFile(path)
	if err != nil {
		s.logger.Warn().Err(err).Str("path", path).Msg("main config not applied, keeping current values")
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	base, err := layer.applyTo(s.base)
	if err != nil {
		s.logger.Warn().Err(err).Str("path", path).Msg("main config not applied, keeping current values")
		return err
	}

	s.base = base
	s.resolved = resolve(s.base, s.runtime)
	if s.stage < StageMainLoaded {
		s.stage = StageMainLoaded
	}

	s.logger.Info().
		Str("path", path).
		Str("controller_ip", s.resolved.Endpoints.ControllerIP).
		Str("plc_ip", s.resolved.Endpoints.PLCIP).
		Str("tango_host", s.resolved.Endpoints.TangoHost).
		Bool("sim_mode", s.resolved.SimMode).
		Str("sim_mode_source", string(s.resolved.SimModeSource)).
		Int("proxy_reconnect_interval_sec", s.resolved.Endpoints.ProxyReconnectIntervalSec).
		Msg("main config loaded")

	return nil
}

// LoadRuntimeSimMode reads the simulation flag from the runtime override
// file. ok is true only if the file exists, parses, and holds a boolean
// sim_mode. The store itself is not modified; see [Store.ResolveRuntime].
func (s *Store) LoadRuntimeSimMode() (simMode bool, ok bool) {
	s.fileMu.Lock()
	simMode, err := readRuntimeFile(s.runtimePath)
	s.fileMu.Unlock()

	if err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			s.logger.Debug().Str("path", s.runtimePath).Msg("no runtime config, using main config value")
		} else {
			s.logger.Warn().Err(err).Str("path", s.runtimePath).Msg("runtime config ignored")
		}
		return false, false
	}

	return simMode, true
}

// SaveRuntimeSimMode persists simMode to the runtime override file, creating
// or replacing it. The in-memory value is not changed: the saved flag takes
// effect on the next start (or the next [Store.ResolveRuntime]).
//
// A failure is returned wrapped in [ErrRuntimeWrite] and leaves any previous
// runtime file in place.
func (s *Store) SaveRuntimeSimMode(simMode bool) error {
	s.fileMu.Lock()
	err := writeRuntimeFile(s.runtimePath, simMode, s.now())
	s.fileMu.Unlock()

	if err != nil {
		s.logger.Error().Err(err).Str("path", s.runtimePath).Bool("sim_mode", simMode).Msg("runtime config not saved")
		return err
	}

	s.logger.Info().Str("path", s.runtimePath).Bool("sim_mode", simMode).Msg("runtime config saved")
	return nil
}

// ResolveRuntime consults the runtime override file and swaps in the merged
// snapshot: a valid runtime flag wins over the main file and the defaults.
func (s *Store) ResolveRuntime() Snapshot {
	simMode, ok := s.LoadRuntimeSimMode()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.runtime = nil
	if ok {
		s.runtime = &simMode
	}
	s.resolved = resolve(s.base, s.runtime)
	s.stage = StageRuntimeResolved

	s.logger.Info().
		Bool("sim_mode", s.resolved.SimMode).
		Str("sim_mode_source", string(s.resolved.SimModeSource)).
		Msg("simulation mode resolved")

	return s.resolved
}

// Snapshot returns the current resolved configuration.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolved
}

// BaseSnapshot returns the defaults merged with the main config file, without
// the runtime override. It is what the next start uses when no valid runtime
// file exists.
func (s *Store) BaseSnapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.base
}

// SimMode reports whether hardware access is simulated.
func (s *Store) SimMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolved.SimMode
}

// ProxyReconnectInterval is the minimum spacing between reconnect attempts
// to a remote device proxy.
func (s *Store) ProxyReconnectInterval() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolved.ProxyReconnectInterval()
}

// Stage reports how far start-up resolution has progressed.
func (s *Store) Stage() Stage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stage
}

// RuntimePath returns the location of the runtime override file.
func (s *Store) RuntimePath() string {
	return s.runtimePath
}

func resolve(base Snapshot, runtime *bool) Snapshot {
	if runtime == nil {
		return base
	}
	base.SimMode = *runtime
	base.SimModeSource = SourceRuntime
	return base
}
