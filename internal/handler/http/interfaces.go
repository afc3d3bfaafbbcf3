package http

import "github.com/MKhiriev/devconf/internal/config"

//go:generate mockgen -source=interfaces.go -destination=../../mock/config_store_mock.go -package=mock

// ConfigStore is the part of [config.Store] the admin API depends on.
type ConfigStore interface {
	// Snapshot returns the resolved configuration in effect.
	Snapshot() config.Snapshot

	// BaseSnapshot returns the configuration without the runtime override.
	BaseSnapshot() config.Snapshot

	// Stage reports how far start-up resolution has progressed.
	Stage() config.Stage

	// LoadRuntimeSimMode reads the flag stored for the next start; ok is
	// false when no valid runtime file exists.
	LoadRuntimeSimMode() (simMode bool, ok bool)

	// SaveRuntimeSimMode persists the flag for the next start.
	SaveRuntimeSimMode(simMode bool) error
}
