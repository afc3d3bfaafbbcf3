// Package config resolves the process-wide configuration of the
// device-control stack: connection endpoints for motion controllers, PLCs
// and the Tango database, the simulation flag, and the proxy reconnect
// interval.
//
// Values are resolved from layers in the following priority order (earlier
// layers win):
//  1. Runtime override file (simulation flag only), see [Store.ResolveRuntime]
//  2. Main JSON config file, see [Store.LoadConfig]
//  3. Built-in defaults, see [DefaultSnapshot]
//
// A [Store] holds the resolved [Snapshot]. Loads build a complete new
// snapshot before swapping it in, so readers never observe a partial merge.
//
// Process options (file locations, ORB endpoint, admin address) are
// assembled separately by [GetOptions] from flags, environment variables
// and defaults.
package config
