package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/devconf/internal/config"
	handler "github.com/MKhiriev/devconf/internal/handler/http"
	"github.com/MKhiriev/devconf/internal/logger"
	"github.com/MKhiriev/devconf/internal/orb"
)

// prepare runs the start-up sequence: the ORB endpoint patch of the
// middleware argv, the main config file, then the runtime override. It
// returns the resolved store and the argv for the middleware.
func prepare(program string, opts *config.Options, log *logger.Logger) (*config.Store, []string) {
	// The ORB reads argv during middleware init; patch it first.
	argv := orb.FixEndpoint(append([]string{program}, opts.MiddlewareArgs...), opts.ORBEndpoint)
	log.Info().Strs("argv", argv).Msg("middleware arguments prepared")

	store := config.NewStore(opts.RuntimePath, log)
	if err := store.LoadConfig(opts.ConfigPath); err != nil {
		log.Warn().Err(err).Msg("continuing with built-in defaults")
	}
	snap := store.ResolveRuntime()

	log.Info().
		Str("controller_ip", snap.Endpoints.ControllerIP).
		Str("plc_ip", snap.Endpoints.PLCIP).
		Str("tango_host", snap.Endpoints.TangoHost).
		Bool("sim_mode", snap.SimMode).
		Str("sim_mode_source", string(snap.SimModeSource)).
		Dur("proxy_reconnect_interval", snap.ProxyReconnectInterval()).
		Msg("configuration resolved")

	return store, argv
}

func printConfig(out io.Writer, store *config.Store) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(handler.NewConfigResponse(store.Snapshot(), store.Stage())); err != nil {
		return fmt.Errorf("encoding configuration: %w", err)
	}
	return nil
}
