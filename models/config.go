package models

// EndpointsResponse carries the connection parameters device hooks use.
type EndpointsResponse struct {
	ControllerIP              string `json:"controller_ip"`
	PLCIP                     string `json:"plc_ip"`
	TangoHost                 string `json:"tango_host"`
	ProxyReconnectIntervalSec int    `json:"proxy_reconnect_interval_sec"`
}

// ConfigResponse is the resolved configuration of a running process.
type ConfigResponse struct {
	Endpoints EndpointsResponse `json:"endpoints"`

	// SimMode is the simulation flag in effect.
	SimMode bool `json:"sim_mode"`

	// SimModeSource names the layer that decided SimMode: "default",
	// "main" or "runtime".
	SimModeSource string `json:"sim_mode_source"`

	// Stage is how far start-up resolution has progressed.
	Stage string `json:"stage"`
}

// SimModeRequest asks the process to persist a new simulation flag.
type SimModeRequest struct {
	// SimMode is a pointer so a request without the field can be rejected.
	SimMode *bool `json:"sim_mode"`
}

// SimModeResponse describes the simulation flag in effect and the one
// stored for the next start.
type SimModeResponse struct {
	// SimMode is the flag the running process uses.
	SimMode bool `json:"sim_mode"`

	// Source is the layer that decided SimMode.
	Source string `json:"source"`

	// RuntimeSimMode is the flag stored in the runtime override file, nil
	// when there is no valid file.
	RuntimeSimMode *bool `json:"runtime_sim_mode,omitempty"`

	// Pending reports that the stored flag differs from the one in effect
	// and will apply on the next start.
	Pending bool `json:"pending"`
}
