package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/devconf/internal/config"
	"github.com/MKhiriev/devconf/internal/logger"
	"github.com/MKhiriev/devconf/models"
)

// maxRequestBody bounds PUT bodies; the only payload is a single flag.
const maxRequestBody = 1 << 10

func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, NewConfigResponse(h.store.Snapshot(), h.store.Stage()))
}

// NewConfigResponse converts a resolved snapshot into its transport form.
func NewConfigResponse(snap config.Snapshot, stage config.Stage) models.ConfigResponse {
	return models.ConfigResponse{
		Endpoints: models.EndpointsResponse{
			ControllerIP:              snap.Endpoints.ControllerIP,
			PLCIP:                     snap.Endpoints.PLCIP,
			TangoHost:                 snap.Endpoints.TangoHost,
			ProxyReconnectIntervalSec: snap.Endpoints.ProxyReconnectIntervalSec,
		},
		SimMode:       snap.SimMode,
		SimModeSource: string(snap.SimModeSource),
		Stage:         stage.String(),
	}
}

func (h *Handler) getSimMode(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.simModeView())
}

func (h *Handler) putSimMode(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SimModeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil || req.SimMode == nil {
		log.Warn().Err(err).Msg("invalid sim mode request")
		writeError(w, r, http.StatusBadRequest, ErrInvalidSimModeRequest)
		return
	}

	if err := h.store.SaveRuntimeSimMode(*req.SimMode); err != nil {
		log.Error().Err(err).Bool("sim_mode", *req.SimMode).Msg("error saving sim mode")
		writeError(w, r, http.StatusInternalServerError, ErrSimModeNotSaved)
		return
	}

	log.Info().Bool("sim_mode", *req.SimMode).Msg("sim mode saved for next start")
	writeJSON(w, r, http.StatusOK, h.simModeView())
}

// simModeView reports the flag in effect and whether the next start would
// use a different one. Without a valid runtime file a flag taken from the
// runtime layer falls back to the main file or the default.
func (h *Handler) simModeView() models.SimModeResponse {
	snap := h.store.Snapshot()
	resp := models.SimModeResponse{
		SimMode: snap.SimMode,
		Source:  string(snap.SimModeSource),
	}

	if stored, ok := h.store.LoadRuntimeSimMode(); ok {
		resp.RuntimeSimMode = &stored
		resp.Pending = stored != snap.SimMode
	} else if snap.SimModeSource == config.SourceRuntime {
		resp.Pending = h.store.BaseSnapshot().SimMode != snap.SimMode
	}
	return resp
}
