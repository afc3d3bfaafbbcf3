package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/devconf/internal/logger"
	"github.com/MKhiriev/devconf/models"
)

type Handler struct {
	store     ConfigStore
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(store ConfigStore, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("admin http handler created")
	return &Handler{
		store:     store,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("error encoding response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	writeJSON(w, r, status, map[string]string{"error": err.Error()})
}
