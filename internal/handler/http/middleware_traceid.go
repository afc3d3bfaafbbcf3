package http

import (
	"net/http"

	"github.com/MKhiriev/devconf/internal/utils"
	"github.com/rs/zerolog"
)

const traceIDHeader = utils.TraceIDHeader

// withTraceID attaches a request-scoped logger carrying a trace_id field to
// the request context. An incoming X-Trace-ID is reused, otherwise a UUIDv7 is
// generated. The trace id is echoed in the response header.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = utils.NewTraceID()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}
