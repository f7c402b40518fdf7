package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID binds a trace id to the request-scoped logger and echoes it
// in the response, so a failed note fetch or friend transition can be
// matched to its log lines from either side.
//
// A client-supplied X-Trace-ID is reused only when it is a well-formed
// UUID; anything else is replaced with a fresh one so arbitrary header
// content never reaches the logs.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID := uuid.NewString()
		if supplied, err := uuid.Parse(r.Header.Get(traceIDHeader)); err == nil {
			traceID = supplied.String()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
