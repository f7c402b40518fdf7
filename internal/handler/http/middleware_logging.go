package http

import (
	"net/http"
	"time"

	"github.com/akarpov/notelink/internal/logger"
	"github.com/go-chi/chi/v5"
)

// withLogging emits one structured line per request. Alongside the raw
// URI it records the matched chi route pattern: note slugs and entity ids
// make raw URIs unique per request, so the pattern is the field to
// aggregate on.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		// The route context is shared with the mux, so the pattern is
		// populated once routing has happened downstream.
		route := ""
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}

		log.Info().
			Str("uri", uri).
			Str("route", route).
			Str("method", method).
			Int("status", lw.status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}
