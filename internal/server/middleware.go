package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/plotdeck/pkg/observability"
)

// logRequests logs each request with its chi request ID and feeds the
// server observability hooks.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		observability.Server().OnRequest(r.Context(), r.Method, r.URL.Path)
		next.ServeHTTP(ww, r)

		elapsed := time.Since(start)
		observability.Server().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), elapsed)

		s.logger.Debug("request",
			"id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", elapsed)
	})
}
