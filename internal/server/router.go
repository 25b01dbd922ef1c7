package server

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// routes wires the API endpoints. CORS is enabled so the dashboard
// frontend can call the API from its own origin.
func (s *Server) routes() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/api/simulate", s.handleSimulate).Methods(http.MethodPost)
	r.HandleFunc("/api/analyze-claim", s.handleAnalyzeClaim).Methods(http.MethodPost)
	r.HandleFunc("/api/live-audits", s.handleLiveAudits).Methods(http.MethodGet)
	r.HandleFunc("/api/health", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)

	r.Use(s.requestIDMiddleware, s.loggingMiddleware)

	origins := s.cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)(r)
}
