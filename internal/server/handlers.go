package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ecosim/ecosim/internal/audit"
	"github.com/ecosim/ecosim/internal/engine"
	"github.com/ecosim/ecosim/internal/greenwash"
	"github.com/ecosim/ecosim/internal/logging"
)

// maxRequestBody caps request bodies at 1 MiB; both endpoints take small
// JSON documents.
const maxRequestBody = 1 << 20

// errorResponse is the JSON error body shape.
type errorResponse struct {
	Error string `json:"error"`
}

// analyzeClaimRequest is the analyze-claim request body.
type analyzeClaimRequest struct {
	Text string `json:"text"`
}

// liveAuditsResponse is the live-audits payload the dashboard consumes.
type liveAuditsResponse struct {
	Audits         []audit.Record `json:"audits"`
	TotalCount     int            `json:"total_count"`
	PipelineActive bool           `json:"pipeline_active"`
}

// healthResponse is the health payload the dashboard polls.
type healthResponse struct {
	Status              string `json:"status"`
	Service             string `json:"service"`
	PathwayOutputExists bool   `json:"pathway_output_exists"`
}

// handleSimulate runs a scenario simulation for the posted input.
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var input engine.SimulationInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := engine.Simulate(r.Context(), input)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.metrics.SimulationsTotal.Inc()
	writeJSON(r, w, http.StatusOK, result)
}

// handleAnalyzeClaim analyzes the posted claim text.
func (s *Server) handleAnalyzeClaim(w http.ResponseWriter, r *http.Request) {
	var req analyzeClaimRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	result := greenwash.Analyze(r.Context(), req.Text)
	s.metrics.ClaimsAnalyzedTotal.Inc()
	writeJSON(r, w, http.StatusOK, result)
}

// handleLiveAudits serves processed audit records latest-first. A
// missing output file is not an error: the pipeline simply has not
// produced anything yet.
func (s *Server) handleLiveAudits(w http.ResponseWriter, r *http.Request) {
	records, active, err := s.store.Load()
	if err != nil {
		logging.FromContext(r.Context()).Error().Err(err).Msg("load live audits failed")
		writeError(w, http.StatusInternalServerError, "could not load audit results")
		return
	}
	if records == nil {
		records = []audit.Record{}
	}

	writeJSON(r, w, http.StatusOK, liveAuditsResponse{
		Audits:         records,
		TotalCount:     len(records),
		PipelineActive: active,
	})
}

// handleHealth reports service liveness and whether the audit pipeline
// has produced output.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	_, exists, _ := s.store.Load()
	writeJSON(r, w, http.StatusOK, healthResponse{
		Status:              "healthy",
		Service:             "ecosim-api",
		PathwayOutputExists: exists,
	})
}

// decodeJSON parses a request body, rejecting unknown size blowups.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	dec := json.NewDecoder(r.Body)
	return dec.Decode(dst)
}

// writeJSON serializes v; encode failures after the header is out can
// only be logged.
func writeJSON(r *http.Request, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).Error().Err(err).Msg("write response failed")
	}
}

// writeError serializes a JSON error body.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: msg})
}
