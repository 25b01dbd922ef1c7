package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecosim/ecosim/internal/audit"
	"github.com/ecosim/ecosim/internal/config"
	"github.com/ecosim/ecosim/internal/engine"
	"github.com/ecosim/ecosim/internal/greenwash"
)

// newTestServer builds a server over a fresh audit file in a temp dir.
func newTestServer(t *testing.T) (*Server, *audit.Sink) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "audits.jsonl")
	srv := New(config.ServerConfig{Addr: ":0"}, zerolog.Nop(), audit.NewStore(path))
	return srv, audit.NewSink(path)
}

func doRequest(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rr, req)
	return rr
}

func TestHandleSimulate(t *testing.T) {
	srv, _ := newTestServer(t)

	t.Run("valid input", func(t *testing.T) {
		rr := doRequest(t, srv, http.MethodPost, "/api/simulate", engine.SimulationInput{
			ProductCategory:     "laptop",
			EnergySource:        "wind",
			LifespanYears:       4,
			UsageFrequency:      "weekly",
			TransportDistanceKm: 1200,
		})
		require.Equal(t, http.StatusOK, rr.Code)

		var result engine.SimulationResult
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.Positive(t, result.TotalCO2)
		assert.Len(t, result.MonteCarlo, engine.MonteCarloDraws)
		assert.Len(t, result.AnnualBreakdown, 4)
	})

	t.Run("identical requests produce identical bodies", func(t *testing.T) {
		input := engine.SimulationInput{ProductCategory: "smartphone", EnergySource: "coal", LifespanYears: 2}
		first := doRequest(t, srv, http.MethodPost, "/api/simulate", input)
		second := doRequest(t, srv, http.MethodPost, "/api/simulate", input)
		require.Equal(t, http.StatusOK, first.Code)
		assert.Equal(t, first.Body.String(), second.Body.String())
	})

	t.Run("invalid lifespan is a 400", func(t *testing.T) {
		rr := doRequest(t, srv, http.MethodPost, "/api/simulate", engine.SimulationInput{
			ProductCategory: "laptop",
			LifespanYears:   0,
		})
		require.Equal(t, http.StatusBadRequest, rr.Code)

		var errBody errorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errBody))
		assert.Contains(t, errBody.Error, "lifespan")
	})

	t.Run("malformed body is a 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/simulate", bytes.NewBufferString("{nope"))
		rr := httptest.NewRecorder()
		srv.httpServer.Handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("get is not allowed", func(t *testing.T) {
		rr := doRequest(t, srv, http.MethodGet, "/api/simulate", nil)
		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})
}

func TestHandleAnalyzeClaim(t *testing.T) {
	srv, _ := newTestServer(t)

	t.Run("flags greenwashing text", func(t *testing.T) {
		rr := doRequest(t, srv, http.MethodPost, "/api/analyze-claim", map[string]string{
			"text": "Our product is 100% sustainable and eco-friendly with zero emissions.",
		})
		require.Equal(t, http.StatusOK, rr.Code)

		var result greenwash.Result
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.Equal(t, greenwash.RiskHigh, result.RiskLevel)
		assert.NotEmpty(t, result.SuspiciousPhrases)
		assert.Len(t, result.ScoreBreakdown, 5)
	})

	t.Run("empty text is a 400", func(t *testing.T) {
		rr := doRequest(t, srv, http.MethodPost, "/api/analyze-claim", map[string]string{"text": "   "})
		require.Equal(t, http.StatusBadRequest, rr.Code)

		var errBody errorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errBody))
		assert.Equal(t, "text is required", errBody.Error)
	})
}

func TestHandleLiveAudits(t *testing.T) {
	t.Run("no pipeline output yet", func(t *testing.T) {
		srv, _ := newTestServer(t)
		rr := doRequest(t, srv, http.MethodGet, "/api/live-audits", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp liveAuditsResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.NotNil(t, resp.Audits)
		assert.Empty(t, resp.Audits)
		assert.Zero(t, resp.TotalCount)
		assert.False(t, resp.PipelineActive)
	})

	t.Run("unreadable store is a 500", func(t *testing.T) {
		// A directory at the store path makes the load fail mid-read.
		srv := New(config.ServerConfig{Addr: ":0"}, zerolog.Nop(), audit.NewStore(t.TempDir()))

		rr := doRequest(t, srv, http.MethodGet, "/api/live-audits", nil)
		require.Equal(t, http.StatusInternalServerError, rr.Code)

		var errBody errorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errBody))
		assert.Equal(t, "could not load audit results", errBody.Error)
	})

	t.Run("records come back latest first", func(t *testing.T) {
		srv, sink := newTestServer(t)
		require.NoError(t, sink.Append(audit.Record{ID: "older", RiskLevel: audit.RiskHigh}))
		require.NoError(t, sink.Append(audit.Record{ID: "newer", RiskLevel: audit.RiskLow}))

		rr := doRequest(t, srv, http.MethodGet, "/api/live-audits", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp liveAuditsResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Equal(t, 2, resp.TotalCount)
		assert.Equal(t, "newer", resp.Audits[0].ID)
		assert.Equal(t, "older", resp.Audits[1].ID)
		assert.True(t, resp.PipelineActive)
	})
}

func TestHandleHealth(t *testing.T) {
	srv, sink := newTestServer(t)

	rr := doRequest(t, srv, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp healthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "ecosim-api", resp.Service)
	assert.False(t, resp.PathwayOutputExists)

	require.NoError(t, sink.Append(audit.Record{ID: "first"}))
	rr = doRequest(t, srv, http.MethodGet, "/api/health", nil)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.PathwayOutputExists)
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	// Drive one simulation so the counter has a value.
	doRequest(t, srv, http.MethodPost, "/api/simulate", engine.SimulationInput{
		ProductCategory: "tablet",
		LifespanYears:   3,
	})

	rr := doRequest(t, srv, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ecosim_simulations_total 1")
	assert.Contains(t, rr.Body.String(), "ecosim_http_request_duration_seconds")
}

func TestCORSHeaders(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rr := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestIDHeader(t *testing.T) {
	srv, _ := newTestServer(t)

	t.Run("generated when absent", func(t *testing.T) {
		rr := doRequest(t, srv, http.MethodGet, "/api/health", nil)
		assert.NotEmpty(t, rr.Header().Get(requestIDHeader))
	})

	t.Run("echoed when present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set(requestIDHeader, "test-correlation-id")
		rr := httptest.NewRecorder()
		srv.httpServer.Handler.ServeHTTP(rr, req)
		assert.Equal(t, "test-correlation-id", rr.Header().Get(requestIDHeader))
	})
}
