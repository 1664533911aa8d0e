package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ventascli/internal/analysis"
	"ventascli/internal/config"
	"ventascli/internal/services"
)

const sampleCSV = `OV,CODIGO,NOMBRE,CATEGORIA,FECHA,CANT,PESO NETO,PESO TOTAL,PRECIO UNITARIO,FACTURADO,CLIENTE
OV-1,A,Pieza A,Fundición,2024-01-10,2,9,10,5,2,Cliente Prueba
OV-2,B,Pieza B,Mecanizado,2024-02-15,1,1,1,100,1,
`

func newTestRouter(t *testing.T) (http.Handler, *services.AnalysisService, string) {
	t.Helper()

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "ventas.csv")
	require.NoError(t, os.WriteFile(inputPath, []byte(sampleCSV), 0644))

	cfg := config.Default()
	cfg.Server.RateLimit.Enabled = false
	paths := &config.Paths{
		InputDir:  dir,
		OutputDir: filepath.Join(dir, "out"),
		LogsDir:   filepath.Join(dir, "logs"),
	}

	svc := services.NewAnalysisService(cfg, paths, nil)
	router := NewRouter(RouterDeps{
		Config:          cfg,
		Paths:           paths,
		AnalysisService: svc,
		HealthService:   services.NewHealthService("test", "", nil),
	})

	return router, svc, inputPath
}

func TestRunEndpoint(t *testing.T) {
	router, _, _ := newTestRouter(t)

	body := strings.NewReader(`{"file":"ventas.csv"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/analysis/run", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result analysis.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "Cliente Prueba", result.Client)
	assert.Equal(t, 110.0, result.Summary.TotalInvoiced)
}

func TestRunEndpointMissingFile(t *testing.T) {
	router, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/analysis/run", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSummaryBeforeRunReturns404(t *testing.T) {
	router, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/analysis/summary", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestQueryEndpointsAfterRun(t *testing.T) {
	router, svc, inputPath := newTestRouter(t)

	_, err := svc.AnalyzeFile(context.Background(), inputPath)
	require.NoError(t, err)

	endpoints := []string{
		"/api/analysis/result",
		"/api/analysis/summary",
		"/api/analysis/categories",
		"/api/analysis/months",
		"/api/analysis/growth",
		"/api/analysis/cadence",
		"/api/analysis/priority",
		"/api/analysis/bcg",
		"/api/analysis/price-per-kg",
		"/api/analysis/top/quantity",
		"/api/analysis/top/revenue",
		"/api/analysis/top/weight",
		"/api/analysis/pareto/revenue",
		"/api/analysis/pareto/weight",
		"/api/analysis/pareto/quantity",
	}

	for _, endpoint := range endpoints {
		req := httptest.NewRequest(http.MethodGet, endpoint, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, "endpoint %s", endpoint)
	}
}

func TestTopEndpointLimitsResults(t *testing.T) {
	router, svc, inputPath := newTestRouter(t)

	_, err := svc.AnalyzeFile(context.Background(), inputPath)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/analysis/top/revenue?n=1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var products []analysis.ProductAggregate
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "B", products[0].Code)
}

func TestTopEndpointRejectsBadInput(t *testing.T) {
	router, svc, inputPath := newTestRouter(t)

	_, err := svc.AnalyzeFile(context.Background(), inputPath)
	require.NoError(t, err)

	tests := []struct {
		name string
		url  string
	}{
		{"unknown metric", "/api/analysis/top/margin"},
		{"n too large", "/api/analysis/top/revenue?n=500"},
		{"n not a number", "/api/analysis/top/revenue?n=abc"},
		{"n zero", "/api/analysis/top/revenue?n=0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHealthAndMetricsEndpoints(t *testing.T) {
	router, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestIDHeaderSet(t *testing.T) {
	router, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
