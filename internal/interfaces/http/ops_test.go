package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	resp, raw := env.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok","service":"ventas-api-test"}`, string(raw))
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"), "cada respuesta lleva su request id")
}

func TestMetrics_CuentaPorRuta(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodGet, "/productos/1", nil)
	env.do(t, http.MethodGet, "/productos/2", nil)

	resp, raw := env.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := string(raw)
	assert.Contains(t, body, `http_requests_total{method="GET",path="/productos/:id",status="404"} 2`)
	assert.Contains(t, body, "http_request_duration_seconds_bucket")
}

func TestOpenAPI(t *testing.T) {
	env := newTestEnv(t)

	resp, raw := env.do(t, http.MethodGet, "/openapi.json", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"openapi":"3.0.0"}`, string(raw))
}
