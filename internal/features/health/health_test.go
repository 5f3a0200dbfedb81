package health_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aouiniamine/sofia-ops/internal/config"
	"github.com/aouiniamine/sofia-ops/internal/features/health"
	"github.com/aouiniamine/sofia-ops/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newReporter(cfg *config.Config) *echo.Echo {
	srv := server.New("127.0.0.1", "0", zap.NewNop(), server.WithEmptyErrorBodies())
	health.New(cfg).RegisterRoutes(srv.Echo())
	return srv.Echo()
}

func get(e *echo.Echo, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestReporter_Health(t *testing.T) {
	rec := get(newReporter(&config.Config{}), http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "sofia-agent", body["service"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestReporter_StatusWithNothingConfigured(t *testing.T) {
	rec := get(newReporter(&config.Config{}), http.MethodGet, "/status")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"service":"Sofia AI Agent","status":"running","environment":{"livekit_url":"not_set","google_api_key":"missing","calendar_url":"not_set"}}`,
		rec.Body.String())
}

func TestReporter_StatusNeverEchoesSecret(t *testing.T) {
	const secret = "AIzaSyD-very-secret"
	cfg := &config.Config{
		LiveKit: config.LiveKitConfig{URL: "wss://sofia.livekit.cloud", APISecret: "lk-secret"},
		Google:  config.GoogleConfig{APIKey: secret},
	}

	rec := get(newReporter(cfg), http.MethodGet, "/status")

	assert.NotContains(t, rec.Body.String(), secret)
	assert.NotContains(t, rec.Body.String(), "lk-secret")

	var body struct {
		Environment map[string]string `json:"environment"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "configured", body.Environment["google_api_key"])
	assert.Equal(t, "wss://sofia.livekit.cloud", body.Environment["livekit_url"])
	assert.Len(t, body.Environment, 3)
}

func TestReporter_OtherRoutesAreEmpty404(t *testing.T) {
	e := newReporter(&config.Config{})

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/"},
		{http.MethodGet, "/healthz"},
		{http.MethodGet, "/health/extra"},
		{http.MethodPost, "/health"},
		{http.MethodDelete, "/status"},
		{http.MethodPost, "/webhook"},
	} {
		rec := get(e, tc.method, tc.path)
		assert.Equal(t, http.StatusNotFound, rec.Code, "%s %s", tc.method, tc.path)
		assert.Empty(t, rec.Body.String(), "%s %s", tc.method, tc.path)
	}
}

func TestReporter_QueryStringIsIgnored(t *testing.T) {
	e := newReporter(&config.Config{})

	for _, path := range []string{"/health?x=1", "/status?verbose=true"} {
		rec := get(e, http.MethodGet, path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.NotEmpty(t, rec.Body.String(), path)
	}
}
