package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestRun_ServesUntilCancelled(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	srv := New("127.0.0.1", "0", zap.NewNop())
	srv.Echo().GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})
	require.NoError(t, srv.Listen())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, 0) }()

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	resp, err := client.Get("http://" + srv.Addr().String() + "/ping")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pong", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancellation")
	}

	_, err = net.DialTimeout("tcp", srv.Addr().String(), 200*time.Millisecond)
	assert.Error(t, err, "listener should be released")
}

func TestListen_PortInUse(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer occupied.Close()

	_, port, _ := net.SplitHostPort(occupied.Addr().String())
	srv := New("127.0.0.1", port, zap.NewNop())

	err = srv.Listen()
	assert.ErrorContains(t, err, "failed to bind")

	err = srv.Run(context.Background(), 0)
	assert.Error(t, err)
}

func TestWithEmptyErrorBodies(t *testing.T) {
	srv := New("127.0.0.1", "0", zap.NewNop(), WithEmptyErrorBodies())
	srv.Echo().GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"unknown path", http.MethodGet, "/metrics"},
		{"wrong method", http.MethodPost, "/health"},
		{"root", http.MethodGet, "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.Echo().ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Empty(t, rec.Body.String())
		})
	}
}

func TestWithValidator(t *testing.T) {
	type payload struct {
		Name string `json:"name" validate:"required,max=4"`
	}

	srv := New("127.0.0.1", "0", zap.NewNop(), WithValidator())
	srv.Echo().POST("/echo", func(c echo.Context) error {
		var p payload
		if err := c.Bind(&p); err != nil {
			return err
		}
		if err := c.Validate(&p); err != nil {
			return c.NoContent(http.StatusBadRequest)
		}
		return c.NoContent(http.StatusOK)
	})

	for body, want := range map[string]int{
		`{"name":"ok"}`:      http.StatusOK,
		`{"name":""}`:        http.StatusBadRequest,
		`{"name":"toolong"}`: http.StatusBadRequest,
	} {
		req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		srv.Echo().ServeHTTP(rec, req)
		assert.Equal(t, want, rec.Code, body)
	}
}
