package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	tokendto "github.com/aouiniamine/sofia-ops/internal/features/token/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req tokendto.ConnectRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Test-Client", req.ParticipantName)
		assert.Equal(t, "dental-calendar", req.RoomName)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"jwt","url":"ws://localhost:7880"}`))
	}))
	defer srv.Close()

	resp, err := New(srv.URL).FetchToken(context.Background(), "Test-Client", "dental-calendar")
	require.NoError(t, err)
	assert.Equal(t, "jwt", resp.Token)
	assert.Equal(t, "ws://localhost:7880", resp.URL)
}

func TestFetchToken_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusServiceUnavailable, `{"success":false}`},
		{"missing token", http.StatusOK, `{"url":"ws://localhost:7880"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := New(srv.URL).FetchToken(context.Background(), "a", "b")
			assert.Error(t, err)
		})
	}
}
