package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aouiniamine/sofia-ops/internal/features/webhook/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoomStartedEvent(t *testing.T) {
	now := time.Unix(1760000000, 0)

	event := NewRoomStartedEvent("sofia-room", now)

	assert.Equal(t, dto.EventRoomStarted, event.Event)
	assert.Equal(t, "sofia-room", event.Room.Name)
	assert.Equal(t, 300, event.Room.EmptyTimeout)
	assert.Equal(t, int64(1760000000), event.Room.CreationTime)
	assert.Equal(t, int64(1760000000), event.CreatedAt)
	assert.True(t, strings.HasPrefix(event.Room.SID, "RM_"))
	assert.True(t, strings.HasPrefix(event.ID, "EV_"))
	assert.Equal(t, event.Room.SID[3:], event.ID[3:])

	other := NewRoomStartedEvent("sofia-room", now)
	assert.NotEqual(t, event.ID, other.ID)
}

func TestTriggerRoomStarted_Delivers(t *testing.T) {
	var got map[string]interface{}
	var contentType, eventHeader string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/webhook", r.URL.Path)
		contentType = r.Header.Get("Content-Type")
		eventHeader = r.Header.Get("X-Webhook-Event")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sender := NewWebhookSender(srv.URL + "/webhook")
	event, err := sender.TriggerRoomStarted(context.Background(), "sofia-room")
	require.NoError(t, err)

	assert.Contains(t, contentType, "application/json")
	assert.Equal(t, "room_started", eventHeader)
	assert.Equal(t, "room_started", got["event"])
	assert.Equal(t, event.ID, got["id"])

	room, ok := got["room"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "sofia-room", room["name"])
	assert.Equal(t, "", room["metadata"])
	assert.EqualValues(t, 300, room["empty_timeout"])
}

func TestTriggerRoomStarted_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("queued"))
	}))
	defer srv.Close()

	_, err := NewWebhookSender(srv.URL).TriggerRoomStarted(context.Background(), "sofia-room")

	var delivery *DeliveryError
	require.True(t, errors.As(err, &delivery))
	assert.Equal(t, http.StatusAccepted, delivery.StatusCode)
	assert.Equal(t, "queued", delivery.Body)
}

func TestTriggerRoomStarted_AgentDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewWebhookSender(url).TriggerRoomStarted(context.Background(), "sofia-room")

	assert.ErrorIs(t, err, ErrAgentUnreachable)
}
