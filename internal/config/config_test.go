package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "LIVEKIT_URL", "GOOGLE_API_KEY", "CALENDAR_URL", "APPOINTMENT_DB_PATHS", "HEARTBEAT_INTERVAL", "LIVEKIT_TOKEN_TTL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Empty(t, cfg.LiveKit.URL)
	assert.Empty(t, cfg.Google.APIKey)
	assert.Equal(t, 4*time.Hour, cfg.LiveKit.TokenTTL)
	assert.Equal(t, 30*time.Second, cfg.HeartbeatInterval)
	assert.Equal(t, []string{
		"./dental-calendar/dental_calendar.db",
		"./termine.db",
		"./appointments.db",
	}, cfg.Database.Paths)
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.HasLiveKitCredentials())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LIVEKIT_URL", "wss://media.example.com")
	t.Setenv("LIVEKIT_API_KEY", "APIkey")
	t.Setenv("LIVEKIT_API_SECRET", "s3cret")
	t.Setenv("APPOINTMENT_DB_PATHS", " a.db , ,b.db")
	t.Setenv("HEARTBEAT_INTERVAL", "5s")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("ENV", "production")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "wss://media.example.com", cfg.LiveKit.URL)
	assert.True(t, cfg.HasLiveKitCredentials())
	assert.Equal(t, []string{"a.db", "b.db"}, cfg.Database.Paths)
	assert.Equal(t, 5*time.Second, cfg.HeartbeatInterval)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")
	t.Setenv("HEARTBEAT_INTERVAL", "-1s")
	t.Setenv("LIVEKIT_TOKEN_TTL", "forever")

	cfg := Load()

	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Equal(t, 30*time.Second, cfg.HeartbeatInterval)
	assert.Equal(t, 4*time.Hour, cfg.LiveKit.TokenTTL)
}

func TestLoad_SubSecondDurationsFallBack(t *testing.T) {
	t.Setenv("HEARTBEAT_INTERVAL", "500ms")
	t.Setenv("LIVEKIT_TOKEN_TTL", "999ms")

	cfg := Load()

	assert.Equal(t, 30*time.Second, cfg.HeartbeatInterval)
	assert.Equal(t, 4*time.Hour, cfg.LiveKit.TokenTTL)

	t.Setenv("HEARTBEAT_INTERVAL", "1s")
	assert.Equal(t, time.Second, Load().HeartbeatInterval)
}
