package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultAppointmentDBPaths = "./dental-calendar/dental_calendar.db,./termine.db,./appointments.db"

type Config struct {
	Server            ServerConfig
	LiveKit           LiveKitConfig
	Google            GoogleConfig
	Calendar          CalendarConfig
	Redis             RedisConfig
	Database          DatabaseConfig
	Agent             AgentConfig
	Connect           ConnectConfig
	Log               LogConfig
	HeartbeatInterval time.Duration
	Env               string
}

type ServerConfig struct {
	Host string
	Port string
}

// LiveKitConfig holds the media server endpoint and the API key pair used to
// sign room access tokens.
type LiveKitConfig struct {
	URL       string
	APIKey    string
	APISecret string
	TokenTTL  time.Duration
}

type GoogleConfig struct {
	APIKey string
}

type CalendarConfig struct {
	URL string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// DatabaseConfig lists candidate appointment database files. Paths that do not
// exist on the current machine are skipped by the tooling.
type DatabaseConfig struct {
	Paths []string
}

type AgentConfig struct {
	WebhookURL string
}

type ConnectConfig struct {
	APIURL string
	Port   string
}

type LogConfig struct {
	Level string
	File  string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host: getEnv("HOST", "0.0.0.0"),
			Port: getEnv("PORT", "8080"),
		},
		LiveKit: LiveKitConfig{
			URL:       getEnv("LIVEKIT_URL", ""),
			APIKey:    getEnv("LIVEKIT_API_KEY", ""),
			APISecret: getEnv("LIVEKIT_API_SECRET", ""),
			TokenTTL:  getEnvAsDuration("LIVEKIT_TOKEN_TTL", 4*time.Hour),
		},
		Google: GoogleConfig{
			APIKey: getEnv("GOOGLE_API_KEY", ""),
		},
		Calendar: CalendarConfig{
			URL: getEnv("CALENDAR_URL", ""),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Database: DatabaseConfig{
			Paths: getEnvAsList("APPOINTMENT_DB_PATHS", defaultAppointmentDBPaths),
		},
		Agent: AgentConfig{
			WebhookURL: getEnv("AGENT_WEBHOOK_URL", "http://localhost:8080/webhook"),
		},
		Connect: ConnectConfig{
			APIURL: getEnv("CONNECT_API_URL", "http://localhost:3005/api/sofia/connect"),
			Port:   getEnv("TOKEN_PORT", "3005"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
		HeartbeatInterval: getEnvAsDuration("HEARTBEAT_INTERVAL", 30*time.Second),
		Env:               getEnv("ENV", "development"),
	}
}

// MinDuration is the shortest accepted value for duration settings.
const MinDuration = time.Second

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// HasLiveKitCredentials reports whether both halves of the API key pair are set.
func (c *Config) HasLiveKitCredentials() bool {
	return c.LiveKit.APIKey != "" && c.LiveKit.APISecret != ""
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvAsDuration falls back to defaultValue when the value does not parse or
// is shorter than one second, the finest period the scheduler honours.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil && d >= MinDuration {
			return d
		}
	}
	return defaultValue
}

func getEnvAsList(key, defaultValue string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, defaultValue), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
