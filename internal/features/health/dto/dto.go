package dto

const (
	StatusHealthy = "healthy"
	StatusRunning = "running"

	ServiceID   = "sofia-agent"
	ServiceName = "Sofia AI Agent"

	// Environment placeholders
	NotSet     = "not_set"
	Configured = "configured"
	Missing    = "missing"
)

type HealthRecord struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

type StatusRecord struct {
	Service     string              `json:"service"`
	Status      string              `json:"status"`
	Environment EnvironmentSnapshot `json:"environment"`
}

// EnvironmentSnapshot never carries secret values, only whether they are set.
type EnvironmentSnapshot struct {
	LiveKitURL   string `json:"livekit_url"`
	GoogleAPIKey string `json:"google_api_key"`
	CalendarURL  string `json:"calendar_url"`
}
