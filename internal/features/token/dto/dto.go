package dto

// Requests

// ConnectRequest uses the camelCase field names the browser client and the
// room probe already send.
type ConnectRequest struct {
	ParticipantName string `json:"participantName" validate:"required,max=128"`
	RoomName        string `json:"roomName" validate:"required,max=128"`
}

// Responses

type ConnectResponse struct {
	Token     string `json:"token"`
	URL       string `json:"url"`
	Room      string `json:"room"`
	Identity  string `json:"identity"`
	ExpiresIn int64  `json:"expires_in"`
}

type SessionListResponse struct {
	Room       string   `json:"room"`
	Identities []string `json:"identities"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type ReadyResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}
