package dto

// Event types
const (
	EventRoomStarted = "room_started"
)

const DefaultEmptyTimeout = 300

// Webhook payload (sent to the agent), shaped like the media server's own
// room webhooks.

type RoomStartedEvent struct {
	Event     string   `json:"event"`
	Room      RoomInfo `json:"room"`
	ID        string   `json:"id"`
	CreatedAt int64    `json:"created_at"`
}

type RoomInfo struct {
	SID          string `json:"sid"`
	Name         string `json:"name"`
	EmptyTimeout int    `json:"empty_timeout"`
	CreationTime int64  `json:"creation_time"`
	Metadata     string `json:"metadata"`
}
