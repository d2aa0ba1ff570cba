package category

import "time"

const (
	EventCategoryChanged = "CategoryChanged"

	// EventSource tags events written by this service so its own listener can skip them.
	EventSource = "omnipos-catalog-service"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

type ChangedEvent struct {
	EventID   string         `json:"event_id"`
	EventType string         `json:"event_type"`
	Source    string         `json:"source"`
	Payload   ChangedPayload `json:"payload"`
	Timestamp time.Time      `json:"timestamp"`
}

type ChangedPayload struct {
	CategoryID int64  `json:"category_id"`
	Action     string `json:"action"`
	Version    int64  `json:"version"`
}
