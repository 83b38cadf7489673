package entities

import "time"

// Notification is the payload published after a privileged create/update/delete.
type Notification struct {
	EventType    string         `json:"event_type"`
	ActorID      string         `json:"actor_id,omitempty"`
	ActorRole    Role           `json:"actor_role,omitempty"`
	WorkOrderID  string         `json:"work_order_id,omitempty"`
	ResourceType string         `json:"resource_type"`
	ResourceID   string         `json:"resource_id"`
	OccurredAt   time.Time      `json:"occurred_at"`
	Payload      map[string]any `json:"payload,omitempty"`
}
