package entities

import "time"

type TimeEventType string

const (
	TimeEventPause  TimeEventType = "pause"
	TimeEventResume TimeEventType = "resume"
)

// TimeTrackingEvent is one entry of a work order's append-only pause/resume log.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (work_order_id-index): work_order_id
type TimeTrackingEvent struct {
	ID          string        `json:"id"`
	WorkOrderID string        `json:"work_order_id"`
	Event       TimeEventType `json:"event"`
	Timestamp   time.Time     `json:"timestamp"`
	Reason      string        `json:"reason,omitempty"`
	CreatedBy   string        `json:"created_by,omitempty"`
}
