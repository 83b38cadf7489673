package entities

import (
	"encoding/json"
	"time"
)

// WorkOrderStatus represents the lifecycle of a maintenance work order.
//
// Domain notes:
//   - awaiting_parts and waiting_purchase are "blocking" statuses: the timer is implicitly
//     paused while the order sits in one of them.
//   - completed and cancelled are terminal.

type WorkOrderStatus string

const (
	WorkOrderStatusPending         WorkOrderStatus = "pending"
	WorkOrderStatusInProgress      WorkOrderStatus = "in_progress"
	WorkOrderStatusAwaitingParts   WorkOrderStatus = "awaiting_parts"
	WorkOrderStatusWaitingPurchase WorkOrderStatus = "waiting_purchase"
	WorkOrderStatusCompleted       WorkOrderStatus = "completed"
	WorkOrderStatusCancelled       WorkOrderStatus = "cancelled"
)

// ActiveWorkOrderStatuses are the statuses the reconciliation job scans.
var ActiveWorkOrderStatuses = []WorkOrderStatus{
	WorkOrderStatusInProgress,
	WorkOrderStatusAwaitingParts,
	WorkOrderStatusWaitingPurchase,
}

func (s WorkOrderStatus) Valid() bool {
	switch s {
	case WorkOrderStatusPending, WorkOrderStatusInProgress, WorkOrderStatusAwaitingParts,
		WorkOrderStatusWaitingPurchase, WorkOrderStatusCompleted, WorkOrderStatusCancelled:
		return true
	}
	return false
}

func (s WorkOrderStatus) IsActive() bool {
	for _, a := range ActiveWorkOrderStatuses {
		if s == a {
			return true
		}
	}
	return false
}

// IsBlocking reports whether the status implicitly pauses the work timer.
func (s WorkOrderStatus) IsBlocking() bool {
	return s == WorkOrderStatusAwaitingParts || s == WorkOrderStatusWaitingPurchase
}

func (s WorkOrderStatus) IsTerminal() bool {
	return s == WorkOrderStatusCompleted || s == WorkOrderStatusCancelled
}

// BlockingReason is the label shown next to a paused timer.
func (s WorkOrderStatus) BlockingReason() string {
	switch s {
	case WorkOrderStatusAwaitingParts:
		return "Awaiting parts"
	case WorkOrderStatusWaitingPurchase:
		return "Waiting for purchase"
	}
	return ""
}

type CompletionApprovalStatus string

const (
	CompletionApprovalNotRequested CompletionApprovalStatus = "not_requested"
	CompletionApprovalPending      CompletionApprovalStatus = "pending"
	CompletionApprovalApproved     CompletionApprovalStatus = "approved"
)

// WorkOrder is a maintenance job executed on a fleet asset.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (status-index): status
//
// Specification is an opaque JSON document (manufacturer specs, checklists) kept verbatim.
// CostSummary is a derived snapshot written only by the cost refresh path.
type WorkOrder struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	EquipmentID string          `json:"equipment_id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Status      WorkOrderStatus `json:"status"`

	ApprovalStatus ApprovalStatus `json:"approval_status"`

	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	CompletionApprovalStatus CompletionApprovalStatus `json:"completion_approval_status"`
	CompletionApprovedBy     string                   `json:"completion_approved_by,omitempty"`
	CompletionApprovedAt     *time.Time               `json:"completion_approved_at,omitempty"`
	CompletionNotes          string                   `json:"completion_notes,omitempty"`

	Specification json.RawMessage `json:"specification,omitempty"`
	CostSummary   *CostSummary    `json:"cost_summary,omitempty"`

	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
