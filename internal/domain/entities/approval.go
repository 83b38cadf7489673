package entities

import "time"

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

type ApprovalReferenceType string

const (
	ApprovalReferenceWorkOrder      ApprovalReferenceType = "work_order"
	ApprovalReferenceWorkCompletion ApprovalReferenceType = "work_completion"
)

// Approval links a reference entity to its approver and decision.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (reference_id-index): reference_id
//
// CostSnapshot keeps the work order's cost summary at decision time for audit.
type Approval struct {
	ID            string                `json:"id"`
	ReferenceType ApprovalReferenceType `json:"reference_type"`
	ReferenceID   string                `json:"reference_id"`
	ApproverID    string                `json:"approver_id,omitempty"`
	Status        ApprovalStatus        `json:"status"`
	Notes         string                `json:"notes,omitempty"`
	RequestedBy   string                `json:"requested_by,omitempty"`
	RequestedAt   time.Time             `json:"requested_at"`
	DecidedAt     *time.Time            `json:"decided_at,omitempty"`
	CostSnapshot  *CostSummary          `json:"cost_snapshot,omitempty"`
}

func (a Approval) IsPending() bool {
	return a.Status == ApprovalStatusPending
}
