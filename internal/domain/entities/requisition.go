package entities

import "time"

// RequisitionStatus is derived from the foreman decisions of its lines and is never set
// directly.
type RequisitionStatus string

const (
	RequisitionStatusPending           RequisitionStatus = "pending"
	RequisitionStatusInReview          RequisitionStatus = "in_review"
	RequisitionStatusApproved          RequisitionStatus = "approved"
	RequisitionStatusPartiallyApproved RequisitionStatus = "partially_approved"
	RequisitionStatusRejected          RequisitionStatus = "rejected"
)

// ReviewTrack identifies one of the independent decision tracks of a requisition line.
type ReviewTrack string

const (
	ReviewTrackForeman     ReviewTrack = "foreman"
	ReviewTrackStorekeeper ReviewTrack = "storekeeper"
)

func (t ReviewTrack) Valid() bool {
	return t == ReviewTrackForeman || t == ReviewTrackStorekeeper
}

// LineDecision is the outcome of one review track. Remarks are mandatory on rejection.
type LineDecision struct {
	Status     ApprovalStatus `json:"status"`
	ReviewerID string         `json:"reviewer_id,omitempty"`
	DecidedAt  *time.Time     `json:"decided_at,omitempty"`
	Remarks    string         `json:"remarks,omitempty"`
}

func (d LineDecision) IsPending() bool {
	return d.Status == "" || d.Status == ApprovalStatusPending
}

// Requisition is a request for parts/resources raised against a work order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (work_order_id-index): work_order_id
//
// Lines live in their own table (GSI requisition_id-index) so each decision can be
// written conditionally.
type Requisition struct {
	ID          string            `json:"id"`
	WorkOrderID string            `json:"work_order_id"`
	RequestedBy string            `json:"requested_by"`
	Notes       string            `json:"notes,omitempty"`
	Status      RequisitionStatus `json:"status"`
	Lines       []RequisitionLine `json:"lines"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type RequisitionLine struct {
	ID                string       `json:"id"`
	RequisitionID     string       `json:"requisition_id"`
	LineNumber        int          `json:"line_number"`
	PartID            string       `json:"part_id"`
	Description       string       `json:"description,omitempty"`
	QuantityRequested float64      `json:"quantity_requested"`
	QuantityApproved  *float64     `json:"quantity_approved,omitempty"`
	Foreman           LineDecision `json:"foreman"`
	Storekeeper       LineDecision `json:"storekeeper"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

// Decision returns the decision of the given track.
func (l RequisitionLine) Decision(track ReviewTrack) LineDecision {
	if track == ReviewTrackStorekeeper {
		return l.Storekeeper
	}
	return l.Foreman
}

// SetDecision overwrites the decision of the given track.
func (l *RequisitionLine) SetDecision(track ReviewTrack, d LineDecision) {
	if track == ReviewTrackStorekeeper {
		l.Storekeeper = d
		return
	}
	l.Foreman = d
}

// DeriveRequisitionStatus folds the foreman decisions of all lines into the requisition
// status. A requisition only leaves review once every line has been decided.
func DeriveRequisitionStatus(lines []RequisitionLine) RequisitionStatus {
	if len(lines) == 0 {
		return RequisitionStatusPending
	}

	var pending, approved, rejected int
	for _, l := range lines {
		switch {
		case l.Foreman.IsPending():
			pending++
		case l.Foreman.Status == ApprovalStatusApproved:
			approved++
		case l.Foreman.Status == ApprovalStatusRejected:
			rejected++
		}
	}

	switch {
	case pending == len(lines):
		return RequisitionStatusPending
	case pending > 0:
		return RequisitionStatusInReview
	case approved == len(lines):
		return RequisitionStatusApproved
	case rejected == len(lines):
		return RequisitionStatusRejected
	default:
		return RequisitionStatusPartiallyApproved
	}
}
