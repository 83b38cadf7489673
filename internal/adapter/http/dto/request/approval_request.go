package request

import (
	"strings"

	"fleet_maintenance/internal/domain/entities"
	"fleet_maintenance/internal/usecase"
)

type DecisionRequest struct {
	Notes string `json:"notes"`
}

// CompletionApprovalRequest carries optional notes; a nil Notes keeps whatever was already
// recorded on the work order.
type CompletionApprovalRequest struct {
	Notes *string `json:"notes"`
}

type RequisitionLineRequest struct {
	PartID      string  `json:"part_id" binding:"required"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity" binding:"gt=0"`
}

type CreateRequisitionRequest struct {
	Notes string                   `json:"notes"`
	Lines []RequisitionLineRequest `json:"lines" binding:"required,min=1,dive"`
}

func (r CreateRequisitionRequest) ToInput(actor entities.Actor, workOrderID string) usecase.CreateRequisitionInput {
	in := usecase.CreateRequisitionInput{Actor: actor, WorkOrderID: workOrderID, Notes: r.Notes}
	for _, l := range r.Lines {
		in.Lines = append(in.Lines, usecase.RequisitionLineInput{
			PartID:      strings.TrimSpace(l.PartID),
			Description: l.Description,
			Quantity:    l.Quantity,
		})
	}
	return in
}

// LineDecisionRequest decides one review track of a requisition line. Track may be left
// empty to use the caller's own track.
type LineDecisionRequest struct {
	Track    string   `json:"track"`
	Quantity *float64 `json:"quantity"`
	Remarks  string   `json:"remarks"`
}

func (r LineDecisionRequest) ToInput(actor entities.Actor, lineID string) usecase.LineDecisionInput {
	return usecase.LineDecisionInput{
		Actor:    actor,
		LineID:   lineID,
		Track:    entities.ReviewTrack(strings.ToLower(strings.TrimSpace(r.Track))),
		Quantity: r.Quantity,
		Remarks:  strings.TrimSpace(r.Remarks),
	}
}
