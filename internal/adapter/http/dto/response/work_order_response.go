package response

import (
	"encoding/json"
	"time"

	"fleet_maintenance/internal/domain/entities"
	"fleet_maintenance/internal/domain/timeledger"
)

type WorkOrderResponse struct {
	ID                       string                `json:"id"`
	Code                     string                `json:"code"`
	EquipmentID              string                `json:"equipment_id"`
	Title                    string                `json:"title"`
	Description              string                `json:"description,omitempty"`
	Status                   string                `json:"status"`
	ApprovalStatus           string                `json:"approval_status"`
	StartedAt                *time.Time            `json:"started_at,omitempty"`
	CompletedAt              *time.Time            `json:"completed_at,omitempty"`
	CompletionApprovalStatus string                `json:"completion_approval_status"`
	CompletionApprovedBy     string                `json:"completion_approved_by,omitempty"`
	CompletionApprovedAt     *time.Time            `json:"completion_approved_at,omitempty"`
	CompletionNotes          string                `json:"completion_notes,omitempty"`
	Specification            json.RawMessage       `json:"specification,omitempty" swaggertype:"object"`
	CostSummary              *entities.CostSummary `json:"cost_summary,omitempty"`
	CreatedBy                string                `json:"created_by"`
	CreatedAt                time.Time             `json:"created_at"`
	UpdatedAt                time.Time             `json:"updated_at"`
}

func FromWorkOrder(wo entities.WorkOrder) WorkOrderResponse {
	return WorkOrderResponse{
		ID:                       wo.ID,
		Code:                     wo.Code,
		EquipmentID:              wo.EquipmentID,
		Title:                    wo.Title,
		Description:              wo.Description,
		Status:                   string(wo.Status),
		ApprovalStatus:           string(wo.ApprovalStatus),
		StartedAt:                wo.StartedAt,
		CompletedAt:              wo.CompletedAt,
		CompletionApprovalStatus: string(wo.CompletionApprovalStatus),
		CompletionApprovedBy:     wo.CompletionApprovedBy,
		CompletionApprovedAt:     wo.CompletionApprovedAt,
		CompletionNotes:          wo.CompletionNotes,
		Specification:            wo.Specification,
		CostSummary:              wo.CostSummary,
		CreatedBy:                wo.CreatedBy,
		CreatedAt:                wo.CreatedAt,
		UpdatedAt:                wo.UpdatedAt,
	}
}

type ElapsedResponse struct {
	WorkOrderID  string  `json:"work_order_id"`
	ElapsedMs    int64   `json:"elapsed_ms"`
	ElapsedHours float64 `json:"elapsed_hours"`
	IsPaused     bool    `json:"is_paused"`
	PausedReason string  `json:"paused_reason,omitempty"`
}

func FromElapsed(workOrderID string, e timeledger.Elapsed) ElapsedResponse {
	return ElapsedResponse{
		WorkOrderID:  workOrderID,
		ElapsedMs:    e.ElapsedMs,
		ElapsedHours: e.ElapsedHours,
		IsPaused:     e.IsPaused,
		PausedReason: e.PausedReason,
	}
}
