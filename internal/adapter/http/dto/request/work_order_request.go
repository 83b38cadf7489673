package request

import (
	"encoding/json"
	"strings"

	"fleet_maintenance/internal/domain/entities"
	"fleet_maintenance/internal/usecase"
)

type CreateWorkOrderRequest struct {
	Code          string          `json:"code"`
	EquipmentID   string          `json:"equipment_id" binding:"required"`
	Title         string          `json:"title" binding:"required"`
	Description   string          `json:"description"`
	Specification json.RawMessage `json:"specification" swaggertype:"object"`
}

func (r CreateWorkOrderRequest) ToInput(actor entities.Actor) usecase.CreateWorkOrderInput {
	return usecase.CreateWorkOrderInput{
		Actor:         actor,
		Code:          strings.TrimSpace(r.Code),
		EquipmentID:   strings.TrimSpace(r.EquipmentID),
		Title:         strings.TrimSpace(r.Title),
		Description:   r.Description,
		Specification: r.Specification,
	}
}

type AssigneeRequest struct {
	EmployeeID     string   `json:"employee_id" binding:"required"`
	HourlyRate     float64  `json:"hourly_rate"`
	OvertimeFactor *float64 `json:"overtime_factor"`
}

// StartWorkOrderRequest lists the employees whose time is tracked automatically. An empty
// body starts the work order with nobody assigned.
type StartWorkOrderRequest struct {
	Assignees []AssigneeRequest `json:"assignees" binding:"dive"`
}

func (r StartWorkOrderRequest) ToInput(actor entities.Actor, workOrderID string) usecase.StartWorkOrderInput {
	in := usecase.StartWorkOrderInput{Actor: actor, WorkOrderID: workOrderID}
	for _, a := range r.Assignees {
		in.Assignees = append(in.Assignees, usecase.Assignee{
			EmployeeID:     strings.TrimSpace(a.EmployeeID),
			HourlyRate:     a.HourlyRate,
			OvertimeFactor: a.OvertimeFactor,
		})
	}
	return in
}

type PauseWorkOrderRequest struct {
	Reason string `json:"reason"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r ChangeStatusRequest) ResolveStatus() entities.WorkOrderStatus {
	return entities.WorkOrderStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}
