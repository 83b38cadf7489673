package request

import (
	"strings"
	"time"

	"fleet_maintenance/internal/domain/entities"
	"fleet_maintenance/internal/usecase"
)

// LaborEntryRequest accepts the worked time either as hours or as minutes.
type LaborEntryRequest struct {
	EmployeeID     string     `json:"employee_id" binding:"required"`
	Hours          *float64   `json:"hours"`
	Minutes        *float64   `json:"minutes"`
	HourlyRate     float64    `json:"hourly_rate"`
	OvertimeFactor *float64   `json:"overtime_factor"`
	WorkDate       *time.Time `json:"work_date"`
	Description    string     `json:"description"`
}

func (r LaborEntryRequest) ToInput(actor entities.Actor, workOrderID string) usecase.LaborEntryInput {
	return usecase.LaborEntryInput{
		Actor:          actor,
		WorkOrderID:    workOrderID,
		EmployeeID:     strings.TrimSpace(r.EmployeeID),
		Hours:          r.Hours,
		Minutes:        r.Minutes,
		HourlyRate:     r.HourlyRate,
		OvertimeFactor: r.OvertimeFactor,
		WorkDate:       r.WorkDate,
		Description:    r.Description,
	}
}

type UpdateLaborEntryRequest struct {
	OvertimeFactor *float64 `json:"overtime_factor"`
	Description    *string  `json:"description"`
}

func (r UpdateLaborEntryRequest) ToPatch(actor entities.Actor, entryID string) usecase.LaborEntryPatch {
	return usecase.LaborEntryPatch{
		Actor:          actor,
		EntryID:        entryID,
		OvertimeFactor: r.OvertimeFactor,
		Description:    r.Description,
	}
}

// ConsumableEntryRequest has no entry type: foremen record planned usage, every other role
// records actual usage.
type ConsumableEntryRequest struct {
	ItemName string  `json:"item_name" binding:"required"`
	Unit     string  `json:"unit"`
	Quantity float64 `json:"quantity"`
	UnitCost float64 `json:"unit_cost"`
	Notes    string  `json:"notes"`
}

func (r ConsumableEntryRequest) ToInput(actor entities.Actor, workOrderID string) usecase.ConsumableEntryInput {
	return usecase.ConsumableEntryInput{
		Actor:       actor,
		WorkOrderID: workOrderID,
		EntryType:   entities.ConsumableEntryTypeForRole(actor.Role),
		ItemName:    strings.TrimSpace(r.ItemName),
		Unit:        r.Unit,
		Quantity:    r.Quantity,
		UnitCost:    r.UnitCost,
		Notes:       r.Notes,
	}
}

type OutsourceEntryRequest struct {
	VendorName  string   `json:"vendor_name" binding:"required"`
	Description string   `json:"description"`
	PlannedCost *float64 `json:"planned_cost"`
	ActualCost  float64  `json:"actual_cost"`
}

func (r OutsourceEntryRequest) ToInput(actor entities.Actor, workOrderID string) usecase.OutsourceEntryInput {
	return usecase.OutsourceEntryInput{
		Actor:       actor,
		WorkOrderID: workOrderID,
		VendorName:  strings.TrimSpace(r.VendorName),
		Description: r.Description,
		PlannedCost: r.PlannedCost,
		ActualCost:  r.ActualCost,
	}
}
