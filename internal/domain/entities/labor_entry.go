package entities

import "time"

type TimeSource string

const (
	TimeSourceManual TimeSource = "manual"
	TimeSourceAuto   TimeSource = "auto"
)

// DefaultOvertimeFactor applies when the caller does not provide one.
const DefaultOvertimeFactor = 1.0

// LaborEntry is a labor cost line attached to a work order.
//
// HourlyRateSnapshot is frozen when the entry is created and never re-read from the employee
// record. TotalCost is persisted and only ever written through Recalculate.
//
// Auto entries (TimeSource == auto) are owned by the reconciliation job, which rewrites
// HoursWorked and TotalCost from the work order's elapsed time.
type LaborEntry struct {
	ID                 string     `json:"id"`
	WorkOrderID        string     `json:"work_order_id"`
	EmployeeID         string     `json:"employee_id"`
	HoursWorked        float64    `json:"hours_worked"`
	HourlyRateSnapshot float64    `json:"hourly_rate_snapshot"`
	OvertimeFactor     float64    `json:"overtime_factor"`
	TotalCost          float64    `json:"total_cost"`
	TimeSource         TimeSource `json:"time_source"`
	WorkDate           time.Time  `json:"work_date"`
	Description        string     `json:"description,omitempty"`
	CreatedBy          string     `json:"created_by,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// Recalculate rounds the hours and refreshes TotalCost from hours, rate and factor.
func (e *LaborEntry) Recalculate() {
	e.HoursWorked = RoundAmount(e.HoursWorked)
	e.TotalCost = LaborCost(e.HoursWorked, e.HourlyRateSnapshot, e.OvertimeFactor)
}

func (e LaborEntry) IsAuto() bool {
	return e.TimeSource == TimeSourceAuto
}
