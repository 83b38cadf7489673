package entities

import "time"

// OutsourceEntry is a service performed by an external vendor. PlannedCost is optional;
// ActualCost is always present.
type OutsourceEntry struct {
	ID          string    `json:"id"`
	WorkOrderID string    `json:"work_order_id"`
	VendorName  string    `json:"vendor_name"`
	Description string    `json:"description"`
	PlannedCost *float64  `json:"planned_cost,omitempty"`
	ActualCost  float64   `json:"actual_cost"`
	CreatedBy   string    `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Recalculate normalizes the amounts to cents.
func (e *OutsourceEntry) Recalculate() {
	e.ActualCost = RoundAmount(e.ActualCost)
	if e.PlannedCost != nil {
		v := RoundAmount(*e.PlannedCost)
		e.PlannedCost = &v
	}
}
