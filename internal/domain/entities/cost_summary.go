package entities

import "time"

type VarianceStatus string

const (
	VarianceOverBudget  VarianceStatus = "over_budget"
	VarianceUnderBudget VarianceStatus = "under_budget"
	VarianceOnBudget    VarianceStatus = "on_budget"
)

// CostSummary is derived from a work order's entries and is never authoritative on its own.
//
// CostVariance = TotalActualCost - TotalPlannedCost: positive means over budget.
// Labor has no planned track, so TotalPlannedCost only covers consumables and outsourcing.
type CostSummary struct {
	WorkOrderID string `json:"work_order_id"`

	LaborActualCost float64 `json:"labor_actual_cost"`

	PlannedConsumableCost float64 `json:"planned_consumable_cost"`
	ActualConsumableCost  float64 `json:"actual_consumable_cost"`

	PlannedOutsourceCost float64 `json:"planned_outsource_cost"`
	ActualOutsourceCost  float64 `json:"actual_outsource_cost"`

	TotalPlannedCost float64        `json:"total_planned_cost"`
	TotalActualCost  float64        `json:"total_actual_cost"`
	CostVariance     float64        `json:"cost_variance"`
	VarianceStatus   VarianceStatus `json:"variance_status"`

	CalculatedAt time.Time `json:"calculated_at"`
}
