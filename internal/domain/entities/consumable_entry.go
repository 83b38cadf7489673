package entities

import "time"

type ConsumableEntryType string

const (
	ConsumableEntryPlanned ConsumableEntryType = "planned"
	ConsumableEntryActual  ConsumableEntryType = "actual"
)

func (t ConsumableEntryType) Valid() bool {
	return t == ConsumableEntryPlanned || t == ConsumableEntryActual
}

// ConsumableEntry records lubricants and other materials, either planned by the foreman or
// actually used by the team.
type ConsumableEntry struct {
	ID               string              `json:"id"`
	WorkOrderID      string              `json:"work_order_id"`
	EntryType        ConsumableEntryType `json:"entry_type"`
	ItemName         string              `json:"item_name"`
	Unit             string              `json:"unit,omitempty"`
	Quantity         float64             `json:"quantity"`
	UnitCostSnapshot float64             `json:"unit_cost_snapshot"`
	TotalCost        float64             `json:"total_cost"`
	Notes            string              `json:"notes,omitempty"`
	CreatedBy        string              `json:"created_by,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
}

// Recalculate refreshes TotalCost from quantity and unit cost.
func (e *ConsumableEntry) Recalculate() {
	e.TotalCost = LineCost(e.Quantity, e.UnitCostSnapshot)
}
