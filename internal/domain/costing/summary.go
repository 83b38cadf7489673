// Package costing folds a work order's cost entries into a CostSummary.
package costing

import (
	"time"

	"fleet_maintenance/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Entries groups everything attached to one work order that carries a cost.
type Entries struct {
	Labor       []entities.LaborEntry
	Consumables []entities.ConsumableEntry
	Outsource   []entities.OutsourceEntry
}

// Summarize sums the persisted totals of every entry. It never recomputes an entry's
// TotalCost: that happens once, when the entry is written.
func Summarize(workOrderID string, in Entries, at time.Time) entities.CostSummary {
	labor := decimal.Zero
	for _, e := range in.Labor {
		labor = labor.Add(decimal.NewFromFloat(e.TotalCost))
	}

	plannedConsumable, actualConsumable := decimal.Zero, decimal.Zero
	for _, e := range in.Consumables {
		switch e.EntryType {
		case entities.ConsumableEntryPlanned:
			plannedConsumable = plannedConsumable.Add(decimal.NewFromFloat(e.TotalCost))
		case entities.ConsumableEntryActual:
			actualConsumable = actualConsumable.Add(decimal.NewFromFloat(e.TotalCost))
		}
	}

	plannedOutsource, actualOutsource := decimal.Zero, decimal.Zero
	for _, e := range in.Outsource {
		if e.PlannedCost != nil {
			plannedOutsource = plannedOutsource.Add(decimal.NewFromFloat(*e.PlannedCost))
		}
		actualOutsource = actualOutsource.Add(decimal.NewFromFloat(e.ActualCost))
	}

	totalPlanned := plannedConsumable.Add(plannedOutsource)
	totalActual := labor.Add(actualConsumable).Add(actualOutsource)
	variance := totalActual.Sub(totalPlanned)

	return entities.CostSummary{
		WorkOrderID:           workOrderID,
		LaborActualCost:       labor.InexactFloat64(),
		PlannedConsumableCost: plannedConsumable.InexactFloat64(),
		ActualConsumableCost:  actualConsumable.InexactFloat64(),
		PlannedOutsourceCost:  plannedOutsource.InexactFloat64(),
		ActualOutsourceCost:   actualOutsource.InexactFloat64(),
		TotalPlannedCost:      totalPlanned.InexactFloat64(),
		TotalActualCost:       totalActual.InexactFloat64(),
		CostVariance:          variance.InexactFloat64(),
		VarianceStatus:        varianceStatus(variance),
		CalculatedAt:          at,
	}
}

func varianceStatus(v decimal.Decimal) entities.VarianceStatus {
	switch v.Sign() {
	case 1:
		return entities.VarianceOverBudget
	case -1:
		return entities.VarianceUnderBudget
	}
	return entities.VarianceOnBudget
}
