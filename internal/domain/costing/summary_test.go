package costing

import (
	"testing"
	"time"

	"fleet_maintenance/internal/domain/entities"
)

var calcAt = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

func ptr(v float64) *float64 { return &v }

func consumable(kind entities.ConsumableEntryType, qty, unit float64) entities.ConsumableEntry {
	e := entities.ConsumableEntry{EntryType: kind, Quantity: qty, UnitCostSnapshot: unit}
	e.Recalculate()
	return e
}

func TestSummarize_LubricantScenario(t *testing.T) {
	s := Summarize("wo-1", Entries{
		Consumables: []entities.ConsumableEntry{
			consumable(entities.ConsumableEntryPlanned, 10, 5),
			consumable(entities.ConsumableEntryActual, 12, 5),
		},
	}, calcAt)

	if s.PlannedConsumableCost != 50 || s.ActualConsumableCost != 60 {
		t.Fatalf("unexpected consumable costs: %+v", s)
	}
	if s.CostVariance != 10 || s.VarianceStatus != entities.VarianceOverBudget {
		t.Fatalf("unexpected variance: %+v", s)
	}
	if s.WorkOrderID != "wo-1" || !s.CalculatedAt.Equal(calcAt) {
		t.Fatalf("unexpected metadata: %+v", s)
	}
}

func TestSummarize_VarianceSign(t *testing.T) {
	cases := []struct {
		name     string
		planned  float64
		actual   float64
		variance float64
		status   entities.VarianceStatus
	}{
		{name: "over", planned: 1000, actual: 1200, variance: 200, status: entities.VarianceOverBudget},
		{name: "under", planned: 1000, actual: 800, variance: -200, status: entities.VarianceUnderBudget},
		{name: "on", planned: 1000, actual: 1000, variance: 0, status: entities.VarianceOnBudget},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Summarize("wo-1", Entries{
				Outsource: []entities.OutsourceEntry{{PlannedCost: ptr(tc.planned), ActualCost: tc.actual}},
			}, calcAt)

			if s.CostVariance != tc.variance || s.VarianceStatus != tc.status {
				t.Fatalf("expected variance %v/%s, got %v/%s", tc.variance, tc.status, s.CostVariance, s.VarianceStatus)
			}
			if s.CostVariance != s.TotalActualCost-s.TotalPlannedCost {
				t.Fatalf("variance must equal actual - planned: %+v", s)
			}
		})
	}
}

func TestSummarize_AllCategories(t *testing.T) {
	manual := entities.LaborEntry{HoursWorked: 2, HourlyRateSnapshot: 50, OvertimeFactor: 1, TimeSource: entities.TimeSourceManual}
	manual.Recalculate()
	auto := entities.LaborEntry{HoursWorked: 1.5, HourlyRateSnapshot: 40, OvertimeFactor: 1.5, TimeSource: entities.TimeSourceAuto}
	auto.Recalculate()

	s := Summarize("wo-2", Entries{
		Labor: []entities.LaborEntry{manual, auto},
		Consumables: []entities.ConsumableEntry{
			consumable(entities.ConsumableEntryPlanned, 4, 12.5),
			consumable(entities.ConsumableEntryActual, 3, 12.5),
		},
		Outsource: []entities.OutsourceEntry{
			{PlannedCost: ptr(300), ActualCost: 350.25},
			{ActualCost: 99.75},
		},
	}, calcAt)

	if s.LaborActualCost != 190 {
		t.Fatalf("expected labor 190, got %v", s.LaborActualCost)
	}
	if s.PlannedOutsourceCost != 300 || s.ActualOutsourceCost != 450 {
		t.Fatalf("unexpected outsource costs: %+v", s)
	}
	if s.TotalPlannedCost != 350 {
		t.Fatalf("expected planned 350 (no labor baseline), got %v", s.TotalPlannedCost)
	}
	if s.TotalActualCost != 677.5 {
		t.Fatalf("expected actual 677.5, got %v", s.TotalActualCost)
	}
	if s.CostVariance != 327.5 {
		t.Fatalf("expected variance 327.5, got %v", s.CostVariance)
	}
}

func TestSummarize_PureOverEntries(t *testing.T) {
	a := consumable(entities.ConsumableEntryActual, 2, 7.3)
	b := consumable(entities.ConsumableEntryPlanned, 1, 19.99)

	before := Summarize("wo-3", Entries{Consumables: []entities.ConsumableEntry{a, b}}, calcAt)

	// delete b, then add an identical entry back
	readded := consumable(entities.ConsumableEntryPlanned, 1, 19.99)
	after := Summarize("wo-3", Entries{Consumables: []entities.ConsumableEntry{a, readded}}, calcAt)

	if before != after {
		t.Fatalf("expected identical summaries, got %+v vs %+v", before, after)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize("wo-4", Entries{}, calcAt)
	if s.TotalActualCost != 0 || s.TotalPlannedCost != 0 || s.VarianceStatus != entities.VarianceOnBudget {
		t.Fatalf("unexpected empty summary: %+v", s)
	}
}
