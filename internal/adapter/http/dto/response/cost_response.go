package response

import (
	"fleet_maintenance/internal/domain/entities"
	"fleet_maintenance/internal/usecase"
)

type WorkOrderCostsResponse struct {
	Summary     entities.CostSummary       `json:"summary"`
	Labor       []entities.LaborEntry      `json:"labor"`
	Consumables []entities.ConsumableEntry `json:"consumables"`
	Outsource   []entities.OutsourceEntry  `json:"outsource"`
}

func FromWorkOrderCosts(c usecase.WorkOrderCosts) WorkOrderCostsResponse {
	res := WorkOrderCostsResponse{
		Summary:     c.Summary,
		Labor:       c.Labor,
		Consumables: c.Consumables,
		Outsource:   c.Outsource,
	}
	if res.Labor == nil {
		res.Labor = []entities.LaborEntry{}
	}
	if res.Consumables == nil {
		res.Consumables = []entities.ConsumableEntry{}
	}
	if res.Outsource == nil {
		res.Outsource = []entities.OutsourceEntry{}
	}
	return res
}

// Entry mutations answer with the stored entry and the refreshed work order summary.

type LaborEntryResponse struct {
	Entry       entities.LaborEntry  `json:"entry"`
	CostSummary entities.CostSummary `json:"cost_summary"`
}

type ConsumableEntryResponse struct {
	Entry       entities.ConsumableEntry `json:"entry"`
	CostSummary entities.CostSummary     `json:"cost_summary"`
}

type OutsourceEntryResponse struct {
	Entry       entities.OutsourceEntry `json:"entry"`
	CostSummary entities.CostSummary    `json:"cost_summary"`
}

type CostSummaryResponse struct {
	CostSummary entities.CostSummary `json:"cost_summary"`
}
