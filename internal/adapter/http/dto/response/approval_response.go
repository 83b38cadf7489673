package response

import "fleet_maintenance/internal/domain/entities"

type DecisionResponse struct {
	WorkOrder WorkOrderResponse `json:"work_order"`
	Approval  entities.Approval `json:"approval"`
}

func FromDecision(wo entities.WorkOrder, a entities.Approval) DecisionResponse {
	return DecisionResponse{WorkOrder: FromWorkOrder(wo), Approval: a}
}

type ApprovalListResponse struct {
	Approvals []entities.Approval `json:"approvals"`
}

func FromApprovals(list []entities.Approval) ApprovalListResponse {
	if list == nil {
		list = []entities.Approval{}
	}
	return ApprovalListResponse{Approvals: list}
}

func FromRequisition(r entities.Requisition) entities.Requisition {
	if r.Lines == nil {
		r.Lines = []entities.RequisitionLine{}
	}
	return r
}
