package interfaces

import (
	"context"
	"fleet_maintenance/internal/domain/entities"
)

//go:generate mockgen -source=work_order_tx_repository_interface.go -destination=mocks/work_order_tx_repository_interface_mock.go -package=mock_interfaces

// IWorkOrderTransactionRepository writes a work order together with the records that must
// change with it. Each method is all-or-nothing.
//
// A missing work order yields a zero-value WorkOrder and nothing is written.

type IWorkOrderTransactionRepository interface {
	CreateWithApproval(ctx context.Context, wo entities.WorkOrder, pending entities.Approval) (entities.WorkOrder, error)
	UpdateWithApproval(ctx context.Context, wo entities.WorkOrder, pending entities.Approval) (entities.WorkOrder, error)
	// UpdateWithDecision reports false when the approval is no longer pending.
	UpdateWithDecision(ctx context.Context, wo entities.WorkOrder, decided entities.Approval) (entities.WorkOrder, bool, error)
	UpdateWithLaborEntries(ctx context.Context, wo entities.WorkOrder, entries []entities.LaborEntry) (entities.WorkOrder, error)
}
