package interfaces

import (
	"context"
	"fleet_maintenance/internal/domain/entities"
)

//go:generate mockgen -source=work_order_repository_interface.go -destination=mocks/work_order_repository_interface_mock.go -package=mock_interfaces

// IWorkOrderRepository abstracts persistence for WorkOrder.
//
// Lookups return a zero-value WorkOrder (empty ID) when nothing matches; use cases translate
// that into ErrWorkOrderNotFound.

type IWorkOrderRepository interface {
	Create(ctx context.Context, wo entities.WorkOrder) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	ListByStatuses(ctx context.Context, statuses []entities.WorkOrderStatus) ([]entities.WorkOrder, error)
	Update(ctx context.Context, wo entities.WorkOrder) (entities.WorkOrder, error)
	UpdateCostSummary(ctx context.Context, id string, summary entities.CostSummary) error
}
