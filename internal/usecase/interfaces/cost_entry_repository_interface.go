package interfaces

import (
	"context"
	"fleet_maintenance/internal/domain/entities"
	"time"
)

//go:generate mockgen -source=cost_entry_repository_interface.go -destination=mocks/cost_entry_repository_interface_mock.go -package=mock_interfaces

// ILaborEntryRepository abstracts persistence for LaborEntry.
//
// UpdateHours is the reconciliation write path: it only touches hours, total cost and the
// update timestamp of an existing entry. Delete returns the removed entry (zero value when
// it did not exist).

type ILaborEntryRepository interface {
	Create(ctx context.Context, e entities.LaborEntry) (entities.LaborEntry, error)
	GetByID(ctx context.Context, id string) (entities.LaborEntry, error)
	Update(ctx context.Context, e entities.LaborEntry) (entities.LaborEntry, error)
	UpdateHours(ctx context.Context, id string, hours, totalCost float64, updatedAt time.Time) (entities.LaborEntry, error)
	Delete(ctx context.Context, id string) (entities.LaborEntry, error)
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.LaborEntry, error)
	ListAutoByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.LaborEntry, error)
}

type IConsumableEntryRepository interface {
	Create(ctx context.Context, e entities.ConsumableEntry) (entities.ConsumableEntry, error)
	GetByID(ctx context.Context, id string) (entities.ConsumableEntry, error)
	Delete(ctx context.Context, id string) (entities.ConsumableEntry, error)
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.ConsumableEntry, error)
}

type IOutsourceEntryRepository interface {
	Create(ctx context.Context, e entities.OutsourceEntry) (entities.OutsourceEntry, error)
	GetByID(ctx context.Context, id string) (entities.OutsourceEntry, error)
	Delete(ctx context.Context, id string) (entities.OutsourceEntry, error)
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.OutsourceEntry, error)
}
