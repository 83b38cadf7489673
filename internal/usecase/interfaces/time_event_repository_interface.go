package interfaces

import (
	"context"
	"fleet_maintenance/internal/domain/entities"
)

//go:generate mockgen -source=time_event_repository_interface.go -destination=mocks/time_event_repository_interface_mock.go -package=mock_interfaces

// ITimeEventRepository is the append-only pause/resume log. There is no update or delete.

type ITimeEventRepository interface {
	Append(ctx context.Context, ev entities.TimeTrackingEvent) (entities.TimeTrackingEvent, error)
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.TimeTrackingEvent, error)
}
