package interfaces

import (
	"context"
	"fleet_maintenance/internal/domain/entities"
)

//go:generate mockgen -source=notification_publisher_interface.go -destination=mocks/notification_publisher_interface_mock.go -package=mock_interfaces

// INotificationPublisher dispatches fire-and-forget notifications about privileged
// mutations. Implementations log delivery failures and never return them: a notification
// problem must not fail the mutation that triggered it.
type INotificationPublisher interface {
	Publish(ctx context.Context, n entities.Notification)
}
