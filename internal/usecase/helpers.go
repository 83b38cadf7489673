package usecase

import (
	"context"
	"fleet_maintenance/internal/domain/entities"
	"fleet_maintenance/internal/usecase/interfaces"
	"strings"
	"time"
)

func publish(ctx context.Context, pub interfaces.INotificationPublisher, n entities.Notification) {
	if pub == nil {
		return
	}
	if n.OccurredAt.IsZero() {
		n.OccurredAt = time.Now().UTC()
	}
	pub.Publish(ctx, n)
}

func trimmedOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func timePtr(t time.Time) *time.Time {
	return &t
}

// loadWorkOrder resolves a work order id, mapping the repository's zero value to
// ErrWorkOrderNotFound.
func loadWorkOrder(ctx context.Context, repo interfaces.IWorkOrderRepository, id string) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}
	wo, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if wo.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	return wo, nil
}
