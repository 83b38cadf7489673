package repository

import (
	"context"
	"fmt"

	"fleet_maintenance/internal/domain/entities"
	"fleet_maintenance/internal/infrastructure/database"
	"fleet_maintenance/internal/usecase/interfaces"
)

// TimeEventSQLiteRepository implements ITimeEventRepository on SQLite.
type TimeEventSQLiteRepository struct {
	db database.DBTX
}

var _ interfaces.ITimeEventRepository = (*TimeEventSQLiteRepository)(nil)

func NewTimeEventSQLiteRepository(db database.DBTX) *TimeEventSQLiteRepository {
	return &TimeEventSQLiteRepository{db: db}
}

func (r *TimeEventSQLiteRepository) Append(ctx context.Context, ev entities.TimeTrackingEvent) (entities.TimeTrackingEvent, error) {
	query := `INSERT INTO time_tracking_events (id, work_order_id, event, timestamp, reason, created_by)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		ev.ID,
		ev.WorkOrderID,
		string(ev.Event),
		formatTime(ev.Timestamp),
		ev.Reason,
		ev.CreatedBy,
	)
	if err != nil {
		return entities.TimeTrackingEvent{}, fmt.Errorf("inserting time tracking event: %w", err)
	}
	return ev, nil
}

func (r *TimeEventSQLiteRepository) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.TimeTrackingEvent, error) {
	query := `SELECT id, work_order_id, event, timestamp, reason, created_by
		FROM time_tracking_events WHERE work_order_id = ? ORDER BY timestamp, id`
	rows, err := r.db.QueryContext(ctx, query, workOrderID)
	if err != nil {
		return nil, fmt.Errorf("listing time tracking events: %w", err)
	}
	defer rows.Close()

	var out []entities.TimeTrackingEvent
	for rows.Next() {
		var (
			ev        entities.TimeTrackingEvent
			event, ts string
		)
		if err := rows.Scan(&ev.ID, &ev.WorkOrderID, &event, &ts, &ev.Reason, &ev.CreatedBy); err != nil {
			return nil, fmt.Errorf("scanning time tracking event: %w", err)
		}
		ev.Event = entities.TimeEventType(event)
		ev.Timestamp = parseTime(ts)
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating time tracking events: %w", err)
	}
	return out, nil
}
