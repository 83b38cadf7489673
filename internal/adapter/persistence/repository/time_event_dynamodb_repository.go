package repository

import (
	"context"

	"fleet_maintenance/internal/domain/entities"
	"fleet_maintenance/internal/usecase/interfaces"
)

const (
	defaultTimeEventsTableName = "time_tracking_events"
	byWorkOrderIndex           = "work_order_id-index"
)

type timeEventItem struct {
	ID          string `dynamodbav:"id"`
	WorkOrderID string `dynamodbav:"work_order_id"`
	Event       string `dynamodbav:"event"`
	Timestamp   string `dynamodbav:"timestamp"`
	Reason      string `dynamodbav:"reason"`
	CreatedBy   string `dynamodbav:"created_by"`
}

// TimeEventDynamoRepository is the append-only pause/resume log.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: work_order_id-index (PK: work_order_id)
type TimeEventDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ITimeEventRepository = (*TimeEventDynamoRepository)(nil)

func NewTimeEventDynamoRepository(ddb DynamoAPI) *TimeEventDynamoRepository {
	return &TimeEventDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TIME_EVENTS_TABLE", defaultTimeEventsTableName),
	}
}

func (r *TimeEventDynamoRepository) Append(ctx context.Context, ev entities.TimeTrackingEvent) (entities.TimeTrackingEvent, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toTimeEventItem(ev)); err != nil {
		return entities.TimeTrackingEvent{}, err
	}
	return ev, nil
}

// ListByWorkOrderID returns the events in storage order; callers sort by timestamp.
func (r *TimeEventDynamoRepository) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.TimeTrackingEvent, error) {
	raw, err := queryIndex(ctx, r.ddb, indexQuery{
		table: r.tableName,
		index: byWorkOrderIndex,
		key:   "work_order_id",
		value: workOrderID,
	})
	if err != nil {
		return nil, err
	}
	items, err := unmarshalItems[timeEventItem](raw)
	if err != nil {
		return nil, err
	}
	out := make([]entities.TimeTrackingEvent, 0, len(items))
	for _, it := range items {
		out = append(out, fromTimeEventItem(it))
	}
	return out, nil
}

func toTimeEventItem(ev entities.TimeTrackingEvent) timeEventItem {
	return timeEventItem{
		ID:          ev.ID,
		WorkOrderID: ev.WorkOrderID,
		Event:       string(ev.Event),
		Timestamp:   formatTime(ev.Timestamp),
		Reason:      ev.Reason,
		CreatedBy:   ev.CreatedBy,
	}
}

func fromTimeEventItem(it timeEventItem) entities.TimeTrackingEvent {
	return entities.TimeTrackingEvent{
		ID:          it.ID,
		WorkOrderID: it.WorkOrderID,
		Event:       entities.TimeEventType(it.Event),
		Timestamp:   parseTime(it.Timestamp),
		Reason:      it.Reason,
		CreatedBy:   it.CreatedBy,
	}
}
