package repository

import (
	"context"

	"fleet_maintenance/internal/domain/entities"
	"fleet_maintenance/internal/usecase/interfaces"
)

const defaultOutsourceEntriesTableName = "outsource_entries"

type outsourceEntryItem struct {
	ID          string   `dynamodbav:"id"`
	WorkOrderID string   `dynamodbav:"work_order_id"`
	VendorName  string   `dynamodbav:"vendor_name"`
	Description string   `dynamodbav:"description"`
	PlannedCost *float64 `dynamodbav:"planned_cost,omitempty"`
	ActualCost  float64  `dynamodbav:"actual_cost"`
	CreatedBy   string   `dynamodbav:"created_by"`
	CreatedAt   string   `dynamodbav:"created_at"`
}

// OutsourceEntryDynamoRepository persists OutsourceEntry entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: work_order_id-index (PK: work_order_id)
type OutsourceEntryDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IOutsourceEntryRepository = (*OutsourceEntryDynamoRepository)(nil)

func NewOutsourceEntryDynamoRepository(ddb DynamoAPI) *OutsourceEntryDynamoRepository {
	return &OutsourceEntryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("OUTSOURCE_ENTRIES_TABLE", defaultOutsourceEntriesTableName),
	}
}

func (r *OutsourceEntryDynamoRepository) Create(ctx context.Context, e entities.OutsourceEntry) (entities.OutsourceEntry, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toOutsourceEntryItem(e)); err != nil {
		return entities.OutsourceEntry{}, err
	}
	return e, nil
}

func (r *OutsourceEntryDynamoRepository) GetByID(ctx context.Context, id string) (entities.OutsourceEntry, error) {
	var it outsourceEntryItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.OutsourceEntry{}, err
	}
	return fromOutsourceEntryItem(it), nil
}

func (r *OutsourceEntryDynamoRepository) Delete(ctx context.Context, id string) (entities.OutsourceEntry, error) {
	var it outsourceEntryItem
	found, err := deleteByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.OutsourceEntry{}, err
	}
	return fromOutsourceEntryItem(it), nil
}

func (r *OutsourceEntryDynamoRepository) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.OutsourceEntry, error) {
	raw, err := queryIndex(ctx, r.ddb, indexQuery{
		table: r.tableName,
		index: byWorkOrderIndex,
		key:   "work_order_id",
		value: workOrderID,
	})
	if err != nil {
		return nil, err
	}
	items, err := unmarshalItems[outsourceEntryItem](raw)
	if err != nil {
		return nil, err
	}
	out := make([]entities.OutsourceEntry, 0, len(items))
	for _, it := range items {
		out = append(out, fromOutsourceEntryItem(it))
	}
	return out, nil
}

func toOutsourceEntryItem(e entities.OutsourceEntry) outsourceEntryItem {
	return outsourceEntryItem{
		ID:          e.ID,
		WorkOrderID: e.WorkOrderID,
		VendorName:  e.VendorName,
		Description: e.Description,
		PlannedCost: e.PlannedCost,
		ActualCost:  e.ActualCost,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   formatTime(e.CreatedAt),
	}
}

func fromOutsourceEntryItem(it outsourceEntryItem) entities.OutsourceEntry {
	return entities.OutsourceEntry{
		ID:          it.ID,
		WorkOrderID: it.WorkOrderID,
		VendorName:  it.VendorName,
		Description: it.Description,
		PlannedCost: it.PlannedCost,
		ActualCost:  it.ActualCost,
		CreatedBy:   it.CreatedBy,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
