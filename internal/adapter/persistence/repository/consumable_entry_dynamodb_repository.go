package repository

import (
	"context"

	"fleet_maintenance/internal/domain/entities"
	"fleet_maintenance/internal/usecase/interfaces"
)

const defaultConsumableEntriesTableName = "consumable_entries"

type consumableEntryItem struct {
	ID               string  `dynamodbav:"id"`
	WorkOrderID      string  `dynamodbav:"work_order_id"`
	EntryType        string  `dynamodbav:"entry_type"`
	ItemName         string  `dynamodbav:"item_name"`
	Unit             string  `dynamodbav:"unit"`
	Quantity         float64 `dynamodbav:"quantity"`
	UnitCostSnapshot float64 `dynamodbav:"unit_cost_snapshot"`
	TotalCost        float64 `dynamodbav:"total_cost"`
	Notes            string  `dynamodbav:"notes"`
	CreatedBy        string  `dynamodbav:"created_by"`
	CreatedAt        string  `dynamodbav:"created_at"`
}

// ConsumableEntryDynamoRepository persists ConsumableEntry entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: work_order_id-index (PK: work_order_id)
type ConsumableEntryDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IConsumableEntryRepository = (*ConsumableEntryDynamoRepository)(nil)

func NewConsumableEntryDynamoRepository(ddb DynamoAPI) *ConsumableEntryDynamoRepository {
	return &ConsumableEntryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONSUMABLE_ENTRIES_TABLE", defaultConsumableEntriesTableName),
	}
}

func (r *ConsumableEntryDynamoRepository) Create(ctx context.Context, e entities.ConsumableEntry) (entities.ConsumableEntry, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toConsumableEntryItem(e)); err != nil {
		return entities.ConsumableEntry{}, err
	}
	return e, nil
}

func (r *ConsumableEntryDynamoRepository) GetByID(ctx context.Context, id string) (entities.ConsumableEntry, error) {
	var it consumableEntryItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.ConsumableEntry{}, err
	}
	return fromConsumableEntryItem(it), nil
}

func (r *ConsumableEntryDynamoRepository) Delete(ctx context.Context, id string) (entities.ConsumableEntry, error) {
	var it consumableEntryItem
	found, err := deleteByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.ConsumableEntry{}, err
	}
	return fromConsumableEntryItem(it), nil
}

func (r *ConsumableEntryDynamoRepository) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.ConsumableEntry, error) {
	raw, err := queryIndex(ctx, r.ddb, indexQuery{
		table: r.tableName,
		index: byWorkOrderIndex,
		key:   "work_order_id",
		value: workOrderID,
	})
	if err != nil {
		return nil, err
	}
	items, err := unmarshalItems[consumableEntryItem](raw)
	if err != nil {
		return nil, err
	}
	out := make([]entities.ConsumableEntry, 0, len(items))
	for _, it := range items {
		out = append(out, fromConsumableEntryItem(it))
	}
	return out, nil
}

func toConsumableEntryItem(e entities.ConsumableEntry) consumableEntryItem {
	return consumableEntryItem{
		ID:               e.ID,
		WorkOrderID:      e.WorkOrderID,
		EntryType:        string(e.EntryType),
		ItemName:         e.ItemName,
		Unit:             e.Unit,
		Quantity:         e.Quantity,
		UnitCostSnapshot: e.UnitCostSnapshot,
		TotalCost:        e.TotalCost,
		Notes:            e.Notes,
		CreatedBy:        e.CreatedBy,
		CreatedAt:        formatTime(e.CreatedAt),
	}
}

func fromConsumableEntryItem(it consumableEntryItem) entities.ConsumableEntry {
	return entities.ConsumableEntry{
		ID:               it.ID,
		WorkOrderID:      it.WorkOrderID,
		EntryType:        entities.ConsumableEntryType(it.EntryType),
		ItemName:         it.ItemName,
		Unit:             it.Unit,
		Quantity:         it.Quantity,
		UnitCostSnapshot: it.UnitCostSnapshot,
		TotalCost:        it.TotalCost,
		Notes:            it.Notes,
		CreatedBy:        it.CreatedBy,
		CreatedAt:        parseTime(it.CreatedAt),
	}
}
