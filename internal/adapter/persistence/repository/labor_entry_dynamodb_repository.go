package repository

import (
	"context"
	"time"

	"fleet_maintenance/internal/domain/entities"
	"fleet_maintenance/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultLaborEntriesTableName = "labor_entries"

type laborEntryItem struct {
	ID                 string  `dynamodbav:"id"`
	WorkOrderID        string  `dynamodbav:"work_order_id"`
	EmployeeID         string  `dynamodbav:"employee_id"`
	HoursWorked        float64 `dynamodbav:"hours_worked"`
	HourlyRateSnapshot float64 `dynamodbav:"hourly_rate_snapshot"`
	OvertimeFactor     float64 `dynamodbav:"overtime_factor"`
	TotalCost          float64 `dynamodbav:"total_cost"`
	TimeSource         string  `dynamodbav:"time_source"`
	WorkDate           string  `dynamodbav:"work_date"`
	Description        string  `dynamodbav:"description"`
	CreatedBy          string  `dynamodbav:"created_by"`
	CreatedAt          string  `dynamodbav:"created_at"`
	UpdatedAt          string  `dynamodbav:"updated_at"`
}

// LaborEntryDynamoRepository persists LaborEntry entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: work_order_id-index (PK: work_order_id)
type LaborEntryDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ILaborEntryRepository = (*LaborEntryDynamoRepository)(nil)

func NewLaborEntryDynamoRepository(ddb DynamoAPI) *LaborEntryDynamoRepository {
	return &LaborEntryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LABOR_ENTRIES_TABLE", defaultLaborEntriesTableName),
	}
}

func (r *LaborEntryDynamoRepository) Create(ctx context.Context, e entities.LaborEntry) (entities.LaborEntry, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toLaborEntryItem(e)); err != nil {
		return entities.LaborEntry{}, err
	}
	return e, nil
}

func (r *LaborEntryDynamoRepository) GetByID(ctx context.Context, id string) (entities.LaborEntry, error) {
	var it laborEntryItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.LaborEntry{}, err
	}
	return fromLaborEntryItem(it), nil
}

func (r *LaborEntryDynamoRepository) Update(ctx context.Context, e entities.LaborEntry) (entities.LaborEntry, error) {
	return r.update(ctx, e.ID, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #hours_worked = :hours_worked, #overtime_factor = :overtime_factor, " +
			"#total_cost = :total_cost, #description = :description, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":hours_worked":    &types.AttributeValueMemberN{Value: floatToString(e.HoursWorked)},
			":overtime_factor": &types.AttributeValueMemberN{Value: floatToString(e.OvertimeFactor)},
			":total_cost":      &types.AttributeValueMemberN{Value: floatToString(e.TotalCost)},
			":description":     &types.AttributeValueMemberS{Value: e.Description},
			":updated_at":      &types.AttributeValueMemberS{Value: formatTime(e.UpdatedAt)},
		}
		names := map[string]string{
			"#hours_worked":    "hours_worked",
			"#overtime_factor": "overtime_factor",
			"#total_cost":      "total_cost",
			"#description":     "description",
			"#updated_at":      "updated_at",
		}
		return expr, vals, names
	})
}

func (r *LaborEntryDynamoRepository) UpdateHours(ctx context.Context, id string, hours, totalCost float64, updatedAt time.Time) (entities.LaborEntry, error) {
	return r.update(ctx, id, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #hours_worked = :hours_worked, #total_cost = :total_cost, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":hours_worked": &types.AttributeValueMemberN{Value: floatToString(hours)},
			":total_cost":   &types.AttributeValueMemberN{Value: floatToString(totalCost)},
			":updated_at":   &types.AttributeValueMemberS{Value: formatTime(updatedAt)},
		}
		names := map[string]string{
			"#hours_worked": "hours_worked",
			"#total_cost":   "total_cost",
			"#updated_at":   "updated_at",
		}
		return expr, vals, names
	})
}

func (r *LaborEntryDynamoRepository) Delete(ctx context.Context, id string) (entities.LaborEntry, error) {
	var it laborEntryItem
	found, err := deleteByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.LaborEntry{}, err
	}
	return fromLaborEntryItem(it), nil
}

func (r *LaborEntryDynamoRepository) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.LaborEntry, error) {
	return r.list(ctx, indexQuery{
		table: r.tableName,
		index: byWorkOrderIndex,
		key:   "work_order_id",
		value: workOrderID,
	})
}

func (r *LaborEntryDynamoRepository) ListAutoByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.LaborEntry, error) {
	return r.list(ctx, indexQuery{
		table:  r.tableName,
		index:  byWorkOrderIndex,
		key:    "work_order_id",
		value:  workOrderID,
		filter: "#time_source = :auto",
		names:  map[string]string{"#time_source": "time_source"},
		values: map[string]types.AttributeValue{
			":auto": &types.AttributeValueMemberS{Value: string(entities.TimeSourceAuto)},
		},
	})
}

func (r *LaborEntryDynamoRepository) list(ctx context.Context, q indexQuery) ([]entities.LaborEntry, error) {
	raw, err := queryIndex(ctx, r.ddb, q)
	if err != nil {
		return nil, err
	}
	items, err := unmarshalItems[laborEntryItem](raw)
	if err != nil {
		return nil, err
	}
	out := make([]entities.LaborEntry, 0, len(items))
	for _, it := range items {
		out = append(out, fromLaborEntryItem(it))
	}
	return out, nil
}

func (r *LaborEntryDynamoRepository) update(
	ctx context.Context,
	id string,
	build func() (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.LaborEntry, error) {
	updateExpr, values, names := build()

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.LaborEntry{}, nil
		}
		return entities.LaborEntry{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.LaborEntry{}, nil
	}
	var it laborEntryItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.LaborEntry{}, err
	}
	return fromLaborEntryItem(it), nil
}

func toLaborEntryItem(e entities.LaborEntry) laborEntryItem {
	return laborEntryItem{
		ID:                 e.ID,
		WorkOrderID:        e.WorkOrderID,
		EmployeeID:         e.EmployeeID,
		HoursWorked:        e.HoursWorked,
		HourlyRateSnapshot: e.HourlyRateSnapshot,
		OvertimeFactor:     e.OvertimeFactor,
		TotalCost:          e.TotalCost,
		TimeSource:         string(e.TimeSource),
		WorkDate:           formatTime(e.WorkDate),
		Description:        e.Description,
		CreatedBy:          e.CreatedBy,
		CreatedAt:          formatTime(e.CreatedAt),
		UpdatedAt:          formatTime(e.UpdatedAt),
	}
}

func fromLaborEntryItem(it laborEntryItem) entities.LaborEntry {
	return entities.LaborEntry{
		ID:                 it.ID,
		WorkOrderID:        it.WorkOrderID,
		EmployeeID:         it.EmployeeID,
		HoursWorked:        it.HoursWorked,
		HourlyRateSnapshot: it.HourlyRateSnapshot,
		OvertimeFactor:     it.OvertimeFactor,
		TotalCost:          it.TotalCost,
		TimeSource:         entities.TimeSource(it.TimeSource),
		WorkDate:           parseTime(it.WorkDate),
		Description:        it.Description,
		CreatedBy:          it.CreatedBy,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}
