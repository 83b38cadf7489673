package repository

import (
	"context"
	"fmt"

	"fleet_maintenance/internal/domain/entities"
	"fleet_maintenance/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// One transaction item is the work order itself.
const maxStartLaborEntries = 99

// WorkOrderTxDynamoRepository writes a work order and its companion records with
// TransactWriteItems. The work order is always the first item, so a failed condition at
// position 0 means the order does not exist.
type WorkOrderTxDynamoRepository struct {
	ddb            DynamoAPI
	workOrderTable string
	approvalTable  string
	laborTable     string
}

var _ interfaces.IWorkOrderTransactionRepository = (*WorkOrderTxDynamoRepository)(nil)

func NewWorkOrderTxDynamoRepository(ddb DynamoAPI) *WorkOrderTxDynamoRepository {
	return &WorkOrderTxDynamoRepository{
		ddb:            ddb,
		workOrderTable: getenvDefault("WORK_ORDERS_TABLE", defaultWorkOrdersTableName),
		approvalTable:  getenvDefault("APPROVALS_TABLE", defaultApprovalsTableName),
		laborTable:     getenvDefault("LABOR_ENTRIES_TABLE", defaultLaborEntriesTableName),
	}
}

func (r *WorkOrderTxDynamoRepository) CreateWithApproval(ctx context.Context, wo entities.WorkOrder, pending entities.Approval) (entities.WorkOrder, error) {
	order, err := newItemPut(r.workOrderTable, toWorkOrderItem(wo))
	if err != nil {
		return entities.WorkOrder{}, err
	}
	approval, err := newItemPut(r.approvalTable, toApprovalItem(pending))
	if err != nil {
		return entities.WorkOrder{}, err
	}

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{order, approval},
	}); err != nil {
		return entities.WorkOrder{}, err
	}
	return wo, nil
}

func (r *WorkOrderTxDynamoRepository) UpdateWithApproval(ctx context.Context, wo entities.WorkOrder, pending entities.Approval) (entities.WorkOrder, error) {
	approval, err := newItemPut(r.approvalTable, toApprovalItem(pending))
	if err != nil {
		return entities.WorkOrder{}, err
	}
	return r.write(ctx, wo, approval)
}

func (r *WorkOrderTxDynamoRepository) UpdateWithDecision(ctx context.Context, wo entities.WorkOrder, decided entities.Approval) (entities.WorkOrder, bool, error) {
	expr, vals, names, err := approvalDecisionExpression(decided)
	if err != nil {
		return entities.WorkOrder{}, false, err
	}
	decision := types.TransactWriteItem{
		Update: &types.Update{
			TableName:                 aws.String(r.approvalTable),
			Key:                       idKey(decided.ID),
			ConditionExpression:       aws.String(approvalPendingCondition),
			UpdateExpression:          aws.String(expr),
			ExpressionAttributeValues: vals,
			ExpressionAttributeNames:  names,
		},
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{r.workOrderUpdate(wo), decision},
	})
	if err != nil {
		switch pos, ok := failedTransactItem(err); {
		case ok && pos == 0:
			return entities.WorkOrder{}, true, nil
		case ok:
			return entities.WorkOrder{}, false, nil
		}
		return entities.WorkOrder{}, false, err
	}
	return wo, true, nil
}

// UpdateWithLaborEntries stores the work order and inserts every entry.
func (r *WorkOrderTxDynamoRepository) UpdateWithLaborEntries(ctx context.Context, wo entities.WorkOrder, entries []entities.LaborEntry) (entities.WorkOrder, error) {
	if len(entries) > maxStartLaborEntries {
		return entities.WorkOrder{}, fmt.Errorf("work order has %d labor entries, at most %d are supported", len(entries), maxStartLaborEntries)
	}

	puts := make([]types.TransactWriteItem, 0, len(entries))
	for _, e := range entries {
		put, err := newItemPut(r.laborTable, toLaborEntryItem(e))
		if err != nil {
			return entities.WorkOrder{}, err
		}
		puts = append(puts, put)
	}
	return r.write(ctx, wo, puts...)
}

func (r *WorkOrderTxDynamoRepository) write(ctx context.Context, wo entities.WorkOrder, with ...types.TransactWriteItem) (entities.WorkOrder, error) {
	items := append([]types.TransactWriteItem{r.workOrderUpdate(wo)}, with...)
	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		if pos, ok := failedTransactItem(err); ok && pos == 0 {
			return entities.WorkOrder{}, nil
		}
		return entities.WorkOrder{}, err
	}
	return wo, nil
}

func (r *WorkOrderTxDynamoRepository) workOrderUpdate(wo entities.WorkOrder) types.TransactWriteItem {
	expr, vals, names := workOrderUpdateExpression(wo)
	return types.TransactWriteItem{
		Update: &types.Update{
			TableName:                 aws.String(r.workOrderTable),
			Key:                       idKey(wo.ID),
			ConditionExpression:       aws.String("attribute_exists(#id)"),
			UpdateExpression:          aws.String(expr),
			ExpressionAttributeValues: vals,
			ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		},
	}
}

func newItemPut(table string, item any) (types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	return types.TransactWriteItem{
		Put: &types.Put{
			TableName:                aws.String(table),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		},
	}, nil
}
