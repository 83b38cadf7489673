package repository

import (
	"context"
	"encoding/json"

	"fleet_maintenance/internal/domain/entities"
	"fleet_maintenance/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultWorkOrdersTableName = "work_orders"
	workOrderStatusIndex       = "status-index"
)

type costSummaryItem struct {
	LaborActualCost       float64 `dynamodbav:"labor_actual_cost"`
	PlannedConsumableCost float64 `dynamodbav:"planned_consumable_cost"`
	ActualConsumableCost  float64 `dynamodbav:"actual_consumable_cost"`
	PlannedOutsourceCost  float64 `dynamodbav:"planned_outsource_cost"`
	ActualOutsourceCost   float64 `dynamodbav:"actual_outsource_cost"`
	TotalPlannedCost      float64 `dynamodbav:"total_planned_cost"`
	TotalActualCost       float64 `dynamodbav:"total_actual_cost"`
	CostVariance          float64 `dynamodbav:"cost_variance"`
	VarianceStatus        string  `dynamodbav:"variance_status"`
	CalculatedAt          string  `dynamodbav:"calculated_at"`
}

type workOrderItem struct {
	ID                       string           `dynamodbav:"id"`
	Code                     string           `dynamodbav:"code"`
	EquipmentID              string           `dynamodbav:"equipment_id"`
	Title                    string           `dynamodbav:"title"`
	Description              string           `dynamodbav:"description"`
	Status                   string           `dynamodbav:"status"`
	ApprovalStatus           string           `dynamodbav:"approval_status"`
	StartedAt                string           `dynamodbav:"started_at"`
	CompletedAt              string           `dynamodbav:"completed_at"`
	CompletionApprovalStatus string           `dynamodbav:"completion_approval_status"`
	CompletionApprovedBy     string           `dynamodbav:"completion_approved_by"`
	CompletionApprovedAt     string           `dynamodbav:"completion_approved_at"`
	CompletionNotes          string           `dynamodbav:"completion_notes"`
	Specification            string           `dynamodbav:"specification"`
	CostSummary              *costSummaryItem `dynamodbav:"cost_summary,omitempty"`
	CreatedBy                string           `dynamodbav:"created_by"`
	CreatedAt                string           `dynamodbav:"created_at"`
	UpdatedAt                string           `dynamodbav:"updated_at"`
}

// WorkOrderDynamoRepository persists WorkOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-index (PK: status)
//
// Update never touches cost_summary; that attribute is owned by UpdateCostSummary.
type WorkOrderDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderDynamoRepository)(nil)

func NewWorkOrderDynamoRepository(ddb DynamoAPI) *WorkOrderDynamoRepository {
	return &WorkOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WORK_ORDERS_TABLE", defaultWorkOrdersTableName),
	}
}

func (r *WorkOrderDynamoRepository) Create(ctx context.Context, wo entities.WorkOrder) (entities.WorkOrder, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toWorkOrderItem(wo)); err != nil {
		return entities.WorkOrder{}, err
	}
	return wo, nil
}

func (r *WorkOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	var it workOrderItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

func (r *WorkOrderDynamoRepository) ListByStatuses(ctx context.Context, statuses []entities.WorkOrderStatus) ([]entities.WorkOrder, error) {
	var out []entities.WorkOrder
	for _, s := range statuses {
		raw, err := queryIndex(ctx, r.ddb, indexQuery{
			table: r.tableName,
			index: workOrderStatusIndex,
			key:   "status",
			value: string(s),
		})
		if err != nil {
			return nil, err
		}
		items, err := unmarshalItems[workOrderItem](raw)
		if err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromWorkOrderItem(it))
		}
	}
	return out, nil
}

func (r *WorkOrderDynamoRepository) Update(ctx context.Context, wo entities.WorkOrder) (entities.WorkOrder, error) {
	return r.update(ctx, wo.ID, func() (string, map[string]types.AttributeValue, map[string]string) {
		return workOrderUpdateExpression(wo)
	})
}

func (r *WorkOrderDynamoRepository) UpdateCostSummary(ctx context.Context, id string, summary entities.CostSummary) error {
	av, err := attributevalue.Marshal(toCostSummaryItem(summary))
	if err != nil {
		return err
	}
	_, err = r.update(ctx, id, func() (string, map[string]types.AttributeValue, map[string]string) {
		return "SET #cost_summary = :cost_summary",
			map[string]types.AttributeValue{":cost_summary": av},
			map[string]string{"#cost_summary": "cost_summary"}
	})
	return err
}

func (r *WorkOrderDynamoRepository) update(
	ctx context.Context,
	id string,
	build func() (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.WorkOrder, error) {
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
			return entities.WorkOrder{}, nil
		}
		return entities.WorkOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.WorkOrder{}, nil
	}
	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

// workOrderUpdateExpression sets every mutable attribute except cost_summary.
func workOrderUpdateExpression(wo entities.WorkOrder) (string, map[string]types.AttributeValue, map[string]string) {
	it := toWorkOrderItem(wo)
	expr := "SET #title = :title, #description = :description, #status = :status, " +
		"#approval_status = :approval_status, #started_at = :started_at, #completed_at = :completed_at, " +
		"#completion_approval_status = :completion_approval_status, #completion_approved_by = :completion_approved_by, " +
		"#completion_approved_at = :completion_approved_at, #completion_notes = :completion_notes, " +
		"#specification = :specification, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":title":                      &types.AttributeValueMemberS{Value: it.Title},
		":description":                &types.AttributeValueMemberS{Value: it.Description},
		":status":                     &types.AttributeValueMemberS{Value: it.Status},
		":approval_status":            &types.AttributeValueMemberS{Value: it.ApprovalStatus},
		":started_at":                 &types.AttributeValueMemberS{Value: it.StartedAt},
		":completed_at":               &types.AttributeValueMemberS{Value: it.CompletedAt},
		":completion_approval_status": &types.AttributeValueMemberS{Value: it.CompletionApprovalStatus},
		":completion_approved_by":     &types.AttributeValueMemberS{Value: it.CompletionApprovedBy},
		":completion_approved_at":     &types.AttributeValueMemberS{Value: it.CompletionApprovedAt},
		":completion_notes":           &types.AttributeValueMemberS{Value: it.CompletionNotes},
		":specification":              &types.AttributeValueMemberS{Value: it.Specification},
		":updated_at":                 &types.AttributeValueMemberS{Value: it.UpdatedAt},
	}
	names := map[string]string{
		"#title":                      "title",
		"#description":                "description",
		"#status":                     "status",
		"#approval_status":            "approval_status",
		"#started_at":                 "started_at",
		"#completed_at":               "completed_at",
		"#completion_approval_status": "completion_approval_status",
		"#completion_approved_by":     "completion_approved_by",
		"#completion_approved_at":     "completion_approved_at",
		"#completion_notes":           "completion_notes",
		"#specification":              "specification",
		"#updated_at":                 "updated_at",
	}
	return expr, vals, names
}

func toWorkOrderItem(wo entities.WorkOrder) workOrderItem {
	it := workOrderItem{
		ID:                       wo.ID,
		Code:                     wo.Code,
		EquipmentID:              wo.EquipmentID,
		Title:                    wo.Title,
		Description:              wo.Description,
		Status:                   string(wo.Status),
		ApprovalStatus:           string(wo.ApprovalStatus),
		StartedAt:                formatOptionalTime(wo.StartedAt),
		CompletedAt:              formatOptionalTime(wo.CompletedAt),
		CompletionApprovalStatus: string(wo.CompletionApprovalStatus),
		CompletionApprovedBy:     wo.CompletionApprovedBy,
		CompletionApprovedAt:     formatOptionalTime(wo.CompletionApprovedAt),
		CompletionNotes:          wo.CompletionNotes,
		Specification:            string(wo.Specification),
		CreatedBy:                wo.CreatedBy,
		CreatedAt:                formatTime(wo.CreatedAt),
		UpdatedAt:                formatTime(wo.UpdatedAt),
	}
	if wo.CostSummary != nil {
		cs := toCostSummaryItem(*wo.CostSummary)
		it.CostSummary = &cs
	}
	return it
}

func fromWorkOrderItem(it workOrderItem) entities.WorkOrder {
	wo := entities.WorkOrder{
		ID:                       it.ID,
		Code:                     it.Code,
		EquipmentID:              it.EquipmentID,
		Title:                    it.Title,
		Description:              it.Description,
		Status:                   entities.WorkOrderStatus(it.Status),
		ApprovalStatus:           entities.ApprovalStatus(it.ApprovalStatus),
		StartedAt:                parseOptionalTime(it.StartedAt),
		CompletedAt:              parseOptionalTime(it.CompletedAt),
		CompletionApprovalStatus: entities.CompletionApprovalStatus(it.CompletionApprovalStatus),
		CompletionApprovedBy:     it.CompletionApprovedBy,
		CompletionApprovedAt:     parseOptionalTime(it.CompletionApprovedAt),
		CompletionNotes:          it.CompletionNotes,
		CreatedBy:                it.CreatedBy,
		CreatedAt:                parseTime(it.CreatedAt),
		UpdatedAt:                parseTime(it.UpdatedAt),
	}
	if it.Specification != "" {
		wo.Specification = json.RawMessage(it.Specification)
	}
	if it.CostSummary != nil {
		cs := fromCostSummaryItem(it.ID, *it.CostSummary)
		wo.CostSummary = &cs
	}
	return wo
}

func toCostSummaryItem(s entities.CostSummary) costSummaryItem {
	return costSummaryItem{
		LaborActualCost:       s.LaborActualCost,
		PlannedConsumableCost: s.PlannedConsumableCost,
		ActualConsumableCost:  s.ActualConsumableCost,
		PlannedOutsourceCost:  s.PlannedOutsourceCost,
		ActualOutsourceCost:   s.ActualOutsourceCost,
		TotalPlannedCost:      s.TotalPlannedCost,
		TotalActualCost:       s.TotalActualCost,
		CostVariance:          s.CostVariance,
		VarianceStatus:        string(s.VarianceStatus),
		CalculatedAt:          formatTime(s.CalculatedAt),
	}
}

func fromCostSummaryItem(workOrderID string, it costSummaryItem) entities.CostSummary {
	return entities.CostSummary{
		WorkOrderID:           workOrderID,
		LaborActualCost:       it.LaborActualCost,
		PlannedConsumableCost: it.PlannedConsumableCost,
		ActualConsumableCost:  it.ActualConsumableCost,
		PlannedOutsourceCost:  it.PlannedOutsourceCost,
		ActualOutsourceCost:   it.ActualOutsourceCost,
		TotalPlannedCost:      it.TotalPlannedCost,
		TotalActualCost:       it.TotalActualCost,
		CostVariance:          it.CostVariance,
		VarianceStatus:        entities.VarianceStatus(it.VarianceStatus),
		CalculatedAt:          parseTime(it.CalculatedAt),
	}
}
