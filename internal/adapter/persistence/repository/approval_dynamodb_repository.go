package repository

import (
	"context"
	"sort"

	"fleet_maintenance/internal/domain/entities"
	"fleet_maintenance/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultApprovalsTableName = "approvals"
	approvalReferenceIndex    = "reference_id-index"
)

type approvalItem struct {
	ID            string           `dynamodbav:"id"`
	ReferenceType string           `dynamodbav:"reference_type"`
	ReferenceID   string           `dynamodbav:"reference_id"`
	ApproverID    string           `dynamodbav:"approver_id"`
	Status        string           `dynamodbav:"status"`
	Notes         string           `dynamodbav:"notes"`
	RequestedBy   string           `dynamodbav:"requested_by"`
	RequestedAt   string           `dynamodbav:"requested_at"`
	DecidedAt     string           `dynamodbav:"decided_at"`
	CostSnapshot  *costSummaryItem `dynamodbav:"cost_snapshot,omitempty"`
}

// ApprovalDynamoRepository persists Approval records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: reference_id-index (PK: reference_id)
type ApprovalDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IApprovalRepository = (*ApprovalDynamoRepository)(nil)

func NewApprovalDynamoRepository(ddb DynamoAPI) *ApprovalDynamoRepository {
	return &ApprovalDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("APPROVALS_TABLE", defaultApprovalsTableName),
	}
}

func (r *ApprovalDynamoRepository) Create(ctx context.Context, a entities.Approval) (entities.Approval, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toApprovalItem(a)); err != nil {
		return entities.Approval{}, err
	}
	return a, nil
}

func (r *ApprovalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Approval, error) {
	var it approvalItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Approval{}, err
	}
	return fromApprovalItem(it), nil
}

// ListByReference returns the approvals of one reference ordered by request time.
func (r *ApprovalDynamoRepository) ListByReference(ctx context.Context, refType entities.ApprovalReferenceType, refID string) ([]entities.Approval, error) {
	raw, err := queryIndex(ctx, r.ddb, indexQuery{
		table:  r.tableName,
		index:  approvalReferenceIndex,
		key:    "reference_id",
		value:  refID,
		filter: "#reference_type = :reference_type",
		names:  map[string]string{"#reference_type": "reference_type"},
		values: map[string]types.AttributeValue{
			":reference_type": &types.AttributeValueMemberS{Value: string(refType)},
		},
	})
	if err != nil {
		return nil, err
	}
	items, err := unmarshalItems[approvalItem](raw)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Approval, 0, len(items))
	for _, it := range items {
		out = append(out, fromApprovalItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RequestedAt.Before(out[j].RequestedAt)
	})
	return out, nil
}

// Decide writes the decision only while the stored approval is still pending.
func (r *ApprovalDynamoRepository) Decide(ctx context.Context, a entities.Approval) (bool, error) {
	expr, vals, names, err := approvalDecisionExpression(a)
	if err != nil {
		return false, err
	}

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(a.ID),
		ConditionExpression:       aws.String(approvalPendingCondition),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  names,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

const approvalPendingCondition = "attribute_exists(#id) AND #status = :pending"

// approvalDecisionExpression builds the update for a decided approval, to be guarded by
// approvalPendingCondition.
func approvalDecisionExpression(a entities.Approval) (string, map[string]types.AttributeValue, map[string]string, error) {
	expr := "SET #status = :status, #approver_id = :approver_id, #notes = :notes, #decided_at = :decided_at"
	vals := map[string]types.AttributeValue{
		":status":      &types.AttributeValueMemberS{Value: string(a.Status)},
		":approver_id": &types.AttributeValueMemberS{Value: a.ApproverID},
		":notes":       &types.AttributeValueMemberS{Value: a.Notes},
		":decided_at":  &types.AttributeValueMemberS{Value: formatOptionalTime(a.DecidedAt)},
		":pending":     &types.AttributeValueMemberS{Value: string(entities.ApprovalStatusPending)},
	}
	names := map[string]string{
		"#id":          "id",
		"#status":      "status",
		"#approver_id": "approver_id",
		"#notes":       "notes",
		"#decided_at":  "decided_at",
	}
	if a.CostSnapshot != nil {
		av, err := attributevalue.Marshal(toCostSummaryItem(*a.CostSnapshot))
		if err != nil {
			return "", nil, nil, err
		}
		expr += ", #cost_snapshot = :cost_snapshot"
		vals[":cost_snapshot"] = av
		names["#cost_snapshot"] = "cost_snapshot"
	}
	return expr, vals, names, nil
}

func toApprovalItem(a entities.Approval) approvalItem {
	it := approvalItem{
		ID:            a.ID,
		ReferenceType: string(a.ReferenceType),
		ReferenceID:   a.ReferenceID,
		ApproverID:    a.ApproverID,
		Status:        string(a.Status),
		Notes:         a.Notes,
		RequestedBy:   a.RequestedBy,
		RequestedAt:   formatTime(a.RequestedAt),
		DecidedAt:     formatOptionalTime(a.DecidedAt),
	}
	if a.CostSnapshot != nil {
		cs := toCostSummaryItem(*a.CostSnapshot)
		it.CostSnapshot = &cs
	}
	return it
}

func fromApprovalItem(it approvalItem) entities.Approval {
	a := entities.Approval{
		ID:            it.ID,
		ReferenceType: entities.ApprovalReferenceType(it.ReferenceType),
		ReferenceID:   it.ReferenceID,
		ApproverID:    it.ApproverID,
		Status:        entities.ApprovalStatus(it.Status),
		Notes:         it.Notes,
		RequestedBy:   it.RequestedBy,
		RequestedAt:   parseTime(it.RequestedAt),
		DecidedAt:     parseOptionalTime(it.DecidedAt),
	}
	if it.CostSnapshot != nil {
		cs := fromCostSummaryItem(it.ReferenceID, *it.CostSnapshot)
		a.CostSnapshot = &cs
	}
	return a
}
