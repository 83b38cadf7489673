package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"fleet_maintenance/internal/domain/entities"
	"fleet_maintenance/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRequisitionsTableName     = "requisitions"
	defaultRequisitionLinesTableName = "requisition_lines"
	byRequisitionIndex               = "requisition_id-index"

	// DynamoDB caps a transaction at 100 items; one is the requisition header.
	maxRequisitionLines = 99
)

type requisitionItem struct {
	ID          string `dynamodbav:"id"`
	WorkOrderID string `dynamodbav:"work_order_id"`
	RequestedBy string `dynamodbav:"requested_by"`
	Notes       string `dynamodbav:"notes"`
	Status      string `dynamodbav:"status"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

type requisitionLineItem struct {
	ID                    string   `dynamodbav:"id"`
	RequisitionID         string   `dynamodbav:"requisition_id"`
	LineNumber            int      `dynamodbav:"line_number"`
	PartID                string   `dynamodbav:"part_id"`
	Description           string   `dynamodbav:"description"`
	QuantityRequested     float64  `dynamodbav:"quantity_requested"`
	QuantityApproved      *float64 `dynamodbav:"quantity_approved,omitempty"`
	ForemanStatus         string   `dynamodbav:"foreman_status"`
	ForemanReviewerID     string   `dynamodbav:"foreman_reviewer_id"`
	ForemanDecidedAt      string   `dynamodbav:"foreman_decided_at"`
	ForemanRemarks        string   `dynamodbav:"foreman_remarks"`
	StorekeeperStatus     string   `dynamodbav:"storekeeper_status"`
	StorekeeperReviewerID string   `dynamodbav:"storekeeper_reviewer_id"`
	StorekeeperDecidedAt  string   `dynamodbav:"storekeeper_decided_at"`
	StorekeeperRemarks    string   `dynamodbav:"storekeeper_remarks"`
	UpdatedAt             string   `dynamodbav:"updated_at"`
}

// RequisitionDynamoRepository persists requisitions and their lines in two tables.
//
// Table requirements:
//   - requisitions: PK id, GSI work_order_id-index (PK: work_order_id)
//   - requisition_lines: PK id, GSI requisition_id-index (PK: requisition_id)
//
// Each line carries one flat set of attributes per review track (foreman_*, storekeeper_*)
// so a decision can be guarded by a condition on that track alone.
type RequisitionDynamoRepository struct {
	ddb        DynamoAPI
	tableName  string
	linesTable string
}

var _ interfaces.IRequisitionRepository = (*RequisitionDynamoRepository)(nil)

func NewRequisitionDynamoRepository(ddb DynamoAPI) *RequisitionDynamoRepository {
	return &RequisitionDynamoRepository{
		ddb:        ddb,
		tableName:  getenvDefault("REQUISITIONS_TABLE", defaultRequisitionsTableName),
		linesTable: getenvDefault("REQUISITION_LINES_TABLE", defaultRequisitionLinesTableName),
	}
}

// Create writes the header and every line in a single transaction.
func (r *RequisitionDynamoRepository) Create(ctx context.Context, req entities.Requisition) (entities.Requisition, error) {
	if len(req.Lines) > maxRequisitionLines {
		return entities.Requisition{}, fmt.Errorf("requisition has %d lines, at most %d are supported", len(req.Lines), maxRequisitionLines)
	}

	header, err := attributevalue.MarshalMap(toRequisitionItem(req))
	if err != nil {
		return entities.Requisition{}, err
	}
	notExists := aws.String("attribute_not_exists(#id)")
	idName := map[string]string{"#id": "id"}

	items := []types.TransactWriteItem{{
		Put: &types.Put{
			TableName:                aws.String(r.tableName),
			Item:                     header,
			ConditionExpression:      notExists,
			ExpressionAttributeNames: idName,
		},
	}}
	for _, l := range req.Lines {
		av, err := attributevalue.MarshalMap(toRequisitionLineItem(l))
		if err != nil {
			return entities.Requisition{}, err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName:                aws.String(r.linesTable),
				Item:                     av,
				ConditionExpression:      notExists,
				ExpressionAttributeNames: idName,
			},
		})
	}

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		return entities.Requisition{}, err
	}
	return req, nil
}

func (r *RequisitionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Requisition, error) {
	var it requisitionItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Requisition{}, err
	}
	req := fromRequisitionItem(it)
	if req.Lines, err = r.lines(ctx, req.ID); err != nil {
		return entities.Requisition{}, err
	}
	return req, nil
}

func (r *RequisitionDynamoRepository) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Requisition, error) {
	raw, err := queryIndex(ctx, r.ddb, indexQuery{
		table: r.tableName,
		index: byWorkOrderIndex,
		key:   "work_order_id",
		value: workOrderID,
	})
	if err != nil {
		return nil, err
	}
	items, err := unmarshalItems[requisitionItem](raw)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Requisition, 0, len(items))
	for _, it := range items {
		req := fromRequisitionItem(it)
		if req.Lines, err = r.lines(ctx, req.ID); err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *RequisitionDynamoRepository) GetLineByID(ctx context.Context, lineID string) (entities.RequisitionLine, error) {
	var it requisitionLineItem
	found, err := getByID(ctx, r.ddb, r.linesTable, lineID, &it)
	if err != nil || !found {
		return entities.RequisitionLine{}, err
	}
	return fromRequisitionLineItem(it), nil
}

// ApplyLineDecision updates the line's track and the requisition status in one transaction.
// The line update only succeeds while the track has no decision yet.
func (r *RequisitionDynamoRepository) ApplyLineDecision(
	ctx context.Context,
	line entities.RequisitionLine,
	track entities.ReviewTrack,
	status entities.RequisitionStatus,
	at time.Time,
) (bool, error) {
	d := line.Decision(track)
	prefix := string(track)

	lineExpr := "SET #track_status = :track_status, #track_reviewer = :track_reviewer, " +
		"#track_decided_at = :track_decided_at, #track_remarks = :track_remarks, #updated_at = :updated_at"
	lineVals := map[string]types.AttributeValue{
		":track_status":     &types.AttributeValueMemberS{Value: string(d.Status)},
		":track_reviewer":   &types.AttributeValueMemberS{Value: d.ReviewerID},
		":track_decided_at": &types.AttributeValueMemberS{Value: formatOptionalTime(d.DecidedAt)},
		":track_remarks":    &types.AttributeValueMemberS{Value: d.Remarks},
		":updated_at":       &types.AttributeValueMemberS{Value: formatTime(at)},
		":pending":          &types.AttributeValueMemberS{Value: string(entities.ApprovalStatusPending)},
		":empty":            &types.AttributeValueMemberS{Value: ""},
	}
	lineNames := map[string]string{
		"#id":               "id",
		"#track_status":     prefix + "_status",
		"#track_reviewer":   prefix + "_reviewer_id",
		"#track_decided_at": prefix + "_decided_at",
		"#track_remarks":    prefix + "_remarks",
		"#updated_at":       "updated_at",
	}
	if line.QuantityApproved != nil {
		lineExpr += ", #quantity_approved = :quantity_approved"
		lineVals[":quantity_approved"] = &types.AttributeValueMemberN{Value: floatToString(*line.QuantityApproved)}
		lineNames["#quantity_approved"] = "quantity_approved"
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(r.linesTable),
					Key:       idKey(line.ID),
					ConditionExpression: aws.String(
						"attribute_exists(#id) AND (attribute_not_exists(#track_status) OR #track_status = :pending OR #track_status = :empty)",
					),
					UpdateExpression:          aws.String(lineExpr),
					ExpressionAttributeValues: lineVals,
					ExpressionAttributeNames:  lineNames,
				},
			},
			{
				Update: &types.Update{
					TableName:           aws.String(r.tableName),
					Key:                 idKey(line.RequisitionID),
					ConditionExpression: aws.String("attribute_exists(#id)"),
					UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":status":     &types.AttributeValueMemberS{Value: string(status)},
						":updated_at": &types.AttributeValueMemberS{Value: formatTime(at)},
					},
					ExpressionAttributeNames: map[string]string{
						"#id":         "id",
						"#status":     "status",
						"#updated_at": "updated_at",
					},
				},
			},
		},
	})
	if err != nil {
		if isTransactionConditionFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *RequisitionDynamoRepository) lines(ctx context.Context, requisitionID string) ([]entities.RequisitionLine, error) {
	raw, err := queryIndex(ctx, r.ddb, indexQuery{
		table: r.linesTable,
		index: byRequisitionIndex,
		key:   "requisition_id",
		value: requisitionID,
	})
	if err != nil {
		return nil, err
	}
	items, err := unmarshalItems[requisitionLineItem](raw)
	if err != nil {
		return nil, err
	}
	out := make([]entities.RequisitionLine, 0, len(items))
	for _, it := range items {
		out = append(out, fromRequisitionLineItem(it))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LineNumber < out[j].LineNumber })
	return out, nil
}

func toRequisitionItem(r entities.Requisition) requisitionItem {
	return requisitionItem{
		ID:          r.ID,
		WorkOrderID: r.WorkOrderID,
		RequestedBy: r.RequestedBy,
		Notes:       r.Notes,
		Status:      string(r.Status),
		CreatedAt:   formatTime(r.CreatedAt),
		UpdatedAt:   formatTime(r.UpdatedAt),
	}
}

func fromRequisitionItem(it requisitionItem) entities.Requisition {
	return entities.Requisition{
		ID:          it.ID,
		WorkOrderID: it.WorkOrderID,
		RequestedBy: it.RequestedBy,
		Notes:       it.Notes,
		Status:      entities.RequisitionStatus(it.Status),
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}

func toRequisitionLineItem(l entities.RequisitionLine) requisitionLineItem {
	return requisitionLineItem{
		ID:                    l.ID,
		RequisitionID:         l.RequisitionID,
		LineNumber:            l.LineNumber,
		PartID:                l.PartID,
		Description:           l.Description,
		QuantityRequested:     l.QuantityRequested,
		QuantityApproved:      l.QuantityApproved,
		ForemanStatus:         string(l.Foreman.Status),
		ForemanReviewerID:     l.Foreman.ReviewerID,
		ForemanDecidedAt:      formatOptionalTime(l.Foreman.DecidedAt),
		ForemanRemarks:        l.Foreman.Remarks,
		StorekeeperStatus:     string(l.Storekeeper.Status),
		StorekeeperReviewerID: l.Storekeeper.ReviewerID,
		StorekeeperDecidedAt:  formatOptionalTime(l.Storekeeper.DecidedAt),
		StorekeeperRemarks:    l.Storekeeper.Remarks,
		UpdatedAt:             formatTime(l.UpdatedAt),
	}
}

func fromRequisitionLineItem(it requisitionLineItem) entities.RequisitionLine {
	return entities.RequisitionLine{
		ID:                it.ID,
		RequisitionID:     it.RequisitionID,
		LineNumber:        it.LineNumber,
		PartID:            it.PartID,
		Description:       it.Description,
		QuantityRequested: it.QuantityRequested,
		QuantityApproved:  it.QuantityApproved,
		Foreman: entities.LineDecision{
			Status:     entities.ApprovalStatus(it.ForemanStatus),
			ReviewerID: it.ForemanReviewerID,
			DecidedAt:  parseOptionalTime(it.ForemanDecidedAt),
			Remarks:    it.ForemanRemarks,
		},
		Storekeeper: entities.LineDecision{
			Status:     entities.ApprovalStatus(it.StorekeeperStatus),
			ReviewerID: it.StorekeeperReviewerID,
			DecidedAt:  parseOptionalTime(it.StorekeeperDecidedAt),
			Remarks:    it.StorekeeperRemarks,
		},
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
