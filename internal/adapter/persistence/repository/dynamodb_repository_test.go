package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"fleet_maintenance/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDynamo struct {
	getItem    func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	putItem    func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
	updateItem func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error)
	deleteItem func(*dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error)
	query      func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error)
	transact   func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error)
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return f.getItem(in)
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return f.putItem(in)
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	return f.updateItem(in)
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	return f.deleteItem(in)
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return f.query(in)
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	return f.transact(in)
}

var conditionFailed = &types.ConditionalCheckFailedException{Message: aws.String("condition failed")}

func TestWorkOrderDynamoRepository_GetByID_MissingReturnsZero(t *testing.T) {
	ddb := &fakeDynamo{
		getItem: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			assert.Equal(t, "work_orders", aws.ToString(in.TableName))
			return &dynamodb.GetItemOutput{}, nil
		},
	}

	wo, err := NewWorkOrderDynamoRepository(ddb).GetByID(context.Background(), "wo-1")
	require.NoError(t, err)
	assert.Empty(t, wo.ID)
}

func TestWorkOrderDynamoRepository_GetByID_MapsItem(t *testing.T) {
	started := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	stored := toWorkOrderItem(entities.WorkOrder{
		ID:            "wo-1",
		Code:          "WO-1",
		Status:        entities.WorkOrderStatusInProgress,
		StartedAt:     &started,
		Specification: []byte(`{"torque":"45Nm"}`),
		CostSummary:   &entities.CostSummary{TotalActualCost: 120.5, VarianceStatus: entities.VarianceOverBudget},
	})
	av, err := attributevalue.MarshalMap(stored)
	require.NoError(t, err)

	ddb := &fakeDynamo{
		getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: av}, nil
		},
	}

	wo, err := NewWorkOrderDynamoRepository(ddb).GetByID(context.Background(), "wo-1")
	require.NoError(t, err)
	assert.Equal(t, entities.WorkOrderStatusInProgress, wo.Status)
	require.NotNil(t, wo.StartedAt)
	assert.True(t, wo.StartedAt.Equal(started))
	assert.Nil(t, wo.CompletedAt)
	assert.JSONEq(t, `{"torque":"45Nm"}`, string(wo.Specification))
	require.NotNil(t, wo.CostSummary)
	assert.Equal(t, "wo-1", wo.CostSummary.WorkOrderID)
	assert.Equal(t, 120.5, wo.CostSummary.TotalActualCost)
}

func TestWorkOrderDynamoRepository_UpdateLeavesCostSummaryAlone(t *testing.T) {
	ddb := &fakeDynamo{
		updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			assert.NotContains(t, aws.ToString(in.UpdateExpression), "cost_summary")
			assert.Equal(t, "attribute_exists(#id)", aws.ToString(in.ConditionExpression))
			return nil, conditionFailed
		},
	}

	wo, err := NewWorkOrderDynamoRepository(ddb).Update(context.Background(), entities.WorkOrder{ID: "wo-1"})
	require.NoError(t, err)
	assert.Empty(t, wo.ID)
}

func TestLaborEntryDynamoRepository_ListAutoFollowsPages(t *testing.T) {
	page1, _ := attributevalue.MarshalMap(laborEntryItem{ID: "le-1", TimeSource: "auto"})
	page2, _ := attributevalue.MarshalMap(laborEntryItem{ID: "le-2", TimeSource: "auto"})

	calls := 0
	ddb := &fakeDynamo{
		query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			calls++
			assert.Equal(t, "work_order_id-index", aws.ToString(in.IndexName))
			assert.Equal(t, "#time_source = :auto", aws.ToString(in.FilterExpression))
			if in.ExclusiveStartKey == nil {
				return &dynamodb.QueryOutput{
					Items:            []map[string]types.AttributeValue{page1},
					LastEvaluatedKey: idKey("le-1"),
				}, nil
			}
			return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{page2}}, nil
		},
	}

	got, err := NewLaborEntryDynamoRepository(ddb).ListAutoByWorkOrderID(context.Background(), "wo-1")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.Len(t, got, 2)
	assert.Equal(t, "le-1", got[0].ID)
	assert.Equal(t, "le-2", got[1].ID)
}

func TestApprovalDynamoRepository_Decide(t *testing.T) {
	decidedAt := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	a := entities.Approval{
		ID:           "ap-1",
		Status:       entities.ApprovalStatusApproved,
		ApproverID:   "mgr-1",
		DecidedAt:    &decidedAt,
		CostSnapshot: &entities.CostSummary{TotalActualCost: 10},
	}

	t.Run("pending record is decided", func(t *testing.T) {
		ddb := &fakeDynamo{
			updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				assert.Contains(t, aws.ToString(in.ConditionExpression), "#status = :pending")
				assert.Contains(t, aws.ToString(in.UpdateExpression), "#cost_snapshot = :cost_snapshot")
				return &dynamodb.UpdateItemOutput{}, nil
			},
		}
		ok, err := NewApprovalDynamoRepository(ddb).Decide(context.Background(), a)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("already decided reports false", func(t *testing.T) {
		ddb := &fakeDynamo{
			updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				return nil, conditionFailed
			},
		}
		ok, err := NewApprovalDynamoRepository(ddb).Decide(context.Background(), a)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("other errors propagate", func(t *testing.T) {
		boom := errors.New("throttled")
		ddb := &fakeDynamo{
			updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				return nil, boom
			},
		}
		_, err := NewApprovalDynamoRepository(ddb).Decide(context.Background(), a)
		assert.ErrorIs(t, err, boom)
	})
}

func TestRequisitionDynamoRepository_ApplyLineDecision(t *testing.T) {
	qty := 2.0
	decidedAt := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	line := entities.RequisitionLine{
		ID:               "line-1",
		RequisitionID:    "req-1",
		QuantityApproved: &qty,
		Storekeeper: entities.LineDecision{
			Status:     entities.ApprovalStatusApproved,
			ReviewerID: "sk-1",
			DecidedAt:  &decidedAt,
		},
	}

	t.Run("writes the track and the requisition status together", func(t *testing.T) {
		ddb := &fakeDynamo{
			transact: func(in *dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
				require.Len(t, in.TransactItems, 2)
				lineUpdate := in.TransactItems[0].Update
				require.NotNil(t, lineUpdate)
				assert.Equal(t, "requisition_lines", aws.ToString(lineUpdate.TableName))
				assert.Equal(t, "storekeeper_status", lineUpdate.ExpressionAttributeNames["#track_status"])
				assert.Contains(t, aws.ToString(lineUpdate.UpdateExpression), "#quantity_approved")

				reqUpdate := in.TransactItems[1].Update
				require.NotNil(t, reqUpdate)
				assert.Equal(t, &types.AttributeValueMemberS{Value: "approved"}, reqUpdate.ExpressionAttributeValues[":status"])
				return &dynamodb.TransactWriteItemsOutput{}, nil
			},
		}
		ok, err := NewRequisitionDynamoRepository(ddb).ApplyLineDecision(
			context.Background(), line, entities.ReviewTrackStorekeeper, entities.RequisitionStatusApproved, decidedAt,
		)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("condition failure reports false", func(t *testing.T) {
		ddb := &fakeDynamo{
			transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
				return nil, &types.TransactionCanceledException{
					CancellationReasons: []types.CancellationReason{
						{Code: aws.String("ConditionalCheckFailed")},
						{Code: aws.String("None")},
					},
				}
			},
		}
		ok, err := NewRequisitionDynamoRepository(ddb).ApplyLineDecision(
			context.Background(), line, entities.ReviewTrackStorekeeper, entities.RequisitionStatusApproved, decidedAt,
		)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRequisitionDynamoRepository_CreateRejectsOversizedTransactions(t *testing.T) {
	req := entities.Requisition{ID: "req-1", Lines: make([]entities.RequisitionLine, maxRequisitionLines+1)}
	_, err := NewRequisitionDynamoRepository(&fakeDynamo{}).Create(context.Background(), req)
	assert.Error(t, err)
}

func cancelledAt(pos, items int) error {
	reasons := make([]types.CancellationReason, items)
	for i := range reasons {
		reasons[i] = types.CancellationReason{Code: aws.String("None")}
	}
	reasons[pos].Code = aws.String("ConditionalCheckFailed")
	return &types.TransactionCanceledException{CancellationReasons: reasons}
}

func TestWorkOrderTxDynamoRepository_CreateWithApproval(t *testing.T) {
	wo := entities.WorkOrder{ID: "wo-1", Status: entities.WorkOrderStatusPending}
	pending := entities.Approval{ID: "ap-1", ReferenceType: entities.ApprovalReferenceWorkOrder, ReferenceID: "wo-1", Status: entities.ApprovalStatusPending}
	ddb := &fakeDynamo{
		transact: func(in *dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
			require.Len(t, in.TransactItems, 2)
			require.NotNil(t, in.TransactItems[0].Put)
			require.NotNil(t, in.TransactItems[1].Put)
			assert.Equal(t, "work_orders", aws.ToString(in.TransactItems[0].Put.TableName))
			assert.Equal(t, "approvals", aws.ToString(in.TransactItems[1].Put.TableName))
			assert.Equal(t, "attribute_not_exists(#id)", aws.ToString(in.TransactItems[1].Put.ConditionExpression))
			return &dynamodb.TransactWriteItemsOutput{}, nil
		},
	}
	created, err := NewWorkOrderTxDynamoRepository(ddb).CreateWithApproval(context.Background(), wo, pending)
	require.NoError(t, err)
	assert.Equal(t, "wo-1", created.ID)
}

func TestWorkOrderTxDynamoRepository_UpdateWithDecision(t *testing.T) {
	wo := entities.WorkOrder{ID: "wo-1", Status: entities.WorkOrderStatusPending, ApprovalStatus: entities.ApprovalStatusApproved}
	decidedAt := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	decided := entities.Approval{ID: "ap-1", Status: entities.ApprovalStatusApproved, ApproverID: "mgr-1", DecidedAt: &decidedAt}

	t.Run("writes both records in one transaction", func(t *testing.T) {
		ddb := &fakeDynamo{
			transact: func(in *dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
				require.Len(t, in.TransactItems, 2)
				order := in.TransactItems[0].Update
				require.NotNil(t, order)
				assert.Equal(t, "work_orders", aws.ToString(order.TableName))
				assert.Equal(t, "attribute_exists(#id)", aws.ToString(order.ConditionExpression))
				assert.Equal(t, "id", order.ExpressionAttributeNames["#id"])

				approval := in.TransactItems[1].Update
				require.NotNil(t, approval)
				assert.Equal(t, "approvals", aws.ToString(approval.TableName))
				assert.Contains(t, aws.ToString(approval.ConditionExpression), "#status = :pending")
				return &dynamodb.TransactWriteItemsOutput{}, nil
			},
		}
		updated, pending, err := NewWorkOrderTxDynamoRepository(ddb).UpdateWithDecision(context.Background(), wo, decided)
		require.NoError(t, err)
		assert.True(t, pending)
		assert.Equal(t, "wo-1", updated.ID)
	})

	t.Run("missing order yields a zero value", func(t *testing.T) {
		ddb := &fakeDynamo{
			transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
				return nil, cancelledAt(0, 2)
			},
		}
		updated, pending, err := NewWorkOrderTxDynamoRepository(ddb).UpdateWithDecision(context.Background(), wo, decided)
		require.NoError(t, err)
		assert.True(t, pending)
		assert.Empty(t, updated.ID)
	})

	t.Run("decided approval reports false", func(t *testing.T) {
		ddb := &fakeDynamo{
			transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
				return nil, cancelledAt(1, 2)
			},
		}
		updated, pending, err := NewWorkOrderTxDynamoRepository(ddb).UpdateWithDecision(context.Background(), wo, decided)
		require.NoError(t, err)
		assert.False(t, pending)
		assert.Empty(t, updated.ID)
	})

	t.Run("other errors propagate", func(t *testing.T) {
		boom := errors.New("throttled")
		ddb := &fakeDynamo{
			transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
				return nil, boom
			},
		}
		_, _, err := NewWorkOrderTxDynamoRepository(ddb).UpdateWithDecision(context.Background(), wo, decided)
		assert.ErrorIs(t, err, boom)
	})
}

func TestWorkOrderTxDynamoRepository_UpdateWithApproval(t *testing.T) {
	wo := entities.WorkOrder{ID: "wo-1", Status: entities.WorkOrderStatusCompleted}
	pending := entities.Approval{ID: "ap-2", ReferenceType: entities.ApprovalReferenceWorkCompletion, ReferenceID: "wo-1", Status: entities.ApprovalStatusPending}

	t.Run("missing order yields a zero value", func(t *testing.T) {
		ddb := &fakeDynamo{
			transact: func(in *dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
				require.Len(t, in.TransactItems, 2)
				assert.NotNil(t, in.TransactItems[0].Update)
				assert.NotNil(t, in.TransactItems[1].Put)
				return nil, cancelledAt(0, 2)
			},
		}
		updated, err := NewWorkOrderTxDynamoRepository(ddb).UpdateWithApproval(context.Background(), wo, pending)
		require.NoError(t, err)
		assert.Empty(t, updated.ID)
	})

	t.Run("taken approval id is an error", func(t *testing.T) {
		ddb := &fakeDynamo{
			transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
				return nil, cancelledAt(1, 2)
			},
		}
		_, err := NewWorkOrderTxDynamoRepository(ddb).UpdateWithApproval(context.Background(), wo, pending)
		assert.Error(t, err)
	})
}

func TestWorkOrderTxDynamoRepository_UpdateWithLaborEntries(t *testing.T) {
	wo := entities.WorkOrder{ID: "wo-1", Status: entities.WorkOrderStatusInProgress}

	t.Run("order and entries share a transaction", func(t *testing.T) {
		ddb := &fakeDynamo{
			transact: func(in *dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
				require.Len(t, in.TransactItems, 3)
				assert.NotNil(t, in.TransactItems[0].Update)
				assert.Equal(t, "labor_entries", aws.ToString(in.TransactItems[2].Put.TableName))
				return &dynamodb.TransactWriteItemsOutput{}, nil
			},
		}
		entries := []entities.LaborEntry{{ID: "le-1", WorkOrderID: "wo-1"}, {ID: "le-2", WorkOrderID: "wo-1"}}
		updated, err := NewWorkOrderTxDynamoRepository(ddb).UpdateWithLaborEntries(context.Background(), wo, entries)
		require.NoError(t, err)
		assert.Equal(t, "wo-1", updated.ID)
	})

	t.Run("too many entries", func(t *testing.T) {
		_, err := NewWorkOrderTxDynamoRepository(&fakeDynamo{}).UpdateWithLaborEntries(
			context.Background(), wo, make([]entities.LaborEntry, maxStartLaborEntries+1),
		)
		assert.Error(t, err)
	})
}
