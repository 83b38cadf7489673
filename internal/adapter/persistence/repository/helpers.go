package repository

import (
	"context"
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the subset of *dynamodb.Client the repositories use.
type DynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

// putNew writes item only if no item with the same id exists.
func putNew(ctx context.Context, ddb DynamoAPI, table string, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

// getByID loads an item into out. It reports false when nothing is stored under id.
func getByID(ctx context.Context, ddb DynamoAPI, table, id string, out any) (bool, error) {
	res, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(res.Item, out); err != nil {
		return false, err
	}
	return true, nil
}

// deleteByID removes an item and unmarshals its previous state into out. It reports false
// when nothing was stored under id.
func deleteByID(ctx context.Context, ddb DynamoAPI, table, id string, out any) (bool, error) {
	res, err := ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(table),
		Key:          idKey(id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	if len(res.Attributes) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(res.Attributes, out); err != nil {
		return false, err
	}
	return true, nil
}

// indexQuery describes an equality lookup on a GSI, optionally narrowed by a filter.
type indexQuery struct {
	table  string
	index  string
	key    string
	value  string
	filter string
	names  map[string]string
	values map[string]types.AttributeValue
}

// queryIndex follows LastEvaluatedKey until the index has been read completely.
func queryIndex(ctx context.Context, ddb DynamoAPI, q indexQuery) ([]map[string]types.AttributeValue, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(q.table),
		IndexName:              aws.String(q.index),
		KeyConditionExpression: aws.String("#pk = :pk"),
		ExpressionAttributeNames: mergeNames(q.names, map[string]string{
			"#pk": q.key,
		}),
		ExpressionAttributeValues: mergeValues(q.values, map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: q.value},
		}),
	}
	if q.filter != "" {
		in.FilterExpression = aws.String(q.filter)
	}

	var items []map[string]types.AttributeValue
	p := dynamodb.NewQueryPaginator(ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
	}
	return items, nil
}

func unmarshalItems[T any](raw []map[string]types.AttributeValue) ([]T, error) {
	out := make([]T, 0, len(raw))
	for _, r := range raw {
		var it T
		if err := attributevalue.UnmarshalMap(r, &it); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, nil
}

func isConditionalCheckFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

// isTransactionConditionFailed reports whether a transaction was cancelled because one of
// its condition checks did not hold.
func isTransactionConditionFailed(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for _, r := range tce.CancellationReasons {
		if aws.ToString(r.Code) == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

// failedTransactItem returns the position of the first transaction item whose condition
// check failed.
func failedTransactItem(err error) (int, bool) {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return 0, false
	}
	for i, r := range tce.CancellationReasons {
		if aws.ToString(r.Code) == "ConditionalCheckFailed" {
			return i, true
		}
	}
	return 0, false
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseOptionalTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

func mergeValues(a, b map[string]types.AttributeValue) map[string]types.AttributeValue {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]types.AttributeValue, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
