package test

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// LocalDynamoDB keeps items in memory and understands just enough of the
// expressions built by the repository: key equality on PK, attribute
// (not) exists conditions, and SET update clauses.
type LocalDynamoDB struct {
	Items   []map[string]types.AttributeValue
	Queries int
	mutex   sync.Mutex
}

func _stringValue(av types.AttributeValue) string {
	if sv, ok := av.(*types.AttributeValueMemberS); ok {
		return sv.Value
	}
	return ""
}

func (ld *LocalDynamoDB) _find(key map[string]types.AttributeValue) int {
	for i, item := range ld.Items {
		if _stringValue(item["PK"]) == _stringValue(key["PK"]) && _stringValue(item["SK"]) == _stringValue(key["SK"]) {
			return i
		}
	}
	return -1
}

func _copyItem(item map[string]types.AttributeValue) map[string]types.AttributeValue {
	copied := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		copied[k] = v
	}
	return copied
}

func (ld *LocalDynamoDB) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	ld.mutex.Lock()
	defer ld.mutex.Unlock()
	ld.Queries++
	if len(params.ExpressionAttributeValues) != 1 {
		return nil, fmt.Errorf("expected a single key value, got %v", params.ExpressionAttributeValues)
	}
	var pk string
	for _, value := range params.ExpressionAttributeValues {
		pk = _stringValue(value)
	}
	var matching []map[string]types.AttributeValue
	for _, item := range ld.Items {
		if _stringValue(item["PK"]) == pk {
			matching = append(matching, item)
		}
	}
	start := 0
	if params.ExclusiveStartKey != nil {
		for i, item := range matching {
			if _stringValue(item["SK"]) == _stringValue(params.ExclusiveStartKey["SK"]) {
				start = i + 1
			}
		}
	}
	end := len(matching)
	if params.Limit != nil && start+int(*params.Limit) < end {
		end = start + int(*params.Limit)
	}
	output := &dynamodb.QueryOutput{}
	for _, item := range matching[start:end] {
		output.Items = append(output.Items, _copyItem(item))
	}
	if end < len(matching) {
		last := matching[end-1]
		output.LastEvaluatedKey = map[string]types.AttributeValue{"PK": last["PK"], "SK": last["SK"]}
	}
	return output, nil
}

func (ld *LocalDynamoDB) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	ld.mutex.Lock()
	defer ld.mutex.Unlock()
	index := ld._find(params.Item)
	if index >= 0 && strings.Contains(aws.ToString(params.ConditionExpression), "attribute_not_exists") {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("item exists")}
	}
	if index >= 0 {
		ld.Items[index] = _copyItem(params.Item)
	} else {
		ld.Items = append(ld.Items, _copyItem(params.Item))
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (ld *LocalDynamoDB) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	ld.mutex.Lock()
	defer ld.mutex.Unlock()
	index := ld._find(params.Key)
	if index < 0 {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("item missing")}
	}
	clause := strings.TrimSpace(aws.ToString(params.UpdateExpression))
	if !strings.HasPrefix(clause, "SET ") {
		return nil, fmt.Errorf("unsupported update expression %q", clause)
	}
	item := ld.Items[index]
	for _, assignment := range strings.Split(strings.TrimPrefix(clause, "SET "), ",") {
		name, value, found := strings.Cut(assignment, "=")
		if !found {
			return nil, fmt.Errorf("unsupported assignment %q", assignment)
		}
		attribute := params.ExpressionAttributeNames[strings.TrimSpace(name)]
		item[attribute] = params.ExpressionAttributeValues[strings.TrimSpace(value)]
	}
	return &dynamodb.UpdateItemOutput{Attributes: _copyItem(item)}, nil
}

func (ld *LocalDynamoDB) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	ld.mutex.Lock()
	defer ld.mutex.Unlock()
	if index := ld._find(params.Key); index >= 0 {
		ld.Items = append(ld.Items[:index], ld.Items[index+1:]...)
	}
	return &dynamodb.DeleteItemOutput{}, nil
}
