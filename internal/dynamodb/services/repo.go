package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"philcali.me/recipebook/internal/exceptions"
)

const DefaultPageSize = int32(100)

type DynamoDBAPI interface {
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

type RepositoryDynamoDBService[T interface{}, I interface{}] struct {
	DynamoDB  DynamoDBAPI
	TableName string
	AccountId string
	Name      string
	PageSize  int32
	Shim      func(pk string, sk string) T
	GetSK     func(T) string
	OnCreate  func(I, time.Time, string, string) T
	OnUpdate  func(I, expression.UpdateBuilder) expression.UpdateBuilder
}

func _getPrimaryKey(accountId string, name string) string {
	return fmt.Sprintf("%s:%s", accountId, name)
}

func _getKey(pks string, sks string) (map[string]types.AttributeValue, error) {
	pk, err := attributevalue.Marshal(pks)
	if err != nil {
		return nil, err
	}
	sk, err := attributevalue.Marshal(sks)
	if err != nil {
		return nil, err
	}
	return map[string]types.AttributeValue{"PK": pk, "SK": sk}, nil
}

func _conditionFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

// List reads every page for the account; the client never paginates.
func (rs *RepositoryDynamoDBService[T, I]) List(ctx context.Context) ([]T, error) {
	keyEx := expression.Key("PK").Equal(expression.Value(_getPrimaryKey(rs.AccountId, rs.Name)))
	expr, err := expression.NewBuilder().WithKeyCondition(keyEx).Build()
	if err != nil {
		return nil, err
	}
	pageSize := rs.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	items := make([]T, 0)
	var startKey map[string]types.AttributeValue
	for {
		output, err := rs.DynamoDB.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(rs.TableName),
			Limit:                     aws.Int32(pageSize),
			KeyConditionExpression:    expr.KeyCondition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, err
		}
		var page []T
		if err := attributevalue.UnmarshalListOfMaps(output.Items, &page); err != nil {
			return nil, err
		}
		items = append(items, page...)
		if len(output.LastEvaluatedKey) == 0 {
			return items, nil
		}
		startKey = output.LastEvaluatedKey
	}
}

func (rs *RepositoryDynamoDBService[T, I]) Create(ctx context.Context, input I) (T, error) {
	gid, _ := uuid.NewUUID()
	now := time.Now()
	shim := rs.OnCreate(input, now, _getPrimaryKey(rs.AccountId, rs.Name), gid.String())
	item, err := attributevalue.MarshalMap(shim)
	if err != nil {
		return shim, err
	}
	expr, err := expression.NewBuilder().WithCondition(expression.Name("PK").AttributeNotExists().And(expression.Name("SK").AttributeNotExists())).Build()
	if err != nil {
		return shim, err
	}
	_, err = rs.DynamoDB.PutItem(ctx, &dynamodb.PutItemInput{
		Item:                     item,
		TableName:                aws.String(rs.TableName),
		ConditionExpression:      expr.Condition(),
		ExpressionAttributeNames: expr.Names(),
	})
	if err != nil {
		if _conditionFailed(err) {
			return shim, exceptions.Conflict(strings.ToLower(rs.Name), rs.GetSK(shim))
		}
		return shim, err
	}
	return shim, nil
}

func (rs *RepositoryDynamoDBService[T, I]) Update(ctx context.Context, itemId string, input I) (T, error) {
	pk := _getPrimaryKey(rs.AccountId, rs.Name)
	shim := rs.Shim(pk, itemId)
	key, err := _getKey(pk, itemId)
	if err != nil {
		return shim, err
	}
	update := expression.Set(expression.Name("updateTime"), expression.Value(time.Now()))
	condition := expression.Name("PK").AttributeExists().And(expression.Name("SK").AttributeExists())
	update = rs.OnUpdate(input, update)
	expr, err := expression.NewBuilder().WithCondition(condition).WithUpdate(update).Build()
	if err != nil {
		return shim, err
	}
	response, err := rs.DynamoDB.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(rs.TableName),
		Key:                       key,
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if _conditionFailed(err) {
			return shim, exceptions.NotFound(strings.ToLower(rs.Name), itemId)
		}
		return shim, err
	}
	err = attributevalue.UnmarshalMap(response.Attributes, &shim)
	return shim, err
}

func (rs *RepositoryDynamoDBService[T, I]) Delete(ctx context.Context, itemId string) error {
	key, err := _getKey(_getPrimaryKey(rs.AccountId, rs.Name), itemId)
	if err != nil {
		return err
	}
	_, err = rs.DynamoDB.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		Key:       key,
		TableName: aws.String(rs.TableName),
	})
	return err
}
