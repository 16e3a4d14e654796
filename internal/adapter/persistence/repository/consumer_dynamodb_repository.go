package repository

import (
	"context"
	"fmt"

	"pagalotodo/internal/domain/entities"
	"pagalotodo/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type consumerItem struct {
	ID         string `dynamodbav:"id"`
	Username   string `dynamodbav:"username"`
	Email      string `dynamodbav:"email"`
	Name       string `dynamodbav:"name,omitempty"`
	LastName   string `dynamodbav:"last_name,omitempty"`
	ConsumerID string `dynamodbav:"consumer_id,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
}

type ConsumerDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IConsumerRepository = (*ConsumerDynamoRepository)(nil)

func NewConsumerDynamoRepository(ddb DynamoAPI, tableName string) *ConsumerDynamoRepository {
	return &ConsumerDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ConsumerDynamoRepository) Create(ctx context.Context, c entities.Consumer) (entities.Consumer, error) {
	av, err := attributevalue.MarshalMap(toConsumerItem(c))
	if err != nil {
		return entities.Consumer{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Consumer{}, fmt.Errorf("put consumer: %w", err)
	}
	return c, nil
}

func (r *ConsumerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Consumer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Consumer{}, fmt.Errorf("get consumer: %w", err)
	}
	if len(out.Item) == 0 {
		return entities.Consumer{}, nil
	}

	var it consumerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Consumer{}, err
	}
	return fromConsumerItem(it), nil
}

func toConsumerItem(c entities.Consumer) consumerItem {
	return consumerItem{
		ID:         c.ID,
		Username:   c.Username,
		Email:      c.Email,
		Name:       c.Name,
		LastName:   c.LastName,
		ConsumerID: c.ConsumerID,
		CreatedAt:  formatTime(c.CreatedAt),
	}
}

func fromConsumerItem(it consumerItem) entities.Consumer {
	return entities.Consumer{
		ID:         it.ID,
		Username:   it.Username,
		Email:      it.Email,
		Name:       it.Name,
		LastName:   it.LastName,
		ConsumerID: it.ConsumerID,
		CreatedAt:  parseTime(it.CreatedAt),
	}
}
