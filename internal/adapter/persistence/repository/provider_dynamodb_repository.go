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

type providerItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Email     string `dynamodbav:"email"`
	CreatedAt string `dynamodbav:"created_at"`
}

// ProviderDynamoRepository persists providers.
//
// Table requirements:
//   - PK: id (string)
type ProviderDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IProviderRepository = (*ProviderDynamoRepository)(nil)

func NewProviderDynamoRepository(ddb DynamoAPI, tableName string) *ProviderDynamoRepository {
	return &ProviderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ProviderDynamoRepository) Create(ctx context.Context, p entities.Provider) (entities.Provider, error) {
	av, err := attributevalue.MarshalMap(toProviderItem(p))
	if err != nil {
		return entities.Provider{}, err
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
		return entities.Provider{}, fmt.Errorf("put provider: %w", err)
	}
	return p, nil
}

func (r *ProviderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Provider, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Provider{}, fmt.Errorf("get provider: %w", err)
	}
	if len(out.Item) == 0 {
		return entities.Provider{}, nil
	}

	var it providerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Provider{}, err
	}
	return fromProviderItem(it), nil
}

func (r *ProviderDynamoRepository) List(ctx context.Context) ([]entities.Provider, error) {
	providers := make([]entities.Provider, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("scan providers: %w", err)
		}
		for _, raw := range out.Items {
			var it providerItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			providers = append(providers, fromProviderItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return providers, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *ProviderDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return fmt.Errorf("delete provider: %w", err)
	}
	return nil
}

func toProviderItem(p entities.Provider) providerItem {
	return providerItem{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		CreatedAt: formatTime(p.CreatedAt),
	}
}

func fromProviderItem(it providerItem) entities.Provider {
	return entities.Provider{
		ID:        it.ID,
		Name:      it.Name,
		Email:     it.Email,
		CreatedAt: parseTime(it.CreatedAt),
	}
}
