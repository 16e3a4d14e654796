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

const closeLedgerPartition = "ledger"

type accountingCloseItem struct {
	PK         string `dynamodbav:"pk"`
	ExecutedAt string `dynamodbav:"executed_at"`
	ID         string `dynamodbav:"id"`
}

// AccountingCloseDynamoRepository keeps every close under one partition so
// the latest entry is a single reverse query.
//
// Table requirements:
//   - PK: pk (string), SK: executed_at (string)
type AccountingCloseDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IAccountingCloseRepository = (*AccountingCloseDynamoRepository)(nil)

func NewAccountingCloseDynamoRepository(ddb DynamoAPI, tableName string) *AccountingCloseDynamoRepository {
	return &AccountingCloseDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *AccountingCloseDynamoRepository) Last(ctx context.Context) (entities.AccountingClose, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("pk = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: closeLedgerPartition},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
		ConsistentRead:   aws.Bool(true),
	})
	if err != nil {
		return entities.AccountingClose{}, fmt.Errorf("query accounting closes: %w", err)
	}
	if len(out.Items) == 0 {
		return entities.AccountingClose{}, nil
	}

	var it accountingCloseItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.AccountingClose{}, err
	}
	return entities.AccountingClose{ID: it.ID, ExecutedAt: parseTime(it.ExecutedAt)}, nil
}

func (r *AccountingCloseDynamoRepository) Append(ctx context.Context, c entities.AccountingClose) (entities.AccountingClose, error) {
	av, err := attributevalue.MarshalMap(accountingCloseItem{
		PK:         closeLedgerPartition,
		ExecutedAt: formatTime(c.ExecutedAt),
		ID:         c.ID,
	})
	if err != nil {
		return entities.AccountingClose{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#sk)"),
		ExpressionAttributeNames: map[string]string{
			"#sk": "executed_at",
		},
	})
	if err != nil {
		return entities.AccountingClose{}, fmt.Errorf("put accounting close: %w", err)
	}
	return c, nil
}
