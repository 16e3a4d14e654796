package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"pagalotodo/internal/domain/entities"
	"pagalotodo/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const paymentsServiceIDIndex = "service_id-index"

type paymentDetailItem struct {
	Name  string `dynamodbav:"name"`
	Value string `dynamodbav:"value"`
}

type paymentItem struct {
	ID            string              `dynamodbav:"id"`
	ServiceID     string              `dynamodbav:"service_id"`
	ConsumerID    string              `dynamodbav:"consumer_id"`
	TransactionID string              `dynamodbav:"transaction_id"`
	Amount        string              `dynamodbav:"amount"`
	Identifier    string              `dynamodbav:"identifier,omitempty"`
	CreatedAt     string              `dynamodbav:"created_at"`
	PaymentDate   string              `dynamodbav:"payment_date,omitempty"`
	Status        string              `dynamodbav:"status"`
	Details       []paymentDetailItem `dynamodbav:"details,omitempty"`
}

// PaymentDynamoRepository persists payments.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: service_id-index (PK: service_id, SK: created_at)
//
// Settling a debtor touches the debtors table of ServiceDynamoRepository in
// the same TransactWriteItems call as the payment insert.
type PaymentDynamoRepository struct {
	ddb          DynamoAPI
	tableName    string
	debtorsTable string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb DynamoAPI, tableName, debtorsTable string) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{ddb: ddb, tableName: tableName, debtorsTable: debtorsTable}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment, settleDebtor bool) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}

	put := &types.Put{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	}

	if !settleDebtor {
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:                put.TableName,
			Item:                     put.Item,
			ConditionExpression:      put.ConditionExpression,
			ExpressionAttributeNames: put.ExpressionAttributeNames,
		})
		if err != nil {
			return entities.Payment{}, fmt.Errorf("put payment: %w", err)
		}
		return p, nil
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: put},
			{Update: &types.Update{
				TableName:           aws.String(r.debtorsTable),
				Key:                 debtorKey(p.ServiceID, p.Identifier),
				ConditionExpression: aws.String("attribute_exists(#identifier) AND #settled = :false"),
				UpdateExpression:    aws.String("SET #settled = :true"),
				ExpressionAttributeNames: map[string]string{
					"#identifier": "identifier",
					"#settled":    "settled",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":false": &types.AttributeValueMemberBOOL{Value: false},
					":true":  &types.AttributeValueMemberBOOL{Value: true},
				},
			}},
		},
	})
	if err != nil {
		if debtorConditionFailed(err) {
			return entities.Payment{}, interfaces.ErrDebtorNotAvailable
		}
		return entities.Payment{}, fmt.Errorf("transact payment: %w", err)
	}
	return p, nil
}

// debtorConditionFailed reports whether a cancelled transaction failed on the
// debtor update, which is always the second item.
func debtorConditionFailed(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	if len(tce.CancellationReasons) < 2 {
		return false
	}
	return aws.ToString(tce.CancellationReasons[1].Code) == "ConditionalCheckFailed"
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, fmt.Errorf("get payment: %w", err)
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByServiceID(ctx context.Context, serviceID string, from, to time.Time) ([]entities.Payment, error) {
	keyExpr, values := paymentRangeCondition(serviceID, from, to)

	payments := make([]entities.Payment, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			IndexName:                 aws.String(paymentsServiceIDIndex),
			KeyConditionExpression:    aws.String(keyExpr),
			ExpressionAttributeValues: values,
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("query payments: %w", err)
		}
		for _, raw := range out.Items {
			var it paymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			payments = append(payments, fromPaymentItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return payments, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func paymentRangeCondition(serviceID string, from, to time.Time) (string, map[string]types.AttributeValue) {
	values := map[string]types.AttributeValue{
		":sid": &types.AttributeValueMemberS{Value: serviceID},
	}
	switch {
	case !from.IsZero() && !to.IsZero():
		values[":from"] = &types.AttributeValueMemberS{Value: formatTime(from)}
		values[":to"] = &types.AttributeValueMemberS{Value: formatTime(to)}
		return "service_id = :sid AND created_at BETWEEN :from AND :to", values
	case !from.IsZero():
		values[":from"] = &types.AttributeValueMemberS{Value: formatTime(from)}
		return "service_id = :sid AND created_at >= :from", values
	case !to.IsZero():
		values[":to"] = &types.AttributeValueMemberS{Value: formatTime(to)}
		return "service_id = :sid AND created_at <= :to", values
	default:
		return "service_id = :sid", values
	}
}

func (r *PaymentDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Payment, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{"#status": "status"}, map[string]string{"#id": "id"}),
		ReturnValues:             types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Payment{}, nil
		}
		return entities.Payment{}, fmt.Errorf("update payment status: %w", err)
	}
	if len(out.Attributes) == 0 {
		return entities.Payment{}, nil
	}
	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	details := make([]paymentDetailItem, 0, len(p.Details))
	for _, d := range p.Details {
		details = append(details, paymentDetailItem{Name: d.Name, Value: d.Value})
	}
	return paymentItem{
		ID:            p.ID,
		ServiceID:     p.ServiceID,
		ConsumerID:    p.ConsumerID,
		TransactionID: p.TransactionID,
		Amount:        floatToString(p.Amount),
		Identifier:    p.Identifier,
		CreatedAt:     formatTime(p.CreatedAt),
		PaymentDate:   formatTime(p.PaymentDate),
		Status:        string(p.Status),
		Details:       details,
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	var details []entities.PaymentDetail
	for _, d := range it.Details {
		details = append(details, entities.PaymentDetail{Name: d.Name, Value: d.Value})
	}
	return entities.Payment{
		ID:            it.ID,
		ServiceID:     it.ServiceID,
		ConsumerID:    it.ConsumerID,
		TransactionID: it.TransactionID,
		Amount:        amount,
		Identifier:    it.Identifier,
		CreatedAt:     parseTime(it.CreatedAt),
		PaymentDate:   parseTime(it.PaymentDate),
		Status:        entities.PaymentStatus(it.Status),
		Details:       details,
	}
}
