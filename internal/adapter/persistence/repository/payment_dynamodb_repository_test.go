package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"pagalotodo/internal/domain/entities"
	"pagalotodo/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePayment() entities.Payment {
	return entities.Payment{
		ID:            "pay-1",
		ServiceID:     "s-1",
		ConsumerID:    "c-1",
		TransactionID: "tx-1",
		Amount:        1250.5,
		Identifier:    "A-1",
		CreatedAt:     time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC),
		Status:        entities.PaymentStatusPending,
		Details:       []entities.PaymentDetail{{Name: "Cedula", Value: "1234"}, {Name: "Mes", Value: "03"}},
	}
}

func TestPaymentItem_RoundTripKeepsDetailOrder(t *testing.T) {
	p := samplePayment()
	it := toPaymentItem(p)

	assert.Equal(t, "1250.5", it.Amount)
	assert.Equal(t, "2024-03-05T14:07:09.000000000Z", it.CreatedAt)
	assert.Empty(t, it.PaymentDate)

	back := fromPaymentItem(it)
	assert.Equal(t, p.Details, back.Details)
	assert.True(t, back.CreatedAt.Equal(p.CreatedAt))
	assert.True(t, back.PaymentDate.IsZero())
}

func TestPaymentRepository_CreateWithoutSettlement(t *testing.T) {
	ddb := &fakeDynamo{}
	repo := NewPaymentDynamoRepository(ddb, "payments", "debtors")

	_, err := repo.Create(context.Background(), samplePayment(), false)
	require.NoError(t, err)
	require.Len(t, ddb.putInputs, 1)
	assert.Nil(t, ddb.transactIn)
	assert.Equal(t, "payments", aws.ToString(ddb.putInputs[0].TableName))
}

func TestPaymentRepository_CreateSettlesDebtorInTransaction(t *testing.T) {
	ddb := &fakeDynamo{}
	repo := NewPaymentDynamoRepository(ddb, "payments", "debtors")

	_, err := repo.Create(context.Background(), samplePayment(), true)
	require.NoError(t, err)
	require.NotNil(t, ddb.transactIn)
	require.Len(t, ddb.transactIn.TransactItems, 2)

	update := ddb.transactIn.TransactItems[1].Update
	require.NotNil(t, update)
	assert.Equal(t, "debtors", aws.ToString(update.TableName))
	assert.Equal(t, &types.AttributeValueMemberS{Value: "A-1"}, update.Key["identifier"])
	assert.Empty(t, ddb.putInputs)
}

func TestPaymentRepository_CreateDebtorUnavailable(t *testing.T) {
	ddb := &fakeDynamo{transactErr: &types.TransactionCanceledException{
		CancellationReasons: []types.CancellationReason{
			{Code: aws.String("None")},
			{Code: aws.String("ConditionalCheckFailed")},
		},
	}}
	repo := NewPaymentDynamoRepository(ddb, "payments", "debtors")

	_, err := repo.Create(context.Background(), samplePayment(), true)
	assert.ErrorIs(t, err, interfaces.ErrDebtorNotAvailable)
}

func TestPaymentRepository_CreateOtherTransactionFailure(t *testing.T) {
	ddb := &fakeDynamo{transactErr: errors.New("throttled")}
	repo := NewPaymentDynamoRepository(ddb, "payments", "debtors")

	_, err := repo.Create(context.Background(), samplePayment(), true)
	require.Error(t, err)
	assert.NotErrorIs(t, err, interfaces.ErrDebtorNotAvailable)
}

func TestPaymentRangeCondition(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	expr, values := paymentRangeCondition("s-1", time.Time{}, time.Time{})
	assert.Equal(t, "service_id = :sid", expr)
	assert.Len(t, values, 1)

	expr, _ = paymentRangeCondition("s-1", from, time.Time{})
	assert.Equal(t, "service_id = :sid AND created_at >= :from", expr)

	expr, _ = paymentRangeCondition("s-1", time.Time{}, to)
	assert.Equal(t, "service_id = :sid AND created_at <= :to", expr)

	expr, values = paymentRangeCondition("s-1", from, to)
	assert.Equal(t, "service_id = :sid AND created_at BETWEEN :from AND :to", expr)
	assert.Equal(t, &types.AttributeValueMemberS{Value: "2024-04-01T00:00:00.000000000Z"}, values[":to"])
}

func TestPaymentRepository_ListKeepsUpperBoundAndPages(t *testing.T) {
	inRange := toPaymentItem(samplePayment())
	atUpper := toPaymentItem(samplePayment())
	atUpper.ID = "pay-2"
	atUpper.CreatedAt = "2024-04-01T00:00:00.000000000Z"

	first, err := attributevalue.MarshalMap(inRange)
	require.NoError(t, err)
	second, err := attributevalue.MarshalMap(atUpper)
	require.NoError(t, err)

	ddb := &fakeDynamo{queryOuts: []*dynamodb.QueryOutput{
		{Items: []map[string]types.AttributeValue{first}, LastEvaluatedKey: map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "pay-1"}}},
		{Items: []map[string]types.AttributeValue{second}},
	}}
	repo := NewPaymentDynamoRepository(ddb, "payments", "debtors")

	got, err := repo.ListByServiceID(context.Background(), "s-1",
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "pay-1", got[0].ID)
	assert.Equal(t, "pay-2", got[1].ID)
	require.Len(t, ddb.queryInputs, 2)
	assert.Equal(t, paymentsServiceIDIndex, aws.ToString(ddb.queryInputs[0].IndexName))
	assert.NotNil(t, ddb.queryInputs[1].ExclusiveStartKey)
}

func TestPaymentRepository_UpdateStatusUnknownID(t *testing.T) {
	ddb := &fakeDynamo{updateErr: &types.ConditionalCheckFailedException{}}
	repo := NewPaymentDynamoRepository(ddb, "payments", "debtors")

	p, err := repo.UpdateStatus(context.Background(), "missing", entities.PaymentStatusConfirmed)
	require.NoError(t, err)
	assert.Empty(t, p.ID)
}
