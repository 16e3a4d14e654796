package repository

import (
	"context"
	"testing"
	"time"

	"pagalotodo/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountingCloseRepository_LastEmpty(t *testing.T) {
	ddb := &fakeDynamo{}
	repo := NewAccountingCloseDynamoRepository(ddb, "closes")

	last, err := repo.Last(context.Background())
	require.NoError(t, err)
	assert.True(t, last.ExecutedAt.IsZero())

	require.Len(t, ddb.queryInputs, 1)
	assert.False(t, aws.ToBool(ddb.queryInputs[0].ScanIndexForward))
	assert.Equal(t, int32(1), aws.ToInt32(ddb.queryInputs[0].Limit))
}

func TestAccountingCloseRepository_AppendThenLast(t *testing.T) {
	ddb := &fakeDynamo{}
	repo := NewAccountingCloseDynamoRepository(ddb, "closes")
	at := time.Date(2024, 3, 5, 14, 7, 9, 120, time.UTC)

	_, err := repo.Append(context.Background(), entities.AccountingClose{ID: "cl-1", ExecutedAt: at})
	require.NoError(t, err)
	require.Len(t, ddb.putInputs, 1)
	assert.Equal(t, &types.AttributeValueMemberS{Value: closeLedgerPartition}, ddb.putInputs[0].Item["pk"])

	var stored accountingCloseItem
	require.NoError(t, attributevalue.UnmarshalMap(ddb.putInputs[0].Item, &stored))
	raw, err := attributevalue.MarshalMap(stored)
	require.NoError(t, err)
	ddb.queryOuts = []*dynamodb.QueryOutput{{Items: []map[string]types.AttributeValue{raw}}}

	last, err := repo.Last(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cl-1", last.ID)
	assert.True(t, last.ExecutedAt.Equal(at))
}

func TestTimeLayoutSortsChronologically(t *testing.T) {
	early := formatTime(time.Date(2024, 3, 5, 14, 7, 9, 5, time.UTC))
	late := formatTime(time.Date(2024, 3, 5, 14, 7, 9, 40_000_000, time.UTC))
	assert.Less(t, early, late)
	assert.Len(t, early, len(late))
}
