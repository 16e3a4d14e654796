package email

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"testing"
	"time"

	"pagalotodo/internal/domain/conciliation"
	"pagalotodo/internal/domain/entities"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	status int
	err    error
	got    *mail.SGMailV3
}

func (f *fakeClient) SendWithContext(_ context.Context, m *mail.SGMailV3) (*rest.Response, error) {
	f.got = m
	if f.err != nil {
		return nil, f.err
	}
	return &rest.Response{StatusCode: f.status}, nil
}

var (
	provider  = entities.Provider{ID: "p-1", Name: "UTE", Email: "cobros@ute.uy"}
	artifacts = []conciliation.ReportArtifact{
		{ServiceID: "s-1", FileName: "Agua_BalanceSheet_2024-03-05.csv", Content: []byte("Id Pago\r\npay-1\r\n")},
		{ServiceID: "s-2", FileName: "Luz_BalanceSheet_2024-03-05.csv", Content: []byte("Id Pago\r\npay-2\r\n")},
	}
)

func newTestSender(client mailClient) *SendGridSender {
	s := newSendGridSender(client, "cierres@pagalotodo.uy", "PagaloTodo")
	s.now = func() time.Time { return time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC) }
	return s
}

func TestSendGridSender_Accepted(t *testing.T) {
	client := &fakeClient{status: http.StatusAccepted}
	require.NoError(t, newTestSender(client).Send(context.Background(), provider, artifacts))

	m := client.got
	require.NotNil(t, m)
	assert.Equal(t, "cierres@pagalotodo.uy", m.From.Address)
	assert.Equal(t, "Conciliación PagaloTodo 05/03/2024", m.Subject)
	require.Len(t, m.Personalizations, 1)
	assert.Equal(t, "cobros@ute.uy", m.Personalizations[0].To[0].Address)

	require.Len(t, m.Attachments, 2)
	assert.Equal(t, "Agua_BalanceSheet_2024-03-05.csv", m.Attachments[0].Filename)
	assert.Equal(t, "text/csv", m.Attachments[0].Type)
	decoded, err := base64.StdEncoding.DecodeString(m.Attachments[1].Content)
	require.NoError(t, err)
	assert.Equal(t, artifacts[1].Content, decoded)
}

func TestSendGridSender_NotAccepted(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusUnauthorized, http.StatusTooManyRequests} {
		err := newTestSender(&fakeClient{status: status}).Send(context.Background(), provider, artifacts)
		assert.ErrorIs(t, err, conciliation.ErrNotAccepted, "status %d", status)
	}
}

func TestSendGridSender_TransportError(t *testing.T) {
	err := newTestSender(&fakeClient{err: errors.New("dial tcp: timeout")}).Send(context.Background(), provider, artifacts)
	assert.ErrorIs(t, err, conciliation.ErrNotAccepted)
}

func TestMockSender(t *testing.T) {
	m := NewMockSender()
	require.NoError(t, m.Send(context.Background(), provider, artifacts))
	assert.Len(t, m.Sent("p-1"), 2)
	assert.Empty(t, m.Sent("p-2"))
}
