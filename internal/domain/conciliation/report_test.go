package conciliation

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagalotodo/internal/domain/entities"
)

func TestFileName(t *testing.T) {
	assert.Equal(t, "Agua-Potable-Norte_BalanceSheet_2024-03-05.csv", FileName("Agua Potable Norte", fixedNow))

	late := time.Date(2024, 3, 5, 22, 30, 0, 0, time.FixedZone("UYT", -3*3600))
	assert.Equal(t, "Luz_BalanceSheet_2024-03-06.csv", FileName("Luz", late))
}

func TestRender_ParsesBack(t *testing.T) {
	tpl, err := Compile([]entities.FieldTemplate{
		{Name: "Pago", AttrReference: "payment.id"},
		{Name: "Nombre", AttrReference: "consumer.name"},
		{Name: "Monto", AttrReference: "payment.amount", Format: "N2"},
	})
	require.NoError(t, err)

	content, err := Render(tpl, []Record{sampleRecord("p-1"), sampleRecord("p-2")})
	require.NoError(t, err)
	assert.True(t, bytes.HasSuffix(content, []byte("\r\n")))
	assert.Equal(t, "Pago;Nombre;Monto;Confirmacion\r\n", string(content[:bytes.Index(content, []byte("\n"))+1]))

	r := csv.NewReader(bytes.NewReader(content))
	r.Comma = FieldDelimiter
	rows, err := r.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Pago", "Nombre", "Monto", "Confirmacion"},
		{"p-1", "Juan", "1,234.50", ""},
		{"p-2", "Juan", "1,234.50", ""},
	}, rows)
}

func TestRender_HeaderOnlyWithoutRecords(t *testing.T) {
	tpl, err := Compile([]entities.FieldTemplate{entities.DefaultFieldTemplate()})
	require.NoError(t, err)

	first, err := Render(tpl, nil)
	require.NoError(t, err)
	second, err := Render(tpl, nil)
	require.NoError(t, err)

	assert.Equal(t, "Id Pago;Confirmacion\r\n", string(first))
	assert.Equal(t, first, second)
}

func TestBuilder_Build(t *testing.T) {
	b := NewBuilder(func() time.Time { return fixedNow })

	t.Run("no records produces no artifact", func(t *testing.T) {
		_, ok, err := b.Build(sampleService("svc-1", "Agua"), nil)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("records produce one artifact", func(t *testing.T) {
		artifact, ok, err := b.Build(sampleService("svc-1", "Agua Potable"), []Record{sampleRecord("p-1")})
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "svc-1", artifact.ServiceID)
		assert.Equal(t, "Agua-Potable_BalanceSheet_2024-03-05.csv", artifact.FileName)
		assert.Contains(t, string(artifact.Content), "Id Pago;Confirmacion\r\n")
	})

	t.Run("time-only values are dated on the build day", func(t *testing.T) {
		svc := sampleService("svc-1", "Agua", entities.FieldTemplate{Name: "Fecha", AttrReference: "paymentdetail.hora", Format: "dd/MM/yyyy HH:mm"})
		rec := sampleRecord("p-1")
		rec.Payment.Details = append(rec.Payment.Details, entities.PaymentDetail{Name: "Hora", Value: "12:30"})

		artifact, ok, err := b.Build(svc, []Record{rec})
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "Fecha;Confirmacion\r\n05/03/2024 12:30;\r\n", string(artifact.Content))
	})

	t.Run("bad template is reported with the service", func(t *testing.T) {
		svc := sampleService("svc-9", "Gas", entities.FieldTemplate{Name: "x", AttrReference: "payment.nope"})
		_, ok, err := b.Build(svc, []Record{sampleRecord("p-1")})
		require.Error(t, err)
		assert.False(t, ok)
		assert.ErrorIs(t, err, ErrConfiguration)
		assert.Contains(t, err.Error(), "svc-9")
	})
}
