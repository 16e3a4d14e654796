package conciliation

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagalotodo/internal/domain/entities"
)

func TestCompile_RejectsBadReferences(t *testing.T) {
	cases := map[string]string{
		"unknown source":   "invoice.total",
		"unknown payment":  "payment.nope",
		"unknown consumer": "consumer.password",
		"no property":      "payment",
		"empty property":   "payment.",
		"empty source":     ".id",
	}
	for name, ref := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Compile([]entities.FieldTemplate{{Name: "x", AttrReference: ref}})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrConfiguration)

			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, ref, cfgErr.Reference)
		})
	}
}

func TestProject_ResolvesEachSource(t *testing.T) {
	tpl, err := Compile([]entities.FieldTemplate{
		{Name: "Pago", AttrReference: "PAYMENT.Id"},
		{Name: "Monto", AttrReference: "payment.amount"},
		{Name: "Fecha", AttrReference: "payment.createdAt"},
		{Name: "Estado", AttrReference: "payment.status"},
		{Name: "Apellido", AttrReference: "Consumer.LastName"},
		{Name: "Cedula", AttrReference: "paymentDetail.cedula"},
		{Name: "Ref", AttrReference: "paymentdetail.ref.no"},
	})
	require.NoError(t, err)

	row, err := tpl.Project(sampleRecord("pay-1"))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"pay-1",
		"1234.5",
		"2024-03-05T14:07:09Z",
		"pending",
		"Perez",
		"4.123.456-7",
		"R-9",
		"",
	}, row)
}

func TestProject_MissingDetailIsConfigurationError(t *testing.T) {
	tpl, err := Compile([]entities.FieldTemplate{{Name: "Cedula", AttrReference: "paymentdetail.cedula"}})
	require.NoError(t, err)

	rec := sampleRecord("pay-1")
	rec.Payment.Details = []entities.PaymentDetail{{Name: "other", Value: "1"}}

	_, err = tpl.Project(rec)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestProject_FixedLengthWithoutFormat(t *testing.T) {
	values := []string{"", "a", "ACC-001", "ñandú", strings.Repeat("x", 80)}
	for _, n := range []int{0, 1, 5, 36} {
		tpl, err := Compile([]entities.FieldTemplate{{Name: "Ident", AttrReference: "payment.identifier", Length: intPtr(n)}})
		require.NoError(t, err)
		for _, v := range values {
			rec := sampleRecord("pay-1")
			rec.Payment.Identifier = v
			row, err := tpl.Project(rec)
			require.NoError(t, err)
			assert.Equal(t, n, utf8.RuneCountInString(row[0]), "length=%d value=%q", n, v)
		}
	}
}

func TestProject_FormattedAmountIgnoresLength(t *testing.T) {
	tpl, err := Compile([]entities.FieldTemplate{{Name: "Monto", AttrReference: "payment.amount", Format: "N2", Length: intPtr(3)}})
	require.NoError(t, err)

	row, err := tpl.Project(sampleRecord("pay-1"))
	require.NoError(t, err)
	assert.Equal(t, "1,234.50", row[0])
}

func TestHeader_AppendsConfirmation(t *testing.T) {
	tpl, err := Compile([]entities.FieldTemplate{
		entities.DefaultFieldTemplate(),
		{Name: "Cedula", AttrReference: "paymentdetail.cedula"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Id Pago", "Cedula", ConfirmationHeader}, tpl.Header())

	empty, err := Compile(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Confirmacion"}, empty.Header())
}
