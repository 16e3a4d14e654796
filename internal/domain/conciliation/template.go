package conciliation

import (
	"fmt"
	"strings"
	"time"

	"pagalotodo/internal/domain/entities"
)

// ConfirmationHeader is the trailing column every report carries. Providers
// fill it in when they send the file back.
const ConfirmationHeader = "Confirmacion"

type column struct {
	field entities.FieldTemplate
	read  func(Record) (string, error)
}

// Template is a compiled, ordered list of field templates.
type Template struct {
	columns []column
	runDate time.Time
}

// Compile resolves every reference against the static accessor tables.
// Unknown sources and payment/consumer properties fail here, before any row
// is rendered; payment-detail keys can only be checked per row.
func Compile(fields []entities.FieldTemplate) (*Template, error) {
	t := &Template{columns: make([]column, 0, len(fields)), runDate: time.Now().UTC()}
	for _, f := range fields {
		read, err := resolve(f)
		if err != nil {
			return nil, err
		}
		t.columns = append(t.columns, column{field: f, read: read})
	}
	return t, nil
}

func resolve(f entities.FieldTemplate) (func(Record) (string, error), error) {
	source, property, ok := strings.Cut(strings.TrimSpace(f.AttrReference), ".")
	if !ok || source == "" || property == "" {
		return nil, &ConfigurationError{Field: f.Name, Reference: f.AttrReference, Reason: "expected <source>.<property>"}
	}
	property = strings.ToLower(property)

	switch Source(strings.ToLower(source)) {
	case SourcePayment:
		get, found := paymentAccessors[property]
		if !found {
			return nil, &ConfigurationError{Field: f.Name, Reference: f.AttrReference, Reason: "unknown payment property"}
		}
		return func(r Record) (string, error) { return get(r.Payment), nil }, nil
	case SourceConsumer:
		get, found := consumerAccessors[property]
		if !found {
			return nil, &ConfigurationError{Field: f.Name, Reference: f.AttrReference, Reason: "unknown consumer property"}
		}
		return func(r Record) (string, error) { return get(r.Consumer), nil }, nil
	case SourcePaymentDetail:
		return func(r Record) (string, error) {
			v, found := r.Payment.Detail(property)
			if !found {
				return "", &ConfigurationError{
					Field:     f.Name,
					Reference: f.AttrReference,
					Reason:    fmt.Sprintf("payment %s has no detail %q", r.Payment.ID, property),
				}
			}
			return v, nil
		}, nil
	}
	return nil, &ConfigurationError{Field: f.Name, Reference: f.AttrReference, Reason: fmt.Sprintf("unknown source %q", source)}
}

// Header returns the template names followed by the confirmation column.
func (t *Template) Header() []string {
	header := make([]string, 0, len(t.columns)+1)
	for _, c := range t.columns {
		header = append(header, c.field.Name)
	}
	return append(header, ConfirmationHeader)
}

// Project renders one record into report columns. The last column is the
// empty confirmation cell.
func (t *Template) Project(r Record) ([]string, error) {
	row := make([]string, 0, len(t.columns)+1)
	for _, c := range t.columns {
		raw, err := c.read(r)
		if err != nil {
			return nil, err
		}
		row = append(row, formatValue(raw, c.field, t.runDate))
	}
	return append(row, ""), nil
}
