package entities

import (
	"strings"
	"time"
)

// ServiceType tells whether payments need a pre-registered debtor.
//
//   - por_confirmacion: a payment is accepted only when an unsettled debtor
//     with the submitted identifier exists; accepting it settles the debtor.
//   - directo: any consumer may pay.

type ServiceType string

const (
	ServiceTypePorConfirmacion ServiceType = "por_confirmacion"
	ServiceTypeDirecto         ServiceType = "directo"
)

func (t ServiceType) Valid() bool {
	return t == ServiceTypePorConfirmacion || t == ServiceTypeDirecto
}

// FieldTemplate describes one column of a service's conciliation report.
//
// AttrReference has the form "<source>.<property>" where source is one of
// payment, consumer or paymentdetail. Format and Length are optional.
type FieldTemplate struct {
	Name          string `json:"name"`
	AttrReference string `json:"attr_reference"`
	Format        string `json:"format,omitempty"`
	Length        *int   `json:"length,omitempty"`
}

// DefaultFieldTemplate is seeded into every new service so its report always
// identifies the payment.
func DefaultFieldTemplate() FieldTemplate {
	length := 36
	return FieldTemplate{
		Name:          "Id Pago",
		AttrReference: "payment.id",
		Length:        &length,
	}
}

// Debtor is an entry of the roster used by por_confirmacion services.
type Debtor struct {
	ServiceID  string `json:"service_id"`
	Identifier string `json:"identifier"`
	Settled    bool   `json:"settled"`
}

// Service is a billable service owned by a Provider.
//
// FieldTemplates is ordered: report columns follow slice order.
type Service struct {
	ID             string          `json:"id"`
	ProviderID     string          `json:"provider_id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	ServiceType    ServiceType     `json:"service_type"`
	FieldTemplates []FieldTemplate `json:"field_templates"`
	CreatedAt      time.Time       `json:"created_at"`
}

func (s Service) RequiresConfirmation() bool {
	return s.ServiceType == ServiceTypePorConfirmacion
}

// NormalizeIdentifier is the canonical form used to match debtors.
func NormalizeIdentifier(identifier string) string {
	return strings.TrimSpace(identifier)
}
