package response

import (
	"time"

	"pagalotodo/internal/domain/entities"
)

type FieldTemplateResponse struct {
	Name          string `json:"name"`
	AttrReference string `json:"attr_reference"`
	Format        string `json:"format,omitempty"`
	Length        *int   `json:"length,omitempty"`
}

type ServiceResponse struct {
	ID             string                  `json:"id"`
	ProviderID     string                  `json:"provider_id"`
	Name           string                  `json:"name"`
	Description    string                  `json:"description"`
	ServiceType    string                  `json:"service_type"`
	FieldTemplates []FieldTemplateResponse `json:"field_templates"`
	CreatedAt      time.Time               `json:"created_at"`
}

type DebtorResponse struct {
	Identifier string `json:"identifier"`
	Settled    bool   `json:"settled"`
}

func FromFieldTemplates(fields []entities.FieldTemplate) []FieldTemplateResponse {
	out := make([]FieldTemplateResponse, 0, len(fields))
	for _, f := range fields {
		out = append(out, FieldTemplateResponse{Name: f.Name, AttrReference: f.AttrReference, Format: f.Format, Length: f.Length})
	}
	return out
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		ID:             s.ID,
		ProviderID:     s.ProviderID,
		Name:           s.Name,
		Description:    s.Description,
		ServiceType:    string(s.ServiceType),
		FieldTemplates: FromFieldTemplates(s.FieldTemplates),
		CreatedAt:      s.CreatedAt,
	}
}

func FromServices(ss []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, FromService(s))
	}
	return out
}

func FromDebtors(ds []entities.Debtor) []DebtorResponse {
	out := make([]DebtorResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, DebtorResponse{Identifier: d.Identifier, Settled: d.Settled})
	}
	return out
}
