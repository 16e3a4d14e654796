package request

import (
	"strings"

	"pagalotodo/internal/domain/entities"
)

type ServiceRequest struct {
	ProviderID  string `json:"provider_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ServiceType string `json:"service_type"`
}

func (r ServiceRequest) ToEntity() entities.Service {
	return entities.Service{
		ProviderID:  r.ProviderID,
		Name:        r.Name,
		Description: strings.TrimSpace(r.Description),
		ServiceType: entities.ServiceType(strings.ToLower(strings.TrimSpace(r.ServiceType))),
	}
}

type FieldTemplateRequest struct {
	Name          string `json:"name"`
	AttrReference string `json:"attr_reference"`
	Format        string `json:"format"`
	Length        *int   `json:"length"`
}

// FieldTemplatesRequest replaces a service's report columns; order matters.
type FieldTemplatesRequest struct {
	Fields []FieldTemplateRequest `json:"fields" binding:"required"`
}

func (r FieldTemplatesRequest) ToEntities() []entities.FieldTemplate {
	fields := make([]entities.FieldTemplate, 0, len(r.Fields))
	for _, f := range r.Fields {
		fields = append(fields, entities.FieldTemplate{
			Name:          f.Name,
			AttrReference: f.AttrReference,
			Format:        f.Format,
			Length:        f.Length,
		})
	}
	return fields
}

type DebtorsRequest struct {
	Identifiers []string `json:"identifiers" binding:"required,min=1"`
}
