package request

import (
	"testing"

	"pagalotodo/internal/domain/entities"
)

func TestServiceRequest_ToEntity(t *testing.T) {
	s := ServiceRequest{ProviderID: "p-1", Name: "Agua", ServiceType: " POR_CONFIRMACION "}.ToEntity()
	if s.ServiceType != entities.ServiceTypePorConfirmacion {
		t.Fatalf("expected por_confirmacion, got %q", s.ServiceType)
	}
}

func TestFieldTemplatesRequest_ToEntities(t *testing.T) {
	length := 10
	r := FieldTemplatesRequest{Fields: []FieldTemplateRequest{
		{Name: "Cedula", AttrReference: "paymentdetail.cedula", Length: &length},
		{Name: "Monto", AttrReference: "payment.amount", Format: "N2"},
	}}
	fields := r.ToEntities()
	if len(fields) != 2 || fields[0].Name != "Cedula" || *fields[0].Length != 10 || fields[1].Format != "N2" {
		t.Fatalf("unexpected fields %+v", fields)
	}
}
