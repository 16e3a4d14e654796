package conciliation

import (
	"time"

	"pagalotodo/internal/domain/entities"
)

var fixedNow = time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)

func samplePayment(id string) entities.Payment {
	return entities.Payment{
		ID:            id,
		ServiceID:     "svc-1",
		ConsumerID:    "con-1",
		TransactionID: "tx-" + id,
		Amount:        1234.5,
		Identifier:    "ACC-001",
		CreatedAt:     fixedNow,
		PaymentDate:   fixedNow,
		Status:        entities.PaymentStatusPending,
		Details: []entities.PaymentDetail{
			{Name: "Cedula", Value: "4.123.456-7"},
			{Name: "ref.no", Value: "R-9"},
		},
	}
}

func sampleConsumer() entities.Consumer {
	return entities.Consumer{
		ID:         "con-1",
		Username:   "jperez",
		Email:      "jperez@example.com",
		Name:       "Juan",
		LastName:   "Perez",
		ConsumerID: "41234567",
	}
}

func sampleRecord(id string) Record {
	return Record{Payment: samplePayment(id), Consumer: sampleConsumer()}
}

func sampleService(id, name string, fields ...entities.FieldTemplate) entities.Service {
	if len(fields) == 0 {
		fields = []entities.FieldTemplate{entities.DefaultFieldTemplate()}
	}
	return entities.Service{
		ID:             id,
		ProviderID:     "prov-1",
		Name:           name,
		ServiceType:    entities.ServiceTypeDirecto,
		FieldTemplates: fields,
	}
}
