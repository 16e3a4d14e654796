package gormrepo

import (
	"time"

	"pagalotodo/internal/domain/entities"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProviderModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	Email     string    `gorm:"column:email;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (ProviderModel) TableName() string { return "providers" }

type ServiceModel struct {
	ID             string               `gorm:"column:id;primaryKey"`
	ProviderID     string               `gorm:"column:provider_id;not null;index"`
	Name           string               `gorm:"column:name;not null"`
	Description    string               `gorm:"column:description"`
	ServiceType    string               `gorm:"column:service_type;not null"`
	FieldTemplates []FieldTemplateModel `gorm:"foreignKey:ServiceID"`
	CreatedAt      time.Time            `gorm:"column:created_at"`
}

func (ServiceModel) TableName() string { return "services" }

type FieldTemplateModel struct {
	ID            uint   `gorm:"column:id;primaryKey;autoIncrement"`
	ServiceID     string `gorm:"column:service_id;not null;index"`
	Position      int    `gorm:"column:position;not null"`
	Name          string `gorm:"column:name;not null"`
	AttrReference string `gorm:"column:attr_reference;not null"`
	Format        string `gorm:"column:format"`
	Length        *int   `gorm:"column:length"`
}

func (FieldTemplateModel) TableName() string { return "field_templates" }

type DebtorModel struct {
	ServiceID  string `gorm:"column:service_id;primaryKey"`
	Identifier string `gorm:"column:identifier;primaryKey"`
	Settled    bool   `gorm:"column:settled;not null"`
}

func (DebtorModel) TableName() string { return "debtors" }

type ConsumerModel struct {
	ID         string    `gorm:"column:id;primaryKey"`
	Username   string    `gorm:"column:username;not null"`
	Email      string    `gorm:"column:email;not null"`
	Name       string    `gorm:"column:name"`
	LastName   string    `gorm:"column:last_name"`
	ConsumerID string    `gorm:"column:consumer_id"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (ConsumerModel) TableName() string { return "consumers" }

type PaymentModel struct {
	ID            string               `gorm:"column:id;primaryKey"`
	ServiceID     string               `gorm:"column:service_id;not null;index:idx_payments_service_created,priority:1"`
	ConsumerID    string               `gorm:"column:consumer_id;not null"`
	TransactionID string               `gorm:"column:transaction_id;not null"`
	Amount        decimal.Decimal      `gorm:"column:amount;type:numeric;not null"`
	Identifier    string               `gorm:"column:identifier"`
	CreatedAt     time.Time            `gorm:"column:created_at;index:idx_payments_service_created,priority:2"`
	PaymentDate   *time.Time           `gorm:"column:payment_date"`
	Status        string               `gorm:"column:status;not null"`
	Details       []PaymentDetailModel `gorm:"foreignKey:PaymentID"`
}

func (PaymentModel) TableName() string { return "payments" }

type PaymentDetailModel struct {
	ID        uint   `gorm:"column:id;primaryKey;autoIncrement"`
	PaymentID string `gorm:"column:payment_id;not null;index"`
	Position  int    `gorm:"column:position;not null"`
	Name      string `gorm:"column:name;not null"`
	Value     string `gorm:"column:value"`
}

func (PaymentDetailModel) TableName() string { return "payment_details" }

type AccountingCloseModel struct {
	ID         string    `gorm:"column:id;primaryKey"`
	ExecutedAt time.Time `gorm:"column:executed_at;not null;index"`
}

func (AccountingCloseModel) TableName() string { return "accounting_closes" }

// AutoMigrate creates or updates every table the repositories use.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&ProviderModel{},
		&ServiceModel{},
		&FieldTemplateModel{},
		&DebtorModel{},
		&ConsumerModel{},
		&PaymentModel{},
		&PaymentDetailModel{},
		&AccountingCloseModel{},
	)
}

func toFieldTemplateModels(serviceID string, fields []entities.FieldTemplate) []FieldTemplateModel {
	models := make([]FieldTemplateModel, 0, len(fields))
	for i, f := range fields {
		models = append(models, FieldTemplateModel{
			ServiceID:     serviceID,
			Position:      i,
			Name:          f.Name,
			AttrReference: f.AttrReference,
			Format:        f.Format,
			Length:        f.Length,
		})
	}
	return models
}

func toServiceEntity(m ServiceModel) entities.Service {
	fields := make([]entities.FieldTemplate, 0, len(m.FieldTemplates))
	for _, f := range m.FieldTemplates {
		fields = append(fields, entities.FieldTemplate{
			Name:          f.Name,
			AttrReference: f.AttrReference,
			Format:        f.Format,
			Length:        f.Length,
		})
	}
	return entities.Service{
		ID:             m.ID,
		ProviderID:     m.ProviderID,
		Name:           m.Name,
		Description:    m.Description,
		ServiceType:    entities.ServiceType(m.ServiceType),
		FieldTemplates: fields,
		CreatedAt:      m.CreatedAt.UTC(),
	}
}

func toPaymentModel(p entities.Payment) PaymentModel {
	details := make([]PaymentDetailModel, 0, len(p.Details))
	for i, d := range p.Details {
		details = append(details, PaymentDetailModel{PaymentID: p.ID, Position: i, Name: d.Name, Value: d.Value})
	}
	m := PaymentModel{
		ID:            p.ID,
		ServiceID:     p.ServiceID,
		ConsumerID:    p.ConsumerID,
		TransactionID: p.TransactionID,
		Amount:        decimal.NewFromFloat(p.Amount),
		Identifier:    p.Identifier,
		CreatedAt:     p.CreatedAt.UTC(),
		Status:        string(p.Status),
		Details:       details,
	}
	if !p.PaymentDate.IsZero() {
		at := p.PaymentDate.UTC()
		m.PaymentDate = &at
	}
	return m
}

func toPaymentEntity(m PaymentModel) entities.Payment {
	var details []entities.PaymentDetail
	for _, d := range m.Details {
		details = append(details, entities.PaymentDetail{Name: d.Name, Value: d.Value})
	}
	p := entities.Payment{
		ID:            m.ID,
		ServiceID:     m.ServiceID,
		ConsumerID:    m.ConsumerID,
		TransactionID: m.TransactionID,
		Amount:        m.Amount.InexactFloat64(),
		Identifier:    m.Identifier,
		CreatedAt:     m.CreatedAt.UTC(),
		Status:        entities.PaymentStatus(m.Status),
		Details:       details,
	}
	if m.PaymentDate != nil {
		p.PaymentDate = m.PaymentDate.UTC()
	}
	return p
}
