package repository

import (
	"context"
	"errors"
	"fmt"
	"log"

	"pagalotodo/internal/domain/entities"
	"pagalotodo/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const servicesProviderIDIndex = "provider_id-index"

type fieldTemplateItem struct {
	Name          string `dynamodbav:"name"`
	AttrReference string `dynamodbav:"attr_reference"`
	Format        string `dynamodbav:"format,omitempty"`
	Length        *int   `dynamodbav:"length,omitempty"`
}

type serviceItem struct {
	ID             string              `dynamodbav:"id"`
	ProviderID     string              `dynamodbav:"provider_id"`
	Name           string              `dynamodbav:"name"`
	Description    string              `dynamodbav:"description,omitempty"`
	ServiceType    string              `dynamodbav:"service_type"`
	FieldTemplates []fieldTemplateItem `dynamodbav:"field_templates"`
	CreatedAt      string              `dynamodbav:"created_at"`
}

type debtorItem struct {
	ServiceID  string `dynamodbav:"service_id"`
	Identifier string `dynamodbav:"identifier"`
	Settled    bool   `dynamodbav:"settled"`
}

// ServiceDynamoRepository persists services and their debtor roster.
//
// Table requirements:
//   - services: PK id (string), GSI provider_id-index (PK: provider_id)
//   - debtors:  PK service_id (string), SK identifier (string)
//
// Field templates are stored inline as an ordered list.
type ServiceDynamoRepository struct {
	ddb          DynamoAPI
	tableName    string
	debtorsTable string
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb DynamoAPI, tableName, debtorsTable string) *ServiceDynamoRepository {
	return &ServiceDynamoRepository{ddb: ddb, tableName: tableName, debtorsTable: debtorsTable}
}

func (r *ServiceDynamoRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	av, err := attributevalue.MarshalMap(toServiceItem(s))
	if err != nil {
		return entities.Service{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Service{}, fmt.Errorf("put service: %w", err)
	}
	return s, nil
}

func (r *ServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Service{}, fmt.Errorf("get service: %w", err)
	}
	if len(out.Item) == 0 {
		return entities.Service{}, nil
	}

	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func (r *ServiceDynamoRepository) ListByProviderID(ctx context.Context, providerID string) ([]entities.Service, error) {
	services := make([]entities.Service, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(servicesProviderIDIndex),
			KeyConditionExpression: aws.String("provider_id = :pid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pid": &types.AttributeValueMemberS{Value: providerID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("query services: %w", err)
		}
		for _, raw := range out.Items {
			var it serviceItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			services = append(services, fromServiceItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return services, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// Delete removes the service and then its debtor roster.
func (r *ServiceDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}

	debtors, err := r.ListDebtors(ctx, id)
	if err != nil {
		return err
	}
	for _, d := range debtors {
		if _, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.debtorsTable),
			Key:       debtorKey(d.ServiceID, d.Identifier),
		}); err != nil {
			return fmt.Errorf("delete debtor: %w", err)
		}
	}
	return nil
}

func (r *ServiceDynamoRepository) ReplaceFieldTemplates(ctx context.Context, id string, fields []entities.FieldTemplate) (entities.Service, error) {
	list, err := attributevalue.Marshal(toFieldTemplateItems(fields))
	if err != nil {
		return entities.Service{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #fields = :fields"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":fields": list,
		},
		ExpressionAttributeNames: mergeNames(map[string]string{"#fields": "field_templates"}, map[string]string{"#id": "id"}),
		ReturnValues:             types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Service{}, nil
		}
		return entities.Service{}, fmt.Errorf("update field templates: %w", err)
	}
	if len(out.Attributes) == 0 {
		return entities.Service{}, nil
	}
	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

// AddDebtors writes each identifier as an unsettled debtor unless the entry
// already exists.
func (r *ServiceDynamoRepository) AddDebtors(ctx context.Context, serviceID string, identifiers []string) error {
	for _, identifier := range identifiers {
		av, err := attributevalue.MarshalMap(debtorItem{ServiceID: serviceID, Identifier: identifier})
		if err != nil {
			return err
		}
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(r.debtorsTable),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#identifier)"),
			ExpressionAttributeNames: map[string]string{
				"#identifier": "identifier",
			},
		})
		if err != nil {
			var cfe *types.ConditionalCheckFailedException
			if errors.As(err, &cfe) {
				log.Printf("[service][storage] debtor already registered service_id=%s identifier=%s", serviceID, identifier)
				continue
			}
			return fmt.Errorf("put debtor: %w", err)
		}
	}
	return nil
}

func (r *ServiceDynamoRepository) ListDebtors(ctx context.Context, serviceID string) ([]entities.Debtor, error) {
	debtors := make([]entities.Debtor, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.debtorsTable),
			KeyConditionExpression: aws.String("service_id = :sid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":sid": &types.AttributeValueMemberS{Value: serviceID},
			},
			ConsistentRead:    aws.Bool(true),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("query debtors: %w", err)
		}
		for _, raw := range out.Items {
			var it debtorItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			debtors = append(debtors, entities.Debtor{ServiceID: it.ServiceID, Identifier: it.Identifier, Settled: it.Settled})
		}
		if len(out.LastEvaluatedKey) == 0 {
			return debtors, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func debtorKey(serviceID, identifier string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"service_id": &types.AttributeValueMemberS{Value: serviceID},
		"identifier": &types.AttributeValueMemberS{Value: identifier},
	}
}

func toFieldTemplateItems(fields []entities.FieldTemplate) []fieldTemplateItem {
	items := make([]fieldTemplateItem, 0, len(fields))
	for _, f := range fields {
		items = append(items, fieldTemplateItem{
			Name:          f.Name,
			AttrReference: f.AttrReference,
			Format:        f.Format,
			Length:        f.Length,
		})
	}
	return items
}

func toServiceItem(s entities.Service) serviceItem {
	return serviceItem{
		ID:             s.ID,
		ProviderID:     s.ProviderID,
		Name:           s.Name,
		Description:    s.Description,
		ServiceType:    string(s.ServiceType),
		FieldTemplates: toFieldTemplateItems(s.FieldTemplates),
		CreatedAt:      formatTime(s.CreatedAt),
	}
}

func fromServiceItem(it serviceItem) entities.Service {
	fields := make([]entities.FieldTemplate, 0, len(it.FieldTemplates))
	for _, f := range it.FieldTemplates {
		fields = append(fields, entities.FieldTemplate{
			Name:          f.Name,
			AttrReference: f.AttrReference,
			Format:        f.Format,
			Length:        f.Length,
		})
	}
	return entities.Service{
		ID:             it.ID,
		ProviderID:     it.ProviderID,
		Name:           it.Name,
		Description:    it.Description,
		ServiceType:    entities.ServiceType(it.ServiceType),
		FieldTemplates: fields,
		CreatedAt:      parseTime(it.CreatedAt),
	}
}
