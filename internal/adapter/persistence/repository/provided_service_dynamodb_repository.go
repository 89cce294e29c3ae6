package repository

import (
	"context"

	"tsmit_os/internal/domain/entities"
	"tsmit_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProvidedServicesTableName = "provided_services"

type providedServiceItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description,omitempty"`
}

// ProvidedServiceDynamoRepository persists the service catalog in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ProvidedServiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProvidedServiceRepository = (*ProvidedServiceDynamoRepository)(nil)

func NewProvidedServiceDynamoRepository(ddb *dynamodb.Client) *ProvidedServiceDynamoRepository {
	return &ProvidedServiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROVIDED_SERVICES_TABLE", defaultProvidedServicesTableName),
	}
}

func (r *ProvidedServiceDynamoRepository) List(ctx context.Context) ([]entities.ProvidedService, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ProvidedService, 0, len(out.Items))
	for _, raw := range out.Items {
		var it providedServiceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromProvidedServiceItem(it))
	}
	return items, nil
}

// GetByIDs batch-reads the catalog entries behind an order's snapshot.
// Missing ids are silently absent from the result.
func (r *ProvidedServiceDynamoRepository) GetByIDs(ctx context.Context, ids []string) ([]entities.ProvidedService, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]map[string]types.AttributeValue, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		})
	}

	var items []entities.ProvidedService
	request := map[string]types.KeysAndAttributes{
		r.tableName: {Keys: keys},
	}
	for len(request) > 0 {
		out, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{
			RequestItems: request,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Responses[r.tableName] {
			var it providedServiceItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromProvidedServiceItem(it))
		}
		request = out.UnprocessedKeys
	}
	return items, nil
}

func (r *ProvidedServiceDynamoRepository) Create(ctx context.Context, s entities.ProvidedService) (entities.ProvidedService, error) {
	av, err := attributevalue.MarshalMap(toProvidedServiceItem(s))
	if err != nil {
		return entities.ProvidedService{}, err
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
		return entities.ProvidedService{}, err
	}
	return s, nil
}

func (r *ProvidedServiceDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toProvidedServiceItem(s entities.ProvidedService) providedServiceItem {
	return providedServiceItem{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
	}
}

func fromProvidedServiceItem(it providedServiceItem) entities.ProvidedService {
	return entities.ProvidedService{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
	}
}
