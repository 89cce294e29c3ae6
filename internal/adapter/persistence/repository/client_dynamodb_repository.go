package repository

import (
	"context"
	"errors"
	"log"

	"tsmit_os/internal/domain/entities"
	"tsmit_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultClientsTableName = "clients"

type clientItem struct {
	ID                   string   `dynamodbav:"id"`
	Name                 string   `dynamodbav:"name"`
	Email                string   `dynamodbav:"email,omitempty"`
	CNPJ                 string   `dynamodbav:"cnpj,omitempty"`
	Address              string   `dynamodbav:"address,omitempty"`
	ContractedServiceIDs []string `dynamodbav:"contracted_service_ids,omitempty"`
}

// ClientDynamoRepository persists Client entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ClientDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb *dynamodb.Client) *ClientDynamoRepository {
	return &ClientDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
	}
}

func (r *ClientDynamoRepository) List(ctx context.Context) ([]entities.Client, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Client, 0, len(out.Items))
	for _, raw := range out.Items {
		var it clientItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromClientItem(it))
	}
	return items, nil
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Client{}, err
	}
	if len(out.Item) == 0 {
		return entities.Client{}, nil
	}

	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *ClientDynamoRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	av, err := attributevalue.MarshalMap(toClientItem(c))
	if err != nil {
		return entities.Client{}, err
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
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientDynamoRepository) Update(ctx context.Context, id string, c entities.Client) (entities.Client, error) {
	c.ID = id
	av, err := attributevalue.MarshalMap(toClientItem(c))
	if err != nil {
		return entities.Client{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Client{}, nil
		}
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// AddContractedService appends the service id to each client's contracted
// set. The read-check-write per client keeps the operation idempotent;
// bulk assignment is an admin action, so last-writer-wins on the rare
// concurrent edit is acceptable.
func (r *ClientDynamoRepository) AddContractedService(ctx context.Context, clientIDs []string, serviceID string) error {
	for _, clientID := range clientIDs {
		c, err := r.GetByID(ctx, clientID)
		if err != nil {
			return err
		}
		if c.ID == "" {
			log.Printf("[client][repository] assign skipped client_id=%s service_id=%s reason=not_found", clientID, serviceID)
			continue
		}
		if containsID(c.ContractedServiceIDs, serviceID) {
			continue
		}
		c.ContractedServiceIDs = append(c.ContractedServiceIDs, serviceID)
		if _, err := r.Update(ctx, c.ID, c); err != nil {
			return err
		}
	}
	return nil
}

func toClientItem(c entities.Client) clientItem {
	return clientItem{
		ID:                   c.ID,
		Name:                 c.Name,
		Email:                c.Email,
		CNPJ:                 c.CNPJ,
		Address:              c.Address,
		ContractedServiceIDs: c.ContractedServiceIDs,
	}
}

func fromClientItem(it clientItem) entities.Client {
	return entities.Client{
		ID:                   it.ID,
		Name:                 it.Name,
		Email:                it.Email,
		CNPJ:                 it.CNPJ,
		Address:              it.Address,
		ContractedServiceIDs: it.ContractedServiceIDs,
	}
}
