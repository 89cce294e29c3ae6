package repository

import (
	"context"
	"errors"

	"tsmit_os/internal/domain/entities"
	"tsmit_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultStatusesTableName = "statuses"

type statusItem struct {
	ID                      string   `dynamodbav:"id"`
	Name                    string   `dynamodbav:"name"`
	Order                   int      `dynamodbav:"order"`
	Color                   string   `dynamodbav:"color"`
	Icon                    string   `dynamodbav:"icon,omitempty"`
	IsInitial               bool     `dynamodbav:"is_initial"`
	IsFinal                 bool     `dynamodbav:"is_final"`
	IsPickupStatus          bool     `dynamodbav:"is_pickup_status"`
	TriggersEmail           bool     `dynamodbav:"triggers_email"`
	TriggersWhatsapp        bool     `dynamodbav:"triggers_whatsapp"`
	EmailSubject            string   `dynamodbav:"email_subject,omitempty"`
	EmailBody               string   `dynamodbav:"email_body,omitempty"`
	WhatsappBody            string   `dynamodbav:"whatsapp_body,omitempty"`
	AllowedNextStatuses     []string `dynamodbav:"allowed_next_statuses,omitempty"`
	AllowedPreviousStatuses []string `dynamodbav:"allowed_previous_statuses,omitempty"`
}

// StatusDynamoRepository persists workflow Status entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The table is small (tens of rows) and read as a whole on every workflow
// decision, so List is a plain Scan.

type StatusDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStatusRepository = (*StatusDynamoRepository)(nil)

func NewStatusDynamoRepository(ddb *dynamodb.Client) *StatusDynamoRepository {
	return &StatusDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STATUSES_TABLE", defaultStatusesTableName),
	}
}

func (r *StatusDynamoRepository) List(ctx context.Context) ([]entities.Status, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Status, 0, len(out.Items))
	for _, raw := range out.Items {
		var it statusItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromStatusItem(it))
	}
	return items, nil
}

func (r *StatusDynamoRepository) GetByID(ctx context.Context, id string) (entities.Status, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Status{}, err
	}
	if len(out.Item) == 0 {
		return entities.Status{}, nil
	}

	var it statusItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Status{}, err
	}
	return fromStatusItem(it), nil
}

func (r *StatusDynamoRepository) Create(ctx context.Context, s entities.Status) (entities.Status, error) {
	av, err := attributevalue.MarshalMap(toStatusItem(s))
	if err != nil {
		return entities.Status{}, err
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
		return entities.Status{}, err
	}
	return s, nil
}

func (r *StatusDynamoRepository) Update(ctx context.Context, id string, s entities.Status) (entities.Status, error) {
	s.ID = id
	av, err := attributevalue.MarshalMap(toStatusItem(s))
	if err != nil {
		return entities.Status{}, err
	}

	// Full-document replace guarded on existence; statuses are edited
	// whole from the admin form.
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
			return entities.Status{}, nil
		}
		return entities.Status{}, err
	}
	return s, nil
}

func (r *StatusDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toStatusItem(s entities.Status) statusItem {
	return statusItem{
		ID:                      s.ID,
		Name:                    s.Name,
		Order:                   s.Order,
		Color:                   s.Color,
		Icon:                    s.Icon,
		IsInitial:               s.IsInitial,
		IsFinal:                 s.IsFinal,
		IsPickupStatus:          s.IsPickupStatus,
		TriggersEmail:           s.TriggersEmail,
		TriggersWhatsapp:        s.TriggersWhatsapp,
		EmailSubject:            s.EmailSubject,
		EmailBody:               s.EmailBody,
		WhatsappBody:            s.WhatsappBody,
		AllowedNextStatuses:     s.AllowedNextStatuses,
		AllowedPreviousStatuses: s.AllowedPreviousStatuses,
	}
}

func fromStatusItem(it statusItem) entities.Status {
	return entities.Status{
		ID:                      it.ID,
		Name:                    it.Name,
		Order:                   it.Order,
		Color:                   it.Color,
		Icon:                    it.Icon,
		IsInitial:               it.IsInitial,
		IsFinal:                 it.IsFinal,
		IsPickupStatus:          it.IsPickupStatus,
		TriggersEmail:           it.TriggersEmail,
		TriggersWhatsapp:        it.TriggersWhatsapp,
		EmailSubject:            it.EmailSubject,
		EmailBody:               it.EmailBody,
		WhatsappBody:            it.WhatsappBody,
		AllowedNextStatuses:     it.AllowedNextStatuses,
		AllowedPreviousStatuses: it.AllowedPreviousStatuses,
	}
}
