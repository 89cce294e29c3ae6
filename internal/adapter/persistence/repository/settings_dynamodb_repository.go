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

const (
	defaultSettingsTableName = "settings"
	emailSettingsID          = "email"
	integrationsSettingsID   = "integrations"
)

type emailSettingsItem struct {
	ID           string `dynamodbav:"id"`
	SMTPServer   string `dynamodbav:"smtp_server,omitempty"`
	SMTPPort     int    `dynamodbav:"smtp_port,omitempty"`
	SMTPSecurity string `dynamodbav:"smtp_security,omitempty"`
	SenderEmail  string `dynamodbav:"sender_email,omitempty"`
	SMTPPassword string `dynamodbav:"smtp_password,omitempty"`
}

type integrationsSettingsItem struct {
	ID                  string `dynamodbav:"id"`
	WhatsappEndpoint    string `dynamodbav:"whatsapp_endpoint,omitempty"`
	WhatsappBearerToken string `dynamodbav:"whatsapp_bearer_token,omitempty"`
}

// SettingsDynamoRepository reads the notification configuration documents.
// The table holds one row per settings document ("email", "integrations").
// A missing row returns a zero value: unconfigured channels degrade at
// dispatch time instead of failing reads.

type SettingsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb *dynamodb.Client) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SETTINGS_TABLE", defaultSettingsTableName),
	}
}

func (r *SettingsDynamoRepository) GetEmailSettings(ctx context.Context) (entities.EmailSettings, error) {
	item, err := r.getDocument(ctx, emailSettingsID)
	if err != nil || len(item) == 0 {
		return entities.EmailSettings{}, err
	}

	var it emailSettingsItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.EmailSettings{}, err
	}
	return entities.EmailSettings{
		SMTPServer:   it.SMTPServer,
		SMTPPort:     it.SMTPPort,
		SMTPSecurity: it.SMTPSecurity,
		SenderEmail:  it.SenderEmail,
		SMTPPassword: it.SMTPPassword,
	}, nil
}

func (r *SettingsDynamoRepository) GetWhatsappSettings(ctx context.Context) (entities.WhatsappSettings, error) {
	item, err := r.getDocument(ctx, integrationsSettingsID)
	if err != nil || len(item) == 0 {
		return entities.WhatsappSettings{}, err
	}

	var it integrationsSettingsItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.WhatsappSettings{}, err
	}
	return entities.WhatsappSettings{
		Endpoint:    it.WhatsappEndpoint,
		BearerToken: it.WhatsappBearerToken,
	}, nil
}

func (r *SettingsDynamoRepository) getDocument(ctx context.Context, id string) (map[string]types.AttributeValue, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	return out.Item, nil
}
