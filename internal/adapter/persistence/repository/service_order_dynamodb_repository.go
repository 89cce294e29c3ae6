package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"tsmit_os/internal/domain/entities"
	"tsmit_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultServiceOrdersTableName = "service_orders"
	defaultCountersTableName      = "counters"
	orderNumberCounterID          = "service_order_number"
)

type serviceOrderItem struct {
	ID                  string                `dynamodbav:"id"`
	OrderNumber         string                `dynamodbav:"order_number"`
	ClientID            string                `dynamodbav:"client_id"`
	Collaborator        collaboratorItem      `dynamodbav:"collaborator"`
	Equipment           equipmentItem         `dynamodbav:"equipment"`
	ReportedProblem     string                `dynamodbav:"reported_problem"`
	Analyst             string                `dynamodbav:"analyst"`
	StatusID            string                `dynamodbav:"status_id"`
	TechnicalSolution   string                `dynamodbav:"technical_solution,omitempty"`
	CreatedAt           string                `dynamodbav:"created_at"`
	Attachments         []string              `dynamodbav:"attachments"`
	ContractedServices  []providedServiceItem `dynamodbav:"contracted_services"`
	ConfirmedServiceIDs []string              `dynamodbav:"confirmed_service_ids"`
	Logs                []logEntryItem        `dynamodbav:"logs"`
	EditLogs            []editLogEntryItem    `dynamodbav:"edit_logs"`
}

type collaboratorItem struct {
	Name  string `dynamodbav:"name"`
	Email string `dynamodbav:"email,omitempty"`
	Phone string `dynamodbav:"phone,omitempty"`
}

type equipmentItem struct {
	Type         string `dynamodbav:"type"`
	Brand        string `dynamodbav:"brand"`
	Model        string `dynamodbav:"model"`
	SerialNumber string `dynamodbav:"serial_number"`
}

type logEntryItem struct {
	Timestamp   string `dynamodbav:"timestamp"`
	Responsible string `dynamodbav:"responsible"`
	FromStatus  string `dynamodbav:"from_status"`
	ToStatus    string `dynamodbav:"to_status"`
	Observation string `dynamodbav:"observation,omitempty"`
}

type editLogEntryItem struct {
	Timestamp   string              `dynamodbav:"timestamp"`
	Responsible string              `dynamodbav:"responsible"`
	Observation string              `dynamodbav:"observation,omitempty"`
	Changes     []editLogChangeItem `dynamodbav:"changes"`
}

type editLogChangeItem struct {
	Field    string `dynamodbav:"field"`
	OldValue any    `dynamodbav:"old_value"`
	NewValue any    `dynamodbav:"new_value"`
}

// ServiceOrderDynamoRepository persists ServiceOrder entities in DynamoDB.
//
// Table requirements:
//   - service_orders — PK: id (string)
//   - counters — PK: id (string), single row "service_order_number" holding
//     the numeric sequence behind OrderNumber
//
// logs and edit_logs are written with list_append(if_not_exists(...)) so
// two concurrent updates both land their entries: the second list_append
// re-reads the list the first one produced instead of overwriting it.
// NextOrderNumber uses an atomic ADD on the counters row, which is what
// makes order numbers unique under concurrent creation.

type ServiceOrderDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	countersTable string
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb *dynamodb.Client) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("SERVICE_ORDERS_TABLE", defaultServiceOrdersTableName),
		countersTable: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (r *ServiceOrderDynamoRepository) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	var orders []entities.ServiceOrder
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it serviceOrderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromServiceOrderItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return orders, nil
}

func (r *ServiceOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	av, err := attributevalue.MarshalMap(toServiceOrderItem(o))
	if err != nil {
		return entities.ServiceOrder{}, err
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
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

// Update applies a partial update in a single UpdateItem call. Scalar
// fields use SET; logs and edit_logs use list_append so the write composes
// with concurrent appends instead of clobbering them.
func (r *ServiceOrderDynamoRepository) Update(ctx context.Context, id string, upd interfaces.ServiceOrderUpdate) (entities.ServiceOrder, error) {
	expr := "SET"
	vals := map[string]types.AttributeValue{}
	names := map[string]string{"#id": "id"}
	n := 0

	set := func(attr string, av types.AttributeValue) {
		n++
		name := fmt.Sprintf("#a%d", n)
		val := fmt.Sprintf(":v%d", n)
		if n > 1 {
			expr += ","
		}
		expr += fmt.Sprintf(" %s = %s", name, val)
		names[name] = attr
		vals[val] = av
	}
	setNested := func(parent, child string, av types.AttributeValue) {
		n++
		pname := fmt.Sprintf("#p%d", n)
		cname := fmt.Sprintf("#c%d", n)
		val := fmt.Sprintf(":v%d", n)
		if n > 1 {
			expr += ","
		}
		expr += fmt.Sprintf(" %s.%s = %s", pname, cname, val)
		names[pname] = parent
		names[cname] = child
		vals[val] = av
	}
	appendList := func(attr string, av types.AttributeValue) {
		n++
		name := fmt.Sprintf("#a%d", n)
		val := fmt.Sprintf(":v%d", n)
		empty := fmt.Sprintf(":e%d", n)
		if n > 1 {
			expr += ","
		}
		expr += fmt.Sprintf(" %s = list_append(if_not_exists(%s, %s), %s)", name, name, empty, val)
		names[name] = attr
		vals[val] = av
		vals[empty] = &types.AttributeValueMemberL{Value: []types.AttributeValue{}}
	}

	if upd.StatusID != nil {
		set("status_id", &types.AttributeValueMemberS{Value: *upd.StatusID})
	}
	if upd.TechnicalSolution != nil {
		set("technical_solution", &types.AttributeValueMemberS{Value: *upd.TechnicalSolution})
	}
	if upd.Attachments != nil {
		av, err := attributevalue.Marshal(upd.Attachments)
		if err != nil {
			return entities.ServiceOrder{}, err
		}
		set("attachments", av)
	}
	if upd.ConfirmedServiceIDs != nil {
		av, err := attributevalue.Marshal(upd.ConfirmedServiceIDs)
		if err != nil {
			return entities.ServiceOrder{}, err
		}
		set("confirmed_service_ids", av)
	}
	if upd.ClientID != nil {
		set("client_id", &types.AttributeValueMemberS{Value: *upd.ClientID})
	}
	if upd.ReportedProblem != nil {
		set("reported_problem", &types.AttributeValueMemberS{Value: *upd.ReportedProblem})
	}
	if upd.CollaboratorName != nil {
		setNested("collaborator", "name", &types.AttributeValueMemberS{Value: *upd.CollaboratorName})
	}
	if upd.CollaboratorEmail != nil {
		setNested("collaborator", "email", &types.AttributeValueMemberS{Value: *upd.CollaboratorEmail})
	}
	if upd.CollaboratorPhone != nil {
		setNested("collaborator", "phone", &types.AttributeValueMemberS{Value: *upd.CollaboratorPhone})
	}
	if upd.EquipmentType != nil {
		setNested("equipment", "type", &types.AttributeValueMemberS{Value: *upd.EquipmentType})
	}
	if upd.EquipmentBrand != nil {
		setNested("equipment", "brand", &types.AttributeValueMemberS{Value: *upd.EquipmentBrand})
	}
	if upd.EquipmentModel != nil {
		setNested("equipment", "model", &types.AttributeValueMemberS{Value: *upd.EquipmentModel})
	}
	if upd.EquipmentSerialNumber != nil {
		setNested("equipment", "serial_number", &types.AttributeValueMemberS{Value: *upd.EquipmentSerialNumber})
	}
	if upd.AppendLog != nil {
		av, err := attributevalue.Marshal([]logEntryItem{toLogEntryItem(*upd.AppendLog)})
		if err != nil {
			return entities.ServiceOrder{}, err
		}
		appendList("logs", av)
	}
	if upd.AppendEditLog != nil {
		av, err := attributevalue.Marshal([]editLogEntryItem{toEditLogEntryItem(*upd.AppendEditLog)})
		if err != nil {
			return entities.ServiceOrder{}, err
		}
		appendList("edit_logs", av)
	}

	if n == 0 {
		return r.GetByID(ctx, id)
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// NextOrderNumber atomically increments the sequence counter and returns
// the new value. ADD creates the row on first use and is safe under
// concurrent creation: two callers always get distinct numbers.
func (r *ServiceOrderDynamoRepository) NextOrderNumber(ctx context.Context) (int, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.countersTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: orderNumberCounterID},
		},
		UpdateExpression: aws.String("ADD #value :one"),
		ExpressionAttributeNames: map[string]string{
			"#value": "value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	raw, ok := out.Attributes["value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("counter %s returned no numeric value", orderNumberCounterID)
	}
	return strconv.Atoi(raw.Value)
}

func toServiceOrderItem(o entities.ServiceOrder) serviceOrderItem {
	logs := make([]logEntryItem, 0, len(o.Logs))
	for _, l := range o.Logs {
		logs = append(logs, toLogEntryItem(l))
	}
	editLogs := make([]editLogEntryItem, 0, len(o.EditLogs))
	for _, l := range o.EditLogs {
		editLogs = append(editLogs, toEditLogEntryItem(l))
	}
	contracted := make([]providedServiceItem, 0, len(o.ContractedServices))
	for _, s := range o.ContractedServices {
		contracted = append(contracted, toProvidedServiceItem(s))
	}
	return serviceOrderItem{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		ClientID:    o.ClientID,
		Collaborator: collaboratorItem{
			Name:  o.Collaborator.Name,
			Email: o.Collaborator.Email,
			Phone: o.Collaborator.Phone,
		},
		Equipment: equipmentItem{
			Type:         o.Equipment.Type,
			Brand:        o.Equipment.Brand,
			Model:        o.Equipment.Model,
			SerialNumber: o.Equipment.SerialNumber,
		},
		ReportedProblem:     o.ReportedProblem,
		Analyst:             o.Analyst,
		StatusID:            o.StatusID,
		TechnicalSolution:   o.TechnicalSolution,
		CreatedAt:           o.CreatedAt.UTC().Format(time.RFC3339Nano),
		Attachments:         o.Attachments,
		ContractedServices:  contracted,
		ConfirmedServiceIDs: o.ConfirmedServiceIDs,
		Logs:                logs,
		EditLogs:            editLogs,
	}
}

func fromServiceOrderItem(it serviceOrderItem) entities.ServiceOrder {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	logs := make([]entities.LogEntry, 0, len(it.Logs))
	for _, l := range it.Logs {
		logs = append(logs, fromLogEntryItem(l))
	}
	editLogs := make([]entities.EditLogEntry, 0, len(it.EditLogs))
	for _, l := range it.EditLogs {
		editLogs = append(editLogs, fromEditLogEntryItem(l))
	}
	contracted := make([]entities.ProvidedService, 0, len(it.ContractedServices))
	for _, s := range it.ContractedServices {
		contracted = append(contracted, fromProvidedServiceItem(s))
	}
	return entities.ServiceOrder{
		ID:          it.ID,
		OrderNumber: it.OrderNumber,
		ClientID:    it.ClientID,
		Collaborator: entities.Collaborator{
			Name:  it.Collaborator.Name,
			Email: it.Collaborator.Email,
			Phone: it.Collaborator.Phone,
		},
		Equipment: entities.Equipment{
			Type:         it.Equipment.Type,
			Brand:        it.Equipment.Brand,
			Model:        it.Equipment.Model,
			SerialNumber: it.Equipment.SerialNumber,
		},
		ReportedProblem:     it.ReportedProblem,
		Analyst:             it.Analyst,
		StatusID:            it.StatusID,
		TechnicalSolution:   it.TechnicalSolution,
		CreatedAt:           createdAt,
		Attachments:         it.Attachments,
		ContractedServices:  contracted,
		ConfirmedServiceIDs: it.ConfirmedServiceIDs,
		Logs:                logs,
		EditLogs:            editLogs,
	}
}

func toLogEntryItem(l entities.LogEntry) logEntryItem {
	return logEntryItem{
		Timestamp:   l.Timestamp.UTC().Format(time.RFC3339Nano),
		Responsible: l.Responsible,
		FromStatus:  l.FromStatus,
		ToStatus:    l.ToStatus,
		Observation: l.Observation,
	}
}

func fromLogEntryItem(it logEntryItem) entities.LogEntry {
	ts, _ := time.Parse(time.RFC3339Nano, it.Timestamp)
	return entities.LogEntry{
		Timestamp:   ts,
		Responsible: it.Responsible,
		FromStatus:  it.FromStatus,
		ToStatus:    it.ToStatus,
		Observation: it.Observation,
	}
}

func toEditLogEntryItem(l entities.EditLogEntry) editLogEntryItem {
	changes := make([]editLogChangeItem, 0, len(l.Changes))
	for _, c := range l.Changes {
		changes = append(changes, editLogChangeItem{Field: c.Field, OldValue: c.OldValue, NewValue: c.NewValue})
	}
	return editLogEntryItem{
		Timestamp:   l.Timestamp.UTC().Format(time.RFC3339Nano),
		Responsible: l.Responsible,
		Observation: l.Observation,
		Changes:     changes,
	}
}

func fromEditLogEntryItem(it editLogEntryItem) entities.EditLogEntry {
	ts, _ := time.Parse(time.RFC3339Nano, it.Timestamp)
	changes := make([]entities.EditLogChange, 0, len(it.Changes))
	for _, c := range it.Changes {
		changes = append(changes, entities.EditLogChange{Field: c.Field, OldValue: c.OldValue, NewValue: c.NewValue})
	}
	return entities.EditLogEntry{
		Timestamp:   ts,
		Responsible: it.Responsible,
		Observation: it.Observation,
		Changes:     changes,
	}
}
