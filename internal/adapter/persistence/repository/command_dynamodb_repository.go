package repository

import (
	"context"
	"encoding/json"
	"time"

	"lavaja/internal/domain/entities"
	"lavaja/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCommandsTableName = "iot_commands"
	commandsGatewayIDIndex   = "gateway_id-index"
	commandsCmdIDIndex       = "cmd_id-index"
)

type commandItem struct {
	ID        string `dynamodbav:"id"`
	TenantID  string `dynamodbav:"tenant_id"`
	GatewayID string `dynamodbav:"gateway_id"`
	MachineID string `dynamodbav:"machine_id,omitempty"`
	CycleID   string `dynamodbav:"cycle_id,omitempty"`
	CmdID     string `dynamodbav:"cmd_id"`
	Type      string `dynamodbav:"cmd_type"`
	Payload   string `dynamodbav:"payload,omitempty"`
	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"created_at"`
	ExpiresAt string `dynamodbav:"expires_at,omitempty"`
	AckAt     string `dynamodbav:"ack_at,omitempty"`
}

// CommandDynamoRepository persists IoTCommand entities in DynamoDB.
//
// Table requirements:
//   - iot_commands: PK id (string)
//   - GSI gateway_id-index (PK gateway_id): poll and sweep scans
//   - GSI cmd_id-index (PK cmd_id): wire-token lookups

type CommandDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICommandRepository = (*CommandDynamoRepository)(nil)

func NewCommandDynamoRepository(ddb *dynamodb.Client) *CommandDynamoRepository {
	return &CommandDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COMMANDS_TABLE", defaultCommandsTableName),
	}
}

func (r *CommandDynamoRepository) GetByID(ctx context.Context, id string) (entities.IoTCommand, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.IoTCommand{}, err
	}
	if len(out.Item) == 0 {
		return entities.IoTCommand{}, nil
	}

	var it commandItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.IoTCommand{}, err
	}
	return fromCommandItem(it), nil
}

func (r *CommandDynamoRepository) GetByCmdID(ctx context.Context, cmdID string) (entities.IoTCommand, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(commandsCmdIDIndex),
		KeyConditionExpression: aws.String("cmd_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: cmdID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.IoTCommand{}, err
	}
	if len(out.Items) == 0 {
		return entities.IoTCommand{}, nil
	}

	var it commandItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.IoTCommand{}, err
	}
	return fromCommandItem(it), nil
}

// ClaimPending picks PENDENTE commands for the gateway and flips each one to
// ENVIADO with a per-row conditional update. A row whose condition fails was
// grabbed by a concurrent poller and is simply skipped, so two pollers never
// both deliver the same command.
func (r *CommandDynamoRepository) ClaimPending(ctx context.Context, gatewayID string, max int) ([]entities.IoTCommand, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(commandsGatewayIDIndex),
		KeyConditionExpression: aws.String("gateway_id = :gid"),
		FilterExpression:       aws.String("#st = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#st": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":gid":     &types.AttributeValueMemberS{Value: gatewayID},
			":pending": &types.AttributeValueMemberS{Value: string(entities.CommandStatusPendente)},
		},
	})
	if err != nil {
		return nil, err
	}

	claimed := make([]entities.IoTCommand, 0, max)
	for _, raw := range out.Items {
		if len(claimed) >= max {
			break
		}
		var it commandItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}

		applied, err := r.UpdateStatusIf(ctx, it.ID, []entities.CommandStatus{entities.CommandStatusPendente}, entities.CommandStatusEnviado, nil)
		if err != nil {
			return nil, err
		}
		if !applied {
			continue
		}
		cmd := fromCommandItem(it)
		cmd.Status = entities.CommandStatusEnviado
		claimed = append(claimed, cmd)
	}
	return claimed, nil
}

func (r *CommandDynamoRepository) ListOpenByGatewayID(ctx context.Context, gatewayID string) ([]entities.IoTCommand, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(commandsGatewayIDIndex),
		KeyConditionExpression: aws.String("gateway_id = :gid"),
		FilterExpression:       aws.String("#st IN (:s0, :s1, :s2)"),
		ExpressionAttributeNames: map[string]string{
			"#st": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":gid": &types.AttributeValueMemberS{Value: gatewayID},
			":s0":  &types.AttributeValueMemberS{Value: string(entities.CommandStatusPendente)},
			":s1":  &types.AttributeValueMemberS{Value: string(entities.CommandStatusEnviado)},
			":s2":  &types.AttributeValueMemberS{Value: string(entities.CommandStatusAck)},
		},
	})
	if err != nil {
		return nil, err
	}

	cmds := make([]entities.IoTCommand, 0, len(out.Items))
	for _, raw := range out.Items {
		var it commandItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		cmds = append(cmds, fromCommandItem(it))
	}
	return cmds, nil
}

func (r *CommandDynamoRepository) UpdateStatusIf(ctx context.Context, id string, from []entities.CommandStatus, to entities.CommandStatus, ackAt *time.Time) (bool, error) {
	fromStrs := make([]string, 0, len(from))
	for _, s := range from {
		fromStrs = append(fromStrs, string(s))
	}
	guard, values := statusGuard(fromStrs)
	values[":to"] = &types.AttributeValueMemberS{Value: string(to)}

	update := "SET #st = :to"
	if ackAt != nil {
		update += ", ack_at = :ack"
		values[":ack"] = &types.AttributeValueMemberS{Value: formatTime(*ackAt)}
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          aws.String(update),
		ConditionExpression:       aws.String("attribute_exists(id) AND " + guard),
		ExpressionAttributeNames:  map[string]string{"#st": "status"},
		ExpressionAttributeValues: values,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func fromCommandItem(it commandItem) entities.IoTCommand {
	var payload json.RawMessage
	if it.Payload != "" {
		payload = json.RawMessage(it.Payload)
	}
	return entities.IoTCommand{
		ID:        it.ID,
		TenantID:  it.TenantID,
		GatewayID: it.GatewayID,
		MachineID: it.MachineID,
		CycleID:   it.CycleID,
		CmdID:     it.CmdID,
		Type:      entities.CommandType(it.Type),
		Payload:   payload,
		Status:    entities.CommandStatus(it.Status),
		CreatedAt: parseTime(it.CreatedAt),
		ExpiresAt: parseTimePtr(it.ExpiresAt),
		AckAt:     parseTimePtr(it.AckAt),
	}
}

func toCommandItem(c entities.IoTCommand) commandItem {
	return commandItem{
		ID:        c.ID,
		TenantID:  c.TenantID,
		GatewayID: c.GatewayID,
		MachineID: c.MachineID,
		CycleID:   c.CycleID,
		CmdID:     c.CmdID,
		Type:      string(c.Type),
		Payload:   string(c.Payload),
		Status:    string(c.Status),
		CreatedAt: formatTime(c.CreatedAt),
		ExpiresAt: formatTimePtr(c.ExpiresAt),
		AckAt:     formatTimePtr(c.AckAt),
	}
}
