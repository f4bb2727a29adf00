package repository

import (
	"context"

	"lavaja/internal/domain/entities"
	"lavaja/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultMachinesTableName = "machines"
	machinesGatewayIDIndex   = "gateway_id-index"
	machinesPosDeviceIDIndex = "pos_device_id-index"
)

type machineItem struct {
	ID           string `dynamodbav:"id"`
	TenantID     string `dynamodbav:"tenant_id"`
	CondominioID string `dynamodbav:"condominio_id"`
	GatewayID    string `dynamodbav:"gateway_id"`
	PosDeviceID  string `dynamodbav:"pos_device_id,omitempty"`
	Name         string `dynamodbav:"name,omitempty"`
	PriceCents   int64  `dynamodbav:"price_cents"`
	Status       string `dynamodbav:"status"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// MachineDynamoRepository persists Machine entities in DynamoDB.
//
// Table requirements:
//   - machines: PK id (string)
//   - GSI gateway_id-index (PK gateway_id)
//   - GSI pos_device_id-index (PK pos_device_id)

type MachineDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMachineRepository = (*MachineDynamoRepository)(nil)

func NewMachineDynamoRepository(ddb *dynamodb.Client) *MachineDynamoRepository {
	return &MachineDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MACHINES_TABLE", defaultMachinesTableName),
	}
}

func (r *MachineDynamoRepository) GetByID(ctx context.Context, id string) (entities.Machine, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Machine{}, err
	}
	if len(out.Item) == 0 {
		return entities.Machine{}, nil
	}

	var it machineItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Machine{}, err
	}
	return fromMachineItem(it), nil
}

func (r *MachineDynamoRepository) ListByGatewayID(ctx context.Context, gatewayID string) ([]entities.Machine, error) {
	return r.listByIndex(ctx, machinesGatewayIDIndex, "gateway_id", gatewayID)
}

func (r *MachineDynamoRepository) ListByPosDeviceID(ctx context.Context, posDeviceID string) ([]entities.Machine, error) {
	return r.listByIndex(ctx, machinesPosDeviceIDIndex, "pos_device_id", posDeviceID)
}

func (r *MachineDynamoRepository) listByIndex(ctx context.Context, index, attr, value string) ([]entities.Machine, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(attr + " = :v"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	machines := make([]entities.Machine, 0, len(out.Items))
	for _, raw := range out.Items {
		var it machineItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		machines = append(machines, fromMachineItem(it))
	}
	return machines, nil
}

func fromMachineItem(it machineItem) entities.Machine {
	return entities.Machine{
		ID:           it.ID,
		TenantID:     it.TenantID,
		CondominioID: it.CondominioID,
		GatewayID:    it.GatewayID,
		PosDeviceID:  it.PosDeviceID,
		Name:         it.Name,
		PriceCents:   it.PriceCents,
		Status:       entities.MachineStatus(it.Status),
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
