package repository

import (
	"context"
	"time"

	"lavaja/internal/domain/entities"
	"lavaja/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCondominiosTableName = "condominios"
	defaultPosDevicesTableName  = "pos_devices"
	defaultGatewaysTableName    = "gateways"
	fleetSerialIndex            = "serial-index"
)

type condominioItem struct {
	ID       string `dynamodbav:"id"`
	TenantID string `dynamodbav:"tenant_id"`
	Name     string `dynamodbav:"name,omitempty"`
}

type posDeviceItem struct {
	ID           string `dynamodbav:"id"`
	TenantID     string `dynamodbav:"tenant_id"`
	Serial       string `dynamodbav:"serial"`
	CondominioID string `dynamodbav:"condominio_id,omitempty"`
	Active       bool   `dynamodbav:"active"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

type gatewayItem struct {
	ID           string `dynamodbav:"id"`
	TenantID     string `dynamodbav:"tenant_id"`
	Serial       string `dynamodbav:"serial"`
	CondominioID string `dynamodbav:"condominio_id,omitempty"`
	Secret       string `dynamodbav:"secret,omitempty"`
	Active       bool   `dynamodbav:"active"`
	LastSeenAt   string `dynamodbav:"last_seen_at,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// FleetDynamoRepository persists the hardware fleet (condominios, POS
// devices, gateways) in DynamoDB.
//
// Table requirements:
//   - condominios: PK id (string)
//   - pos_devices: PK id (string), GSI serial-index (PK serial)
//   - gateways: PK id (string), GSI serial-index (PK serial)
//
// Location moves are conditional on the current condominio so concurrent
// transfers cannot interleave.

type FleetDynamoRepository struct {
	ddb              *dynamodb.Client
	condominiosTable string
	posDevicesTable  string
	gatewaysTable    string
}

var _ interfaces.IFleetRepository = (*FleetDynamoRepository)(nil)

func NewFleetDynamoRepository(ddb *dynamodb.Client) *FleetDynamoRepository {
	return &FleetDynamoRepository{
		ddb:              ddb,
		condominiosTable: getenvDefault("CONDOMINIOS_TABLE", defaultCondominiosTableName),
		posDevicesTable:  getenvDefault("POS_DEVICES_TABLE", defaultPosDevicesTableName),
		gatewaysTable:    getenvDefault("GATEWAYS_TABLE", defaultGatewaysTableName),
	}
}

func (r *FleetDynamoRepository) GetCondominio(ctx context.Context, id string) (entities.Condominio, error) {
	item, err := r.getItem(ctx, r.condominiosTable, id)
	if err != nil || item == nil {
		return entities.Condominio{}, err
	}
	var it condominioItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.Condominio{}, err
	}
	return entities.Condominio{ID: it.ID, TenantID: it.TenantID, Name: it.Name}, nil
}

func (r *FleetDynamoRepository) GetPosDevice(ctx context.Context, id string) (entities.PosDevice, error) {
	item, err := r.getItem(ctx, r.posDevicesTable, id)
	if err != nil || item == nil {
		return entities.PosDevice{}, err
	}
	var it posDeviceItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.PosDevice{}, err
	}
	return fromPosDeviceItem(it), nil
}

func (r *FleetDynamoRepository) GetGateway(ctx context.Context, id string) (entities.Gateway, error) {
	item, err := r.getItem(ctx, r.gatewaysTable, id)
	if err != nil || item == nil {
		return entities.Gateway{}, err
	}
	var it gatewayItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.Gateway{}, err
	}
	return fromGatewayItem(it), nil
}

func (r *FleetDynamoRepository) GetGatewayBySerial(ctx context.Context, serial string) (entities.Gateway, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.gatewaysTable),
		IndexName:              aws.String(fleetSerialIndex),
		KeyConditionExpression: aws.String("serial = :s"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":s": &types.AttributeValueMemberS{Value: serial},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Gateway{}, err
	}
	if len(out.Items) == 0 {
		return entities.Gateway{}, nil
	}
	var it gatewayItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Gateway{}, err
	}
	return fromGatewayItem(it), nil
}

func (r *FleetDynamoRepository) UpdatePosDeviceLocationIf(ctx context.Context, id, fromCondominioID, toCondominioID string) (bool, error) {
	return r.moveLocation(ctx, r.posDevicesTable, id, fromCondominioID, toCondominioID)
}

func (r *FleetDynamoRepository) UpdateGatewayLocationIf(ctx context.Context, id, fromCondominioID, toCondominioID string) (bool, error) {
	return r.moveLocation(ctx, r.gatewaysTable, id, fromCondominioID, toCondominioID)
}

func (r *FleetDynamoRepository) moveLocation(ctx context.Context, table, id, from, to string) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET condominio_id = :to, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(id) AND condominio_id = :from"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":to":   &types.AttributeValueMemberS{Value: to},
			":from": &types.AttributeValueMemberS{Value: from},
			":now":  &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *FleetDynamoRepository) TouchGatewaySeen(ctx context.Context, id string, at time.Time) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.gatewaysTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET last_seen_at = :at"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":at": &types.AttributeValueMemberS{Value: formatTime(at)},
		},
	})
	if err != nil && !isConditionalCheckFailed(err) {
		return err
	}
	return nil
}

func (r *FleetDynamoRepository) getItem(ctx context.Context, table, id string) (map[string]types.AttributeValue, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	return out.Item, nil
}

func fromPosDeviceItem(it posDeviceItem) entities.PosDevice {
	return entities.PosDevice{
		ID:           it.ID,
		TenantID:     it.TenantID,
		Serial:       it.Serial,
		CondominioID: it.CondominioID,
		Active:       it.Active,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}

func fromGatewayItem(it gatewayItem) entities.Gateway {
	return entities.Gateway{
		ID:           it.ID,
		TenantID:     it.TenantID,
		Serial:       it.Serial,
		CondominioID: it.CondominioID,
		Secret:       it.Secret,
		Active:       it.Active,
		LastSeenAt:   parseTimePtr(it.LastSeenAt),
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
