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
	defaultKitTransfersTableName = "kit_transfers"
	defaultKitResetsTableName    = "kit_resets"
)

type kitTransferItem struct {
	ID               string `dynamodbav:"id"`
	TenantID         string `dynamodbav:"tenant_id"`
	PosDeviceID      string `dynamodbav:"pos_device_id"`
	GatewayID        string `dynamodbav:"gateway_id"`
	FromCondominioID string `dynamodbav:"from_condominio_id"`
	ToCondominioID   string `dynamodbav:"to_condominio_id"`
	Result           string `dynamodbav:"result"`
	Reason           string `dynamodbav:"reason,omitempty"`
	Actor            string `dynamodbav:"actor,omitempty"`
	CommandsExpired  int    `dynamodbav:"commands_expired"`
	CyclesExpired    int    `dynamodbav:"cycles_expired"`
	CreatedAt        string `dynamodbav:"created_at"`
}

type kitResetItem struct {
	ID              string `dynamodbav:"id"`
	TenantID        string `dynamodbav:"tenant_id"`
	PosDeviceID     string `dynamodbav:"pos_device_id"`
	GatewayID       string `dynamodbav:"gateway_id"`
	CondominioID    string `dynamodbav:"condominio_id"`
	Reason          string `dynamodbav:"reason,omitempty"`
	Actor           string `dynamodbav:"actor,omitempty"`
	CommandsExpired int    `dynamodbav:"commands_expired"`
	CyclesExpired   int    `dynamodbav:"cycles_expired"`
	BlockedActive   bool   `dynamodbav:"blocked_active_use"`
	CreatedAt       string `dynamodbav:"created_at"`
}

// KitAuditDynamoRepository persists the append-only kit audit tables.
//
// Table requirements: kit_transfers and kit_resets, PK id (string). Rows are
// written once with an attribute_not_exists guard and never updated.

type KitAuditDynamoRepository struct {
	ddb            *dynamodb.Client
	transfersTable string
	resetsTable    string
}

var _ interfaces.IKitAuditRepository = (*KitAuditDynamoRepository)(nil)

func NewKitAuditDynamoRepository(ddb *dynamodb.Client) *KitAuditDynamoRepository {
	return &KitAuditDynamoRepository{
		ddb:            ddb,
		transfersTable: getenvDefault("KIT_TRANSFERS_TABLE", defaultKitTransfersTableName),
		resetsTable:    getenvDefault("KIT_RESETS_TABLE", defaultKitResetsTableName),
	}
}

func (r *KitAuditDynamoRepository) AppendTransfer(ctx context.Context, t entities.KitTransfer) (entities.KitTransfer, error) {
	av, err := attributevalue.MarshalMap(kitTransferItem{
		ID:               t.ID,
		TenantID:         t.TenantID,
		PosDeviceID:      t.PosDeviceID,
		GatewayID:        t.GatewayID,
		FromCondominioID: t.FromCondominioID,
		ToCondominioID:   t.ToCondominioID,
		Result:           string(t.Result),
		Reason:           t.Reason,
		Actor:            t.Actor,
		CommandsExpired:  t.CommandsExpired,
		CyclesExpired:    t.CyclesExpired,
		CreatedAt:        formatTime(t.CreatedAt),
	})
	if err != nil {
		return entities.KitTransfer{}, err
	}
	if err := r.append(ctx, r.transfersTable, av); err != nil {
		return entities.KitTransfer{}, err
	}
	return t, nil
}

func (r *KitAuditDynamoRepository) AppendReset(ctx context.Context, k entities.KitReset) (entities.KitReset, error) {
	av, err := attributevalue.MarshalMap(kitResetItem{
		ID:              k.ID,
		TenantID:        k.TenantID,
		PosDeviceID:     k.PosDeviceID,
		GatewayID:       k.GatewayID,
		CondominioID:    k.CondominioID,
		Reason:          k.Reason,
		Actor:           k.Actor,
		CommandsExpired: k.CommandsExpired,
		CyclesExpired:   k.CyclesExpired,
		BlockedActive:   k.BlockedActive,
		CreatedAt:       formatTime(k.CreatedAt),
	})
	if err != nil {
		return entities.KitReset{}, err
	}
	if err := r.append(ctx, r.resetsTable, av); err != nil {
		return entities.KitReset{}, err
	}
	return k, nil
}

func (r *KitAuditDynamoRepository) append(ctx context.Context, table string, av map[string]types.AttributeValue) error {
	_, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(table),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	return err
}
