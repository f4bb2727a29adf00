package repository

import (
	"context"

	"lavaja/internal/domain/entities"
	"lavaja/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultAcksTableName = "iot_acks"

type ackItem struct {
	ID        string `dynamodbav:"id"`
	TenantID  string `dynamodbav:"tenant_id"`
	GatewayID string `dynamodbav:"gateway_id"`
	CommandID string `dynamodbav:"command_id"`
	CmdID     string `dynamodbav:"cmd_id"`
	OK        bool   `dynamodbav:"ok"`
	Code      string `dynamodbav:"code,omitempty"`
	ClientTS  string `dynamodbav:"client_ts"`
	CreatedAt string `dynamodbav:"created_at"`
}

// AckDynamoRepository persists the append-only ack log.
//
// Table requirements: iot_acks, PK id (string). Rows are written once with an
// attribute_not_exists guard and never updated.

type AckDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAckRepository = (*AckDynamoRepository)(nil)

func NewAckDynamoRepository(ddb *dynamodb.Client) *AckDynamoRepository {
	return &AckDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ACKS_TABLE", defaultAcksTableName),
	}
}

func (r *AckDynamoRepository) Append(ctx context.Context, a entities.AckLog) (entities.AckLog, error) {
	av, err := attributevalue.MarshalMap(ackItem{
		ID:        a.ID,
		TenantID:  a.TenantID,
		GatewayID: a.GatewayID,
		CommandID: a.CommandID,
		CmdID:     a.CmdID,
		OK:        a.OK,
		Code:      a.Code,
		ClientTS:  formatTime(a.ClientTS),
		CreatedAt: formatTime(a.CreatedAt),
	})
	if err != nil {
		return entities.AckLog{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.AckLog{}, err
	}
	return a, nil
}
