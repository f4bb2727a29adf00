package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lavaja/internal/domain/entities"
	"lavaja/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultIssueClaimsTableName = "issue_claims"

// OrchestrationDynamoStore is the confirm-and-enqueue operation as one
// DynamoDB TransactWriteItems call:
//
//  1. put the idempotency claim (attribute_not_exists): duplicate callers
//     collide here and fall into the replay path;
//  2. put the machine reservation lock (attribute_not_exists): a second open
//     cycle for the machine collides here;
//  3. put the cycle and the command rows.
//
// The whole transaction applies or nothing does, so there is no window where
// a command exists without its cycle or vice versa.

type OrchestrationDynamoStore struct {
	ddb         *dynamodb.Client
	cycles      *CycleDynamoRepository
	commands    *CommandDynamoRepository
	claimsTable string
}

var _ interfaces.IOrchestrationStore = (*OrchestrationDynamoStore)(nil)

func NewOrchestrationDynamoStore(ddb *dynamodb.Client, cycles *CycleDynamoRepository, commands *CommandDynamoRepository) *OrchestrationDynamoStore {
	return &OrchestrationDynamoStore{
		ddb:         ddb,
		cycles:      cycles,
		commands:    commands,
		claimsTable: getenvDefault("ISSUE_CLAIMS_TABLE", defaultIssueClaimsTableName),
	}
}

func (s *OrchestrationDynamoStore) CreateCycleWithCommand(ctx context.Context, cycle entities.Cycle, cmd entities.IoTCommand, idempotencyKey string) (entities.Cycle, entities.IoTCommand, bool, error) {
	claimKey := cycle.TenantID + "#" + idempotencyKey

	cycleAV, err := attributevalue.MarshalMap(toCycleItem(cycle))
	if err != nil {
		return entities.Cycle{}, entities.IoTCommand{}, false, err
	}
	cmdAV, err := attributevalue.MarshalMap(toCommandItem(cmd))
	if err != nil {
		return entities.Cycle{}, entities.IoTCommand{}, false, err
	}

	_, err = s.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName: aws.String(s.claimsTable),
					Item: map[string]types.AttributeValue{
						"claim_key":  &types.AttributeValueMemberS{Value: claimKey},
						"cycle_id":   &types.AttributeValueMemberS{Value: cycle.ID},
						"command_id": &types.AttributeValueMemberS{Value: cmd.ID},
						"created_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
					},
					ConditionExpression: aws.String("attribute_not_exists(claim_key)"),
				},
			},
			{
				Put: &types.Put{
					TableName: aws.String(s.cycles.locksTable),
					Item: map[string]types.AttributeValue{
						"machine_id": &types.AttributeValueMemberS{Value: cycle.MachineID},
						"cycle_id":   &types.AttributeValueMemberS{Value: cycle.ID},
					},
					ConditionExpression: aws.String("attribute_not_exists(machine_id)"),
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(s.cycles.tableName),
					Item:                cycleAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(s.commands.tableName),
					Item:                cmdAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
		},
	})
	if err == nil {
		return cycle, cmd, false, nil
	}

	var canceled *types.TransactionCanceledException
	if !errors.As(err, &canceled) {
		return entities.Cycle{}, entities.IoTCommand{}, false, err
	}

	// Reason order mirrors TransactItems order: [claim, lock, cycle, command].
	claimLost := transactReasonFailed(canceled, 0)
	lockLost := transactReasonFailed(canceled, 1)

	if claimLost {
		return s.replay(ctx, claimKey)
	}
	if lockLost {
		return entities.Cycle{}, entities.IoTCommand{}, false, interfaces.ErrMachineReserved
	}
	return entities.Cycle{}, entities.IoTCommand{}, false, err
}

// replay resolves the pair created by the call that won the idempotency
// claim.
func (s *OrchestrationDynamoStore) replay(ctx context.Context, claimKey string) (entities.Cycle, entities.IoTCommand, bool, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.claimsTable),
		Key: map[string]types.AttributeValue{
			"claim_key": &types.AttributeValueMemberS{Value: claimKey},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Cycle{}, entities.IoTCommand{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.Cycle{}, entities.IoTCommand{}, false, fmt.Errorf("issue claim %q vanished", claimKey)
	}

	cycleID := stringAttr(out.Item, "cycle_id")
	commandID := stringAttr(out.Item, "command_id")

	cycle, err := s.cycles.GetByID(ctx, cycleID)
	if err != nil {
		return entities.Cycle{}, entities.IoTCommand{}, false, err
	}
	cmd, err := s.commands.GetByID(ctx, commandID)
	if err != nil {
		return entities.Cycle{}, entities.IoTCommand{}, false, err
	}
	if cycle.ID == "" || cmd.ID == "" {
		return entities.Cycle{}, entities.IoTCommand{}, false, fmt.Errorf("issue claim %q references missing rows", claimKey)
	}
	return cycle, cmd, true, nil
}

func transactReasonFailed(canceled *types.TransactionCanceledException, idx int) bool {
	if idx >= len(canceled.CancellationReasons) {
		return false
	}
	code := canceled.CancellationReasons[idx].Code
	return code != nil && *code == "ConditionalCheckFailed"
}

func stringAttr(item map[string]types.AttributeValue, key string) string {
	if v, ok := item[key].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}
