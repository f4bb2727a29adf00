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
	defaultCyclesTableName       = "cycles"
	defaultMachineLocksTableName = "machine_locks"
	cyclesMachineIDIndex         = "machine_id-index"
)

type cycleItem struct {
	ID          string `dynamodbav:"id"`
	TenantID    string `dynamodbav:"tenant_id"`
	MachineID   string `dynamodbav:"machine_id"`
	PaymentID   string `dynamodbav:"payment_id,omitempty"`
	Status      string `dynamodbav:"status"`
	CreatedAt   string `dynamodbav:"created_at"`
	PulseSentAt string `dynamodbav:"pulse_sent_at,omitempty"`
	BusyOnAt    string `dynamodbav:"busy_on_at,omitempty"`
	BusyOffAt   string `dynamodbav:"busy_off_at,omitempty"`
	EtaFreeAt   string `dynamodbav:"eta_free_at,omitempty"`
}

// CycleDynamoRepository persists Cycle entities in DynamoDB.
//
// Table requirements:
//   - cycles: PK id (string), GSI machine_id-index (PK machine_id)
//   - machine_locks: PK machine_id (string), attr cycle_id: the reservation
//     lock behind "at most one open cycle per machine". The lock row is
//     written by the orchestration store and released here.

type CycleDynamoRepository struct {
	ddb        *dynamodb.Client
	tableName  string
	locksTable string
}

var _ interfaces.ICycleRepository = (*CycleDynamoRepository)(nil)

func NewCycleDynamoRepository(ddb *dynamodb.Client) *CycleDynamoRepository {
	return &CycleDynamoRepository{
		ddb:        ddb,
		tableName:  getenvDefault("CYCLES_TABLE", defaultCyclesTableName),
		locksTable: getenvDefault("MACHINE_LOCKS_TABLE", defaultMachineLocksTableName),
	}
}

func (r *CycleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Cycle, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Cycle{}, err
	}
	if len(out.Item) == 0 {
		return entities.Cycle{}, nil
	}

	var it cycleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Cycle{}, err
	}
	return fromCycleItem(it), nil
}

func (r *CycleDynamoRepository) GetOpenByMachineID(ctx context.Context, machineID string) (entities.Cycle, error) {
	cycles, err := r.ListOpenByMachineIDs(ctx, []string{machineID})
	if err != nil {
		return entities.Cycle{}, err
	}
	if len(cycles) == 0 {
		return entities.Cycle{}, nil
	}
	return cycles[0], nil
}

func (r *CycleDynamoRepository) ListOpenByMachineIDs(ctx context.Context, machineIDs []string) ([]entities.Cycle, error) {
	var cycles []entities.Cycle
	for _, machineID := range machineIDs {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(cyclesMachineIDIndex),
			KeyConditionExpression: aws.String("machine_id = :mid"),
			FilterExpression:       aws.String("#st IN (:s0, :s1, :s2)"),
			ExpressionAttributeNames: map[string]string{
				"#st": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":mid": &types.AttributeValueMemberS{Value: machineID},
				":s0":  &types.AttributeValueMemberS{Value: string(entities.CycleStatusAguardandoLiberacao)},
				":s1":  &types.AttributeValueMemberS{Value: string(entities.CycleStatusLiberado)},
				":s2":  &types.AttributeValueMemberS{Value: string(entities.CycleStatusEmUso)},
			},
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it cycleItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			cycles = append(cycles, fromCycleItem(it))
		}
	}
	return cycles, nil
}

func (r *CycleDynamoRepository) UpdateStatusIf(ctx context.Context, id string, from []entities.CycleStatus, to entities.CycleStatus, stamps interfaces.CycleStamps) (bool, error) {
	fromStrs := make([]string, 0, len(from))
	for _, s := range from {
		fromStrs = append(fromStrs, string(s))
	}
	guard, values := statusGuard(fromStrs)
	values[":to"] = &types.AttributeValueMemberS{Value: string(to)}

	update := "SET #st = :to"
	if stamps.PulseSentAt != nil {
		update += ", pulse_sent_at = :pulse"
		values[":pulse"] = &types.AttributeValueMemberS{Value: formatTime(*stamps.PulseSentAt)}
	}
	if stamps.BusyOnAt != nil {
		update += ", busy_on_at = :bon"
		values[":bon"] = &types.AttributeValueMemberS{Value: formatTime(*stamps.BusyOnAt)}
	}
	if stamps.BusyOffAt != nil {
		update += ", busy_off_at = :boff"
		values[":boff"] = &types.AttributeValueMemberS{Value: formatTime(*stamps.BusyOffAt)}
	}
	if stamps.EtaFreeAt != nil {
		update += ", eta_free_at = :eta"
		values[":eta"] = &types.AttributeValueMemberS{Value: formatTime(*stamps.EtaFreeAt)}
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

func (r *CycleDynamoRepository) ReleaseMachine(ctx context.Context, machineID, cycleID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.locksTable),
		Key: map[string]types.AttributeValue{
			"machine_id": &types.AttributeValueMemberS{Value: machineID},
		},
		ConditionExpression: aws.String("cycle_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: cycleID},
		},
	})
	if err != nil && !isConditionalCheckFailed(err) {
		return err
	}
	// Lock already gone or rewritten by a newer cycle: nothing to release.
	return nil
}

func fromCycleItem(it cycleItem) entities.Cycle {
	return entities.Cycle{
		ID:          it.ID,
		TenantID:    it.TenantID,
		MachineID:   it.MachineID,
		PaymentID:   it.PaymentID,
		Status:      entities.CycleStatus(it.Status),
		CreatedAt:   parseTime(it.CreatedAt),
		PulseSentAt: parseTimePtr(it.PulseSentAt),
		BusyOnAt:    parseTimePtr(it.BusyOnAt),
		BusyOffAt:   parseTimePtr(it.BusyOffAt),
		EtaFreeAt:   parseTimePtr(it.EtaFreeAt),
	}
}

func toCycleItem(c entities.Cycle) cycleItem {
	return cycleItem{
		ID:          c.ID,
		TenantID:    c.TenantID,
		MachineID:   c.MachineID,
		PaymentID:   c.PaymentID,
		Status:      string(c.Status),
		CreatedAt:   formatTime(c.CreatedAt),
		PulseSentAt: formatTimePtr(c.PulseSentAt),
		BusyOnAt:    formatTimePtr(c.BusyOnAt),
		BusyOffAt:   formatTimePtr(c.BusyOffAt),
		EtaFreeAt:   formatTimePtr(c.EtaFreeAt),
	}
}
