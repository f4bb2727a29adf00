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
	defaultPaymentsTableName      = "payments"
	defaultPaymentClaimsTableName = "payment_claims"
)

type paymentItem struct {
	ID             string `dynamodbav:"id"`
	TenantID       string `dynamodbav:"tenant_id"`
	MachineID      string `dynamodbav:"machine_id"`
	AmountCents    int64  `dynamodbav:"amount_cents"`
	Method         string `dynamodbav:"method,omitempty"`
	Provider       string `dynamodbav:"provider,omitempty"`
	Status         string `dynamodbav:"status"`
	ExternalRef    string `dynamodbav:"external_ref,omitempty"`
	IdempotencyKey string `dynamodbav:"idempotency_key,omitempty"`
	Channel        string `dynamodbav:"channel,omitempty"`
	PaidAt         string `dynamodbav:"paid_at,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - payments: PK id (string)
//   - payment_claims: PK claim_key (string): uniqueness primitives for the
//     idempotency key and the (tenant, provider, external_ref) triple, written
//     with attribute_not_exists so the first writer wins.

type PaymentDynamoRepository struct {
	ddb         *dynamodb.Client
	tableName   string
	claimsTable string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:         ddb,
		tableName:   getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
		claimsTable: getenvDefault("PAYMENT_CLAIMS_TABLE", defaultPaymentClaimsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ClaimIdempotencyKey(ctx context.Context, tenantID, key, paymentID string) (string, bool, error) {
	return r.claim(ctx, "idem#"+tenantID+"#"+key, paymentID)
}

func (r *PaymentDynamoRepository) ClaimProviderRef(ctx context.Context, tenantID, provider, externalRef, paymentID string) (string, bool, error) {
	return r.claim(ctx, "ref#"+tenantID+"#"+provider+"#"+externalRef, paymentID)
}

// claim implements the compare-and-swap primitive: a conditional put on the
// claims table. ReturnValuesOnConditionCheckFailure hands back the winning
// owner without a second read.
func (r *PaymentDynamoRepository) claim(ctx context.Context, claimKey, paymentID string) (string, bool, error) {
	_, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.claimsTable),
		Item: map[string]types.AttributeValue{
			"claim_key":  &types.AttributeValueMemberS{Value: claimKey},
			"payment_id": &types.AttributeValueMemberS{Value: paymentID},
			"created_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ConditionExpression:                 aws.String("attribute_not_exists(claim_key)"),
		ExpressionAttributeNames:            nil,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err == nil {
		return paymentID, true, nil
	}
	if !isConditionalCheckFailed(err) {
		return "", false, err
	}

	out, getErr := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.claimsTable),
		Key: map[string]types.AttributeValue{
			"claim_key": &types.AttributeValueMemberS{Value: claimKey},
		},
		ConsistentRead: aws.Bool(true),
	})
	if getErr != nil {
		return "", false, getErr
	}
	owner := ""
	if v, ok := out.Item["payment_id"].(*types.AttributeValueMemberS); ok {
		owner = v.Value
	}
	if owner == paymentID {
		// Re-claiming our own key (authorize retry, confirm after authorize).
		return owner, true, nil
	}
	return owner, false, nil
}

func (r *PaymentDynamoRepository) UpdateStatusIf(ctx context.Context, id string, from []entities.PaymentStatus, to entities.PaymentStatus, paidAt *time.Time) (bool, error) {
	fromStrs := make([]string, 0, len(from))
	for _, s := range from {
		fromStrs = append(fromStrs, string(s))
	}
	guard, values := statusGuard(fromStrs)
	values[":to"] = &types.AttributeValueMemberS{Value: string(to)}
	values[":now"] = &types.AttributeValueMemberS{Value: formatTime(time.Now())}

	update := "SET #st = :to, updated_at = :now"
	if paidAt != nil {
		update += ", paid_at = :paid"
		values[":paid"] = &types.AttributeValueMemberS{Value: formatTime(*paidAt)}
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

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:             p.ID,
		TenantID:       p.TenantID,
		MachineID:      p.MachineID,
		AmountCents:    p.AmountCents,
		Method:         p.Method,
		Provider:       p.Provider,
		Status:         string(p.Status),
		ExternalRef:    p.ExternalRef,
		IdempotencyKey: p.IdempotencyKey,
		Channel:        p.Channel,
		PaidAt:         formatTimePtr(p.PaidAt),
		CreatedAt:      formatTime(p.CreatedAt),
		UpdatedAt:      formatTime(p.UpdatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:             it.ID,
		TenantID:       it.TenantID,
		MachineID:      it.MachineID,
		AmountCents:    it.AmountCents,
		Method:         it.Method,
		Provider:       it.Provider,
		Status:         entities.PaymentStatus(it.Status),
		ExternalRef:    it.ExternalRef,
		IdempotencyKey: it.IdempotencyKey,
		Channel:        it.Channel,
		PaidAt:         parseTimePtr(it.PaidAt),
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
