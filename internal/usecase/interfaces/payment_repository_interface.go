package interfaces

import (
	"context"
	"time"

	"lavaja/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// Uniqueness rules (idempotency key, provider external ref) are claim-item
// based: Claim* methods reserve the key for a payment id with a conditional
// put and report the previous owner on replay.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)

	// ClaimIdempotencyKey reserves (tenant, key) for paymentID. claimed=false
	// means another payment already owns the key; ownerID carries it.
	ClaimIdempotencyKey(ctx context.Context, tenantID, key, paymentID string) (ownerID string, claimed bool, err error)

	// ClaimProviderRef reserves (tenant, provider, externalRef) for paymentID.
	// Duplicate provider callbacks land on claimed=false and must replay.
	ClaimProviderRef(ctx context.Context, tenantID, provider, externalRef, paymentID string) (ownerID string, claimed bool, err error)

	// UpdateStatusIf flips status only when the current status is one of from.
	// A lost race returns applied=false with no error.
	UpdateStatusIf(ctx context.Context, id string, from []entities.PaymentStatus, to entities.PaymentStatus, paidAt *time.Time) (applied bool, err error)
}
