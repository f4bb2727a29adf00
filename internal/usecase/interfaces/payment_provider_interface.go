package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentProvider abstracts external payment providers (e.g. Mercado Pago).
//
// The ledger uses it to open a charge at authorization time and keeps the
// provider response payload for traceability.
type IPaymentProvider interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
