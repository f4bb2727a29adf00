package request

import (
	"encoding/json"
	"time"
)

// PaymentAuthorizeRequest starts a payment intent for a machine.
//
// `provider_payload` is stored as-is (raw JSON) to support varying Mercado
// Pago schemas; it is optional when the provider is in mock mode.

type PaymentAuthorizeRequest struct {
	MachineID       string          `json:"machine_id" binding:"required"`
	Method          string          `json:"method"`
	Channel         string          `json:"channel"`
	IdempotencyKey  string          `json:"idempotency_key" binding:"required"`
	ProviderPayload json.RawMessage `json:"provider_payload"`
}

// PaymentConfirmRequest is the provider-side confirmation callback body.

type PaymentConfirmRequest struct {
	Provider    string    `json:"provider" binding:"required"`
	ExternalRef string    `json:"external_ref" binding:"required"`
	PaymentID   string    `json:"payment_id" binding:"required"`
	Approved    *bool     `json:"approved" binding:"required"`
	PaidAt      time.Time `json:"paid_at"`
}
