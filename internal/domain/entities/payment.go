package entities

import "time"

// PaymentStatus represents the ledger state of money collected for one cycle
// attempt.
//
// CRIADO/PENDENTE are pre-confirmation states; PAGO and FALHOU are set by the
// provider confirmation and are terminal for the confirmation flow; EXPIRADO,
// ESTORNADO and CANCELADO are compensation outcomes applied when a paid cycle
// was never delivered.

type PaymentStatus string

const (
	PaymentStatusCriado    PaymentStatus = "CRIADO"
	PaymentStatusPendente  PaymentStatus = "PENDENTE"
	PaymentStatusPago      PaymentStatus = "PAGO"
	PaymentStatusFalhou    PaymentStatus = "FALHOU"
	PaymentStatusExpirado  PaymentStatus = "EXPIRADO"
	PaymentStatusEstornado PaymentStatus = "ESTORNADO"
	PaymentStatusCancelado PaymentStatus = "CANCELADO"
)

// Terminal reports whether the status may never regress.
func (s PaymentStatus) Terminal() bool {
	switch s {
	case PaymentStatusPago, PaymentStatusFalhou, PaymentStatusExpirado, PaymentStatusEstornado, PaymentStatusCancelado:
		return true
	}
	return false
}

// Payment is the ledger entry for one machine release attempt.
//
// Storage model (DynamoDB):
//   - PK: id
//   - uniqueness of (tenant, provider, external_ref) is enforced with a claim
//     item, not an index: see the payment repository.
//
// Monetary representation: AmountCents holds integer minor-currency units.

type Payment struct {
	ID             string        `json:"id"`
	TenantID       string        `json:"tenant_id"`
	MachineID      string        `json:"machine_id"`
	AmountCents    int64         `json:"amount_cents"`
	Method         string        `json:"method"`
	Provider       string        `json:"provider"`
	Status         PaymentStatus `json:"status"`
	ExternalRef    string        `json:"external_ref,omitempty"`
	IdempotencyKey string        `json:"idempotency_key,omitempty"`
	Channel        string        `json:"channel,omitempty"`
	PaidAt         *time.Time    `json:"paid_at,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}
