package response

import (
	"time"

	"lavaja/internal/domain/entities"
)

type PaymentResponse struct {
	ID          string     `json:"id"`
	PaymentID   string     `json:"payment_id"`
	MachineID   string     `json:"machine_id"`
	AmountCents int64      `json:"amount_cents"`
	Method      string     `json:"method"`
	Provider    string     `json:"provider,omitempty"`
	Status      string     `json:"status"`
	ExternalRef string     `json:"external_ref,omitempty"`
	Channel     string     `json:"channel,omitempty"`
	Replayed    bool       `json:"replayed,omitempty"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func FromPayment(p entities.Payment, replayed bool) PaymentResponse {
	return PaymentResponse{
		ID:          p.ID,
		PaymentID:   p.ID,
		MachineID:   p.MachineID,
		AmountCents: p.AmountCents,
		Method:      p.Method,
		Provider:    p.Provider,
		Status:      string(p.Status),
		ExternalRef: p.ExternalRef,
		Channel:     p.Channel,
		Replayed:    replayed,
		PaidAt:      p.PaidAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
