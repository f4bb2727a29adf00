package response

import (
	"time"

	"lavaja/internal/usecase"
)

type OrchestrationResponse struct {
	CycleID   string `json:"cycle_id"`
	CommandID string `json:"command_id"`
	Replayed  bool   `json:"replayed"`
}

func FromIssueResult(r usecase.IssueResult) OrchestrationResponse {
	return OrchestrationResponse{
		CycleID:   r.CycleID,
		CommandID: r.CommandID,
		Replayed:  r.Replay,
	}
}

type QuoteResponse struct {
	MachineID  string     `json:"machine_id"`
	PriceCents int64      `json:"price_cents"`
	Available  bool       `json:"available"`
	EtaFreeAt  *time.Time `json:"eta_free_at,omitempty"`
}

func FromQuote(q usecase.Quote) QuoteResponse {
	return QuoteResponse{
		MachineID:  q.MachineID,
		PriceCents: q.PriceCents,
		Available:  q.Available,
		EtaFreeAt:  q.EtaFreeAt,
	}
}
