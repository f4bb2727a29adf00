package request

// OrchestrationIssueRequest asks for a liberation cycle on a paid machine.

type OrchestrationIssueRequest struct {
	PaymentID      string `json:"payment_id" binding:"required"`
	MachineID      string `json:"machine_id" binding:"required"`
	IdempotencyKey string `json:"idempotency_key" binding:"required"`
	Channel        string `json:"channel"`
	Origin         string `json:"origin"`
}
