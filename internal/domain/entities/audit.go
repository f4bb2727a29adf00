package entities

import "time"

// AckLog is the append-only record of every gateway acknowledgment, kept even
// when the ack loses the race against an expiry sweep.
//
// Storage model (DynamoDB): PK: id (append-only, never updated)

type AckLog struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	GatewayID string    `json:"gateway_id"`
	CommandID string    `json:"command_id"`
	CmdID     string    `json:"cmd_id"`
	OK        bool      `json:"ok"`
	Code      string    `json:"code,omitempty"`
	ClientTS  time.Time `json:"client_ts"`
	CreatedAt time.Time `json:"created_at"`
}

// KitTransferResult distinguishes a clean transfer from one that needed the
// POS-location compensation after the gateway update failed.

type KitTransferResult string

const (
	KitTransferResultSucesso    KitTransferResult = "SUCESSO"
	KitTransferResultCompensado KitTransferResult = "COMPENSADO"
)

// KitTransfer is the append-only audit row for a kit transfer attempt that
// reached the mutation phase.
//
// Storage model (DynamoDB): PK: id (append-only)

type KitTransfer struct {
	ID               string            `json:"id"`
	TenantID         string            `json:"tenant_id"`
	PosDeviceID      string            `json:"pos_device_id"`
	GatewayID        string            `json:"gateway_id"`
	FromCondominioID string            `json:"from_condominio_id"`
	ToCondominioID   string            `json:"to_condominio_id"`
	Result           KitTransferResult `json:"result"`
	Reason           string            `json:"reason,omitempty"`
	Actor            string            `json:"actor,omitempty"`
	CommandsExpired  int               `json:"commands_expired"`
	CyclesExpired    int               `json:"cycles_expired"`
	CreatedAt        time.Time         `json:"created_at"`
}

// KitReset is the append-only audit row for an explicit kit reconcile.
//
// Storage model (DynamoDB): PK: id (append-only)

type KitReset struct {
	ID              string    `json:"id"`
	TenantID        string    `json:"tenant_id"`
	PosDeviceID     string    `json:"pos_device_id"`
	GatewayID       string    `json:"gateway_id"`
	CondominioID    string    `json:"condominio_id"`
	Reason          string    `json:"reason,omitempty"`
	Actor           string    `json:"actor,omitempty"`
	CommandsExpired int       `json:"commands_expired"`
	CyclesExpired   int       `json:"cycles_expired"`
	BlockedActive   bool      `json:"blocked_active_use"`
	CreatedAt       time.Time `json:"created_at"`
}
