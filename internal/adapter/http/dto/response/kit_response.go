package response

import (
	"time"

	"lavaja/internal/domain/entities"
)

type KitReconcileResponse struct {
	ResetID         string    `json:"reset_id"`
	PosDeviceID     string    `json:"pos_device_id"`
	GatewayID       string    `json:"gateway_id"`
	CondominioID    string    `json:"condominio_id"`
	CommandsExpired int       `json:"commands_expired"`
	CyclesExpired   int       `json:"cycles_expired"`
	BlockedActive   bool      `json:"blocked_active_use"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromKitReset(r entities.KitReset) KitReconcileResponse {
	return KitReconcileResponse{
		ResetID:         r.ID,
		PosDeviceID:     r.PosDeviceID,
		GatewayID:       r.GatewayID,
		CondominioID:    r.CondominioID,
		CommandsExpired: r.CommandsExpired,
		CyclesExpired:   r.CyclesExpired,
		BlockedActive:   r.BlockedActive,
		CreatedAt:       r.CreatedAt,
	}
}

type KitTransferResponse struct {
	TransferID       string    `json:"transfer_id"`
	PosDeviceID      string    `json:"pos_device_id"`
	GatewayID        string    `json:"gateway_id"`
	FromCondominioID string    `json:"from_condominio_id"`
	ToCondominioID   string    `json:"to_condominio_id"`
	Result           string    `json:"result"`
	CommandsExpired  int       `json:"commands_expired"`
	CyclesExpired    int       `json:"cycles_expired"`
	CreatedAt        time.Time `json:"created_at"`
}

func FromKitTransfer(t entities.KitTransfer) KitTransferResponse {
	return KitTransferResponse{
		TransferID:       t.ID,
		PosDeviceID:      t.PosDeviceID,
		GatewayID:        t.GatewayID,
		FromCondominioID: t.FromCondominioID,
		ToCondominioID:   t.ToCondominioID,
		Result:           string(t.Result),
		CommandsExpired:  t.CommandsExpired,
		CyclesExpired:    t.CyclesExpired,
		CreatedAt:        t.CreatedAt,
	}
}
