package request

// KitReconcileRequest forces an expiry sweep over a kit before maintenance.

type KitReconcileRequest struct {
	CondominioID string `json:"condominio_id"`
	PosDeviceID  string `json:"pos_device_id" binding:"required"`
	GatewayID    string `json:"gateway_id" binding:"required"`
	Reason       string `json:"reason"`
	Actor        string `json:"actor"`
}

// KitTransferRequest moves a POS+gateway pair to another condominio.

type KitTransferRequest struct {
	PosDeviceID          string `json:"pos_device_id" binding:"required"`
	GatewayID            string `json:"gateway_id" binding:"required"`
	ToCondominioID       string `json:"to_condominio_id" binding:"required"`
	Reason               string `json:"reason"`
	Actor                string `json:"actor"`
	AutoReconcileExpired bool   `json:"auto_reconcile_expired"`
}
