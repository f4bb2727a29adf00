package entities

import "time"

// MachineStatus is administrative state, not occupancy. Occupancy is derived
// from the open cycle, if any.

type MachineStatus string

const (
	MachineStatusAtivo      MachineStatus = "ATIVO"
	MachineStatusInativo    MachineStatus = "INATIVO"
	MachineStatusManutencao MachineStatus = "MANUTENCAO"
)

// Machine is one physical washer/dryer wired to a gateway relay.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (gateway_id-index): gateway_id

type Machine struct {
	ID           string        `json:"id"`
	TenantID     string        `json:"tenant_id"`
	CondominioID string        `json:"condominio_id"`
	GatewayID    string        `json:"gateway_id"`
	PosDeviceID  string        `json:"pos_device_id,omitempty"`
	Name         string        `json:"name"`
	PriceCents   int64         `json:"price_cents"`
	Status       MachineStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// Active reports whether the machine may accept new cycles.
func (m Machine) Active() bool {
	return m.Status == MachineStatusAtivo
}
