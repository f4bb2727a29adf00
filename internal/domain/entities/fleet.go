package entities

import "time"

// Condominio is a tenant site (the location a kit is bound to).
//
// Storage model (DynamoDB): PK: id

type Condominio struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"`
	Name     string `json:"name"`
}

// PosDevice is the payment terminal half of a kit.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (serial-index): serial

type PosDevice struct {
	ID           string    `json:"id"`
	TenantID     string    `json:"tenant_id"`
	Serial       string    `json:"serial"`
	CondominioID string    `json:"condominio_id"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Gateway is the IoT half of a kit. Secret signs the device wire protocol
// (HMAC-SHA256); it never leaves the backend.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (serial-index): serial

type Gateway struct {
	ID           string     `json:"id"`
	TenantID     string     `json:"tenant_id"`
	Serial       string     `json:"serial"`
	CondominioID string     `json:"condominio_id"`
	Secret       string     `json:"-"`
	Active       bool       `json:"active"`
	LastSeenAt   *time.Time `json:"last_seen_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Registered reports whether the gateway is bound to a location. Telemetry
// from an unregistered gateway is rejected rather than creating orphans.
func (g Gateway) Registered() bool {
	return g.CondominioID != ""
}
