package entities

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// CommandStatus tracks one queued gateway instruction.
//
// PENDENTE → ENVIADO on poll pickup, then ACK/FALHOU on acknowledgment,
// EXECUTADO once the PULSE telemetry arrives, or EXPIRADO if the gateway
// never answered inside the TTL.

type CommandStatus string

const (
	CommandStatusPendente  CommandStatus = "PENDENTE"
	CommandStatusEnviado   CommandStatus = "ENVIADO"
	CommandStatusAck       CommandStatus = "ACK"
	CommandStatusFalhou    CommandStatus = "FALHOU"
	CommandStatusExecutado CommandStatus = "EXECUTADO"
	CommandStatusExpirado  CommandStatus = "EXPIRADO"
)

// Terminal reports whether no further transition is allowed.
func (s CommandStatus) Terminal() bool {
	switch s {
	case CommandStatusFalhou, CommandStatusExecutado, CommandStatusExpirado:
		return true
	}
	return false
}

// CommandType discriminates the payload union carried by a command.

type CommandType string

const (
	CommandTypePulse  CommandType = "PULSE"
	CommandTypeReset  CommandType = "RESET"
	CommandTypeStatus CommandType = "STATUS"
)

// PulsePayload is the schema for PULSE commands: fire the release relay of one
// machine for PulseMs milliseconds. CycleID/PaymentID let the gateway echo the
// correlation back on telemetry.

type PulsePayload struct {
	MachineID string `json:"machine_id"`
	CycleID   string `json:"cycle_id"`
	PaymentID string `json:"payment_id,omitempty"`
	PulseMs   int    `json:"pulse_ms"`
}

// ResetPayload asks the gateway to soft-reset one of its relays.

type ResetPayload struct {
	MachineID string `json:"machine_id"`
}

// StatusPayload requests an on-demand telemetry report.

type StatusPayload struct {
	MachineID string `json:"machine_id,omitempty"`
}

var ErrUnknownCommandType = errors.New("unknown command type")

// DecodeCommandPayload parses the raw payload into the schema for its type.
// Business logic receives typed payloads; opaque maps stop at this boundary.
func DecodeCommandPayload(t CommandType, raw json.RawMessage) (any, error) {
	switch t {
	case CommandTypePulse:
		var p PulsePayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decode PULSE payload: %w", err)
		}
		return p, nil
	case CommandTypeReset:
		var p ResetPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decode RESET payload: %w", err)
		}
		return p, nil
	case CommandTypeStatus:
		var p StatusPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decode STATUS payload: %w", err)
		}
		return p, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCommandType, t)
}

// IoTCommand is one instruction queued for a gateway.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (gateway_id-index): gateway_id: poll scans pending work per gateway
//   - GSI (cmd_id-index): cmd_id: ack/telemetry correlate by the wire token
//
// CmdID is the client-visible correlation token; ID never leaves the backend.

type IoTCommand struct {
	ID        string          `json:"id"`
	TenantID  string          `json:"tenant_id"`
	GatewayID string          `json:"gateway_id"`
	MachineID string          `json:"machine_id"`
	CycleID   string          `json:"cycle_id,omitempty"`
	CmdID     string          `json:"cmd_id"`
	Type      CommandType     `json:"type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Status    CommandStatus   `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	ExpiresAt *time.Time      `json:"expires_at,omitempty"`
	AckAt     *time.Time      `json:"ack_at,omitempty"`
}
