package request

import "time"

// DevicePollRequest is the body a gateway POSTs to fetch queued commands.

type DevicePollRequest struct {
	Max int `json:"max"`
}

// DeviceAckRequest confirms (or refuses) execution of a delivered command.
//
// `cmd_id` is the wire correlation token from the poll, never an internal id.

type DeviceAckRequest struct {
	CmdID     string    `json:"cmd_id" binding:"required"`
	OK        *bool     `json:"ok" binding:"required"`
	MachineID string    `json:"machine_id"`
	Code      string    `json:"code"`
	ClientTS  time.Time `json:"client_ts"`
}

// DeviceEventRequest reports machine telemetry (PULSE, BUSY_ON, BUSY_OFF).

type DeviceEventRequest struct {
	Type      string    `json:"type" binding:"required"`
	CmdID     string    `json:"cmd_id"`
	MachineID string    `json:"machine_id"`
	ClientTS  time.Time `json:"client_ts"`
}
