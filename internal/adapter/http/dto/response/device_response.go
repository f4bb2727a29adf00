package response

import (
	"encoding/json"

	"lavaja/internal/usecase"
)

type DeviceCommandResponse struct {
	CmdID   string          `json:"cmd_id"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type DevicePollResponse struct {
	Commands []DeviceCommandResponse `json:"commands"`
}

func FromCommandDeliveries(cmds []usecase.CommandDelivery) DevicePollResponse {
	out := DevicePollResponse{Commands: make([]DeviceCommandResponse, 0, len(cmds))}
	for _, c := range cmds {
		out.Commands = append(out.Commands, DeviceCommandResponse{
			CmdID:   c.CmdID,
			Type:    string(c.Type),
			Payload: c.Payload,
		})
	}
	return out
}

type DeviceAckResponse struct {
	CmdID  string `json:"cmd_id"`
	Status string `json:"status"`
}

type DeviceEventResponse struct {
	Accepted bool `json:"accepted"`
}
