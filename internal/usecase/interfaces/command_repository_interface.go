package interfaces

import (
	"context"
	"time"

	"lavaja/internal/domain/entities"
)

// ICommandRepository abstracts DynamoDB persistence for IoTCommand.

type ICommandRepository interface {
	GetByID(ctx context.Context, id string) (entities.IoTCommand, error)

	// GetByCmdID resolves the client-visible correlation token.
	GetByCmdID(ctx context.Context, cmdID string) (entities.IoTCommand, error)

	// ClaimPending atomically moves up to max PENDENTE commands of the gateway
	// to ENVIADO and returns the claimed ones. The claim is per command row:
	// two concurrent pollers never both receive the same command.
	ClaimPending(ctx context.Context, gatewayID string, max int) ([]entities.IoTCommand, error)

	// ListOpenByGatewayID returns every non-terminal command for the gateway.
	ListOpenByGatewayID(ctx context.Context, gatewayID string) ([]entities.IoTCommand, error)

	// UpdateStatusIf flips status only when the current status is one of from.
	// A lost race returns applied=false with no error.
	UpdateStatusIf(ctx context.Context, id string, from []entities.CommandStatus, to entities.CommandStatus, ackAt *time.Time) (applied bool, err error)
}
