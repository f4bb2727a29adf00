package interfaces

import (
	"context"

	"lavaja/internal/domain/entities"
)

// IMachineRepository abstracts DynamoDB persistence for Machine.

type IMachineRepository interface {
	GetByID(ctx context.Context, id string) (entities.Machine, error)
	ListByGatewayID(ctx context.Context, gatewayID string) ([]entities.Machine, error)
	ListByPosDeviceID(ctx context.Context, posDeviceID string) ([]entities.Machine, error)
}
