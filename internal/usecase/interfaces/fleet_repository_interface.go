package interfaces

import (
	"context"
	"time"

	"lavaja/internal/domain/entities"
)

// IFleetRepository abstracts DynamoDB persistence for the hardware fleet:
// condominios, POS devices and gateways.

type IFleetRepository interface {
	GetCondominio(ctx context.Context, id string) (entities.Condominio, error)
	GetPosDevice(ctx context.Context, id string) (entities.PosDevice, error)
	GetGateway(ctx context.Context, id string) (entities.Gateway, error)
	GetGatewayBySerial(ctx context.Context, serial string) (entities.Gateway, error)

	// UpdatePosDeviceLocationIf moves the POS only when it is still at from.
	UpdatePosDeviceLocationIf(ctx context.Context, id, fromCondominioID, toCondominioID string) (applied bool, err error)

	// UpdateGatewayLocationIf moves the gateway only when it is still at from.
	UpdateGatewayLocationIf(ctx context.Context, id, fromCondominioID, toCondominioID string) (applied bool, err error)

	TouchGatewaySeen(ctx context.Context, id string, at time.Time) error
}
