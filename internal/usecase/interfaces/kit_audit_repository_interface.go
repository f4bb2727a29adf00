package interfaces

import (
	"context"

	"lavaja/internal/domain/entities"
)

// IKitAuditRepository abstracts the append-only kit audit tables
// (kit_transfers, kit_resets). Rows are created once and never mutated.

type IKitAuditRepository interface {
	AppendTransfer(ctx context.Context, t entities.KitTransfer) (entities.KitTransfer, error)
	AppendReset(ctx context.Context, r entities.KitReset) (entities.KitReset, error)
}
