package interfaces

import (
	"context"

	"lavaja/internal/domain/entities"
)

// IAckRepository abstracts the append-only DynamoDB ack log.

type IAckRepository interface {
	Append(ctx context.Context, a entities.AckLog) (entities.AckLog, error)
}
