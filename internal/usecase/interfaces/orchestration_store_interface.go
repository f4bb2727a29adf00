package interfaces

import (
	"context"
	"errors"

	"lavaja/internal/domain/entities"
)

// ErrMachineReserved is returned by the orchestration store when the machine
// reservation lock is held by another open cycle.
var ErrMachineReserved = errors.New("machine already reserved by an open cycle")

// IOrchestrationStore is the atomic confirm-and-enqueue operation: it persists
// the cycle/command pair, the machine reservation lock and the idempotency
// claim in one indivisible store operation (DynamoDB TransactWriteItems in the
// shipped implementation).
//
// Replay contract: when the idempotency claim already exists, the previously
// created pair is returned unchanged with replay=true and nothing is written.
// Two concurrent calls with the same key converge on a single pair.

type IOrchestrationStore interface {
	CreateCycleWithCommand(ctx context.Context, cycle entities.Cycle, cmd entities.IoTCommand, idempotencyKey string) (entities.Cycle, entities.IoTCommand, bool, error)
}
