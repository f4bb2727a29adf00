package interfaces

import (
	"context"
	"time"

	"lavaja/internal/domain/entities"
)

// CycleStamps carries the optional timestamps a status transition records.
// Nil fields are left untouched.

type CycleStamps struct {
	PulseSentAt *time.Time
	BusyOnAt    *time.Time
	BusyOffAt   *time.Time
	EtaFreeAt   *time.Time
}

// ICycleRepository abstracts DynamoDB persistence for Cycle plus the
// per-machine reservation lock item.

type ICycleRepository interface {
	GetByID(ctx context.Context, id string) (entities.Cycle, error)

	// GetOpenByMachineID returns the zero value when the machine is free.
	GetOpenByMachineID(ctx context.Context, machineID string) (entities.Cycle, error)

	ListOpenByMachineIDs(ctx context.Context, machineIDs []string) ([]entities.Cycle, error)

	// UpdateStatusIf flips status only when the current status is one of from.
	// A lost race returns applied=false with no error.
	UpdateStatusIf(ctx context.Context, id string, from []entities.CycleStatus, to entities.CycleStatus, stamps CycleStamps) (applied bool, err error)

	// ReleaseMachine deletes the machine reservation lock when cycleID still
	// owns it; releasing a lock already rewritten by a newer cycle is a no-op.
	ReleaseMachine(ctx context.Context, machineID, cycleID string) error
}
