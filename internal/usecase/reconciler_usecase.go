package usecase

import (
	"context"
	"log"
	"time"

	"lavaja/internal/config"
	"lavaja/internal/domain/entities"
	"lavaja/internal/usecase/interfaces"
)

// ReconcileReport summarizes one sweep over a kit's pending work.
//
// BlockedActiveUse is informational: it flags EM_USO cycles that were left
// untouched (they only close on BUSY_OFF). StaleInUse counts EM_USO cycles
// past the conservative backstop; they are reported, never expired.

type ReconcileReport struct {
	CommandsExpired  int
	CyclesExpired    int
	BlockedActiveUse bool
	StaleInUse       int
}

// IReconcilerUseCase sweeps stale pending commands and pre-use cycles for a
// kit. The sweep is advisory: every transition is a conditional update on the
// status observed at read time, so anything touched by live traffic in the
// meantime degrades to a no-op.

type IReconcilerUseCase interface {
	Reconcile(ctx context.Context, tenantID, posDeviceID, gatewayID string) (ReconcileReport, error)

	// Deadline helpers are exposed so the kit lifecycle manager can classify
	// pendencies as active vs. TTL-expired with the same rules the sweep uses.
	CommandDeadline(cmd entities.IoTCommand) time.Time
	CycleDeadline(c entities.Cycle) time.Time
}

type ReconcilerUseCase struct {
	commandRepo interfaces.ICommandRepository
	cycleRepo   interfaces.ICycleRepository
	machineRepo interfaces.IMachineRepository
	cfg         config.Config
	now         func() time.Time
}

var _ IReconcilerUseCase = (*ReconcilerUseCase)(nil)

func NewReconcilerUseCase(commandRepo interfaces.ICommandRepository, cycleRepo interfaces.ICycleRepository, machineRepo interfaces.IMachineRepository, cfg config.Config) *ReconcilerUseCase {
	return &ReconcilerUseCase{
		commandRepo: commandRepo,
		cycleRepo:   cycleRepo,
		machineRepo: machineRepo,
		cfg:         cfg,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// CommandDeadline computes when a command goes stale: the explicit expires_at
// when present, else the ack budget for commands still waiting for delivery
// or acknowledgment, else the fixed fallback window.
func (u *ReconcilerUseCase) CommandDeadline(cmd entities.IoTCommand) time.Time {
	if cmd.ExpiresAt != nil {
		return *cmd.ExpiresAt
	}
	switch cmd.Status {
	case entities.CommandStatusPendente, entities.CommandStatusEnviado:
		return cmd.CreatedAt.Add(u.cfg.CommandAckTimeout)
	}
	return cmd.CreatedAt.Add(u.cfg.CommandFallbackTTL)
}

// CycleDeadline computes when a pre-use cycle goes stale. EM_USO has no
// deadline here: it is never auto-expired.
func (u *ReconcilerUseCase) CycleDeadline(c entities.Cycle) time.Time {
	return c.CreatedAt.Add(u.cfg.CyclePreUseTTL)
}

func (u *ReconcilerUseCase) Reconcile(ctx context.Context, tenantID, posDeviceID, gatewayID string) (ReconcileReport, error) {
	var report ReconcileReport
	now := u.now()
	log.Printf("[reconciler][usecase] sweep start tenant=%s pos=%s gateway=%s", tenantID, posDeviceID, gatewayID)

	cmds, err := u.commandRepo.ListOpenByGatewayID(ctx, gatewayID)
	if err != nil {
		return ReconcileReport{}, err
	}

	abortedCycles := map[string]bool{}
	for _, cmd := range cmds {
		if !now.After(u.CommandDeadline(cmd)) {
			continue
		}
		// Guard on the status we read: a command acked between the read and
		// this update is left untouched.
		applied, err := u.commandRepo.UpdateStatusIf(ctx, cmd.ID, []entities.CommandStatus{cmd.Status}, entities.CommandStatusExpirado, nil)
		if err != nil {
			return ReconcileReport{}, err
		}
		if !applied {
			continue
		}
		report.CommandsExpired++
		log.Printf("[reconciler][usecase] command expired command_id=%s cmd_id=%s was=%s", cmd.ID, cmd.CmdID, cmd.Status)

		// An expired command that still references an open pre-use cycle
		// drags the cycle down with it.
		if cmd.CycleID == "" {
			continue
		}
		cycle, err := u.cycleRepo.GetByID(ctx, cmd.CycleID)
		if err != nil {
			return ReconcileReport{}, err
		}
		if cycle.ID == "" || !cycle.Status.PreUse() {
			continue
		}
		if u.abortCycle(ctx, cycle) {
			report.CyclesExpired++
			abortedCycles[cycle.ID] = true
		}
	}

	machines, err := u.kitMachines(ctx, posDeviceID, gatewayID)
	if err != nil {
		return ReconcileReport{}, err
	}
	if len(machines) > 0 {
		cycles, err := u.cycleRepo.ListOpenByMachineIDs(ctx, machines)
		if err != nil {
			return ReconcileReport{}, err
		}
		for _, c := range cycles {
			if abortedCycles[c.ID] {
				continue
			}
			if c.Status == entities.CycleStatusEmUso {
				report.BlockedActiveUse = true
				if c.BusyOnAt != nil && now.After(c.BusyOnAt.Add(u.cfg.CycleInUseBackstop)) {
					report.StaleInUse++
					log.Printf("[reconciler][usecase] stale EM_USO left untouched cycle_id=%s busy_on_at=%s", c.ID, c.BusyOnAt.Format(time.RFC3339))
				}
				continue
			}
			if !c.Status.PreUse() || !now.After(u.CycleDeadline(c)) {
				continue
			}
			if u.abortCycle(ctx, c) {
				report.CyclesExpired++
			}
		}
	}

	log.Printf("[reconciler][usecase] sweep done gateway=%s commands_expired=%d cycles_expired=%d blocked_active_use=%t", gatewayID, report.CommandsExpired, report.CyclesExpired, report.BlockedActiveUse)
	return report, nil
}

func (u *ReconcilerUseCase) abortCycle(ctx context.Context, c entities.Cycle) bool {
	applied, err := u.cycleRepo.UpdateStatusIf(ctx, c.ID, []entities.CycleStatus{c.Status}, entities.CycleStatusAbortado, interfaces.CycleStamps{})
	if err != nil {
		log.Printf("[reconciler][usecase] cycle abort failed cycle_id=%s err=%v", c.ID, err)
		return false
	}
	if !applied {
		return false
	}
	if err := u.cycleRepo.ReleaseMachine(ctx, c.MachineID, c.ID); err != nil {
		log.Printf("[reconciler][usecase] release machine failed machine_id=%s cycle_id=%s err=%v", c.MachineID, c.ID, err)
	}
	log.Printf("[reconciler][usecase] cycle aborted cycle_id=%s machine_id=%s was=%s", c.ID, c.MachineID, c.Status)
	return true
}

func (u *ReconcilerUseCase) kitMachines(ctx context.Context, posDeviceID, gatewayID string) ([]string, error) {
	seen := map[string]bool{}
	var ids []string

	byGw, err := u.machineRepo.ListByGatewayID(ctx, gatewayID)
	if err != nil {
		return nil, err
	}
	for _, m := range byGw {
		if !seen[m.ID] {
			seen[m.ID] = true
			ids = append(ids, m.ID)
		}
	}

	if posDeviceID != "" {
		byPos, err := u.machineRepo.ListByPosDeviceID(ctx, posDeviceID)
		if err != nil {
			return nil, err
		}
		for _, m := range byPos {
			if !seen[m.ID] {
				seen[m.ID] = true
				ids = append(ids, m.ID)
			}
		}
	}
	return ids, nil
}
