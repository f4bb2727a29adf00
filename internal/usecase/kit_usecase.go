package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"lavaja/internal/domain/entities"
	"lavaja/internal/usecase/interfaces"
)

var (
	ErrInvalidKitInput       = errors.New("invalid kit input")
	ErrPosDeviceNotFound     = errors.New("pos device not found")
	ErrGatewayNotFound       = errors.New("gateway not found")
	ErrCondominioNotFound    = errors.New("condominio not found")
	ErrKitNotCohesive        = errors.New("pos device and gateway belong to different locations")
	ErrKitAttachedToMachines = errors.New("machines still reference this kit")
	ErrPendingActiveCommand  = errors.New("kit has a pending command inside its TTL")
	ErrPendingExpiredCommand = errors.New("kit has TTL-expired pending commands; reconcile first")
	ErrPendingActiveCycle    = errors.New("kit has an active or in-use cycle")
	ErrPendingExpiredCycle   = errors.New("kit has TTL-expired pre-use cycles; reconcile first")
	ErrTransferSameLocation  = errors.New("destination equals current location")
	ErrTransferLostRace      = errors.New("kit location changed concurrently")
	ErrTransferCompensated   = errors.New("gateway move failed; pos location was rolled back")
)

const (
	EventKitReconciled  = "kit.reconciled"
	EventKitTransferred = "kit.transferred"
)

type KitReconcileInput struct {
	TenantID     string
	CondominioID string
	PosDeviceID  string
	GatewayID    string
	Reason       string
	Actor        string
}

type KitReconcileResult struct {
	Report entities.KitReset
}

type KitTransferInput struct {
	TenantID             string
	PosDeviceID          string
	GatewayID            string
	ToCondominioID       string
	Reason               string
	Actor                string
	AutoReconcileExpired bool
}

// IKitUseCase manages the POS+gateway hardware pair: forced reconciles and
// location transfers, both gated on the reconciler's view of pending work.

type IKitUseCase interface {
	Reconcile(ctx context.Context, in KitReconcileInput) (KitReconcileResult, error)
	Transfer(ctx context.Context, in KitTransferInput) (entities.KitTransfer, error)
}

type KitUseCase struct {
	fleetRepo   interfaces.IFleetRepository
	machineRepo interfaces.IMachineRepository
	commandRepo interfaces.ICommandRepository
	cycleRepo   interfaces.ICycleRepository
	auditRepo   interfaces.IKitAuditRepository
	reconciler  IReconcilerUseCase
	notifier    interfaces.INotifier
	now         func() time.Time
}

var _ IKitUseCase = (*KitUseCase)(nil)

func NewKitUseCase(fleetRepo interfaces.IFleetRepository, machineRepo interfaces.IMachineRepository, commandRepo interfaces.ICommandRepository, cycleRepo interfaces.ICycleRepository, auditRepo interfaces.IKitAuditRepository, reconciler IReconcilerUseCase, notifier interfaces.INotifier) *KitUseCase {
	return &KitUseCase{
		fleetRepo:   fleetRepo,
		machineRepo: machineRepo,
		commandRepo: commandRepo,
		cycleRepo:   cycleRepo,
		auditRepo:   auditRepo,
		reconciler:  reconciler,
		notifier:    notifier,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// loadKit resolves both halves and enforces the cohesion invariant: a kit's
// POS and gateway must share a location before anything else happens to it.
func (u *KitUseCase) loadKit(ctx context.Context, posDeviceID, gatewayID string) (entities.PosDevice, entities.Gateway, error) {
	posDeviceID = strings.TrimSpace(posDeviceID)
	gatewayID = strings.TrimSpace(gatewayID)
	if posDeviceID == "" || gatewayID == "" {
		return entities.PosDevice{}, entities.Gateway{}, ErrInvalidKitInput
	}

	pos, err := u.fleetRepo.GetPosDevice(ctx, posDeviceID)
	if err != nil {
		return entities.PosDevice{}, entities.Gateway{}, err
	}
	if pos.ID == "" {
		return entities.PosDevice{}, entities.Gateway{}, ErrPosDeviceNotFound
	}

	gw, err := u.fleetRepo.GetGateway(ctx, gatewayID)
	if err != nil {
		return entities.PosDevice{}, entities.Gateway{}, err
	}
	if gw.ID == "" {
		return entities.PosDevice{}, entities.Gateway{}, ErrGatewayNotFound
	}

	if pos.CondominioID == "" || pos.CondominioID != gw.CondominioID {
		return entities.PosDevice{}, entities.Gateway{}, ErrKitNotCohesive
	}
	return pos, gw, nil
}

func (u *KitUseCase) Reconcile(ctx context.Context, in KitReconcileInput) (KitReconcileResult, error) {
	pos, gw, err := u.loadKit(ctx, in.PosDeviceID, in.GatewayID)
	if err != nil {
		return KitReconcileResult{}, err
	}
	if in.CondominioID != "" && in.CondominioID != pos.CondominioID {
		return KitReconcileResult{}, ErrKitNotCohesive
	}
	log.Printf("[kit][usecase] reconcile start pos=%s gateway=%s condominio=%s", pos.ID, gw.ID, pos.CondominioID)

	report, err := u.reconciler.Reconcile(ctx, in.TenantID, pos.ID, gw.ID)
	if err != nil {
		return KitReconcileResult{}, err
	}

	reset, err := u.auditRepo.AppendReset(ctx, entities.KitReset{
		ID:              uuid.NewString(),
		TenantID:        in.TenantID,
		PosDeviceID:     pos.ID,
		GatewayID:       gw.ID,
		CondominioID:    pos.CondominioID,
		Reason:          in.Reason,
		Actor:           in.Actor,
		CommandsExpired: report.CommandsExpired,
		CyclesExpired:   report.CyclesExpired,
		BlockedActive:   report.BlockedActiveUse,
		CreatedAt:       u.now(),
	})
	if err != nil {
		return KitReconcileResult{}, err
	}

	if u.notifier != nil {
		if err := u.notifier.Publish(ctx, EventKitReconciled, reset); err != nil {
			log.Printf("[kit][usecase] notify failed reset_id=%s err=%v", reset.ID, err)
		}
	}
	log.Printf("[kit][usecase] reconcile done pos=%s gateway=%s commands_expired=%d cycles_expired=%d blocked=%t", pos.ID, gw.ID, report.CommandsExpired, report.CyclesExpired, report.BlockedActiveUse)
	return KitReconcileResult{Report: reset}, nil
}

// Transfer moves a kit to another condominio. It hard-blocks on anything
// still alive (attached machines, in-TTL commands, open cycles) and, when
// only TTL-expired pendencies remain, either sweeps them first
// (AutoReconcileExpired) or asks the caller to reconcile explicitly.
//
// The two location updates are not transactional at this layer: if the
// gateway move fails after the POS moved, the POS move is compensated and the
// attempt is logged as COMPENSADO.
func (u *KitUseCase) Transfer(ctx context.Context, in KitTransferInput) (entities.KitTransfer, error) {
	pos, gw, err := u.loadKit(ctx, in.PosDeviceID, in.GatewayID)
	if err != nil {
		return entities.KitTransfer{}, err
	}
	source := pos.CondominioID

	in.ToCondominioID = strings.TrimSpace(in.ToCondominioID)
	if in.ToCondominioID == "" {
		return entities.KitTransfer{}, ErrInvalidKitInput
	}
	if in.ToCondominioID == source {
		return entities.KitTransfer{}, ErrTransferSameLocation
	}
	dest, err := u.fleetRepo.GetCondominio(ctx, in.ToCondominioID)
	if err != nil {
		return entities.KitTransfer{}, err
	}
	if dest.ID == "" {
		return entities.KitTransfer{}, ErrCondominioNotFound
	}
	log.Printf("[kit][usecase] transfer start pos=%s gateway=%s from=%s to=%s", pos.ID, gw.ID, source, dest.ID)

	if err := u.checkNoAttachedMachines(ctx, pos.ID, gw.ID); err != nil {
		return entities.KitTransfer{}, err
	}

	expiredPendency, err := u.checkPendencies(ctx, pos.ID, gw.ID)
	if err != nil {
		return entities.KitTransfer{}, err
	}

	var commandsExpired, cyclesExpired int
	if expiredPendency != nil {
		if !in.AutoReconcileExpired {
			return entities.KitTransfer{}, expiredPendency
		}
		report, err := u.reconciler.Reconcile(ctx, in.TenantID, pos.ID, gw.ID)
		if err != nil {
			return entities.KitTransfer{}, err
		}
		commandsExpired = report.CommandsExpired
		cyclesExpired = report.CyclesExpired
		log.Printf("[kit][usecase] auto-reconciled before transfer pos=%s gateway=%s commands_expired=%d cycles_expired=%d", pos.ID, gw.ID, commandsExpired, cyclesExpired)
	}

	applied, err := u.fleetRepo.UpdatePosDeviceLocationIf(ctx, pos.ID, source, dest.ID)
	if err != nil {
		return entities.KitTransfer{}, err
	}
	if !applied {
		return entities.KitTransfer{}, ErrTransferLostRace
	}

	applied, err = u.fleetRepo.UpdateGatewayLocationIf(ctx, gw.ID, source, dest.ID)
	if err != nil || !applied {
		// Compensation: the POS already moved, pull it back so the kit stays
		// cohesive. The attempt is logged distinctly from a clean success.
		if _, compErr := u.fleetRepo.UpdatePosDeviceLocationIf(ctx, pos.ID, dest.ID, source); compErr != nil {
			log.Printf("[kit][usecase] compensation failed pos=%s err=%v", pos.ID, compErr)
		}
		if _, auditErr := u.auditRepo.AppendTransfer(ctx, entities.KitTransfer{
			ID:               uuid.NewString(),
			TenantID:         in.TenantID,
			PosDeviceID:      pos.ID,
			GatewayID:        gw.ID,
			FromCondominioID: source,
			ToCondominioID:   dest.ID,
			Result:           entities.KitTransferResultCompensado,
			Reason:           in.Reason,
			Actor:            in.Actor,
			CommandsExpired:  commandsExpired,
			CyclesExpired:    cyclesExpired,
			CreatedAt:        u.now(),
		}); auditErr != nil {
			log.Printf("[kit][usecase] compensated-transfer audit failed pos=%s err=%v", pos.ID, auditErr)
		}
		if err != nil {
			log.Printf("[kit][usecase] gateway move failed, compensated pos=%s gateway=%s err=%v", pos.ID, gw.ID, err)
			return entities.KitTransfer{}, fmt.Errorf("%w: %v", ErrTransferCompensated, err)
		}
		return entities.KitTransfer{}, ErrTransferLostRace
	}

	transfer, err := u.auditRepo.AppendTransfer(ctx, entities.KitTransfer{
		ID:               uuid.NewString(),
		TenantID:         in.TenantID,
		PosDeviceID:      pos.ID,
		GatewayID:        gw.ID,
		FromCondominioID: source,
		ToCondominioID:   dest.ID,
		Result:           entities.KitTransferResultSucesso,
		Reason:           in.Reason,
		Actor:            in.Actor,
		CommandsExpired:  commandsExpired,
		CyclesExpired:    cyclesExpired,
		CreatedAt:        u.now(),
	})
	if err != nil {
		return entities.KitTransfer{}, err
	}

	if u.notifier != nil {
		if err := u.notifier.Publish(ctx, EventKitTransferred, transfer); err != nil {
			log.Printf("[kit][usecase] notify failed transfer_id=%s err=%v", transfer.ID, err)
		}
	}
	log.Printf("[kit][usecase] transfer success transfer_id=%s pos=%s gateway=%s from=%s to=%s", transfer.ID, pos.ID, gw.ID, source, dest.ID)
	return transfer, nil
}

func (u *KitUseCase) checkNoAttachedMachines(ctx context.Context, posDeviceID, gatewayID string) error {
	byGw, err := u.machineRepo.ListByGatewayID(ctx, gatewayID)
	if err != nil {
		return err
	}
	if len(byGw) > 0 {
		return ErrKitAttachedToMachines
	}
	byPos, err := u.machineRepo.ListByPosDeviceID(ctx, posDeviceID)
	if err != nil {
		return err
	}
	if len(byPos) > 0 {
		return ErrKitAttachedToMachines
	}
	return nil
}

// checkPendencies hard-fails on live work and returns the matching
// expired-pendency error (nil when the kit is completely clean). Active
// pendencies always win over expired ones; among expired pendencies the
// cycle, being the later stage of the pipeline, is the one reported.
func (u *KitUseCase) checkPendencies(ctx context.Context, posDeviceID, gatewayID string) (error, error) {
	now := u.now()
	var expired error

	cmds, err := u.commandRepo.ListOpenByGatewayID(ctx, gatewayID)
	if err != nil {
		return nil, err
	}
	seenMachines := map[string]bool{}
	var machineIDs []string
	for _, cmd := range cmds {
		if now.After(u.reconciler.CommandDeadline(cmd)) {
			expired = ErrPendingExpiredCommand
		} else {
			return nil, ErrPendingActiveCommand
		}
		if cmd.MachineID != "" && !seenMachines[cmd.MachineID] {
			seenMachines[cmd.MachineID] = true
			machineIDs = append(machineIDs, cmd.MachineID)
		}
	}

	// Machines no longer reference the kit at this point (checked earlier),
	// but open cycles may linger on machines the expired commands targeted.
	if len(machineIDs) > 0 {
		cycles, err := u.cycleRepo.ListOpenByMachineIDs(ctx, machineIDs)
		if err != nil {
			return nil, err
		}
		for _, c := range cycles {
			if c.Status == entities.CycleStatusEmUso {
				return nil, ErrPendingActiveCycle
			}
			if now.After(u.reconciler.CycleDeadline(c)) {
				expired = ErrPendingExpiredCycle
			} else {
				return nil, ErrPendingActiveCycle
			}
		}
	}
	return expired, nil
}
