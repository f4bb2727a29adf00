package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"lavaja/internal/config"
	"lavaja/internal/domain/entities"
	"lavaja/internal/usecase/interfaces"
)

var (
	ErrInvalidIssueInput      = errors.New("invalid issue input")
	ErrPaymentNotConfirmed    = errors.New("payment not confirmed")
	ErrPaymentMachineMismatch = errors.New("payment was collected for another machine")
	ErrMachineInactive        = errors.New("machine is not active")
	ErrGatewayUnreachable     = errors.New("machine has no reachable gateway")
	ErrMachineInUse           = errors.New("machine has an open cycle")
)

const defaultPulseMs = 1500

// IssueInput identifies a confirmed payment and the machine to release.
// IdempotencyKey makes retries safe: the same key always maps to the same
// cycle/command pair.

type IssueInput struct {
	TenantID       string
	PaymentID      string
	MachineID      string
	IdempotencyKey string
	Channel        string
	Origin         string
}

type IssueResult struct {
	CycleID   string
	CommandID string
	Replay    bool
}

// IOrchestratorUseCase turns a confirmed payment into exactly one queued
// PULSE command.

type IOrchestratorUseCase interface {
	Issue(ctx context.Context, in IssueInput) (IssueResult, error)
}

type OrchestratorUseCase struct {
	store       interfaces.IOrchestrationStore
	paymentRepo interfaces.IPaymentRepository
	machineRepo interfaces.IMachineRepository
	fleetRepo   interfaces.IFleetRepository
	cfg         config.Config
}

var _ IOrchestratorUseCase = (*OrchestratorUseCase)(nil)

func NewOrchestratorUseCase(store interfaces.IOrchestrationStore, paymentRepo interfaces.IPaymentRepository, machineRepo interfaces.IMachineRepository, fleetRepo interfaces.IFleetRepository, cfg config.Config) *OrchestratorUseCase {
	return &OrchestratorUseCase{store: store, paymentRepo: paymentRepo, machineRepo: machineRepo, fleetRepo: fleetRepo, cfg: cfg}
}

// Issue validates preconditions and delegates the atomic create to the
// orchestration store. Store failures are returned as-is (500 to callers);
// retrying with the same idempotency key converges on one pair.
func (u *OrchestratorUseCase) Issue(ctx context.Context, in IssueInput) (IssueResult, error) {
	in.PaymentID = strings.TrimSpace(in.PaymentID)
	in.MachineID = strings.TrimSpace(in.MachineID)
	in.IdempotencyKey = strings.TrimSpace(in.IdempotencyKey)
	if in.PaymentID == "" || in.MachineID == "" || in.IdempotencyKey == "" {
		return IssueResult{}, ErrInvalidIssueInput
	}
	log.Printf("[orchestrator][usecase] issue start payment_id=%s machine_id=%s key=%s channel=%s", in.PaymentID, in.MachineID, in.IdempotencyKey, in.Channel)

	p, err := u.paymentRepo.GetByID(ctx, in.PaymentID)
	if err != nil {
		return IssueResult{}, err
	}
	if p.ID == "" {
		return IssueResult{}, ErrPaymentNotFound
	}
	if p.Status != entities.PaymentStatusPago {
		log.Printf("[orchestrator][usecase] payment not confirmed payment_id=%s status=%s", p.ID, p.Status)
		return IssueResult{}, ErrPaymentNotConfirmed
	}
	if p.MachineID != "" && p.MachineID != in.MachineID {
		return IssueResult{}, ErrPaymentMachineMismatch
	}

	m, err := u.machineRepo.GetByID(ctx, in.MachineID)
	if err != nil {
		return IssueResult{}, err
	}
	if m.ID == "" {
		return IssueResult{}, ErrMachineNotFound
	}
	if !m.Active() {
		return IssueResult{}, ErrMachineInactive
	}

	gw, err := u.fleetRepo.GetGateway(ctx, m.GatewayID)
	if err != nil {
		return IssueResult{}, err
	}
	if gw.ID == "" || !gw.Active {
		log.Printf("[orchestrator][usecase] gateway unreachable machine_id=%s gateway_id=%s", m.ID, m.GatewayID)
		return IssueResult{}, ErrGatewayUnreachable
	}

	now := time.Now().UTC()
	cycle := entities.Cycle{
		ID:        uuid.NewString(),
		TenantID:  in.TenantID,
		MachineID: m.ID,
		PaymentID: p.ID,
		Status:    entities.CycleStatusAguardandoLiberacao,
		CreatedAt: now,
	}

	payload, err := json.Marshal(entities.PulsePayload{
		MachineID: m.ID,
		CycleID:   cycle.ID,
		PaymentID: p.ID,
		PulseMs:   defaultPulseMs,
	})
	if err != nil {
		return IssueResult{}, err
	}

	expires := now.Add(u.cfg.CommandAckTimeout)
	cmd := entities.IoTCommand{
		ID:        uuid.NewString(),
		TenantID:  in.TenantID,
		GatewayID: gw.ID,
		MachineID: m.ID,
		CycleID:   cycle.ID,
		CmdID:     uuid.NewString(),
		Type:      entities.CommandTypePulse,
		Payload:   payload,
		Status:    entities.CommandStatusPendente,
		CreatedAt: now,
		ExpiresAt: &expires,
	}

	createdCycle, createdCmd, replay, err := u.store.CreateCycleWithCommand(ctx, cycle, cmd, in.IdempotencyKey)
	if err != nil {
		if errors.Is(err, interfaces.ErrMachineReserved) {
			log.Printf("[orchestrator][usecase] machine reserved machine_id=%s payment_id=%s", m.ID, p.ID)
			return IssueResult{}, ErrMachineInUse
		}
		log.Printf("[orchestrator][usecase] store create failed payment_id=%s err=%v", p.ID, err)
		return IssueResult{}, err
	}

	log.Printf("[orchestrator][usecase] issue success payment_id=%s cycle_id=%s command_id=%s replay=%t", p.ID, createdCycle.ID, createdCmd.ID, replay)
	return IssueResult{CycleID: createdCycle.ID, CommandID: createdCmd.ID, Replay: replay}, nil
}
