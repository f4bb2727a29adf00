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
	ErrCommandNotFound      = errors.New("command not found")
	ErrGatewayNotRegistered = errors.New("gateway is not registered to a location")
	ErrUnknownEventType     = errors.New("unknown telemetry event type")
	ErrNoOpenCycle          = errors.New("no open cycle for machine")
)

const EventCycleFinalizado = "cycle.finalizado"

// EventType discriminates gateway telemetry.

type EventType string

const (
	EventTypePulse   EventType = "PULSE"
	EventTypeBusyOn  EventType = "BUSY_ON"
	EventTypeBusyOff EventType = "BUSY_OFF"
)

// CommandDelivery is what a poll hands to the gateway: the wire correlation
// token plus the typed payload. Internal ids never leave the backend.

type CommandDelivery struct {
	CmdID   string
	Type    entities.CommandType
	Payload json.RawMessage
}

type AckInput struct {
	CmdID     string
	OK        bool
	ClientTS  time.Time
	MachineID string
	Code      string
}

type EventInput struct {
	Type      EventType
	CmdID     string
	MachineID string
	ClientTS  time.Time
}

// IGatewayProtocolUseCase is the poll/ack/event wire contract gateways use to
// fetch commands, confirm delivery and report machine telemetry.

type IGatewayProtocolUseCase interface {
	Poll(ctx context.Context, gw entities.Gateway, max int) ([]CommandDelivery, error)
	Ack(ctx context.Context, gw entities.Gateway, in AckInput) (entities.CommandStatus, error)
	HandleEvent(ctx context.Context, gw entities.Gateway, in EventInput) error
}

type GatewayProtocolUseCase struct {
	commandRepo interfaces.ICommandRepository
	cycleRepo   interfaces.ICycleRepository
	machineRepo interfaces.IMachineRepository
	ackRepo     interfaces.IAckRepository
	fleetRepo   interfaces.IFleetRepository
	notifier    interfaces.INotifier
	cfg         config.Config
}

var _ IGatewayProtocolUseCase = (*GatewayProtocolUseCase)(nil)

func NewGatewayProtocolUseCase(commandRepo interfaces.ICommandRepository, cycleRepo interfaces.ICycleRepository, machineRepo interfaces.IMachineRepository, ackRepo interfaces.IAckRepository, fleetRepo interfaces.IFleetRepository, notifier interfaces.INotifier, cfg config.Config) *GatewayProtocolUseCase {
	return &GatewayProtocolUseCase{
		commandRepo: commandRepo,
		cycleRepo:   cycleRepo,
		machineRepo: machineRepo,
		ackRepo:     ackRepo,
		fleetRepo:   fleetRepo,
		notifier:    notifier,
		cfg:         cfg,
	}
}

// Poll claims up to max pending commands for the gateway. The claim moves each
// command PENDENTE→ENVIADO atomically per row, so re-polling after a gateway
// crash is safe: already-claimed commands are excluded by status.
func (u *GatewayProtocolUseCase) Poll(ctx context.Context, gw entities.Gateway, max int) ([]CommandDelivery, error) {
	if max <= 0 || max > u.cfg.PollMaxCommands {
		max = u.cfg.PollMaxCommands
	}

	cmds, err := u.commandRepo.ClaimPending(ctx, gw.ID, max)
	if err != nil {
		return nil, err
	}

	if err := u.fleetRepo.TouchGatewaySeen(ctx, gw.ID, time.Now().UTC()); err != nil {
		log.Printf("[protocol][usecase] touch gateway failed gateway_id=%s err=%v", gw.ID, err)
	}

	out := make([]CommandDelivery, 0, len(cmds))
	for _, c := range cmds {
		// A payload the gateway could not act on is withheld; the command
		// stays claimed and the TTL sweep expires it.
		if _, err := entities.DecodeCommandPayload(c.Type, c.Payload); err != nil {
			log.Printf("[protocol][usecase] undeliverable payload cmd_id=%s type=%s err=%v", c.CmdID, c.Type, err)
			continue
		}
		out = append(out, CommandDelivery{CmdID: c.CmdID, Type: c.Type, Payload: c.Payload})
	}
	log.Printf("[protocol][usecase] poll gateway_id=%s claimed=%d max=%d", gw.ID, len(out), max)
	return out, nil
}

// Ack records an immutable ack log entry and flips the command ENVIADO→ACK or
// ENVIADO→FALHOU. Duplicate acks and acks that lost a race (e.g. against the
// TTL sweep) are no-ops: the current status is reported back unchanged.
func (u *GatewayProtocolUseCase) Ack(ctx context.Context, gw entities.Gateway, in AckInput) (entities.CommandStatus, error) {
	in.CmdID = strings.TrimSpace(in.CmdID)
	if in.CmdID == "" {
		return "", ErrCommandNotFound
	}

	cmd, err := u.commandRepo.GetByCmdID(ctx, in.CmdID)
	if err != nil {
		return "", err
	}
	if cmd.ID == "" || cmd.GatewayID != gw.ID {
		return "", ErrCommandNotFound
	}

	now := time.Now().UTC()
	if _, err := u.ackRepo.Append(ctx, entities.AckLog{
		ID:        uuid.NewString(),
		TenantID:  cmd.TenantID,
		GatewayID: gw.ID,
		CommandID: cmd.ID,
		CmdID:     cmd.CmdID,
		OK:        in.OK,
		Code:      in.Code,
		ClientTS:  in.ClientTS,
		CreatedAt: now,
	}); err != nil {
		return "", err
	}

	target := entities.CommandStatusAck
	if !in.OK {
		target = entities.CommandStatusFalhou
	}

	applied, err := u.commandRepo.UpdateStatusIf(ctx, cmd.ID, []entities.CommandStatus{entities.CommandStatusPendente, entities.CommandStatusEnviado}, target, &now)
	if err != nil {
		return "", err
	}
	if !applied {
		// First transition wins: a duplicate ack or an expiry sweep got there
		// before us. Report whatever state the command is in now.
		cmd, err = u.commandRepo.GetByID(ctx, cmd.ID)
		if err != nil {
			return "", err
		}
		log.Printf("[protocol][usecase] ack no-op cmd_id=%s status=%s ok=%t", in.CmdID, cmd.Status, in.OK)
		return cmd.Status, nil
	}

	// A failed ack terminates the command; the cycle it was meant to release
	// is aborted right away rather than waiting for the TTL sweep.
	if target == entities.CommandStatusFalhou && cmd.CycleID != "" {
		u.abortPreUseCycle(ctx, cmd)
	}

	log.Printf("[protocol][usecase] ack applied cmd_id=%s status=%s", in.CmdID, target)
	return target, nil
}

func (u *GatewayProtocolUseCase) abortPreUseCycle(ctx context.Context, cmd entities.IoTCommand) {
	applied, err := u.cycleRepo.UpdateStatusIf(ctx, cmd.CycleID,
		[]entities.CycleStatus{entities.CycleStatusAguardandoLiberacao, entities.CycleStatusLiberado},
		entities.CycleStatusAbortado, interfaces.CycleStamps{})
	if err != nil {
		log.Printf("[protocol][usecase] cycle abort failed cycle_id=%s err=%v", cmd.CycleID, err)
		return
	}
	if applied {
		if err := u.cycleRepo.ReleaseMachine(ctx, cmd.MachineID, cmd.CycleID); err != nil {
			log.Printf("[protocol][usecase] release machine failed machine_id=%s cycle_id=%s err=%v", cmd.MachineID, cmd.CycleID, err)
		}
		log.Printf("[protocol][usecase] cycle aborted after failed ack cycle_id=%s", cmd.CycleID)
	}
}

// HandleEvent advances the cycle state machine from telemetry. Events from a
// gateway not yet bound to a location are rejected instead of creating orphan
// records.
func (u *GatewayProtocolUseCase) HandleEvent(ctx context.Context, gw entities.Gateway, in EventInput) error {
	if !gw.Registered() {
		return ErrGatewayNotRegistered
	}

	switch in.Type {
	case EventTypePulse:
		return u.handlePulse(ctx, gw, in)
	case EventTypeBusyOn:
		return u.handleBusyOn(ctx, gw, in)
	case EventTypeBusyOff:
		return u.handleBusyOff(ctx, gw, in)
	}
	return ErrUnknownEventType
}

func (u *GatewayProtocolUseCase) handlePulse(ctx context.Context, gw entities.Gateway, in EventInput) error {
	cmd, err := u.commandRepo.GetByCmdID(ctx, strings.TrimSpace(in.CmdID))
	if err != nil {
		return err
	}
	if cmd.ID == "" || cmd.GatewayID != gw.ID {
		return ErrCommandNotFound
	}

	now := time.Now().UTC()
	applied, err := u.commandRepo.UpdateStatusIf(ctx, cmd.ID, []entities.CommandStatus{entities.CommandStatusAck, entities.CommandStatusEnviado}, entities.CommandStatusExecutado, nil)
	if err != nil {
		return err
	}
	if !applied {
		log.Printf("[protocol][usecase] pulse no-op cmd_id=%s", in.CmdID)
	}

	if cmd.CycleID != "" {
		applied, err = u.cycleRepo.UpdateStatusIf(ctx, cmd.CycleID,
			[]entities.CycleStatus{entities.CycleStatusAguardandoLiberacao},
			entities.CycleStatusLiberado, interfaces.CycleStamps{PulseSentAt: &now})
		if err != nil {
			return err
		}
		if applied {
			log.Printf("[protocol][usecase] cycle released cycle_id=%s cmd_id=%s", cmd.CycleID, in.CmdID)
		}
	}
	return nil
}

func (u *GatewayProtocolUseCase) handleBusyOn(ctx context.Context, gw entities.Gateway, in EventInput) error {
	cycle, err := u.openCycleFor(ctx, gw, in.MachineID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	eta := now.Add(u.cfg.CycleEtaDuration)
	applied, err := u.cycleRepo.UpdateStatusIf(ctx, cycle.ID,
		[]entities.CycleStatus{entities.CycleStatusLiberado, entities.CycleStatusAguardandoLiberacao},
		entities.CycleStatusEmUso, interfaces.CycleStamps{BusyOnAt: &now, EtaFreeAt: &eta})
	if err != nil {
		return err
	}
	if applied {
		log.Printf("[protocol][usecase] cycle busy cycle_id=%s machine_id=%s eta_free_at=%s", cycle.ID, in.MachineID, eta.Format(time.RFC3339))
	}
	return nil
}

func (u *GatewayProtocolUseCase) handleBusyOff(ctx context.Context, gw entities.Gateway, in EventInput) error {
	cycle, err := u.openCycleFor(ctx, gw, in.MachineID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	applied, err := u.cycleRepo.UpdateStatusIf(ctx, cycle.ID,
		[]entities.CycleStatus{entities.CycleStatusEmUso},
		entities.CycleStatusFinalizado, interfaces.CycleStamps{BusyOffAt: &now})
	if err != nil {
		return err
	}
	if !applied {
		log.Printf("[protocol][usecase] busy-off no-op cycle_id=%s status=%s", cycle.ID, cycle.Status)
		return nil
	}

	if err := u.cycleRepo.ReleaseMachine(ctx, cycle.MachineID, cycle.ID); err != nil {
		log.Printf("[protocol][usecase] release machine failed machine_id=%s cycle_id=%s err=%v", cycle.MachineID, cycle.ID, err)
	}
	log.Printf("[protocol][usecase] cycle finalized cycle_id=%s machine_id=%s", cycle.ID, in.MachineID)

	if u.notifier != nil {
		cycle.Status = entities.CycleStatusFinalizado
		cycle.BusyOffAt = &now
		if err := u.notifier.Publish(ctx, EventCycleFinalizado, cycle); err != nil {
			log.Printf("[protocol][usecase] notify failed cycle_id=%s err=%v", cycle.ID, err)
		}
	}
	return nil
}

func (u *GatewayProtocolUseCase) openCycleFor(ctx context.Context, gw entities.Gateway, machineID string) (entities.Cycle, error) {
	machineID = strings.TrimSpace(machineID)
	if machineID == "" {
		return entities.Cycle{}, ErrMachineNotFound
	}

	m, err := u.machineRepo.GetByID(ctx, machineID)
	if err != nil {
		return entities.Cycle{}, err
	}
	if m.ID == "" || m.GatewayID != gw.ID {
		return entities.Cycle{}, ErrMachineNotFound
	}

	cycle, err := u.cycleRepo.GetOpenByMachineID(ctx, machineID)
	if err != nil {
		return entities.Cycle{}, err
	}
	if cycle.ID == "" {
		return entities.Cycle{}, ErrNoOpenCycle
	}
	return cycle, nil
}
