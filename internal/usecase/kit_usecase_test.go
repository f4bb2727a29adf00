package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"lavaja/internal/domain/entities"
	mock_interfaces "lavaja/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type kitFixture struct {
	fleetRepo   *mock_interfaces.MockIFleetRepository
	machineRepo *mock_interfaces.MockIMachineRepository
	commandRepo *mock_interfaces.MockICommandRepository
	cycleRepo   *mock_interfaces.MockICycleRepository
	auditRepo   *mock_interfaces.MockIKitAuditRepository
	notifier    *mock_interfaces.MockINotifier
	uc          *KitUseCase
}

func newKitFixture(ctrl *gomock.Controller) kitFixture {
	f := kitFixture{
		fleetRepo:   mock_interfaces.NewMockIFleetRepository(ctrl),
		machineRepo: mock_interfaces.NewMockIMachineRepository(ctrl),
		commandRepo: mock_interfaces.NewMockICommandRepository(ctrl),
		cycleRepo:   mock_interfaces.NewMockICycleRepository(ctrl),
		auditRepo:   mock_interfaces.NewMockIKitAuditRepository(ctrl),
		notifier:    mock_interfaces.NewMockINotifier(ctrl),
	}
	reconciler := newFrozenReconciler(f.commandRepo, f.cycleRepo, f.machineRepo)
	f.uc = NewKitUseCase(f.fleetRepo, f.machineRepo, f.commandRepo, f.cycleRepo, f.auditRepo, reconciler, f.notifier)
	f.uc.now = func() time.Time { return sweepNow }
	return f
}

func (f kitFixture) expectKit(pos entities.PosDevice, gw entities.Gateway) {
	f.fleetRepo.EXPECT().GetPosDevice(gomock.Any(), pos.ID).Return(pos, nil)
	f.fleetRepo.EXPECT().GetGateway(gomock.Any(), gw.ID).Return(gw, nil)
}

func TestKitUseCase_Reconcile(t *testing.T) {
	pos := entities.PosDevice{ID: "pos-1", TenantID: "t-1", CondominioID: "cond-1"}
	gw := entities.Gateway{ID: "gw-1", TenantID: "t-1", CondominioID: "cond-1", Active: true}

	t.Run("missing ids", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newKitFixture(ctrl)

		_, err := f.uc.Reconcile(context.Background(), KitReconcileInput{TenantID: "t-1", PosDeviceID: " ", GatewayID: "gw-1"})
		if !errors.Is(err, ErrInvalidKitInput) {
			t.Fatalf("expected ErrInvalidKitInput, got %v", err)
		}
	})

	t.Run("split kit is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newKitFixture(ctrl)

		elsewhere := gw
		elsewhere.CondominioID = "cond-9"
		f.expectKit(pos, elsewhere)

		_, err := f.uc.Reconcile(context.Background(), KitReconcileInput{TenantID: "t-1", PosDeviceID: "pos-1", GatewayID: "gw-1"})
		if !errors.Is(err, ErrKitNotCohesive) {
			t.Fatalf("expected ErrKitNotCohesive, got %v", err)
		}
	})

	t.Run("declared condominio must match the kit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newKitFixture(ctrl)

		f.expectKit(pos, gw)

		_, err := f.uc.Reconcile(context.Background(), KitReconcileInput{TenantID: "t-1", CondominioID: "cond-2", PosDeviceID: "pos-1", GatewayID: "gw-1"})
		if !errors.Is(err, ErrKitNotCohesive) {
			t.Fatalf("expected ErrKitNotCohesive, got %v", err)
		}
	})

	t.Run("sweeps and records an audit entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newKitFixture(ctrl)

		f.expectKit(pos, gw)
		stale := entities.IoTCommand{ID: "cmd-1", Status: entities.CommandStatusEnviado, CreatedAt: sweepNow.Add(-time.Hour)}
		f.commandRepo.EXPECT().ListOpenByGatewayID(gomock.Any(), "gw-1").Return([]entities.IoTCommand{stale}, nil)
		f.commandRepo.EXPECT().UpdateStatusIf(gomock.Any(), "cmd-1", gomock.Any(), entities.CommandStatusExpirado, gomock.Nil()).Return(true, nil)
		f.machineRepo.EXPECT().ListByGatewayID(gomock.Any(), "gw-1").Return(nil, nil)
		f.machineRepo.EXPECT().ListByPosDeviceID(gomock.Any(), "pos-1").Return(nil, nil)
		f.auditRepo.EXPECT().AppendReset(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.KitReset) (entities.KitReset, error) {
				if r.PosDeviceID != "pos-1" || r.GatewayID != "gw-1" || r.CondominioID != "cond-1" {
					t.Fatalf("unexpected reset %+v", r)
				}
				if r.CommandsExpired != 1 || r.CyclesExpired != 0 {
					t.Fatalf("unexpected sweep counters %+v", r)
				}
				return r, nil
			})
		f.notifier.EXPECT().Publish(gomock.Any(), EventKitReconciled, gomock.Any()).Return(nil)

		out, err := f.uc.Reconcile(context.Background(), KitReconcileInput{TenantID: "t-1", PosDeviceID: "pos-1", GatewayID: "gw-1", Reason: "suporte"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Report.CommandsExpired != 1 {
			t.Fatalf("unexpected result %+v", out)
		}
	})
}

func TestKitUseCase_Transfer(t *testing.T) {
	pos := entities.PosDevice{ID: "pos-1", TenantID: "t-1", CondominioID: "cond-1"}
	gw := entities.Gateway{ID: "gw-1", TenantID: "t-1", CondominioID: "cond-1", Active: true}
	dest := entities.Condominio{ID: "cond-2", TenantID: "t-1", Name: "Residencial Norte"}

	base := KitTransferInput{TenantID: "t-1", PosDeviceID: "pos-1", GatewayID: "gw-1", ToCondominioID: "cond-2", Actor: "backoffice"}

	t.Run("destination equals source", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newKitFixture(ctrl)

		f.expectKit(pos, gw)
		in := base
		in.ToCondominioID = "cond-1"
		_, err := f.uc.Transfer(context.Background(), in)
		if !errors.Is(err, ErrTransferSameLocation) {
			t.Fatalf("expected ErrTransferSameLocation, got %v", err)
		}
	})

	t.Run("unknown destination", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newKitFixture(ctrl)

		f.expectKit(pos, gw)
		f.fleetRepo.EXPECT().GetCondominio(gomock.Any(), "cond-2").Return(entities.Condominio{}, nil)

		_, err := f.uc.Transfer(context.Background(), base)
		if !errors.Is(err, ErrCondominioNotFound) {
			t.Fatalf("expected ErrCondominioNotFound, got %v", err)
		}
	})

	t.Run("attached machines block the move", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newKitFixture(ctrl)

		f.expectKit(pos, gw)
		f.fleetRepo.EXPECT().GetCondominio(gomock.Any(), "cond-2").Return(dest, nil)
		f.machineRepo.EXPECT().ListByGatewayID(gomock.Any(), "gw-1").Return([]entities.Machine{{ID: "maq-1"}}, nil)

		_, err := f.uc.Transfer(context.Background(), base)
		if !errors.Is(err, ErrKitAttachedToMachines) {
			t.Fatalf("expected ErrKitAttachedToMachines, got %v", err)
		}
	})

	t.Run("command inside its TTL blocks the move", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newKitFixture(ctrl)

		f.expectKit(pos, gw)
		f.fleetRepo.EXPECT().GetCondominio(gomock.Any(), "cond-2").Return(dest, nil)
		f.machineRepo.EXPECT().ListByGatewayID(gomock.Any(), "gw-1").Return(nil, nil)
		f.machineRepo.EXPECT().ListByPosDeviceID(gomock.Any(), "pos-1").Return(nil, nil)
		alive := entities.IoTCommand{ID: "cmd-1", Status: entities.CommandStatusEnviado, CreatedAt: sweepNow.Add(-time.Minute)}
		f.commandRepo.EXPECT().ListOpenByGatewayID(gomock.Any(), "gw-1").Return([]entities.IoTCommand{alive}, nil)

		_, err := f.uc.Transfer(context.Background(), base)
		if !errors.Is(err, ErrPendingActiveCommand) {
			t.Fatalf("expected ErrPendingActiveCommand, got %v", err)
		}
	})

	t.Run("expired pendencies need an explicit opt-in", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newKitFixture(ctrl)

		f.expectKit(pos, gw)
		f.fleetRepo.EXPECT().GetCondominio(gomock.Any(), "cond-2").Return(dest, nil)
		f.machineRepo.EXPECT().ListByGatewayID(gomock.Any(), "gw-1").Return(nil, nil)
		f.machineRepo.EXPECT().ListByPosDeviceID(gomock.Any(), "pos-1").Return(nil, nil)
		stale := entities.IoTCommand{ID: "cmd-1", Status: entities.CommandStatusEnviado, CreatedAt: sweepNow.Add(-time.Hour)}
		f.commandRepo.EXPECT().ListOpenByGatewayID(gomock.Any(), "gw-1").Return([]entities.IoTCommand{stale}, nil)

		_, err := f.uc.Transfer(context.Background(), base)
		if !errors.Is(err, ErrPendingExpiredCommand) {
			t.Fatalf("expected ErrPendingExpiredCommand, got %v", err)
		}
	})

	t.Run("in-use cycle blocks the move even with expired commands around", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newKitFixture(ctrl)

		f.expectKit(pos, gw)
		f.fleetRepo.EXPECT().GetCondominio(gomock.Any(), "cond-2").Return(dest, nil)
		f.machineRepo.EXPECT().ListByGatewayID(gomock.Any(), "gw-1").Return(nil, nil)
		f.machineRepo.EXPECT().ListByPosDeviceID(gomock.Any(), "pos-1").Return(nil, nil)
		stale := entities.IoTCommand{ID: "cmd-1", MachineID: "maq-1", Status: entities.CommandStatusEnviado, CreatedAt: sweepNow.Add(-time.Hour)}
		f.commandRepo.EXPECT().ListOpenByGatewayID(gomock.Any(), "gw-1").Return([]entities.IoTCommand{stale}, nil)
		busy := entities.Cycle{ID: "cyc-1", MachineID: "maq-1", Status: entities.CycleStatusEmUso, CreatedAt: sweepNow.Add(-time.Hour)}
		f.cycleRepo.EXPECT().ListOpenByMachineIDs(gomock.Any(), []string{"maq-1"}).Return([]entities.Cycle{busy}, nil)

		in := base
		in.AutoReconcileExpired = true
		_, err := f.uc.Transfer(context.Background(), in)
		if !errors.Is(err, ErrPendingActiveCycle) {
			t.Fatalf("expected ErrPendingActiveCycle, got %v", err)
		}
	})

	t.Run("stale pre-use cycle is the reported pendency", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newKitFixture(ctrl)

		f.expectKit(pos, gw)
		f.fleetRepo.EXPECT().GetCondominio(gomock.Any(), "cond-2").Return(dest, nil)
		f.machineRepo.EXPECT().ListByGatewayID(gomock.Any(), "gw-1").Return(nil, nil)
		f.machineRepo.EXPECT().ListByPosDeviceID(gomock.Any(), "pos-1").Return(nil, nil)
		stale := entities.IoTCommand{ID: "cmd-1", MachineID: "maq-1", Status: entities.CommandStatusEnviado, CreatedAt: sweepNow.Add(-time.Hour)}
		f.commandRepo.EXPECT().ListOpenByGatewayID(gomock.Any(), "gw-1").Return([]entities.IoTCommand{stale}, nil)
		orphan := entities.Cycle{ID: "cyc-1", MachineID: "maq-1", Status: entities.CycleStatusAguardandoLiberacao, CreatedAt: sweepNow.Add(-time.Hour)}
		f.cycleRepo.EXPECT().ListOpenByMachineIDs(gomock.Any(), []string{"maq-1"}).Return([]entities.Cycle{orphan}, nil)

		_, err := f.uc.Transfer(context.Background(), base)
		if !errors.Is(err, ErrPendingExpiredCycle) {
			t.Fatalf("expected ErrPendingExpiredCycle, got %v", err)
		}
	})

	t.Run("auto reconcile sweeps and then moves the kit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newKitFixture(ctrl)

		f.expectKit(pos, gw)
		f.fleetRepo.EXPECT().GetCondominio(gomock.Any(), "cond-2").Return(dest, nil)
		f.machineRepo.EXPECT().ListByGatewayID(gomock.Any(), "gw-1").Return(nil, nil).Times(2)
		f.machineRepo.EXPECT().ListByPosDeviceID(gomock.Any(), "pos-1").Return(nil, nil).Times(2)

		stale := entities.IoTCommand{ID: "cmd-1", Status: entities.CommandStatusEnviado, CreatedAt: sweepNow.Add(-time.Hour)}
		// First listing classifies the pendency, the second feeds the sweep.
		f.commandRepo.EXPECT().ListOpenByGatewayID(gomock.Any(), "gw-1").Return([]entities.IoTCommand{stale}, nil).Times(2)
		f.commandRepo.EXPECT().UpdateStatusIf(gomock.Any(), "cmd-1", gomock.Any(), entities.CommandStatusExpirado, gomock.Nil()).Return(true, nil)

		f.fleetRepo.EXPECT().UpdatePosDeviceLocationIf(gomock.Any(), "pos-1", "cond-1", "cond-2").Return(true, nil)
		f.fleetRepo.EXPECT().UpdateGatewayLocationIf(gomock.Any(), "gw-1", "cond-1", "cond-2").Return(true, nil)
		f.auditRepo.EXPECT().AppendTransfer(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tr entities.KitTransfer) (entities.KitTransfer, error) {
				if tr.Result != entities.KitTransferResultSucesso {
					t.Fatalf("expected SUCESSO, got %s", tr.Result)
				}
				if tr.FromCondominioID != "cond-1" || tr.ToCondominioID != "cond-2" {
					t.Fatalf("unexpected transfer %+v", tr)
				}
				if tr.CommandsExpired != 1 {
					t.Fatalf("expected sweep counters on the audit entry, got %+v", tr)
				}
				return tr, nil
			})
		f.notifier.EXPECT().Publish(gomock.Any(), EventKitTransferred, gomock.Any()).Return(nil)

		in := base
		in.AutoReconcileExpired = true
		out, err := f.uc.Transfer(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Result != entities.KitTransferResultSucesso {
			t.Fatalf("unexpected result %+v", out)
		}
	})

	t.Run("lost race on the pos move", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newKitFixture(ctrl)

		f.expectKit(pos, gw)
		f.fleetRepo.EXPECT().GetCondominio(gomock.Any(), "cond-2").Return(dest, nil)
		f.machineRepo.EXPECT().ListByGatewayID(gomock.Any(), "gw-1").Return(nil, nil)
		f.machineRepo.EXPECT().ListByPosDeviceID(gomock.Any(), "pos-1").Return(nil, nil)
		f.commandRepo.EXPECT().ListOpenByGatewayID(gomock.Any(), "gw-1").Return(nil, nil)
		f.fleetRepo.EXPECT().UpdatePosDeviceLocationIf(gomock.Any(), "pos-1", "cond-1", "cond-2").Return(false, nil)

		_, err := f.uc.Transfer(context.Background(), base)
		if !errors.Is(err, ErrTransferLostRace) {
			t.Fatalf("expected ErrTransferLostRace, got %v", err)
		}
	})

	t.Run("failed gateway move compensates the pos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newKitFixture(ctrl)

		f.expectKit(pos, gw)
		f.fleetRepo.EXPECT().GetCondominio(gomock.Any(), "cond-2").Return(dest, nil)
		f.machineRepo.EXPECT().ListByGatewayID(gomock.Any(), "gw-1").Return(nil, nil)
		f.machineRepo.EXPECT().ListByPosDeviceID(gomock.Any(), "pos-1").Return(nil, nil)
		f.commandRepo.EXPECT().ListOpenByGatewayID(gomock.Any(), "gw-1").Return(nil, nil)

		f.fleetRepo.EXPECT().UpdatePosDeviceLocationIf(gomock.Any(), "pos-1", "cond-1", "cond-2").Return(true, nil)
		f.fleetRepo.EXPECT().UpdateGatewayLocationIf(gomock.Any(), "gw-1", "cond-1", "cond-2").Return(false, errors.New("throttled"))
		f.fleetRepo.EXPECT().UpdatePosDeviceLocationIf(gomock.Any(), "pos-1", "cond-2", "cond-1").Return(true, nil)
		f.auditRepo.EXPECT().AppendTransfer(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tr entities.KitTransfer) (entities.KitTransfer, error) {
				if tr.Result != entities.KitTransferResultCompensado {
					t.Fatalf("expected COMPENSADO, got %s", tr.Result)
				}
				return tr, nil
			})

		_, err := f.uc.Transfer(context.Background(), base)
		if !errors.Is(err, ErrTransferCompensated) {
			t.Fatalf("expected ErrTransferCompensated, got %v", err)
		}
	})
}
