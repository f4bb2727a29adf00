package usecase

import (
	"context"
	"testing"
	"time"

	"lavaja/internal/domain/entities"
	mock_interfaces "lavaja/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var sweepNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newFrozenReconciler(commandRepo *mock_interfaces.MockICommandRepository, cycleRepo *mock_interfaces.MockICycleRepository, machineRepo *mock_interfaces.MockIMachineRepository) *ReconcilerUseCase {
	uc := NewReconcilerUseCase(commandRepo, cycleRepo, machineRepo, testConfig())
	uc.now = func() time.Time { return sweepNow }
	return uc
}

func TestReconcilerUseCase_Deadlines(t *testing.T) {
	uc := NewReconcilerUseCase(nil, nil, nil, testConfig())
	created := sweepNow.Add(-time.Hour)

	t.Run("explicit expires_at wins", func(t *testing.T) {
		exp := sweepNow.Add(2 * time.Minute)
		cmd := entities.IoTCommand{Status: entities.CommandStatusPendente, CreatedAt: created, ExpiresAt: &exp}
		if got := uc.CommandDeadline(cmd); !got.Equal(exp) {
			t.Fatalf("expected %s, got %s", exp, got)
		}
	})

	t.Run("pending commands get the ack budget", func(t *testing.T) {
		cmd := entities.IoTCommand{Status: entities.CommandStatusEnviado, CreatedAt: created}
		if got := uc.CommandDeadline(cmd); !got.Equal(created.Add(5 * time.Minute)) {
			t.Fatalf("unexpected deadline %s", got)
		}
	})

	t.Run("other statuses get the fallback window", func(t *testing.T) {
		cmd := entities.IoTCommand{Status: entities.CommandStatusAck, CreatedAt: created}
		if got := uc.CommandDeadline(cmd); !got.Equal(created.Add(10 * time.Minute)) {
			t.Fatalf("unexpected deadline %s", got)
		}
	})

	t.Run("cycle deadline is the pre-use ttl", func(t *testing.T) {
		c := entities.Cycle{CreatedAt: created}
		if got := uc.CycleDeadline(c); !got.Equal(created.Add(15 * time.Minute)) {
			t.Fatalf("unexpected deadline %s", got)
		}
	})
}

func TestReconcilerUseCase_Reconcile(t *testing.T) {
	t.Run("expired command drags its pre-use cycle down", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		commandRepo := mock_interfaces.NewMockICommandRepository(ctrl)
		cycleRepo := mock_interfaces.NewMockICycleRepository(ctrl)
		machineRepo := mock_interfaces.NewMockIMachineRepository(ctrl)
		uc := newFrozenReconciler(commandRepo, cycleRepo, machineRepo)

		stale := entities.IoTCommand{ID: "cmd-1", CmdID: "wire-1", MachineID: "maq-1", CycleID: "cyc-1", Status: entities.CommandStatusEnviado, CreatedAt: sweepNow.Add(-time.Hour)}
		fresh := entities.IoTCommand{ID: "cmd-2", CmdID: "wire-2", Status: entities.CommandStatusEnviado, CreatedAt: sweepNow.Add(-time.Minute)}
		commandRepo.EXPECT().ListOpenByGatewayID(gomock.Any(), "gw-1").Return([]entities.IoTCommand{stale, fresh}, nil)
		commandRepo.EXPECT().UpdateStatusIf(gomock.Any(), "cmd-1",
			[]entities.CommandStatus{entities.CommandStatusEnviado},
			entities.CommandStatusExpirado, gomock.Nil()).Return(true, nil)

		cycle := entities.Cycle{ID: "cyc-1", MachineID: "maq-1", Status: entities.CycleStatusAguardandoLiberacao, CreatedAt: sweepNow.Add(-time.Hour)}
		cycleRepo.EXPECT().GetByID(gomock.Any(), "cyc-1").Return(cycle, nil)
		cycleRepo.EXPECT().UpdateStatusIf(gomock.Any(), "cyc-1",
			[]entities.CycleStatus{entities.CycleStatusAguardandoLiberacao},
			entities.CycleStatusAbortado, gomock.Any()).Return(true, nil)
		cycleRepo.EXPECT().ReleaseMachine(gomock.Any(), "maq-1", "cyc-1").Return(nil)

		machineRepo.EXPECT().ListByGatewayID(gomock.Any(), "gw-1").Return([]entities.Machine{{ID: "maq-1"}}, nil)
		machineRepo.EXPECT().ListByPosDeviceID(gomock.Any(), "pos-1").Return([]entities.Machine{{ID: "maq-1"}}, nil)
		// The cycle was already aborted through the command cascade; the machine
		// sweep must not count it twice.
		cycleRepo.EXPECT().ListOpenByMachineIDs(gomock.Any(), []string{"maq-1"}).Return([]entities.Cycle{cycle}, nil)

		report, err := uc.Reconcile(context.Background(), "t-1", "pos-1", "gw-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.CommandsExpired != 1 || report.CyclesExpired != 1 {
			t.Fatalf("unexpected report %+v", report)
		}
	})

	t.Run("lost guard leaves the command alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		commandRepo := mock_interfaces.NewMockICommandRepository(ctrl)
		cycleRepo := mock_interfaces.NewMockICycleRepository(ctrl)
		machineRepo := mock_interfaces.NewMockIMachineRepository(ctrl)
		uc := newFrozenReconciler(commandRepo, cycleRepo, machineRepo)

		stale := entities.IoTCommand{ID: "cmd-1", Status: entities.CommandStatusEnviado, CreatedAt: sweepNow.Add(-time.Hour)}
		commandRepo.EXPECT().ListOpenByGatewayID(gomock.Any(), "gw-1").Return([]entities.IoTCommand{stale}, nil)
		commandRepo.EXPECT().UpdateStatusIf(gomock.Any(), "cmd-1", gomock.Any(), entities.CommandStatusExpirado, gomock.Nil()).Return(false, nil)
		machineRepo.EXPECT().ListByGatewayID(gomock.Any(), "gw-1").Return(nil, nil)

		report, err := uc.Reconcile(context.Background(), "t-1", "", "gw-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.CommandsExpired != 0 || report.CyclesExpired != 0 {
			t.Fatalf("unexpected report %+v", report)
		}
	})

	t.Run("EM_USO is reported, never expired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		commandRepo := mock_interfaces.NewMockICommandRepository(ctrl)
		cycleRepo := mock_interfaces.NewMockICycleRepository(ctrl)
		machineRepo := mock_interfaces.NewMockIMachineRepository(ctrl)
		uc := newFrozenReconciler(commandRepo, cycleRepo, machineRepo)

		commandRepo.EXPECT().ListOpenByGatewayID(gomock.Any(), "gw-1").Return(nil, nil)
		machineRepo.EXPECT().ListByGatewayID(gomock.Any(), "gw-1").Return([]entities.Machine{{ID: "maq-1"}, {ID: "maq-2"}}, nil)

		recent := sweepNow.Add(-time.Hour)
		ancient := sweepNow.Add(-48 * time.Hour)
		inUse := entities.Cycle{ID: "cyc-1", MachineID: "maq-1", Status: entities.CycleStatusEmUso, BusyOnAt: &recent}
		staleInUse := entities.Cycle{ID: "cyc-2", MachineID: "maq-2", Status: entities.CycleStatusEmUso, BusyOnAt: &ancient}
		cycleRepo.EXPECT().ListOpenByMachineIDs(gomock.Any(), []string{"maq-1", "maq-2"}).Return([]entities.Cycle{inUse, staleInUse}, nil)

		report, err := uc.Reconcile(context.Background(), "t-1", "", "gw-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !report.BlockedActiveUse {
			t.Fatalf("expected blocked active use")
		}
		if report.StaleInUse != 1 {
			t.Fatalf("expected 1 stale EM_USO, got %d", report.StaleInUse)
		}
		if report.CyclesExpired != 0 {
			t.Fatalf("EM_USO must never be expired, got %d", report.CyclesExpired)
		}
	})

	t.Run("orphan pre-use cycle past the ttl is aborted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		commandRepo := mock_interfaces.NewMockICommandRepository(ctrl)
		cycleRepo := mock_interfaces.NewMockICycleRepository(ctrl)
		machineRepo := mock_interfaces.NewMockIMachineRepository(ctrl)
		uc := newFrozenReconciler(commandRepo, cycleRepo, machineRepo)

		commandRepo.EXPECT().ListOpenByGatewayID(gomock.Any(), "gw-1").Return(nil, nil)
		machineRepo.EXPECT().ListByGatewayID(gomock.Any(), "gw-1").Return([]entities.Machine{{ID: "maq-1"}}, nil)

		orphan := entities.Cycle{ID: "cyc-1", MachineID: "maq-1", Status: entities.CycleStatusLiberado, CreatedAt: sweepNow.Add(-time.Hour)}
		cycleRepo.EXPECT().ListOpenByMachineIDs(gomock.Any(), []string{"maq-1"}).Return([]entities.Cycle{orphan}, nil)
		cycleRepo.EXPECT().UpdateStatusIf(gomock.Any(), "cyc-1",
			[]entities.CycleStatus{entities.CycleStatusLiberado},
			entities.CycleStatusAbortado, gomock.Any()).Return(true, nil)
		cycleRepo.EXPECT().ReleaseMachine(gomock.Any(), "maq-1", "cyc-1").Return(nil)

		report, err := uc.Reconcile(context.Background(), "t-1", "", "gw-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.CyclesExpired != 1 {
			t.Fatalf("expected 1 expired cycle, got %d", report.CyclesExpired)
		}
	})
}
