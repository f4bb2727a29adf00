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

func TestPricingUseCase_Quote(t *testing.T) {
	machine := entities.Machine{ID: "maq-1", GatewayID: "gw-1", Status: entities.MachineStatusAtivo, PriceCents: 1200}

	t.Run("blank machine id", func(t *testing.T) {
		uc := NewPricingUseCase(nil, nil, nil)
		_, err := uc.Quote(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidMachineID) {
			t.Fatalf("expected ErrInvalidMachineID, got %v", err)
		}
	})

	t.Run("unknown machine", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		machineRepo := mock_interfaces.NewMockIMachineRepository(ctrl)
		uc := NewPricingUseCase(machineRepo, nil, nil)

		machineRepo.EXPECT().GetByID(gomock.Any(), "maq-x").Return(entities.Machine{}, nil)

		_, err := uc.Quote(context.Background(), "maq-x")
		if !errors.Is(err, ErrMachineNotFound) {
			t.Fatalf("expected ErrMachineNotFound, got %v", err)
		}
	})

	t.Run("idle active machine is available", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		machineRepo := mock_interfaces.NewMockIMachineRepository(ctrl)
		cycleRepo := mock_interfaces.NewMockICycleRepository(ctrl)
		quoter := mock_interfaces.NewMockIPriceQuoter(ctrl)
		uc := NewPricingUseCase(machineRepo, cycleRepo, quoter)

		machineRepo.EXPECT().GetByID(gomock.Any(), "maq-1").Return(machine, nil)
		quoter.EXPECT().PriceFor(gomock.Any(), machine).Return(int64(1200), nil)
		cycleRepo.EXPECT().GetOpenByMachineID(gomock.Any(), "maq-1").Return(entities.Cycle{}, nil)

		q, err := uc.Quote(context.Background(), "maq-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !q.Available || q.PriceCents != 1200 {
			t.Fatalf("unexpected quote %+v", q)
		}
	})

	t.Run("open cycle makes the machine busy and surfaces the eta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		machineRepo := mock_interfaces.NewMockIMachineRepository(ctrl)
		cycleRepo := mock_interfaces.NewMockICycleRepository(ctrl)
		quoter := mock_interfaces.NewMockIPriceQuoter(ctrl)
		uc := NewPricingUseCase(machineRepo, cycleRepo, quoter)

		eta := time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC)
		machineRepo.EXPECT().GetByID(gomock.Any(), "maq-1").Return(machine, nil)
		quoter.EXPECT().PriceFor(gomock.Any(), machine).Return(int64(1200), nil)
		cycleRepo.EXPECT().GetOpenByMachineID(gomock.Any(), "maq-1").Return(entities.Cycle{ID: "cyc-1", Status: entities.CycleStatusEmUso, EtaFreeAt: &eta}, nil)

		q, err := uc.Quote(context.Background(), "maq-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Available {
			t.Fatalf("expected busy machine, got %+v", q)
		}
		if q.EtaFreeAt == nil || !q.EtaFreeAt.Equal(eta) {
			t.Fatalf("expected eta %s, got %+v", eta, q.EtaFreeAt)
		}
	})

	t.Run("maintenance machine skips the cycle lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		machineRepo := mock_interfaces.NewMockIMachineRepository(ctrl)
		quoter := mock_interfaces.NewMockIPriceQuoter(ctrl)
		uc := NewPricingUseCase(machineRepo, nil, quoter)

		down := machine
		down.Status = entities.MachineStatusManutencao
		machineRepo.EXPECT().GetByID(gomock.Any(), "maq-1").Return(down, nil)
		quoter.EXPECT().PriceFor(gomock.Any(), down).Return(int64(1200), nil)

		q, err := uc.Quote(context.Background(), "maq-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Available {
			t.Fatalf("expected unavailable machine, got %+v", q)
		}
	})
}
