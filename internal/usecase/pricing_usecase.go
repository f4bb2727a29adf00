package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"lavaja/internal/usecase/interfaces"
)

var (
	ErrInvalidMachineID = errors.New("invalid machine id")
	ErrMachineNotFound  = errors.New("machine not found")
)

// Quote is the pricing & availability answer for one machine: the current
// price and whether the machine holds a live/pending reservation.

type Quote struct {
	MachineID  string
	PriceCents int64
	Available  bool
	EtaFreeAt  *time.Time
}

// IPricingUseCase is consulted before any authorization.

type IPricingUseCase interface {
	Quote(ctx context.Context, machineID string) (Quote, error)
}

type PricingUseCase struct {
	machineRepo interfaces.IMachineRepository
	cycleRepo   interfaces.ICycleRepository
	quoter      interfaces.IPriceQuoter
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(machineRepo interfaces.IMachineRepository, cycleRepo interfaces.ICycleRepository, quoter interfaces.IPriceQuoter) *PricingUseCase {
	return &PricingUseCase{machineRepo: machineRepo, cycleRepo: cycleRepo, quoter: quoter}
}

func (u *PricingUseCase) Quote(ctx context.Context, machineID string) (Quote, error) {
	machineID = strings.TrimSpace(machineID)
	if machineID == "" {
		return Quote{}, ErrInvalidMachineID
	}

	m, err := u.machineRepo.GetByID(ctx, machineID)
	if err != nil {
		return Quote{}, err
	}
	if m.ID == "" {
		return Quote{}, ErrMachineNotFound
	}

	price, err := u.quoter.PriceFor(ctx, m)
	if err != nil {
		return Quote{}, err
	}

	q := Quote{MachineID: m.ID, PriceCents: price, Available: m.Active()}
	if !q.Available {
		return q, nil
	}

	open, err := u.cycleRepo.GetOpenByMachineID(ctx, machineID)
	if err != nil {
		return Quote{}, err
	}
	if open.ID != "" {
		q.Available = false
		q.EtaFreeAt = open.EtaFreeAt
	}
	return q, nil
}
