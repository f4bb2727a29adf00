package pricing

import (
	"context"
	"errors"

	"lavaja/internal/domain/entities"
)

var ErrMachineWithoutPrice = errors.New("machine has no configured price")

// MachinePriceQuoter answers quotes from the machine record itself. It is the
// default stand-in for the upstream pricing provider; deployments with
// dynamic pricing swap another IPriceQuoter in at wiring time.

type MachinePriceQuoter struct{}

func NewMachinePriceQuoter() *MachinePriceQuoter {
	return &MachinePriceQuoter{}
}

func (q *MachinePriceQuoter) PriceFor(_ context.Context, m entities.Machine) (int64, error) {
	if m.PriceCents <= 0 {
		return 0, ErrMachineWithoutPrice
	}
	return m.PriceCents, nil
}
