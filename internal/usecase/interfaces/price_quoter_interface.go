package interfaces

import (
	"context"

	"lavaja/internal/domain/entities"
)

// IPriceQuoter abstracts the upstream pricing provider. The shipped
// implementation reads the machine record's price; richer deployments plug a
// remote quote service here.
type IPriceQuoter interface {
	PriceFor(ctx context.Context, m entities.Machine) (priceCents int64, err error)
}
