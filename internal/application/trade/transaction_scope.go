package trade

import (
	"context"

	"github.com/energyservice/backend/internal/domain/catalog"
	"github.com/energyservice/backend/internal/domain/trade"
)

// TransactionScope runs the order write phase in one database transaction.
// If fn returns an error or ctx is cancelled the transaction is rolled back.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes the repositories bound to the current
// transaction. Tariff reads through TariffRepo see the same snapshot the
// order is written against.
type TransactionalRepositories interface {
	OrderRepo() trade.OrderRepository
	TariffRepo() catalog.TariffRepository
}
