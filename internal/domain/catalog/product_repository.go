package catalog

import (
	"context"
	"time"

	"github.com/energyservice/backend/internal/domain/shared"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds an active product by its ID
	FindByID(ctx context.Context, id int64) (*Product, error)

	// FindAll lists products; filter.IncludeInactive bypasses the active predicate
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)
}

// UnitRepository defines read access to measurement units
type UnitRepository interface {
	FindByID(ctx context.Context, id int64) (*Unit, error)
	FindAll(ctx context.Context) ([]Unit, error)
}

// TariffRepository defines the interface for tariff persistence
type TariffRepository interface {
	// FindEffective finds the active tariff with the given id that belongs to
	// productID and whose validity interval covers date. The unit is loaded.
	// Returns shared.ErrNotFound when no version matches.
	FindEffective(ctx context.Context, tariffID, productID int64, date time.Time) (*Tariff, error)

	// FindByProduct lists active tariffs of a product ordered by name and
	// effective_from. A non-nil date limits the result to versions covering it.
	FindByProduct(ctx context.Context, productID int64, date *time.Time) ([]Tariff, error)
}
