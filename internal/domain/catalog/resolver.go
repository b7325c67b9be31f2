package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/energyservice/backend/internal/domain/shared"
)

// Tariff resolution errors. Both are conflicts: the request names a tariff
// that exists in principle but cannot price the order on the active date.
var (
	ErrTariffNotEffective = shared.NewConflictError("TARIFF_NOT_EFFECTIVE", "No tariff version covers the requested date")
	ErrTariffUnitMissing  = shared.NewConflictError("TARIFF_UNIT_MISSING", "Tariff has no valid unit")
)

// TariffResolver picks the tariff version that applies to a product on a date
type TariffResolver struct {
	tariffs TariffRepository
}

// NewTariffResolver creates a resolver backed by repo
func NewTariffResolver(repo TariffRepository) *TariffResolver {
	return &TariffResolver{tariffs: repo}
}

// Resolve returns the tariff identified by tariffID if it belongs to
// productID and is effective on asOf. Lookup is by primary key, so at most
// one row can match; the repository still orders by id so a degraded store
// yields the lowest id deterministically.
func (r *TariffResolver) Resolve(ctx context.Context, productID, tariffID int64, asOf time.Time) (*Tariff, error) {
	asOf = shared.DateOf(asOf)

	tariff, err := r.tariffs.FindEffective(ctx, tariffID, productID, asOf)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, notEffective(tariffID, productID, asOf)
		}
		return nil, err
	}

	if tariff.ProductID != productID || !tariff.Covers(asOf) {
		return nil, notEffective(tariffID, productID, asOf)
	}

	if !tariff.Unit.Usable() {
		return nil, ErrTariffUnitMissing.
			WithMessage("Tariff %d has no valid Unit.", tariff.ID).
			WithData(map[string]any{"tariff_id": tariff.ID})
	}

	return tariff, nil
}

func notEffective(tariffID, productID int64, asOf time.Time) error {
	return ErrTariffNotEffective.
		WithMessage("No tariff version for (Id=%d) covering %s for Product %d.", tariffID, shared.FormatDate(asOf), productID).
		WithData(map[string]any{
			"tariff_id":   tariffID,
			"product_id":  productID,
			"active_date": shared.FormatDate(asOf),
		})
}
