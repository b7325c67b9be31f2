package catalog

import (
	"strings"
	"time"

	"github.com/energyservice/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

var _ shared.SoftDeletable = (*Tariff)(nil)

// Tariff is one version of a product's price, valid on the half-open date
// interval [EffectiveFrom, EffectiveTo). Versions of the same tariff share a
// name and differ in their validity windows.
type Tariff struct {
	shared.BaseEntity
	ProductID     int64
	Name          string
	UnitID        int64
	Unit          *Unit
	EffectiveFrom time.Time
	EffectiveTo   time.Time
	BaseMonthly   decimal.Decimal
	PricePerUnit  decimal.Decimal
	Description   string
	Active        bool
}

// TariffSpec carries the attributes of a new tariff version
type TariffSpec struct {
	ProductID     int64
	Name          string
	UnitID        int64
	EffectiveFrom time.Time
	EffectiveTo   time.Time
	BaseMonthly   decimal.Decimal
	PricePerUnit  decimal.Decimal
	Description   string
}

// NewTariff validates spec and creates an active tariff version
func NewTariff(spec TariffSpec) (*Tariff, error) {
	name := strings.TrimSpace(spec.Name)
	if name == "" {
		return nil, shared.NewInvalidInputError("INVALID_NAME", "Tariff name cannot be empty")
	}
	if spec.ProductID == 0 {
		return nil, shared.NewInvalidInputError("INVALID_PRODUCT", "Tariff must belong to a product")
	}
	if spec.UnitID == 0 {
		return nil, shared.NewInvalidInputError("INVALID_UNIT", "Tariff must reference a unit")
	}
	from, to := shared.DateOf(spec.EffectiveFrom), shared.DateOf(spec.EffectiveTo)
	if !from.Before(to) {
		return nil, shared.NewInvalidInputError("INVALID_VALIDITY", "Tariff effective_from must be before effective_to")
	}
	if spec.BaseMonthly.IsNegative() || spec.PricePerUnit.IsNegative() {
		return nil, shared.NewInvalidInputError("INVALID_PRICE", "Tariff prices cannot be negative")
	}
	return &Tariff{
		BaseEntity:    shared.NewBaseEntity(),
		ProductID:     spec.ProductID,
		Name:          name,
		UnitID:        spec.UnitID,
		EffectiveFrom: from,
		EffectiveTo:   to,
		BaseMonthly:   spec.BaseMonthly.Round(2),
		PricePerUnit:  spec.PricePerUnit.Round(4),
		Description:   spec.Description,
		Active:        true,
	}, nil
}

// Covers reports whether date falls inside [EffectiveFrom, EffectiveTo)
func (t *Tariff) Covers(date time.Time) bool {
	d := shared.DateOf(date)
	return !d.Before(shared.DateOf(t.EffectiveFrom)) && d.Before(shared.DateOf(t.EffectiveTo))
}

// IsActive returns true if the tariff is active
func (t *Tariff) IsActive() bool {
	return t.Active
}

// Deactivate marks the tariff inactive
func (t *Tariff) Deactivate() {
	t.Active = false
}
