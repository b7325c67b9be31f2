package catalog

import (
	"github.com/energyservice/backend/internal/domain/catalog"
	"github.com/energyservice/backend/internal/domain/shared"
)

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
}

// TariffResponse represents a tariff version in API responses
type TariffResponse struct {
	ID            int64  `json:"id"`
	ProductID     int64  `json:"product_id"`
	Name          string `json:"name"`
	UnitID        int64  `json:"unit_id"`
	UnitName      string `json:"unit_name"`
	EffectiveFrom string `json:"effective_from"`
	EffectiveTo   string `json:"effective_to"`
	BaseMonthly   string `json:"base_monthly"`
	PricePerUnit  string `json:"price_per_unit"`
	Description   string `json:"description,omitempty"`
}

// ToProductResponse converts a domain product to a response DTO
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Active:      p.Active,
	}
}

// ToTariffResponse converts a domain tariff to a response DTO
func ToTariffResponse(t *catalog.Tariff) TariffResponse {
	resp := TariffResponse{
		ID:            t.ID,
		ProductID:     t.ProductID,
		Name:          t.Name,
		UnitID:        t.UnitID,
		EffectiveFrom: shared.FormatDate(t.EffectiveFrom),
		EffectiveTo:   shared.FormatDate(t.EffectiveTo),
		BaseMonthly:   t.BaseMonthly.StringFixed(2),
		PricePerUnit:  t.PricePerUnit.StringFixed(4),
		Description:   t.Description,
	}
	if t.Unit != nil {
		resp.UnitName = t.Unit.Name
	}
	return resp
}
