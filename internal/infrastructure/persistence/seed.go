package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/energyservice/backend/internal/domain/catalog"
	"github.com/energyservice/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type seedTariff struct {
	product      string
	unit         string
	name         string
	baseMonthly  string
	pricePerUnit string
	description  string
}

var seedTariffs = []seedTariff{
	{"Electricity", "kWh", "Electricity Basic 2025", "9.90", "0.3200", "Standard electricity tariff for 2025"},
	{"Electricity", "kWh", "Electricity Pre 2025", "14.90", "0.2900", "Premium electricity tariff for 2025"},
	{"Natural Gas", "m³", "Gas Basic 2025", "8.50", "0.0700", "Standard gas tariff for 2025"},
	{"Natural Gas", "m³", "Gas Pre 2025", "11.50", "0.0500", "Premium gas tariff for 2025"},
}

var (
	seedEffectiveFrom = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	seedEffectiveTo   = time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
)

// SeedReferenceData inserts the demo units, products, tariffs and customer.
// Rows are matched by their natural keys so running it twice is a no-op.
func SeedReferenceData(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		units := map[string]int64{}
		for _, name := range []string{"kWh", "m³"} {
			unit := models.UnitModel{Name: name}
			if err := tx.Where(models.UnitModel{Name: name}).FirstOrCreate(&unit).Error; err != nil {
				return fmt.Errorf("seed unit %s: %w", name, err)
			}
			units[name] = unit.ID
		}

		products := map[string]int64{}
		for _, p := range []struct{ name, description string }{
			{"Electricity", "General electrical energy supply"},
			{"Natural Gas", "Household gas supply"},
		} {
			description := p.description
			product := models.ProductModel{Name: p.name, Description: &description, Active: true}
			if err := tx.Where("name = ?", p.name).FirstOrCreate(&product).Error; err != nil {
				return fmt.Errorf("seed product %s: %w", p.name, err)
			}
			products[p.name] = product.ID
		}

		for _, s := range seedTariffs {
			t, err := catalog.NewTariff(catalog.TariffSpec{
				ProductID:     products[s.product],
				Name:          s.name,
				UnitID:        units[s.unit],
				EffectiveFrom: seedEffectiveFrom,
				EffectiveTo:   seedEffectiveTo,
				BaseMonthly:   decimal.RequireFromString(s.baseMonthly),
				PricePerUnit:  decimal.RequireFromString(s.pricePerUnit),
				Description:   s.description,
			})
			if err != nil {
				return fmt.Errorf("seed tariff %s: %w", s.name, err)
			}
			var tariff models.TariffModel
			tariff.FromDomain(t)
			if err := tx.Where("product_id = ? AND name = ? AND effective_from = ?",
				tariff.ProductID, tariff.Name, tariff.EffectiveFrom).
				FirstOrCreate(&tariff).Error; err != nil {
				return fmt.Errorf("seed tariff %s: %w", s.name, err)
			}
		}

		vatID, email, phone, description := "DE123456789", "info@mahi.de", "+49 12 1234567", "A customer from Wemding"
		customer := models.CustomerModel{
			Name:        "Mahi GmbH",
			VatID:       &vatID,
			City:        "Wemding",
			ZipCode:     "86650",
			Address:     "Musterstrasse 1",
			Email:       &email,
			Phone:       &phone,
			Description: &description,
			Active:      true,
		}
		if err := tx.Where("name = ?", customer.Name).FirstOrCreate(&customer).Error; err != nil {
			return fmt.Errorf("seed customer: %w", err)
		}
		return nil
	})
}
