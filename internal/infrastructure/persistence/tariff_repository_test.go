package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/energyservice/backend/internal/domain/shared"
	"github.com/energyservice/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func findTariff(t *testing.T, db *gorm.DB, name string) models.TariffModel {
	var m models.TariffModel
	require.NoError(t, db.Where("name = ?", name).First(&m).Error)
	return m
}

func TestGormTariffRepository_FindEffective_Query(t *testing.T) {
	db, mock, mockDB := newMockDatabase(t)
	defer mockDB.Close()
	repo := NewGormTariffRepository(db.DB)
	asOf := date(2025, 3, 7)

	rows := sqlmock.NewRows([]string{"id", "product_id", "name", "unit_id", "effective_from", "effective_to", "base_monthly", "price_per_unit", "active"}).
		AddRow(3, 1, "Electricity Basic 2025", 2, date(2025, 1, 1), date(2025, 12, 31), "9.90", "0.3200", true)
	mock.ExpectQuery(`SELECT \* FROM "tariffs" WHERE \(id = \$1 AND product_id = \$2 AND active = \$3\) AND \(effective_from <= \$4 AND effective_to > \$5\) ORDER BY id ASC LIMIT .*`).
		WithArgs(int64(3), int64(1), true, asOf, asOf, 1).
		WillReturnRows(rows)
	mock.ExpectQuery(`SELECT \* FROM "units" WHERE "units"."id" = \$1`).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(2, "kWh"))

	tariff, err := repo.FindEffective(context.Background(), 3, 1, asOf.Add(15*time.Hour))

	require.NoError(t, err)
	assert.Equal(t, int64(3), tariff.ID)
	require.NotNil(t, tariff.Unit)
	assert.Equal(t, "kWh", tariff.Unit.Name)
	assert.True(t, tariff.BaseMonthly.Equal(decimal.RequireFromString("9.90")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormTariffRepository_FindEffective(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	require.NoError(t, SeedReferenceData(ctx, db))
	repo := NewGormTariffRepository(db)

	basic := findTariff(t, db, "Electricity Basic 2025")
	gas := findTariff(t, db, "Gas Basic 2025")

	tests := []struct {
		name      string
		tariffID  int64
		productID int64
		asOf      time.Time
		found     bool
	}{
		{"first day of interval resolves", basic.ID, basic.ProductID, date(2025, 1, 1), true},
		{"last covered day resolves", basic.ID, basic.ProductID, date(2025, 12, 30), true},
		{"effective_to is exclusive", basic.ID, basic.ProductID, date(2025, 12, 31), false},
		{"day before interval", basic.ID, basic.ProductID, date(2024, 12, 31), false},
		{"tariff of another product", gas.ID, basic.ProductID, date(2025, 3, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tariff, err := repo.FindEffective(ctx, tt.tariffID, tt.productID, tt.asOf)
			if !tt.found {
				assert.ErrorIs(t, err, shared.ErrNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.tariffID, tariff.ID)
			require.NotNil(t, tariff.Unit)
			assert.Equal(t, "kWh", tariff.Unit.Name)
			assert.True(t, tariff.PricePerUnit.Equal(decimal.RequireFromString("0.32")))
			assert.Equal(t, date(2025, 1, 1), tariff.EffectiveFrom)
		})
	}

	t.Run("inactive versions never resolve", func(t *testing.T) {
		require.NoError(t, db.Model(&models.TariffModel{}).Where("id = ?", basic.ID).Update("active", false).Error)
		_, err := repo.FindEffective(ctx, basic.ID, basic.ProductID, date(2025, 6, 1))
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormTariffRepository_FindByProduct(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	require.NoError(t, SeedReferenceData(ctx, db))
	repo := NewGormTariffRepository(db)

	basic := findTariff(t, db, "Electricity Basic 2025")

	all, err := repo.FindByProduct(ctx, basic.ProductID, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Electricity Basic 2025", all[0].Name)
	assert.Equal(t, "Electricity Pre 2025", all[1].Name)

	outside := date(2026, 1, 15)
	none, err := repo.FindByProduct(ctx, basic.ProductID, &outside)
	require.NoError(t, err)
	assert.Empty(t, none)
}
