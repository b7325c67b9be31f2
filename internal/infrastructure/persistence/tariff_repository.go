package persistence

import (
	"context"
	"time"

	"github.com/energyservice/backend/internal/domain/catalog"
	"github.com/energyservice/backend/internal/domain/shared"
	"github.com/energyservice/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormTariffRepository implements TariffRepository using GORM
type GormTariffRepository struct {
	db *gorm.DB
}

// NewGormTariffRepository creates a new GormTariffRepository
func NewGormTariffRepository(db *gorm.DB) *GormTariffRepository {
	return &GormTariffRepository{db: db}
}

// FindEffective finds the active version with the given id owned by
// productID whose interval [effective_from, effective_to) covers date.
// The id is the primary key so at most one row matches; the explicit
// ordering keeps the choice stable should that ever change.
func (r *GormTariffRepository) FindEffective(ctx context.Context, tariffID, productID int64, date time.Time) (*catalog.Tariff, error) {
	d := shared.DateOf(date)
	var model models.TariffModel
	if err := r.db.WithContext(ctx).
		Preload("Unit").
		Where("id = ? AND product_id = ? AND active = ?", tariffID, productID, true).
		Where("effective_from <= ? AND effective_to > ?", d, d).
		Order("id ASC").
		Take(&model).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return model.ToDomain(), nil
}

// FindByProduct lists the active tariff versions of a product ordered by
// name and effective_from. A non-nil date keeps only versions covering it.
func (r *GormTariffRepository) FindByProduct(ctx context.Context, productID int64, date *time.Time) ([]catalog.Tariff, error) {
	query := r.db.WithContext(ctx).
		Preload("Unit").
		Where("product_id = ? AND active = ?", productID, true)
	if date != nil {
		d := shared.DateOf(*date)
		query = query.Where("effective_from <= ? AND effective_to > ?", d, d)
	}

	var tariffModels []models.TariffModel
	if err := query.Order("name ASC, effective_from ASC").Find(&tariffModels).Error; err != nil {
		return nil, err
	}

	tariffs := make([]catalog.Tariff, len(tariffModels))
	for i := range tariffModels {
		tariffs[i] = *tariffModels[i].ToDomain()
	}
	return tariffs, nil
}
