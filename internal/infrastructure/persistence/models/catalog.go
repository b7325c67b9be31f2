package models

import (
	"time"

	"github.com/energyservice/backend/internal/domain/catalog"
	"github.com/energyservice/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ProductModel is the persistence model for the Product domain entity.
type ProductModel struct {
	BaseModel
	Name        string  `gorm:"type:varchar(200);not null;index"`
	Description *string `gorm:"type:varchar(500)"`
	Active      bool    `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Description: deref(m.Description),
		Active:      m.Active,
	}
}

// FromDomain populates the persistence model from a domain Product entity.
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Name = p.Name
	m.Description = nullable(p.Description)
	m.Active = p.Active
}

// UnitModel is the persistence model for measurement units.
type UnitModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(10);not null;uniqueIndex:ux_units_name"`
}

// TableName returns the table name for GORM
func (UnitModel) TableName() string {
	return "units"
}

// ToDomain converts the persistence model to a domain Unit.
func (m *UnitModel) ToDomain() *catalog.Unit {
	return &catalog.Unit{ID: m.ID, Name: m.Name}
}

// TariffModel is the persistence model for one tariff version.
type TariffModel struct {
	BaseModel
	ProductID     int64           `gorm:"not null;index;uniqueIndex:ux_tariffs_product_name_from,priority:1"`
	Name          string          `gorm:"type:varchar(200);not null;uniqueIndex:ux_tariffs_product_name_from,priority:2"`
	UnitID        int64           `gorm:"not null;index"`
	Unit          *UnitModel      `gorm:"foreignKey:UnitID"`
	EffectiveFrom time.Time       `gorm:"type:date;not null;uniqueIndex:ux_tariffs_product_name_from,priority:3;check:chk_tariffs_validity,effective_from < effective_to"`
	EffectiveTo   time.Time       `gorm:"type:date;not null"`
	BaseMonthly   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PricePerUnit  decimal.Decimal `gorm:"type:decimal(10,4);not null"`
	Description   *string         `gorm:"type:varchar(500)"`
	Active        bool            `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (TariffModel) TableName() string {
	return "tariffs"
}

// ToDomain converts the persistence model to a domain Tariff entity.
// The unit is only set when it was preloaded.
func (m *TariffModel) ToDomain() *catalog.Tariff {
	t := &catalog.Tariff{
		BaseEntity:    m.BaseModel.ToDomain(),
		ProductID:     m.ProductID,
		Name:          m.Name,
		UnitID:        m.UnitID,
		EffectiveFrom: shared.DateOf(m.EffectiveFrom),
		EffectiveTo:   shared.DateOf(m.EffectiveTo),
		BaseMonthly:   m.BaseMonthly,
		PricePerUnit:  m.PricePerUnit,
		Description:   deref(m.Description),
		Active:        m.Active,
	}
	if m.Unit != nil {
		t.Unit = m.Unit.ToDomain()
	}
	return t
}

// FromDomain populates the persistence model from a domain Tariff entity.
func (m *TariffModel) FromDomain(t *catalog.Tariff) {
	m.FromDomainBaseEntity(t.BaseEntity)
	m.ProductID = t.ProductID
	m.Name = t.Name
	m.UnitID = t.UnitID
	m.EffectiveFrom = shared.DateOf(t.EffectiveFrom)
	m.EffectiveTo = shared.DateOf(t.EffectiveTo)
	m.BaseMonthly = t.BaseMonthly
	m.PricePerUnit = t.PricePerUnit
	m.Description = nullable(t.Description)
	m.Active = t.Active
}
