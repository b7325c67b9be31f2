package models

import (
	"github.com/energyservice/backend/internal/domain/partner"
)

// CustomerModel is the persistence model for the Customer domain entity.
type CustomerModel struct {
	BaseModel
	Name        string  `gorm:"type:varchar(200);not null;index"`
	VatID       *string `gorm:"column:vat_id;type:varchar(11)"`
	City        string  `gorm:"type:varchar(200);not null"`
	ZipCode     string  `gorm:"type:varchar(5);not null"`
	Address     string  `gorm:"type:varchar(400);not null"`
	Email       *string `gorm:"type:varchar(320);uniqueIndex:ux_customers_email"`
	Phone       *string `gorm:"type:varchar(32)"`
	Description *string `gorm:"type:varchar(500)"`
	Active      bool    `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *partner.Customer {
	return &partner.Customer{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		VatID:       deref(m.VatID),
		City:        m.City,
		ZipCode:     m.ZipCode,
		Address:     m.Address,
		Email:       deref(m.Email),
		Phone:       deref(m.Phone),
		Description: deref(m.Description),
		Active:      m.Active,
	}
}

// FromDomain populates the persistence model from a domain Customer entity.
func (m *CustomerModel) FromDomain(c *partner.Customer) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.VatID = nullable(c.VatID)
	m.City = c.City
	m.ZipCode = c.ZipCode
	m.Address = c.Address
	m.Email = nullable(c.Email)
	m.Phone = nullable(c.Phone)
	m.Description = nullable(c.Description)
	m.Active = c.Active
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer entity.
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}
