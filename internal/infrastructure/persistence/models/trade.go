package models

import (
	"time"

	"github.com/energyservice/backend/internal/domain/shared"
	"github.com/energyservice/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// OrderModel is the persistence model for the Order aggregate root.
type OrderModel struct {
	BaseModel
	CustomerID  int64            `gorm:"not null;index"`
	OrderNumber string           `gorm:"type:varchar(40);not null;uniqueIndex:ux_orders_order_number"`
	OrderDate   time.Time        `gorm:"type:date;not null"`
	ActiveDate  time.Time        `gorm:"type:date;not null"`
	Description *string          `gorm:"type:varchar(500)"`
	Active      bool             `gorm:"not null;index"`
	Items       []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// OrderModelFromDomain creates the order row without its items. Items are
// written separately once the order id is known.
func OrderModelFromDomain(o *trade.Order) *OrderModel {
	m := &OrderModel{
		CustomerID:  o.CustomerID,
		OrderNumber: o.OrderNumber,
		OrderDate:   shared.DateOf(o.OrderDate),
		ActiveDate:  shared.DateOf(o.ActiveDate),
		Description: nullable(o.Description),
		Active:      o.Active,
	}
	m.FromDomainBaseEntity(o.BaseEntity)
	return m
}

// OrderItemModel is the persistence model for an order line.
type OrderItemModel struct {
	ID                       int64           `gorm:"primaryKey;autoIncrement"`
	OrderID                  int64           `gorm:"not null;index"`
	ProductID                int64           `gorm:"not null;index"`
	TariffID                 int64           `gorm:"not null;index"`
	EstimatedMonthlyQuantity decimal.Decimal `gorm:"type:decimal(12,3);not null"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// OrderItemModelFromDomain creates a persistence model for an order line.
func OrderItemModelFromDomain(item trade.OrderItem) OrderItemModel {
	return OrderItemModel{
		ID:                       item.ID,
		OrderID:                  item.OrderID,
		ProductID:                item.ProductID,
		TariffID:                 item.TariffID,
		EstimatedMonthlyQuantity: item.EstimatedMonthlyQuantity,
	}
}
