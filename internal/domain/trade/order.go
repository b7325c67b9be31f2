package trade

import (
	"strings"
	"time"

	"github.com/energyservice/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

const (
	// OrderNumberPrefix starts every generated order number
	OrderNumberPrefix = "ORD-"
	// MaxOrderNumberLength matches the order_number column width
	MaxOrderNumberLength = 40

	orderNumberLayout = "20060102150405.000"
	descriptionLayout = "2006-01-02 15:04:05"
)

var _ shared.SoftDeletable = (*Order)(nil)

// Order is a customer's request for one or more products, priced by the
// tariff versions effective on ActiveDate. Orders are written once with all
// their items and never amended; they can only be deactivated.
type Order struct {
	shared.BaseEntity
	CustomerID  int64
	OrderNumber string
	OrderDate   time.Time
	ActiveDate  time.Time
	Description string
	Active      bool
	Items       []OrderItem
}

// OrderItem is one line of an order. It references the exact tariff version
// that was resolved, not just the product.
type OrderItem struct {
	ID                       int64
	OrderID                  int64
	ProductID                int64
	TariffID                 int64
	EstimatedMonthlyQuantity decimal.Decimal
}

// GenerateOrderNumber derives an order number from a timestamp with
// millisecond precision. Uniqueness is enforced by storage, not here.
func GenerateOrderNumber(now time.Time) string {
	return OrderNumberPrefix + strings.Replace(now.UTC().Format(orderNumberLayout), ".", "", 1)
}

// NewOrder creates an active order for customerID stamped with now.
// activeDate is the date tariffs were resolved for.
func NewOrder(customerID int64, activeDate, now time.Time) (*Order, error) {
	if customerID == 0 {
		return nil, shared.NewInvalidInputError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if activeDate.IsZero() {
		return nil, shared.NewInvalidInputError("INVALID_ACTIVE_DATE", "Active date cannot be empty")
	}
	now = now.UTC()
	return &Order{
		BaseEntity:  shared.BaseEntity{CreatedAt: now},
		CustomerID:  customerID,
		OrderNumber: GenerateOrderNumber(now),
		OrderDate:   shared.DateOf(now),
		ActiveDate:  shared.DateOf(activeDate),
		Description: "Created on " + now.Format(descriptionLayout) + "Z",
		Active:      true,
	}, nil
}

// AddItem appends a line for a resolved tariff
func (o *Order) AddItem(productID, tariffID int64, monthlyQty decimal.Decimal) error {
	if productID == 0 {
		return shared.NewInvalidInputError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if tariffID == 0 {
		return shared.NewInvalidInputError("INVALID_TARIFF", "Tariff ID cannot be empty")
	}
	if monthlyQty.IsNegative() {
		return shared.NewInvalidInputError("INVALID_QUANTITY", "Monthly quantity cannot be negative")
	}
	o.Items = append(o.Items, OrderItem{
		OrderID:                  o.ID,
		ProductID:                productID,
		TariffID:                 tariffID,
		EstimatedMonthlyQuantity: monthlyQty,
	})
	return nil
}

// ItemCount returns the number of lines
func (o *Order) ItemCount() int {
	return len(o.Items)
}

// IsActive returns true if the order is active
func (o *Order) IsActive() bool {
	return o.Active
}

// Deactivate marks the order inactive
func (o *Order) Deactivate() {
	o.Active = false
}
