package billing

import (
	"time"

	"github.com/energyservice/backend/internal/domain/catalog"
	"github.com/energyservice/backend/internal/domain/partner"
	"github.com/energyservice/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// MissingValue is shown for optional customer fields that are empty
const MissingValue = "-"

// Invoice is the computed, never persisted, summary of a new order
type Invoice struct {
	OrderID         int64
	OrderNumber     string
	InvoiceDate     time.Time
	ActiveDate      time.Time
	CustomerID      int64
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Items           []InvoiceItem
	Total           decimal.Decimal
}

// InvoiceItem is one priced order line
type InvoiceItem struct {
	OrderItemID              int64
	ProductID                int64
	ProductName              string
	UnitName                 string
	TariffID                 int64
	TariffName               string
	EstimatedMonthlyQuantity decimal.Decimal
	MonthlyPrice             decimal.Decimal
}

// InvoiceLine pairs a persisted order item with the product and tariff it
// was resolved against
type InvoiceLine struct {
	Item    trade.OrderItem
	Product *catalog.Product
	Tariff  *catalog.Tariff
}

// BuildInvoice assembles the invoice for order. Line prices are recomputed
// from the stored monthly quantity so the displayed price always matches
// it; the total is the plain sum of the rounded line prices.
func BuildInvoice(order *trade.Order, customer *partner.Customer, lines []InvoiceLine) *Invoice {
	inv := &Invoice{
		OrderID:         order.ID,
		OrderNumber:     order.OrderNumber,
		InvoiceDate:     order.OrderDate,
		ActiveDate:      order.ActiveDate,
		CustomerID:      customer.ID,
		CustomerName:    customer.Name,
		CustomerPhone:   orPlaceholder(customer.Phone),
		CustomerAddress: orPlaceholder(customer.Address),
		Items:           make([]InvoiceItem, 0, len(lines)),
		Total:           decimal.Zero,
	}

	for _, line := range lines {
		qty := line.Item.EstimatedMonthlyQuantity
		price := LineMonthlyPrice(line.Tariff.BaseMonthly, line.Tariff.PricePerUnit, qty)

		unitName := MissingValue
		if line.Tariff.Unit != nil {
			unitName = line.Tariff.Unit.Name
		}

		inv.Items = append(inv.Items, InvoiceItem{
			OrderItemID:              line.Item.ID,
			ProductID:                line.Product.ID,
			ProductName:              line.Product.Name,
			UnitName:                 unitName,
			TariffID:                 line.Tariff.ID,
			TariffName:               line.Tariff.Name,
			EstimatedMonthlyQuantity: qty,
			MonthlyPrice:             price,
		})
		inv.Total = inv.Total.Add(price)
	}

	return inv
}

func orPlaceholder(s string) string {
	if s == "" {
		return MissingValue
	}
	return s
}
