package trade

import (
	"time"

	"github.com/energyservice/backend/internal/domain/billing"
	"github.com/energyservice/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest represents a request to create an order.
// ActiveDate selects the tariff versions; nil means today (UTC).
type CreateOrderRequest struct {
	CustomerID int64
	ActiveDate *time.Time
	Items      []CreateOrderItemInput
}

// CreateOrderItemInput represents one requested line
type CreateOrderItemInput struct {
	ProductID               int64
	TariffID                int64
	EstimatedYearlyQuantity decimal.Decimal
}

// InvoiceResponse is the invoice returned for a new order.
// Amounts are rendered with a fixed number of decimals.
type InvoiceResponse struct {
	OrderID           int64                 `json:"order_id"`
	OrderNumber       string                `json:"order_number"`
	InvoiceDate       string                `json:"invoice_date"`
	ActiveDate        string                `json:"active_date"`
	CustomerID        int64                 `json:"customer_id"`
	CustomerName      string                `json:"customer_name"`
	CustomerPhone     string                `json:"customer_phone"`
	CustomerAddress   string                `json:"customer_address"`
	InvoiceItems      []InvoiceItemResponse `json:"invoice_items"`
	InvoiceTotalPrice string                `json:"invoice_total_price"`
}

// InvoiceItemResponse represents one invoice line
type InvoiceItemResponse struct {
	OrderItemID              int64  `json:"order_item_id"`
	ProductID                int64  `json:"product_id"`
	ProductName              string `json:"product_name"`
	UnitName                 string `json:"unit_name"`
	TariffID                 int64  `json:"tariff_id"`
	TariffName               string `json:"tariff_name"`
	EstimatedMonthlyQuantity string `json:"estimated_monthly_quantity"`
	TariffMonthlyPrice       string `json:"tariff_monthly_price"`
}

// ToInvoiceResponse converts a domain invoice to its response DTO
func ToInvoiceResponse(inv *billing.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, len(inv.Items))
	for i, item := range inv.Items {
		items[i] = InvoiceItemResponse{
			OrderItemID:              item.OrderItemID,
			ProductID:                item.ProductID,
			ProductName:              item.ProductName,
			UnitName:                 item.UnitName,
			TariffID:                 item.TariffID,
			TariffName:               item.TariffName,
			EstimatedMonthlyQuantity: item.EstimatedMonthlyQuantity.StringFixed(billing.QuantityScale),
			TariffMonthlyPrice:       item.MonthlyPrice.StringFixed(billing.MoneyScale),
		}
	}
	return InvoiceResponse{
		OrderID:           inv.OrderID,
		OrderNumber:       inv.OrderNumber,
		InvoiceDate:       shared.FormatDate(inv.InvoiceDate),
		ActiveDate:        shared.FormatDate(inv.ActiveDate),
		CustomerID:        inv.CustomerID,
		CustomerName:      inv.CustomerName,
		CustomerPhone:     inv.CustomerPhone,
		CustomerAddress:   inv.CustomerAddress,
		InvoiceItems:      items,
		InvoiceTotalPrice: inv.Total.StringFixed(billing.MoneyScale),
	}
}
