package handler

import (
	"errors"

	tradeapp "github.com/energyservice/backend/internal/application/trade"
	"github.com/energyservice/backend/internal/domain/shared"
	"github.com/energyservice/backend/internal/infrastructure/telemetry"
	"github.com/energyservice/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// OrderHandler handles order-related API endpoints
type OrderHandler struct {
	BaseHandler
	orderService *tradeapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *tradeapp.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// CreateOrderRequest is the body of POST /orders.
// Quantities accept JSON numbers or decimal strings.
type CreateOrderRequest struct {
	CustomerID int64                    `json:"customer_id"`
	ActiveDate string                   `json:"active_date" binding:"omitempty,datetime=2006-01-02"`
	Items      []CreateOrderItemRequest `json:"items"`
}

// CreateOrderItemRequest is one requested order line
type CreateOrderItemRequest struct {
	ProductID               int64           `json:"product_id"`
	TariffID                int64           `json:"tariff_id"`
	EstimatedYearlyQuantity decimal.Decimal `json:"estimated_yearly_quantity"`
}

// Create creates an order and responds with its invoice.
// POST /api/v1/orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	if req.CustomerID > 0 {
		h.bindCustomer(c, req.CustomerID)
	}

	appReq := tradeapp.CreateOrderRequest{
		CustomerID: req.CustomerID,
		Items:      make([]tradeapp.CreateOrderItemInput, len(req.Items)),
	}
	if req.ActiveDate != "" {
		activeDate, err := shared.ParseDate(req.ActiveDate)
		if err != nil {
			h.BadRequest(c, dto.ErrCodeInvalidDate, "active_date must be formatted as yyyy-mm-dd")
			return
		}
		appReq.ActiveDate = &activeDate
	}
	for i, item := range req.Items {
		appReq.Items[i] = tradeapp.CreateOrderItemInput{
			ProductID:               item.ProductID,
			TariffID:                item.TariffID,
			EstimatedYearlyQuantity: item.EstimatedYearlyQuantity,
		}
	}

	ctx, span := telemetry.StartServiceSpan(c.Request.Context(), "order", "create",
		telemetry.SpanAttrCustomerID, req.CustomerID,
		telemetry.SpanAttrItemCount, len(req.Items),
	)
	defer span.End()

	invoice, err := h.orderService.CreateOrder(ctx, appReq)
	if err != nil {
		var de *shared.DomainError
		if errors.As(err, &de) {
			telemetry.SetAttributes(span, telemetry.SpanAttrErrorCode, de.Code)
		}
		telemetry.RecordError(span, err)
		h.HandleDomainError(c, err)
		return
	}

	telemetry.SetAttributes(span,
		telemetry.SpanAttrOrderID, invoice.OrderID,
		telemetry.SpanAttrOrderNumber, invoice.OrderNumber,
		telemetry.SpanAttrActiveDate, invoice.ActiveDate,
	)
	h.Created(c, invoice)
}
