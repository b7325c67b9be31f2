package trade

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/energyservice/backend/internal/domain/billing"
	"github.com/energyservice/backend/internal/domain/catalog"
	"github.com/energyservice/backend/internal/domain/partner"
	"github.com/energyservice/backend/internal/domain/shared"
	"github.com/energyservice/backend/internal/domain/trade"
	"go.uber.org/zap"
)

// OrderService creates orders and prices them into invoices
type OrderService struct {
	customers partner.CustomerRepository
	products  catalog.ProductRepository
	resolver  *catalog.TariffResolver
	txScope   TransactionScope
	metrics   OrderMetrics
	logger    *zap.Logger
	now       func() time.Time
}

// NewOrderService creates a new OrderService
func NewOrderService(
	customers partner.CustomerRepository,
	products catalog.ProductRepository,
	tariffs catalog.TariffRepository,
	txScope TransactionScope,
	logger *zap.Logger,
) *OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderService{
		customers: customers,
		products:  products,
		resolver:  catalog.NewTariffResolver(tariffs),
		txScope:   txScope,
		metrics:   noopOrderMetrics{},
		logger:    logger,
		now:       time.Now,
	}
}

// SetMetrics sets the business metrics sink
func (s *OrderService) SetMetrics(metrics OrderMetrics) {
	if metrics == nil {
		metrics = noopOrderMetrics{}
	}
	s.metrics = metrics
}

// SetClock overrides the time source
func (s *OrderService) SetClock(now func() time.Time) {
	s.now = now
}

// CreateOrder validates req, writes the order and its items atomically and
// returns the invoice. Validation stops at the first failing check and
// nothing is written unless every line resolves.
func (s *OrderService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*InvoiceResponse, error) {
	if len(req.Items) == 0 {
		return nil, shared.ErrInvalidInput.WithMessage("Order must contain at least one item")
	}
	for i, item := range req.Items {
		if item.EstimatedYearlyQuantity.IsNegative() {
			field := fmt.Sprintf("items[%d].estimated_yearly_quantity", i)
			return nil, shared.ErrInvalidInput.
				WithMessage("EstimatedYearlyQuantity must be >= 0.").
				WithData(map[string]any{"field": field})
		}
	}

	customer, err := s.customers.FindByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, partner.ErrCustomerNotFound.WithData(map[string]any{"customer_id": req.CustomerID})
		}
		return nil, s.internalFailure(err)
	}

	activeDate := shared.DateOf(s.now())
	if req.ActiveDate != nil {
		activeDate = shared.DateOf(*req.ActiveDate)
	}

	lines := make([]billing.InvoiceLine, 0, len(req.Items))
	for _, item := range req.Items {
		product, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, catalog.ErrProductNotFound.WithData(map[string]any{"product_id": item.ProductID})
			}
			return nil, s.internalFailure(err)
		}

		tariff, err := s.resolver.Resolve(ctx, product.ID, item.TariffID, activeDate)
		if err != nil {
			return nil, s.resolutionFailure(ctx, err)
		}

		lines = append(lines, billing.InvoiceLine{
			Item: trade.OrderItem{
				ProductID:                product.ID,
				TariffID:                 tariff.ID,
				EstimatedMonthlyQuantity: billing.MonthlyQuantity(item.EstimatedYearlyQuantity),
			},
			Product: product,
			Tariff:  tariff,
		})
	}

	order, err := trade.NewOrder(customer.ID, activeDate, s.now())
	if err != nil {
		return nil, err
	}
	for _, line := range lines {
		if err := order.AddItem(line.Item.ProductID, line.Item.TariffID, line.Item.EstimatedMonthlyQuantity); err != nil {
			return nil, err
		}
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		// Tariffs are checked again against the transaction's snapshot so a
		// version deactivated since validation cannot be written.
		resolver := catalog.NewTariffResolver(repos.TariffRepo())
		for _, line := range lines {
			if _, err := resolver.Resolve(ctx, line.Product.ID, line.Tariff.ID, activeDate); err != nil {
				return err
			}
		}
		return repos.OrderRepo().Create(ctx, order)
	})
	if err != nil {
		var de *shared.DomainError
		if errors.As(err, &de) && de.Kind == shared.KindConflict {
			if !errors.Is(err, trade.ErrOrderNumberTaken) {
				s.metrics.RecordTariffResolutionFailure(ctx, de.Code)
			}
			s.logger.Warn("order write rejected",
				zap.Int64("customer_id", customer.ID),
				zap.String("order_number", order.OrderNumber),
				zap.String("code", de.Code))
			return nil, err
		}
		return nil, s.internalFailure(err)
	}

	for i := range lines {
		lines[i].Item = order.Items[i]
	}
	invoice := billing.BuildInvoice(order, customer, lines)

	s.metrics.RecordOrderCreated(ctx, order.ItemCount(), invoice.Total)
	s.logger.Info("order created",
		zap.Int64("order_id", order.ID),
		zap.String("order_number", order.OrderNumber),
		zap.Int64("customer_id", customer.ID),
		zap.String("active_date", shared.FormatDate(activeDate)),
		zap.Int("items", order.ItemCount()),
		zap.String("total", invoice.Total.StringFixed(billing.MoneyScale)))

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

func (s *OrderService) resolutionFailure(ctx context.Context, err error) error {
	var de *shared.DomainError
	if errors.As(err, &de) && de.Kind == shared.KindConflict {
		s.metrics.RecordTariffResolutionFailure(ctx, de.Code)
		return err
	}
	return s.internalFailure(err)
}

func (s *OrderService) internalFailure(err error) error {
	s.logger.Error("create order failed", zap.Error(err))
	return trade.ErrCreateOrderFailed.Wrap(err)
}
