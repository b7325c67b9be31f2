package telemetry

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/metric"
)

// ErrMeterNil is returned when a metrics set is built without a meter.
var ErrMeterNil = errors.New("telemetry: meter cannot be nil")

// BillingMetrics records order and tariff resolution outcomes.
type BillingMetrics struct {
	ordersCreated      *Counter
	orderItems         *Counter
	resolutionFailures *Counter
	invoiceAmount      *Histogram
}

// NewBillingMetrics creates the billing instruments on meter.
func NewBillingMetrics(meter metric.Meter) (*BillingMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}

	ordersCreated, err := NewCounter(meter,
		"energy_order_created_total",
		"Total number of orders created",
		"{order}",
	)
	if err != nil {
		return nil, err
	}

	orderItems, err := NewCounter(meter,
		"energy_order_items_total",
		"Total number of order items written",
		"{item}",
	)
	if err != nil {
		return nil, err
	}

	resolutionFailures, err := NewCounter(meter,
		"energy_tariff_resolution_failures_total",
		"Total number of order lines rejected during tariff resolution",
		"{failure}",
	)
	if err != nil {
		return nil, err
	}

	invoiceAmount, err := NewHistogram(meter, HistogramOpts{
		Name:        "energy_order_invoice_amount",
		Description: "Monthly invoice total per created order",
		Unit:        "EUR",
		Boundaries:  InvoiceAmountBuckets,
	})
	if err != nil {
		return nil, err
	}

	return &BillingMetrics{
		ordersCreated:      ordersCreated,
		orderItems:         orderItems,
		resolutionFailures: resolutionFailures,
		invoiceAmount:      invoiceAmount,
	}, nil
}

// RecordOrderCreated counts a written order and records its invoice total.
func (m *BillingMetrics) RecordOrderCreated(ctx context.Context, itemCount int, total decimal.Decimal) {
	m.ordersCreated.Inc(ctx)
	m.orderItems.Add(ctx, int64(itemCount))
	m.invoiceAmount.Record(ctx, total.InexactFloat64())
}

// RecordTariffResolutionFailure counts a rejected line by error code.
func (m *BillingMetrics) RecordTariffResolutionFailure(ctx context.Context, reason string) {
	m.resolutionFailures.Inc(ctx, AttrFailureReason.String(reason))
}
