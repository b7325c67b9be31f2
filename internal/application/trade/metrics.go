package trade

import (
	"context"

	"github.com/shopspring/decimal"
)

// OrderMetrics receives business measurements from order creation
type OrderMetrics interface {
	RecordOrderCreated(ctx context.Context, itemCount int, total decimal.Decimal)
	RecordTariffResolutionFailure(ctx context.Context, reason string)
}

type noopOrderMetrics struct{}

func (noopOrderMetrics) RecordOrderCreated(context.Context, int, decimal.Decimal) {}
func (noopOrderMetrics) RecordTariffResolutionFailure(context.Context, string)     {}
