package billing

import "github.com/shopspring/decimal"

const (
	// QuantityScale is the number of decimal places kept for monthly quantities
	QuantityScale = 3
	// MoneyScale is the number of decimal places kept for monetary amounts
	MoneyScale = 2
)

var monthsPerYear = decimal.NewFromInt(12)

// MonthlyQuantity converts a yearly consumption estimate into the monthly
// billing quantity. yearly must be non-negative; callers validate.
func MonthlyQuantity(yearly decimal.Decimal) decimal.Decimal {
	return yearly.Div(monthsPerYear).Round(QuantityScale)
}

// LineMonthlyPrice returns base + perUnit*monthlyQty rounded once to cents
func LineMonthlyPrice(baseMonthly, pricePerUnit, monthlyQty decimal.Decimal) decimal.Decimal {
	return baseMonthly.Add(pricePerUnit.Mul(monthlyQty)).Round(MoneyScale)
}
