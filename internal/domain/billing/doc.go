// Package billing holds the pure pricing rules and the invoice view built
// from a freshly persisted order. Nothing in this package performs I/O.
//
// Quantities are carried with 3 decimal places and money with 2. Rounding
// is always half away from zero, which is what decimal.Decimal.Round does.
package billing
