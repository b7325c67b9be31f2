package trade

import "context"

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// Create inserts the order and all of its items, assigning their IDs.
	// Callers needing atomicity run it inside a transaction scope.
	// A duplicate order number is reported as ErrOrderNumberTaken.
	Create(ctx context.Context, order *Order) error
}
