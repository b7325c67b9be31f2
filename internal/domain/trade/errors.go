package trade

import "github.com/energyservice/backend/internal/domain/shared"

// ErrOrderNumberTaken is returned when a generated order number collides
// with an existing one. It is not retried.
var ErrOrderNumberTaken = shared.NewConflictError("ORDER_NUMBER_CONFLICT", "Order number already exists")

// ErrCreateOrderFailed reports an unexpected failure while writing an order
var ErrCreateOrderFailed = shared.NewInternalError("CREATE_ORDER_FAILED", "Create order failed.")
