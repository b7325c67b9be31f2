package partner

import "github.com/energyservice/backend/internal/domain/shared"

var (
	ErrCustomerNotFound      = shared.NewNotFoundError("CUSTOMER_NOT_FOUND", "Customer not found!")
	ErrCustomerAlreadyExists = shared.NewConflictError("CUSTOMER_ALREADY_EXISTS", "Customer already exists!")
	ErrCustomerEmailTaken    = shared.NewConflictError("CUSTOMER_EMAIL_TAKEN", "Customer email is already in use")
)
