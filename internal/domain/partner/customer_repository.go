package partner

import (
	"context"

	"github.com/energyservice/backend/internal/domain/shared"
)

// CustomerRepository defines the interface for customer persistence.
// Methods without an IncludingInactive suffix only see active customers.
type CustomerRepository interface {
	// FindByID finds an active customer by its ID
	FindByID(ctx context.Context, id int64) (*Customer, error)

	// FindByIDIncludingInactive finds a customer by ID regardless of its active flag
	FindByIDIncludingInactive(ctx context.Context, id int64) (*Customer, error)

	// FindByName finds the first active customer with the given name
	FindByName(ctx context.Context, name string) (*Customer, error)

	// FindByNameIncludingInactive finds the first customer with the given name
	FindByNameIncludingInactive(ctx context.Context, name string) (*Customer, error)

	// FindAll lists customers; filter.IncludeInactive bypasses the active predicate
	FindAll(ctx context.Context, filter shared.Filter) ([]Customer, error)

	// ExistsByEmail reports whether any customer other than excludeID uses the email
	ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error)

	// Save creates or updates a customer
	Save(ctx context.Context, customer *Customer) error
}
