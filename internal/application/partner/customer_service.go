package partner

import (
	"context"
	"errors"
	"strings"

	"github.com/energyservice/backend/internal/domain/partner"
	"github.com/energyservice/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// CustomerService handles customer-related business operations
type CustomerService struct {
	customerRepo partner.CustomerRepository
	logger       *zap.Logger
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository, logger *zap.Logger) *CustomerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CustomerService{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// List returns customers. Inactive customers are only included when the
// filter asks for them.
func (s *CustomerService) List(ctx context.Context, filter CustomerListFilter) ([]CustomerResponse, error) {
	f := shared.DefaultFilter()
	f.IncludeInactive = filter.IncludeInactive
	f.Search = strings.TrimSpace(filter.Search)
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}

	customers, err := s.customerRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	return ToCustomerResponses(customers), nil
}

// GetByID returns an active customer
func (s *CustomerService) GetByID(ctx context.Context, id int64) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, id)
	}
	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// GetByName returns the active customer with the given name
func (s *CustomerService) GetByName(ctx context.Context, name string) (*CustomerResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.ErrInvalidInput.WithMessage("Customer name is required")
	}
	customer, err := s.customerRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, partner.ErrCustomerNotFound.WithData(map[string]any{"name": name})
		}
		return nil, err
	}
	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// Create creates a new active customer. Names are unique across active and
// inactive customers; the conflict carries the existing customer so callers
// can see whether it was deactivated.
func (s *CustomerService) Create(ctx context.Context, req CustomerRequest) (*CustomerResponse, error) {
	customer, err := partner.NewCustomer(req.details())
	if err != nil {
		return nil, err
	}

	existing, err := s.customerRepo.FindByNameIncludingInactive(ctx, customer.Name)
	switch {
	case err == nil:
		return nil, partner.ErrCustomerAlreadyExists.WithData(ToCustomerResponse(existing))
	case !errors.Is(err, shared.ErrNotFound):
		return nil, err
	}

	if err := s.ensureEmailFree(ctx, customer.Email, 0); err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	s.logger.Info("customer created",
		zap.Int64("customer_id", customer.ID),
		zap.String("name", customer.Name))

	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// Update replaces the attributes of a customer, active or not
func (s *CustomerService) Update(ctx context.Context, id int64, req CustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByIDIncludingInactive(ctx, id)
	if err != nil {
		return nil, notFound(err, id)
	}

	previousName := customer.Name
	if err := customer.Update(req.details()); err != nil {
		return nil, err
	}

	if customer.Name != previousName {
		other, err := s.customerRepo.FindByNameIncludingInactive(ctx, customer.Name)
		switch {
		case err == nil && other.ID != customer.ID:
			return nil, partner.ErrCustomerAlreadyExists.WithData(ToCustomerResponse(other))
		case err != nil && !errors.Is(err, shared.ErrNotFound):
			return nil, err
		}
	}

	if err := s.ensureEmailFree(ctx, customer.Email, customer.ID); err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// Deactivate marks an active customer inactive. Customers are never deleted.
func (s *CustomerService) Deactivate(ctx context.Context, id int64) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, id)
	}

	customer.Deactivate()
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	s.logger.Info("customer deactivated", zap.Int64("customer_id", customer.ID))

	resp := ToCustomerResponse(customer)
	return &resp, nil
}

func (s *CustomerService) ensureEmailFree(ctx context.Context, email string, excludeID int64) error {
	if email == "" {
		return nil
	}
	taken, err := s.customerRepo.ExistsByEmail(ctx, email, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return partner.ErrCustomerEmailTaken.WithData(map[string]any{"email": email})
	}
	return nil
}

func notFound(err error, id int64) error {
	if errors.Is(err, shared.ErrNotFound) {
		return partner.ErrCustomerNotFound.WithData(map[string]any{"customer_id": id})
	}
	return err
}
