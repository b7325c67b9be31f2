package trade

import (
	"context"
	"time"

	"github.com/energyservice/backend/internal/domain/catalog"
	"github.com/energyservice/backend/internal/domain/partner"
	"github.com/energyservice/backend/internal/domain/shared"
	"github.com/energyservice/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockCustomerRepository is a mock implementation of partner.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id int64) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByIDIncludingInactive(ctx context.Context, id int64) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByName(ctx context.Context, name string) (*partner.Customer, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByNameIncludingInactive(ctx context.Context, name string) (*partner.Customer, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Customer, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id int64) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

// MockTariffRepository is a mock implementation of catalog.TariffRepository
type MockTariffRepository struct {
	mock.Mock
}

func (m *MockTariffRepository) FindEffective(ctx context.Context, tariffID, productID int64, date time.Time) (*catalog.Tariff, error) {
	args := m.Called(ctx, tariffID, productID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Tariff), args.Error(1)
}

func (m *MockTariffRepository) FindByProduct(ctx context.Context, productID int64, date *time.Time) ([]catalog.Tariff, error) {
	args := m.Called(ctx, productID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Tariff), args.Error(1)
}

// MockOrderRepository is a mock implementation of trade.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *trade.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

// MockOrderMetrics records metric calls
type MockOrderMetrics struct {
	mock.Mock
}

func (m *MockOrderMetrics) RecordOrderCreated(ctx context.Context, itemCount int, total decimal.Decimal) {
	m.Called(ctx, itemCount, total)
}

func (m *MockOrderMetrics) RecordTariffResolutionFailure(ctx context.Context, reason string) {
	m.Called(ctx, reason)
}

// fakeTransactionScope runs fn directly against the given repositories and
// counts executions.
type fakeTransactionScope struct {
	orderRepo  trade.OrderRepository
	tariffRepo catalog.TariffRepository
	executions int
}

func (s *fakeTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	s.executions++
	return fn(s)
}

func (s *fakeTransactionScope) OrderRepo() trade.OrderRepository     { return s.orderRepo }
func (s *fakeTransactionScope) TariffRepo() catalog.TariffRepository { return s.tariffRepo }
