package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/energyservice/backend/internal/domain/catalog"
	"github.com/energyservice/backend/internal/domain/shared"
)

// ProductService exposes read access to products and their tariffs
type ProductService struct {
	productRepo catalog.ProductRepository
	tariffRepo  catalog.TariffRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, tariffRepo catalog.TariffRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		tariffRepo:  tariffRepo,
	}
}

// ListProducts returns all active products
func (s *ProductService) ListProducts(ctx context.Context) ([]ProductResponse, error) {
	products, err := s.productRepo.FindAll(ctx, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}
	out := make([]ProductResponse, len(products))
	for i := range products {
		out[i] = ToProductResponse(&products[i])
	}
	return out, nil
}

// ListTariffs returns the active tariff versions of an active product.
// A non-nil date restricts the result to versions effective on it.
func (s *ProductService) ListTariffs(ctx context.Context, productID int64, date *time.Time) ([]TariffResponse, error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, catalog.ErrProductNotFound.WithData(map[string]any{"product_id": productID})
		}
		return nil, err
	}

	if date != nil {
		d := shared.DateOf(*date)
		date = &d
	}

	tariffs, err := s.tariffRepo.FindByProduct(ctx, productID, date)
	if err != nil {
		return nil, err
	}
	out := make([]TariffResponse, len(tariffs))
	for i := range tariffs {
		out[i] = ToTariffResponse(&tariffs[i])
	}
	return out, nil
}
