package catalog

import (
	"strings"

	"github.com/energyservice/backend/internal/domain/shared"
)

var _ shared.SoftDeletable = (*Product)(nil)

// Product is a billable commodity such as electricity or gas
type Product struct {
	shared.BaseEntity
	Name        string
	Description string
	Active      bool
}

// NewProduct creates a new active product
func NewProduct(name, description string) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewInvalidInputError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewInvalidInputError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	if len(description) > 500 {
		return nil, shared.NewInvalidInputError("INVALID_DESCRIPTION", "Product description cannot exceed 500 characters")
	}
	return &Product{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: strings.TrimSpace(description),
		Active:      true,
	}, nil
}

// IsActive returns true if the product can be ordered
func (p *Product) IsActive() bool {
	return p.Active
}

// Deactivate marks the product inactive
func (p *Product) Deactivate() {
	p.Active = false
}
