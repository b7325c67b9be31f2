package partner

import (
	"time"

	"github.com/energyservice/backend/internal/domain/partner"
)

// CustomerRequest carries the attributes for creating or replacing a customer.
// The de_vat and zip5 validators are registered by the HTTP layer.
type CustomerRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	VatID       string `json:"vat_id" binding:"omitempty,max=32,de_vat"`
	City        string `json:"city" binding:"required,max=200"`
	ZipCode     string `json:"zip_code" binding:"required,zip5"`
	Address     string `json:"address" binding:"required,max=400"`
	Email       string `json:"email" binding:"omitempty,email,max=320"`
	Phone       string `json:"phone" binding:"omitempty,max=32"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

func (r CustomerRequest) details() partner.CustomerDetails {
	return partner.CustomerDetails{
		Name:        r.Name,
		VatID:       r.VatID,
		City:        r.City,
		ZipCode:     r.ZipCode,
		Address:     r.Address,
		Email:       r.Email,
		Phone:       r.Phone,
		Description: r.Description,
	}
}

// CustomerListFilter selects which customers a list call returns
type CustomerListFilter struct {
	IncludeInactive bool
	Search          string
	Page            int
	PageSize        int
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	VatID       string    `json:"vat_id,omitempty"`
	City        string    `json:"city"`
	ZipCode     string    `json:"zip_code"`
	Address     string    `json:"address"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Description string    `json:"description,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToCustomerResponse converts a domain customer to a response DTO
func ToCustomerResponse(c *partner.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		VatID:       c.VatID,
		City:        c.City,
		ZipCode:     c.ZipCode,
		Address:     c.Address,
		Email:       c.Email,
		Phone:       c.Phone,
		Description: c.Description,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
	}
}

// ToCustomerResponses converts a slice of customers
func ToCustomerResponses(customers []partner.Customer) []CustomerResponse {
	out := make([]CustomerResponse, len(customers))
	for i := range customers {
		out[i] = ToCustomerResponse(&customers[i])
	}
	return out
}
