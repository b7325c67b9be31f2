package handler

import (
	"strings"

	partnerapp "github.com/energyservice/backend/internal/application/partner"
	"github.com/energyservice/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// CustomerHandler handles customer-related API endpoints
type CustomerHandler struct {
	BaseHandler
	customerService *partnerapp.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService *partnerapp.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

// List returns active customers.
// GET /api/v1/customers
func (h *CustomerHandler) List(c *gin.Context) {
	h.list(c, false)
}

// ListAll returns customers including inactive ones.
// GET /api/v1/customers/all
func (h *CustomerHandler) ListAll(c *gin.Context) {
	h.list(c, true)
}

func (h *CustomerHandler) list(c *gin.Context, includeInactive bool) {
	req := dto.DefaultListRequest()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	customers, err := h.customerService.List(c.Request.Context(), partnerapp.CustomerListFilter{
		IncludeInactive: includeInactive,
		Search:          req.Search,
		Page:            req.Page,
		PageSize:        req.PageSize,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, customers)
}

// GetByID returns an active customer.
// GET /api/v1/customers/:id
func (h *CustomerHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	h.bindCustomer(c, id)

	customer, err := h.customerService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, customer)
}

// GetByName returns the active customer with an exact name.
// GET /api/v1/customers/by-name?name=
func (h *CustomerHandler) GetByName(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))

	customer, err := h.customerService.GetByName(c.Request.Context(), name)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, customer)
}

// Create creates a customer.
// POST /api/v1/customers
func (h *CustomerHandler) Create(c *gin.Context) {
	var req partnerapp.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	customer, err := h.customerService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, customer)
}

// Update replaces a customer's attributes. Inactive customers can be updated
// and stay inactive.
// PUT /api/v1/customers/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	h.bindCustomer(c, id)

	var req partnerapp.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	customer, err := h.customerService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, customer)
}

// Delete deactivates a customer. The row is kept.
// DELETE /api/v1/customers/:id
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	h.bindCustomer(c, id)

	customer, err := h.customerService.Deactivate(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, customer)
}
