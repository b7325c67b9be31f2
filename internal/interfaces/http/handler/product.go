package handler

import (
	"time"

	catalogapp "github.com/energyservice/backend/internal/application/catalog"
	"github.com/energyservice/backend/internal/domain/shared"
	"github.com/energyservice/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// ProductHandler serves catalog reads
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// List returns active products.
// GET /api/v1/products
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productService.ListProducts(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, products)
}

// ListTariffs returns a product's active tariff versions, optionally only
// those effective on the date query parameter.
// GET /api/v1/products/:id/tariffs?date=yyyy-mm-dd
func (h *ProductHandler) ListTariffs(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	var date *time.Time
	if raw := c.Query("date"); raw != "" {
		d, err := shared.ParseDate(raw)
		if err != nil {
			h.BadRequest(c, dto.ErrCodeInvalidDate, "date must be formatted as yyyy-mm-dd")
			return
		}
		date = &d
	}

	tariffs, err := h.productService.ListTariffs(c.Request.Context(), id, date)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, tariffs)
}
