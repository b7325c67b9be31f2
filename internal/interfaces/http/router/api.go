package router

import (
	"github.com/energyservice/backend/internal/interfaces/http/handler"
)

// Handlers bundles the HTTP handlers served under the versioned API
type Handlers struct {
	Orders    *handler.OrderHandler
	Customers *handler.CustomerHandler
	Products  *handler.ProductHandler
}

// APIGroups builds the domain route groups for the billing API
func APIGroups(h Handlers) []*DomainGroup {
	tradeRoutes := NewDomainGroup("trade", "/orders")
	tradeRoutes.POST("", h.Orders.Create)

	partnerRoutes := NewDomainGroup("partner", "/customers")
	partnerRoutes.GET("", h.Customers.List)
	partnerRoutes.GET("/all", h.Customers.ListAll)
	partnerRoutes.GET("/by-name", h.Customers.GetByName)
	partnerRoutes.GET("/:id", h.Customers.GetByID)
	partnerRoutes.POST("", h.Customers.Create)
	partnerRoutes.PUT("/:id", h.Customers.Update)
	partnerRoutes.DELETE("/:id", h.Customers.Delete)

	catalogRoutes := NewDomainGroup("catalog", "/products")
	catalogRoutes.GET("", h.Products.List)
	catalogRoutes.GET("/:id/tariffs", h.Products.ListTariffs)

	return []*DomainGroup{tradeRoutes, partnerRoutes, catalogRoutes}
}

// RegisterAPI registers every billing API group on r and returns the routes
// that Setup will mount.
func RegisterAPI(r *Router, h Handlers) []Route {
	var routes []Route
	for _, group := range APIGroups(h) {
		r.Register(group)
		routes = append(routes, group.Routes(r.BasePath())...)
	}
	return routes
}
