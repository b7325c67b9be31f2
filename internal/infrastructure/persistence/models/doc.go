// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer pure and free
// from ORM concerns.
//
// Structure:
// - base.go: BaseModel and NULL mapping helpers
// - partner.go: CustomerModel
// - catalog.go: ProductModel, UnitModel, TariffModel
// - trade.go: OrderModel, OrderItemModel
//
// Optional text columns are stored as NULL when empty. Date columns hold UTC
// calendar dates and are normalized on the way back into the domain.
package models
