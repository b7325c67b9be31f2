package persistence

import (
	"context"

	"github.com/energyservice/backend/internal/domain/trade"
	"github.com/energyservice/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Create inserts the order row, then its items in input order, and copies
// the generated IDs back onto order. It does not open a transaction itself.
func (r *GormOrderRepository) Create(ctx context.Context, order *trade.Order) error {
	db := r.db.WithContext(ctx)

	orderModel := models.OrderModelFromDomain(order)
	if err := db.Omit(clause.Associations).Create(orderModel).Error; err != nil {
		if isDuplicateKey(err) {
			return trade.ErrOrderNumberTaken.WithData(map[string]any{"order_number": order.OrderNumber})
		}
		return err
	}

	if len(order.Items) > 0 {
		itemModels := make([]models.OrderItemModel, len(order.Items))
		for i, item := range order.Items {
			item.OrderID = orderModel.ID
			itemModels[i] = models.OrderItemModelFromDomain(item)
		}
		if err := db.Create(&itemModels).Error; err != nil {
			return err
		}
		for i := range order.Items {
			order.Items[i].ID = itemModels[i].ID
			order.Items[i].OrderID = orderModel.ID
		}
	}

	order.ID = orderModel.ID
	order.CreatedAt = orderModel.CreatedAt
	return nil
}
