package persistence

import (
	"context"

	"github.com/erp/orderflow/internal/domain/trade"
	"github.com/erp/orderflow/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements trade.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindAll returns every order ordered by id
func (r *GormOrderRepository) FindAll(ctx context.Context) ([]trade.Order, error) {
	return r.find(r.db.WithContext(ctx))
}

// FindByCustomer returns the orders that reference a customer
func (r *GormOrderRepository) FindByCustomer(ctx context.Context, customerID int64) ([]trade.Order, error) {
	return r.find(r.db.WithContext(ctx).Where("customer_id = ?", customerID))
}

func (r *GormOrderRepository) find(query *gorm.DB) ([]trade.Order, error) {
	var rows []models.OrderModel
	if err := query.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, translateError(err, trade.AggregateTypeOrder, nil, "list")
	}
	orders := make([]trade.Order, len(rows))
	for i := range rows {
		orders[i] = *rows[i].ToDomain()
	}
	return orders, nil
}

// FindByID finds an order by its ID
func (r *GormOrderRepository) FindByID(ctx context.Context, id int64) (*trade.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err, trade.AggregateTypeOrder, id, "find")
	}
	return model.ToDomain(), nil
}

// Save inserts a new order or updates an existing one.
// The owning customer association is never written through the order.
func (r *GormOrderRepository) Save(ctx context.Context, order *trade.Order) error {
	model := models.OrderModelFromDomain(order)
	db := r.db.WithContext(ctx).Omit(clause.Associations)
	if order.IsNew() {
		if err := db.Create(model).Error; err != nil {
			return translateError(err, trade.AggregateTypeOrder, nil, "create")
		}
		order.BaseEntity = model.BaseModel.ToDomain()
		total := model.Total
		order.Total = &total
		return nil
	}

	result := db.Model(&models.OrderModel{}).
		Where("id = ?", order.ID).
		Select("description", "total", "customer_id", "items", "updated_at").
		Updates(model)
	if result.Error != nil {
		return translateError(result.Error, trade.AggregateTypeOrder, order.ID, "update")
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, trade.AggregateTypeOrder, order.ID, "update")
	}
	return nil
}

// DeleteByID deletes an order. Deleting a missing order is not an error.
func (r *GormOrderRepository) DeleteByID(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Delete(&models.OrderModel{}, "id = ?", id).Error
	return translateError(err, trade.AggregateTypeOrder, id, "delete")
}

// Count returns the number of orders
func (r *GormOrderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.OrderModel{}).Count(&count).Error; err != nil {
		return 0, translateError(err, trade.AggregateTypeOrder, nil, "count")
	}
	return count, nil
}

// Ensure GormOrderRepository implements OrderRepository
var _ trade.OrderRepository = (*GormOrderRepository)(nil)
