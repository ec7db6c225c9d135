package persistence

import (
	"context"

	"github.com/erp/orderflow/internal/domain/partner"
	"github.com/erp/orderflow/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCustomerRepository implements partner.CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindAll returns every customer ordered by id
func (r *GormCustomerRepository) FindAll(ctx context.Context) ([]partner.Customer, error) {
	var rows []models.CustomerModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, translateError(err, partner.AggregateTypeCustomer, nil, "list")
	}
	customers := make([]partner.Customer, len(rows))
	for i := range rows {
		customers[i] = *rows[i].ToDomain()
	}
	return customers, nil
}

// FindByID finds a customer by its ID
func (r *GormCustomerRepository) FindByID(ctx context.Context, id int64) (*partner.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err, partner.AggregateTypeCustomer, id, "find")
	}
	return model.ToDomain(), nil
}

// Save inserts a new customer or updates an existing one
func (r *GormCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	model := models.CustomerModelFromDomain(customer)
	if customer.IsNew() {
		if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
			return translateError(err, partner.AggregateTypeCustomer, nil, "create")
		}
		customer.BaseEntity = model.BaseModel.ToDomain()
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(&models.CustomerModel{}).
		Where("id = ?", customer.ID).
		Updates(map[string]any{
			"name":       model.Name,
			"email":      model.Email,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return translateError(result.Error, partner.AggregateTypeCustomer, customer.ID, "update")
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, partner.AggregateTypeCustomer, customer.ID, "update")
	}
	return nil
}

// DeleteByID deletes a customer and every order it owns in one transaction.
// Deleting a missing customer is not an error.
func (r *GormCustomerRepository) DeleteByID(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.OrderModel{}, "customer_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.CustomerModel{}, "id = ?", id).Error
	})
	return translateError(err, partner.AggregateTypeCustomer, id, "delete")
}

// Count returns the number of customers
func (r *GormCustomerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.CustomerModel{}).Count(&count).Error; err != nil {
		return 0, translateError(err, partner.AggregateTypeCustomer, nil, "count")
	}
	return count, nil
}

// Ensure GormCustomerRepository implements CustomerRepository
var _ partner.CustomerRepository = (*GormCustomerRepository)(nil)
