package persistence

import (
	"context"

	"github.com/erp/orderflow/internal/domain/partner"
	"github.com/erp/orderflow/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormSupplierRepository implements partner.SupplierRepository using GORM
type GormSupplierRepository struct {
	db *gorm.DB
}

// NewGormSupplierRepository creates a new GormSupplierRepository
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

// FindAll returns every supplier ordered by id
func (r *GormSupplierRepository) FindAll(ctx context.Context) ([]partner.Supplier, error) {
	var rows []models.SupplierModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, translateError(err, partner.AggregateTypeSupplier, nil, "list")
	}
	suppliers := make([]partner.Supplier, len(rows))
	for i := range rows {
		suppliers[i] = *rows[i].ToDomain()
	}
	return suppliers, nil
}

// FindByID finds a supplier by its ID
func (r *GormSupplierRepository) FindByID(ctx context.Context, id int64) (*partner.Supplier, error) {
	var model models.SupplierModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err, partner.AggregateTypeSupplier, id, "find")
	}
	return model.ToDomain(), nil
}

// Save inserts a new supplier or updates an existing one
func (r *GormSupplierRepository) Save(ctx context.Context, supplier *partner.Supplier) error {
	model := models.SupplierModelFromDomain(supplier)
	if supplier.IsNew() {
		if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
			return translateError(err, partner.AggregateTypeSupplier, nil, "create")
		}
		supplier.BaseEntity = model.BaseModel.ToDomain()
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(&models.SupplierModel{}).
		Where("id = ?", supplier.ID).
		Updates(map[string]any{
			"name":         model.Name,
			"email":        model.Email,
			"contact_name": model.ContactName,
			"phone":        model.Phone,
			"updated_at":   model.UpdatedAt,
		})
	if result.Error != nil {
		return translateError(result.Error, partner.AggregateTypeSupplier, supplier.ID, "update")
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, partner.AggregateTypeSupplier, supplier.ID, "update")
	}
	return nil
}

// DeleteByID deletes a supplier. Deleting a missing supplier is not an error;
// a foreign key violation from referencing invoices surfaces as CONFLICT.
func (r *GormSupplierRepository) DeleteByID(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Delete(&models.SupplierModel{}, "id = ?", id).Error
	return translateError(err, partner.AggregateTypeSupplier, id, "delete")
}

// Count returns the number of suppliers
func (r *GormSupplierRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.SupplierModel{}).Count(&count).Error; err != nil {
		return 0, translateError(err, partner.AggregateTypeSupplier, nil, "count")
	}
	return count, nil
}

// Ensure GormSupplierRepository implements SupplierRepository
var _ partner.SupplierRepository = (*GormSupplierRepository)(nil)
