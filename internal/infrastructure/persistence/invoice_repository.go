package persistence

import (
	"context"
	"errors"

	"github.com/erp/orderflow/internal/domain/finance"
	"github.com/erp/orderflow/internal/domain/shared"
	"github.com/erp/orderflow/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInvoiceRepository implements finance.InvoiceRepository using GORM.
// Reads preload the issuing supplier.
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// FindAll returns every invoice ordered by id
func (r *GormInvoiceRepository) FindAll(ctx context.Context) ([]finance.Invoice, error) {
	return r.find(r.db.WithContext(ctx))
}

// FindBySupplier returns the invoices issued by a supplier
func (r *GormInvoiceRepository) FindBySupplier(ctx context.Context, supplierID int64) ([]finance.Invoice, error) {
	return r.find(r.db.WithContext(ctx).Where("supplier_id = ?", supplierID))
}

func (r *GormInvoiceRepository) find(query *gorm.DB) ([]finance.Invoice, error) {
	var rows []models.InvoiceModel
	if err := query.Preload("Supplier").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, translateError(err, finance.AggregateTypeInvoice, nil, "list")
	}
	invoices := make([]finance.Invoice, len(rows))
	for i := range rows {
		invoices[i] = *rows[i].ToDomain()
	}
	return invoices, nil
}

// FindByID finds an invoice by its ID
func (r *GormInvoiceRepository) FindByID(ctx context.Context, id int64) (*finance.Invoice, error) {
	var model models.InvoiceModel
	if err := r.db.WithContext(ctx).Preload("Supplier").First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err, finance.AggregateTypeInvoice, id, "find")
	}
	return model.ToDomain(), nil
}

// ExistsByNumber reports whether an invoice with this number exists
func (r *GormInvoiceRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.InvoiceModel{}).Where("number = ?", number).Count(&count).Error; err != nil {
		return false, translateError(err, finance.AggregateTypeInvoice, nil, "count")
	}
	return count > 0, nil
}

// CountBySupplier counts the invoices referencing a supplier
func (r *GormInvoiceRepository) CountBySupplier(ctx context.Context, supplierID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.InvoiceModel{}).Where("supplier_id = ?", supplierID).Count(&count).Error; err != nil {
		return 0, translateError(err, finance.AggregateTypeInvoice, nil, "count")
	}
	return count, nil
}

// Save inserts a new invoice or updates an existing one.
// A duplicate number is reported as CONFLICT and never overwrites.
func (r *GormInvoiceRepository) Save(ctx context.Context, invoice *finance.Invoice) error {
	model := models.InvoiceModelFromDomain(invoice)
	db := r.db.WithContext(ctx).Omit(clause.Associations)

	var err error
	if invoice.IsNew() {
		err = db.Create(model).Error
	} else {
		result := db.Model(&models.InvoiceModel{}).
			Where("id = ?", invoice.ID).
			Select("number", "total", "supplier_id", "updated_at").
			Updates(model)
		err = result.Error
		if err == nil && result.RowsAffected == 0 {
			err = gorm.ErrRecordNotFound
		}
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return shared.NewConflictError("invoice number %q already exists", invoice.Number)
	}
	if err != nil {
		return translateError(err, finance.AggregateTypeInvoice, invoice.ID, "save")
	}

	if invoice.IsNew() {
		invoice.BaseEntity = model.BaseModel.ToDomain()
	}
	return nil
}

// DeleteByID deletes an invoice. Deleting a missing invoice is not an error.
func (r *GormInvoiceRepository) DeleteByID(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Delete(&models.InvoiceModel{}, "id = ?", id).Error
	return translateError(err, finance.AggregateTypeInvoice, id, "delete")
}

// Count returns the number of invoices
func (r *GormInvoiceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.InvoiceModel{}).Count(&count).Error; err != nil {
		return 0, translateError(err, finance.AggregateTypeInvoice, nil, "count")
	}
	return count, nil
}

// Ensure GormInvoiceRepository implements InvoiceRepository
var _ finance.InvoiceRepository = (*GormInvoiceRepository)(nil)
