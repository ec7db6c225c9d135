package finance

import (
	"context"

	"github.com/erp/orderflow/internal/domain/shared"
)

// InvoiceRepository persists invoices.
// Save returns a CONFLICT domain error when the number is already taken.
type InvoiceRepository interface {
	shared.Repository[Invoice]

	// FindBySupplier returns the invoices issued by a supplier, oldest first
	FindBySupplier(ctx context.Context, supplierID int64) ([]Invoice, error)

	// ExistsByNumber reports whether an invoice with this number exists
	ExistsByNumber(ctx context.Context, number string) (bool, error)

	// CountBySupplier counts invoices referencing a supplier
	CountBySupplier(ctx context.Context, supplierID int64) (int64, error)
}
