package finance

import (
	"strings"

	"github.com/erp/orderflow/internal/domain/partner"
	"github.com/erp/orderflow/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// AggregateTypeInvoice names the Invoice entity in errors and events
const AggregateTypeInvoice = "Invoice"

// Invoice is issued by exactly one supplier. Number is unique across invoices.
// Supplier is a read-side snapshot filled by the repository; saves ignore it.
type Invoice struct {
	shared.BaseEntity
	Number     string
	Total      *decimal.Decimal
	SupplierID int64
	Supplier   *partner.Supplier
}

// NewInvoice creates an invoice for a supplier. Number and total may be set later.
func NewInvoice(supplierID int64) (*Invoice, error) {
	if supplierID <= 0 {
		return nil, shared.NewInvalidArgumentError("supplier id must be positive")
	}
	inv := &Invoice{SupplierID: supplierID}
	inv.Touch()
	return inv, nil
}

// SetTotal sets the invoice total; negative amounts are rejected
func (i *Invoice) SetTotal(total decimal.Decimal) error {
	if total.IsNegative() {
		return shared.NewInvalidArgumentError("invoice total cannot be negative")
	}
	i.Total = &total
	return nil
}

// SetNumber sets the invoice number; blank numbers are rejected
func (i *Invoice) SetNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return shared.NewInvalidArgumentError("invoice number cannot be empty")
	}
	if len(number) > 50 {
		return shared.NewInvalidArgumentError("invoice number cannot exceed 50 characters")
	}
	i.Number = number
	return nil
}

// TotalOrZero returns the total, treating an unset total as zero
func (i *Invoice) TotalOrZero() decimal.Decimal {
	if i.Total == nil {
		return decimal.Zero
	}
	return *i.Total
}

// Normalize applies persistence defaults. A missing total becomes zero and a
// missing number is filled from newNumber.
func (i *Invoice) Normalize(newNumber func() string) error {
	if i.Total == nil {
		zero := decimal.Zero
		i.Total = &zero
	}
	if i.Total.IsNegative() {
		return shared.NewInvalidArgumentError("invoice total cannot be negative")
	}
	if strings.TrimSpace(i.Number) == "" {
		return i.SetNumber(newNumber())
	}
	return nil
}
