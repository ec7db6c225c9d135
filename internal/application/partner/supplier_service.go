package partner

import (
	"context"

	"github.com/erp/orderflow/internal/domain/partner"
	"github.com/erp/orderflow/internal/domain/shared"
)

// InvoiceCounter reports how many invoices reference a supplier
type InvoiceCounter interface {
	CountBySupplier(ctx context.Context, supplierID int64) (int64, error)
}

// SupplierService handles supplier CRUD
type SupplierService struct {
	supplierRepo partner.SupplierRepository
	invoices     InvoiceCounter
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo partner.SupplierRepository, invoices InvoiceCounter) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo, invoices: invoices}
}

// Create creates a new supplier
func (s *SupplierService) Create(ctx context.Context, req SupplierRequest) (*SupplierResponse, error) {
	supplier, err := partner.NewSupplier(req.input())
	if err != nil {
		return nil, err
	}
	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}
	resp := ToSupplierResponse(supplier)
	return &resp, nil
}

// Update replaces a supplier's fields
func (s *SupplierService) Update(ctx context.Context, id int64, req SupplierRequest) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := supplier.Update(req.input()); err != nil {
		return nil, err
	}
	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}
	resp := ToSupplierResponse(supplier)
	return &resp, nil
}

// GetByID retrieves a supplier by ID
func (s *SupplierService) GetByID(ctx context.Context, id int64) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToSupplierResponse(supplier)
	return &resp, nil
}

// List returns every supplier
func (s *SupplierService) List(ctx context.Context) ([]SupplierResponse, error) {
	suppliers, err := s.supplierRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToSupplierResponses(suppliers), nil
}

// Delete removes a supplier. A supplier that still has invoices cannot be
// deleted; a missing supplier is not an error.
func (s *SupplierService) Delete(ctx context.Context, id int64) error {
	n, err := s.invoices.CountBySupplier(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return shared.NewConflictError("supplier %d still has %d invoice(s)", id, n)
	}
	return s.supplierRepo.DeleteByID(ctx, id)
}
