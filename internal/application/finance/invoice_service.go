// Package finance implements the invoice use cases.
package finance

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	apptrade "github.com/erp/orderflow/internal/application/trade"
	"github.com/erp/orderflow/internal/domain/finance"
	"github.com/erp/orderflow/internal/domain/partner"
	"github.com/erp/orderflow/internal/domain/shared"
	"github.com/erp/orderflow/internal/domain/shared/codegen"
	"github.com/erp/orderflow/internal/domain/shared/pricing"
	"github.com/erp/orderflow/internal/infrastructure/logger"
)

// InvoiceService issues invoices for existing suppliers
type InvoiceService struct {
	invoiceRepo  finance.InvoiceRepository
	supplierRepo partner.SupplierRepository
	logger       *zap.Logger
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(invoiceRepo finance.InvoiceRepository, supplierRepo partner.SupplierRepository, log *zap.Logger) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		supplierRepo: supplierRepo,
		logger:       log,
	}
}

// CreateInvoice resolves the supplier and the total, assigns a number when none
// is given and persists the invoice. A taken number is a conflict, never an overwrite.
func (s *InvoiceService) CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, req.SupplierID)
	if err != nil {
		return nil, err
	}

	invoice, err := finance.NewInvoice(req.SupplierID)
	if err != nil {
		return nil, err
	}

	total, err := resolveTotal(req)
	if err != nil {
		return nil, err
	}
	if err := invoice.SetTotal(total); err != nil {
		return nil, err
	}

	if req.Number != nil && strings.TrimSpace(*req.Number) != "" {
		if err := invoice.SetNumber(*req.Number); err != nil {
			return nil, err
		}
	}
	if err := invoice.Normalize(newInvoiceNumber); err != nil {
		return nil, err
	}

	exists, err := s.invoiceRepo.ExistsByNumber(ctx, invoice.Number)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewConflictError("invoice number %q already exists", invoice.Number)
	}

	// The unique index still guards the race between the check and the insert
	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}
	invoice.Supplier = supplier

	logger.Enrich(ctx, s.logger).Info("invoice created",
		zap.Int64("invoice_id", invoice.ID),
		zap.Int64("supplier_id", invoice.SupplierID),
		zap.String("number", invoice.Number),
		zap.String("total", invoice.TotalOrZero().String()),
	)

	resp := ToInvoiceResponse(invoice)
	return &resp, nil
}

// GetByID retrieves an invoice by ID
func (s *InvoiceService) GetByID(ctx context.Context, id int64) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToInvoiceResponse(invoice)
	return &resp, nil
}

// List returns every invoice
func (s *InvoiceService) List(ctx context.Context) ([]InvoiceResponse, error) {
	invoices, err := s.invoiceRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToInvoiceResponses(invoices), nil
}

// ListBySupplier returns a supplier's invoices; the supplier must exist
func (s *InvoiceService) ListBySupplier(ctx context.Context, supplierID int64) ([]InvoiceResponse, error) {
	if _, err := s.supplierRepo.FindByID(ctx, supplierID); err != nil {
		return nil, err
	}
	invoices, err := s.invoiceRepo.FindBySupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	return ToInvoiceResponses(invoices), nil
}

// Delete removes an invoice. Deleting a missing invoice succeeds.
func (s *InvoiceService) Delete(ctx context.Context, id int64) error {
	return s.invoiceRepo.DeleteByID(ctx, id)
}

// resolveTotal applies the precedence explicit total, then order totals, then line items, then zero
func resolveTotal(req CreateInvoiceRequest) (decimal.Decimal, error) {
	switch {
	case req.Total != nil:
		if req.Total.IsNegative() {
			return decimal.Zero, shared.NewInvalidArgumentError("invoice total cannot be negative")
		}
		return *req.Total, nil

	case len(req.Orders) > 0:
		values := make([]decimal.Decimal, 0, len(req.Orders))
		for _, o := range req.Orders {
			if o.Total == nil {
				continue
			}
			if o.Total.IsNegative() {
				return decimal.Zero, shared.NewInvalidArgumentError("order %d total cannot be negative", o.OrderID)
			}
			values = append(values, *o.Total)
		}
		return pricing.Sum(values), nil

	case len(req.Items) > 0:
		items, err := apptrade.ToLineItems(req.Items)
		if err != nil {
			return decimal.Zero, err
		}
		pricingItems := make([]pricing.Item, len(items))
		for i, item := range items {
			pricingItems[i] = item.PricingItem()
		}
		return pricing.ComputeTotal(pricingItems)
	}
	return decimal.Zero, nil
}

func newInvoiceNumber() string {
	return codegen.MustGenerate(codegen.TagInvoice)
}
