package models

import (
	"github.com/erp/orderflow/internal/domain/finance"
	"github.com/erp/orderflow/internal/domain/partner"
	"github.com/shopspring/decimal"
)

// InvoiceModel is the persistence model for the Invoice domain entity.
type InvoiceModel struct {
	BaseModel
	Number     string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_invoice_number"`
	Total      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	SupplierID int64           `gorm:"not null;index"`

	Supplier *SupplierModel `gorm:"foreignKey:SupplierID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice entity.
func (m *InvoiceModel) ToDomain() *finance.Invoice {
	total := m.Total
	return &finance.Invoice{
		BaseEntity: m.BaseModel.ToDomain(),
		Number:     m.Number,
		Total:      &total,
		SupplierID: m.SupplierID,
		Supplier:   m.supplierToDomain(),
	}
}

func (m *InvoiceModel) supplierToDomain() *partner.Supplier {
	if m.Supplier == nil {
		return nil
	}
	return m.Supplier.ToDomain()
}

// FromDomain populates the persistence model from a domain Invoice entity.
func (m *InvoiceModel) FromDomain(i *finance.Invoice) {
	m.FromDomainBaseEntity(i.BaseEntity)
	m.Number = i.Number
	m.Total = i.TotalOrZero()
	m.SupplierID = i.SupplierID
}

// InvoiceModelFromDomain creates a new persistence model from domain entity.
func InvoiceModelFromDomain(i *finance.Invoice) *InvoiceModel {
	m := &InvoiceModel{}
	m.FromDomain(i)
	return m
}
