package models

import (
	"time"

	"github.com/erp/orderflow/internal/domain/shared"
)

// BaseModel provides common persistence fields for all models.
// It maps to the domain's BaseEntity.
type BaseModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// ToDomain converts BaseModel to domain BaseEntity
func (m *BaseModel) ToDomain() shared.BaseEntity {
	return shared.BaseEntity{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomainBaseEntity populates BaseModel from domain BaseEntity
func (m *BaseModel) FromDomainBaseEntity(e shared.BaseEntity) {
	m.ID = e.ID
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// All returns every model managed by a service, for AutoMigrate
func All() []any {
	return []any{
		&CustomerModel{},
		&OrderModel{},
		&SupplierModel{},
		&InvoiceModel{},
	}
}

// OrdersService returns the models owned by the orders service
func OrdersService() []any {
	return []any{&CustomerModel{}, &OrderModel{}}
}

// InvoicesService returns the models owned by the invoices service
func InvoicesService() []any {
	return []any{&SupplierModel{}, &InvoiceModel{}}
}
