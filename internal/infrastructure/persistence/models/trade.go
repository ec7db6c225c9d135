package models

import (
	"github.com/erp/orderflow/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// OrderModel is the persistence model for the Order domain entity.
// Line items are a value collection serialized into a single JSON column.
type OrderModel struct {
	BaseModel
	Description string           `gorm:"type:text"`
	Total       decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	CustomerID  int64            `gorm:"not null;index"`
	Items       []trade.LineItem `gorm:"type:text;serializer:json"`

	Customer *CustomerModel `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order entity.
func (m *OrderModel) ToDomain() *trade.Order {
	total := m.Total
	items := m.Items
	if items == nil {
		items = []trade.LineItem{}
	}
	return &trade.Order{
		BaseEntity:  m.BaseModel.ToDomain(),
		Description: m.Description,
		Total:       &total,
		CustomerID:  m.CustomerID,
		Items:       items,
	}
}

// FromDomain populates the persistence model from a domain Order entity.
func (m *OrderModel) FromDomain(o *trade.Order) {
	m.FromDomainBaseEntity(o.BaseEntity)
	m.Description = o.Description
	m.Total = o.TotalOrZero()
	m.CustomerID = o.CustomerID
	m.Items = o.Items
}

// OrderModelFromDomain creates a new persistence model from domain entity.
func OrderModelFromDomain(o *trade.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}
