// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer free
// from ORM concerns.
//
//   - base.go: BaseModel shared by every table
//   - partner.go: customers and suppliers
//   - trade.go: orders with their line items stored as JSON
//   - finance.go: invoices with the supplier preloaded on read
package models
