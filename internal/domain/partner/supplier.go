package partner

import (
	"strings"

	"github.com/erp/orderflow/internal/domain/shared"
)

// AggregateTypeSupplier names the Supplier entity in errors and events
const AggregateTypeSupplier = "Supplier"

// Supplier is a vendor that issues invoices
type Supplier struct {
	shared.BaseEntity
	Name        string
	Email       string
	ContactName string
	Phone       string // optional
}

// SupplierInput groups the editable supplier fields
type SupplierInput struct {
	Name        string
	Email       string
	ContactName string
	Phone       string
}

// NewSupplier creates a new supplier with required fields
func NewSupplier(in SupplierInput) (*Supplier, error) {
	s := &Supplier{}
	if err := s.Update(in); err != nil {
		return nil, err
	}
	return s, nil
}

// Update replaces the supplier's fields after validating them
func (s *Supplier) Update(in SupplierInput) error {
	if err := validateName(in.Name); err != nil {
		return err
	}
	if err := validateEmail(in.Email); err != nil {
		return err
	}
	contact := strings.TrimSpace(in.ContactName)
	if contact == "" {
		return shared.NewDomainError("INVALID_CONTACT", "Contact name cannot be empty")
	}
	if len(in.Phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}

	s.Name = strings.TrimSpace(in.Name)
	s.Email = strings.TrimSpace(in.Email)
	s.ContactName = contact
	s.Phone = strings.TrimSpace(in.Phone)
	s.Touch()
	return nil
}
