package partner

import (
	"strings"

	"github.com/erp/orderflow/internal/domain/shared"
)

// AggregateTypeCustomer names the Customer entity in errors and events
const AggregateTypeCustomer = "Customer"

// Customer is a buyer that places orders.
// Orders reference their customer by ID; the customer holds no order list.
type Customer struct {
	shared.BaseEntity
	Name  string
	Email string
}

// NewCustomer creates a new customer with required fields
func NewCustomer(name, email string) (*Customer, error) {
	c := &Customer{}
	if err := c.Update(name, email); err != nil {
		return nil, err
	}
	return c, nil
}

// Update replaces the customer's name and email after validating them
func (c *Customer) Update(name, email string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := validateEmail(email); err != nil {
		return err
	}
	c.Name = strings.TrimSpace(name)
	c.Email = strings.TrimSpace(email)
	c.Touch()
	return nil
}
