package partner

import (
	"github.com/erp/orderflow/internal/domain/shared"
)

// CustomerRepository persists customers.
// DeleteByID also removes every order that references the customer.
type CustomerRepository interface {
	shared.Repository[Customer]
}

// SupplierRepository persists suppliers
type SupplierRepository interface {
	shared.Repository[Supplier]
}
