package partner

import (
	"github.com/erp/orderflow/internal/domain/partner"
)

// CustomerRequest is the body of POST and PUT /api/clientes
type CustomerRequest struct {
	Name  string `json:"nombre" binding:"required,max=100"`
	Email string `json:"correo" binding:"required,email,max=200"`
}

// CustomerResponse is the wire form of a customer
type CustomerResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"nombre"`
	Email string `json:"correo"`
}

// ToCustomerResponse converts a domain customer
func ToCustomerResponse(c *partner.Customer) CustomerResponse {
	return CustomerResponse{ID: c.ID, Name: c.Name, Email: c.Email}
}

// ToCustomerResponses converts a slice of domain customers
func ToCustomerResponses(customers []partner.Customer) []CustomerResponse {
	out := make([]CustomerResponse, len(customers))
	for i := range customers {
		out[i] = ToCustomerResponse(&customers[i])
	}
	return out
}

// SupplierRequest is the body of POST and PUT /api/proveedores
type SupplierRequest struct {
	Name        string `json:"nombre" binding:"required,max=100"`
	Email       string `json:"correo" binding:"required,email,max=200"`
	ContactName string `json:"contacto" binding:"required,max=100"`
	Phone       string `json:"telefono" binding:"omitempty,max=50"`
}

func (r SupplierRequest) input() partner.SupplierInput {
	return partner.SupplierInput{
		Name:        r.Name,
		Email:       r.Email,
		ContactName: r.ContactName,
		Phone:       r.Phone,
	}
}

// SupplierResponse is the wire form of a supplier
type SupplierResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"nombre"`
	Email       string `json:"correo"`
	ContactName string `json:"contacto"`
	Phone       string `json:"telefono,omitempty"`
}

// ToSupplierResponse converts a domain supplier
func ToSupplierResponse(s *partner.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:          s.ID,
		Name:        s.Name,
		Email:       s.Email,
		ContactName: s.ContactName,
		Phone:       s.Phone,
	}
}

// ToSupplierResponses converts a slice of domain suppliers
func ToSupplierResponses(suppliers []partner.Supplier) []SupplierResponse {
	out := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		out[i] = ToSupplierResponse(&suppliers[i])
	}
	return out
}
