package router

import (
	"github.com/erp/orderflow/internal/interfaces/http/handler"
)

// CustomerRoutes registers /clientes, including the inverse order listing
func CustomerRoutes(customers *handler.CustomerHandler, orders *handler.OrderHandler) *DomainGroup {
	health := handler.NewHealthHandler(handler.ServiceCustomers)
	return NewDomainGroup("clientes", "/clientes").
		GET("", customers.List).
		GET("/health", health.Health).
		GET("/:id", customers.GetByID).
		GET("/:id/pedidos", orders.ListByCustomer).
		POST("", customers.Create).
		PUT("/:id", customers.Update).
		DELETE("/:id", customers.Delete)
}

// OrderRoutes registers /pedidos
func OrderRoutes(orders *handler.OrderHandler) *DomainGroup {
	health := handler.NewHealthHandler(handler.ServiceOrders)
	return NewDomainGroup("pedidos", "/pedidos").
		GET("", orders.List).
		GET("/health", health.Health).
		GET("/:id", orders.GetByID).
		POST("", orders.Create).
		DELETE("/:id", orders.Delete)
}

// SupplierRoutes registers /proveedores, including the inverse invoice listing
func SupplierRoutes(suppliers *handler.SupplierHandler, invoices *handler.InvoiceHandler) *DomainGroup {
	health := handler.NewHealthHandler(handler.ServiceSuppliers)
	return NewDomainGroup("proveedores", "/proveedores").
		GET("", suppliers.List).
		GET("/health", health.Health).
		GET("/:id", suppliers.GetByID).
		GET("/:id/facturas", invoices.ListBySupplier).
		POST("", suppliers.Create).
		PUT("/:id", suppliers.Update).
		DELETE("/:id", suppliers.Delete)
}

// InvoiceRoutes registers /facturas
func InvoiceRoutes(invoices *handler.InvoiceHandler) *DomainGroup {
	health := handler.NewHealthHandler(handler.ServiceInvoices)
	return NewDomainGroup("facturas", "/facturas").
		GET("", invoices.List).
		GET("/health", health.Health).
		GET("/:id", invoices.GetByID).
		POST("", invoices.Create).
		DELETE("/:id", invoices.Delete)
}
