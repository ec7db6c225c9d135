package trade

import (
	"strings"

	"github.com/erp/orderflow/internal/domain/shared"
	"github.com/erp/orderflow/internal/domain/shared/pricing"
	"github.com/shopspring/decimal"
)

// AggregateTypeOrder names the Order entity in errors and events
const AggregateTypeOrder = "Order"

// DescriptionPrefix precedes the generated code in an order description
const DescriptionPrefix = "Pedido generado con código: "

// LineItem is a priced entry within an order. It is stored with the order,
// never on its own. A nil Quantity counts as 1.
type LineItem struct {
	Name     string           `json:"nombre"`
	Price    decimal.Decimal  `json:"precio"`
	Quantity *decimal.Decimal `json:"cantidad,omitempty"`
}

// NewLineItem validates and builds a line item
func NewLineItem(name string, price decimal.Decimal, quantity *decimal.Decimal) (LineItem, error) {
	if price.IsNegative() {
		return LineItem{}, shared.NewInvalidLineItemError("Unit price cannot be negative")
	}
	if quantity != nil && quantity.IsNegative() {
		return LineItem{}, shared.NewInvalidLineItemError("Quantity cannot be negative")
	}
	return LineItem{Name: strings.TrimSpace(name), Price: price, Quantity: quantity}, nil
}

// PricingItem converts the line item for the total calculator
func (li LineItem) PricingItem() pricing.Item {
	return pricing.Item{Price: li.Price, Quantity: li.Quantity}
}

// Subtotal returns price x quantity
func (li LineItem) Subtotal() decimal.Decimal {
	return li.Price.Mul(li.PricingItem().EffectiveQuantity())
}

// Order belongs to exactly one customer through CustomerID.
// Total is nil until computed; Normalize turns it into zero before saving.
type Order struct {
	shared.BaseEntity
	Description string
	Total       *decimal.Decimal
	CustomerID  int64
	Items       []LineItem
}

// NewOrder creates an empty order for a customer
func NewOrder(customerID int64) (*Order, error) {
	if customerID <= 0 {
		return nil, shared.NewInvalidArgumentError("customer id must be positive")
	}
	o := &Order{CustomerID: customerID}
	o.Touch()
	return o, nil
}

// AttachItems sets the line items and recomputes the total from them
func (o *Order) AttachItems(items []LineItem) error {
	pricingItems := make([]pricing.Item, 0, len(items))
	for _, item := range items {
		pricingItems = append(pricingItems, item.PricingItem())
	}
	total, err := pricing.ComputeTotal(pricingItems)
	if err != nil {
		return err
	}
	o.Items = items
	o.Total = &total
	return nil
}

// StampCode records the generated order code in the description
func (o *Order) StampCode(code string) {
	o.Description = DescriptionPrefix + code
}

// Code extracts the generated code from the description, if present
func (o *Order) Code() string {
	if !strings.HasPrefix(o.Description, DescriptionPrefix) {
		return ""
	}
	return strings.TrimPrefix(o.Description, DescriptionPrefix)
}

// TotalOrZero returns the total, treating an unset total as zero
func (o *Order) TotalOrZero() decimal.Decimal {
	if o.Total == nil {
		return decimal.Zero
	}
	return *o.Total
}

// Normalize applies persistence defaults: an unset total becomes zero
func (o *Order) Normalize() error {
	total := o.TotalOrZero()
	if total.IsNegative() {
		return shared.NewInvalidArgumentError("order total cannot be negative")
	}
	o.Total = &total
	return nil
}
