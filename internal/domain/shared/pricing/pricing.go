// Package pricing holds the pure money arithmetic shared by the order and
// invoice services: line-item totals, tax and discount.
package pricing

import (
	"github.com/erp/orderflow/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DefaultTaxRate is the VAT rate applied by ApplyDiscountAndTax
var DefaultTaxRate = decimal.RequireFromString("0.21")

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// Item is a priced line. A nil Quantity counts as 1.
type Item struct {
	Price    decimal.Decimal
	Quantity *decimal.Decimal
}

// NewItem builds an Item from float inputs; a nil quantity means 1
func NewItem(price float64, quantity *float64) Item {
	item := Item{Price: decimal.NewFromFloat(price)}
	if quantity != nil {
		q := decimal.NewFromFloat(*quantity)
		item.Quantity = &q
	}
	return item
}

// EffectiveQuantity returns the quantity, defaulting to 1
func (i Item) EffectiveQuantity() decimal.Decimal {
	if i.Quantity == nil {
		return one
	}
	return *i.Quantity
}

// ComputeTotal returns the sum of price x quantity over items.
// An empty sequence yields zero. A negative price or quantity is rejected.
func ComputeTotal(items []Item) (decimal.Decimal, error) {
	total := decimal.Zero
	for idx, item := range items {
		if item.Price.IsNegative() {
			return decimal.Zero, shared.NewInvalidLineItemError("line item %d: price cannot be negative", idx)
		}
		qty := item.EffectiveQuantity()
		if qty.IsNegative() {
			return decimal.Zero, shared.NewInvalidLineItemError("line item %d: quantity cannot be negative", idx)
		}
		total = total.Add(item.Price.Mul(qty))
	}
	return total, nil
}

// Sum adds up a list of amounts; an empty list yields zero
func Sum(values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// ApplyTax returns subtotal * (1 + rate)
func ApplyTax(subtotal, rate decimal.Decimal) (decimal.Decimal, error) {
	if rate.IsNegative() {
		return decimal.Zero, shared.NewInvalidArgumentError("tax rate cannot be negative: %s", rate)
	}
	return subtotal.Mul(one.Add(rate)), nil
}

// ApplyDiscount returns total * (1 - percent/100). Percent must be within [0, 100].
func ApplyDiscount(total, percent decimal.Decimal) (decimal.Decimal, error) {
	if percent.IsNegative() || percent.GreaterThan(hundred) {
		return decimal.Zero, shared.NewInvalidArgumentError("discount percent must be between 0 and 100: %s", percent)
	}
	return total.Mul(one.Sub(percent.Div(hundred))), nil
}

// ApplyDiscountAndTax discounts subtotal by percent, then applies DefaultTaxRate
func ApplyDiscountAndTax(subtotal, percent decimal.Decimal) (decimal.Decimal, error) {
	discounted, err := ApplyDiscount(subtotal, percent)
	if err != nil {
		return decimal.Zero, err
	}
	return ApplyTax(discounted, DefaultTaxRate)
}

// Round rounds an amount to cents, half away from zero
func Round(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}
