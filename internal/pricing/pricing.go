// Package pricing computes line and aggregate totals under per-item discounts
// and the checkout tax rate. Amounts stay unrounded until formatted for
// display, so per-line rounding error never accumulates across a cart.
package pricing

import (
	"strconv"

	"furniture-storefront/internal/domain"
)

// TaxRate is the flat rate applied to the discounted total at checkout.
const TaxRate = 0.10

// Totals aggregates a set of cart lines.
type Totals struct {
	Original   float64 `json:"originalTotal"`
	Discounted float64 `json:"discountedTotal"`
	Discount   float64 `json:"discountAmount"`
}

// CheckoutTotals extends Totals with tax and the payable amount.
type CheckoutTotals struct {
	Totals
	Tax   float64 `json:"tax"`
	Grand float64 `json:"grandTotal"`
}

// discountFraction returns the usable discount for a line. Values outside
// [0, 1) are treated as no discount rather than producing a negative price.
func discountFraction(l domain.CartLine) float64 {
	if l.Discount <= 0 || l.Discount >= 1 {
		return 0
	}
	return l.Discount
}

// EffectiveUnitPrice is the unit price after the line's discount.
func EffectiveUnitPrice(l domain.CartLine) float64 {
	return l.UnitPrice * (1 - discountFraction(l))
}

// LineOriginalSubtotal is unit price times quantity, before discount.
func LineOriginalSubtotal(l domain.CartLine) float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// LineDiscountedSubtotal is the discounted unit price times quantity.
func LineDiscountedSubtotal(l domain.CartLine) float64 {
	return EffectiveUnitPrice(l) * float64(l.Quantity)
}

// Sum aggregates the given lines.
func Sum(lines []domain.CartLine) Totals {
	var t Totals
	for _, l := range lines {
		t.Original += LineOriginalSubtotal(l)
		t.Discounted += LineDiscountedSubtotal(l)
	}
	t.Discount = t.Original - t.Discounted
	return t
}

// SumForCheckout aggregates the given lines and applies tax on the
// discounted total.
func SumForCheckout(lines []domain.CartLine) CheckoutTotals {
	t := Sum(lines)
	tax := t.Discounted * TaxRate
	return CheckoutTotals{
		Totals: t,
		Tax:    tax,
		Grand:  t.Discounted + tax,
	}
}

// FormatAmount renders an amount with two decimal places for display.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
