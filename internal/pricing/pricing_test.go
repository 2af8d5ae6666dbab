package pricing

import (
	"testing"

	"furniture-storefront/internal/domain"
)

func line(price, discount float64, qty int) domain.CartLine {
	return domain.CartLine{ProductID: "p", UnitPrice: price, Discount: discount, Quantity: qty}
}

func TestEffectiveUnitPrice(t *testing.T) {
	if got := EffectiveUnitPrice(line(100, 0.25, 1)); FormatAmount(got) != "75.00" {
		t.Fatalf("expected 75.00, got %v", got)
	}
	if got := EffectiveUnitPrice(line(100, 0, 1)); got != 100 {
		t.Fatalf("expected full price without discount, got %v", got)
	}
}

func TestInvalidDiscountTreatedAsNone(t *testing.T) {
	for _, d := range []float64{-0.5, 1, 1.5} {
		if got := EffectiveUnitPrice(line(100, d, 1)); got != 100 {
			t.Fatalf("discount %v: expected 100, got %v", d, got)
		}
	}
}

func TestDiscountedNeverExceedsOriginal(t *testing.T) {
	for _, d := range []float64{0, 0.1, 0.33, 0.5, 0.99} {
		for _, q := range []int{1, 2, 7, 100} {
			l := line(19.99, d, q)
			orig := LineOriginalSubtotal(l)
			disc := LineDiscountedSubtotal(l)
			if disc > orig {
				t.Fatalf("discount %v qty %d: discounted %v above original %v", d, q, disc, orig)
			}
			if d == 0 && disc != orig {
				t.Fatalf("zero discount must leave subtotal unchanged, got %v vs %v", disc, orig)
			}
		}
	}
}

func TestSumDiscountNonNegative(t *testing.T) {
	lines := []domain.CartLine{
		line(500, 0.2, 2),
		line(19.99, 0, 3),
		line(42.5, 0.15, 1),
	}
	t1 := Sum(lines)
	if t1.Discount < 0 {
		t.Fatalf("discount amount must not be negative, got %v", t1.Discount)
	}
	if FormatAmount(t1.Original-t1.Discounted) != FormatAmount(t1.Discount) {
		t.Fatalf("discount %v is not original %v minus discounted %v", t1.Discount, t1.Original, t1.Discounted)
	}
}

func TestSumEmpty(t *testing.T) {
	totals := Sum(nil)
	if totals.Original != 0 || totals.Discounted != 0 || totals.Discount != 0 {
		t.Fatalf("empty selection must total zero, got %+v", totals)
	}
}

func TestCheckoutTotalsScenario(t *testing.T) {
	// One sofa line: 500 x 2 at 20% off.
	totals := SumForCheckout([]domain.CartLine{line(500, 0.2, 2)})

	cases := []struct {
		name string
		got  float64
		want string
	}{
		{"original", totals.Original, "1000.00"},
		{"discounted", totals.Discounted, "800.00"},
		{"discount", totals.Discount, "200.00"},
		{"tax", totals.Tax, "80.00"},
		{"grand", totals.Grand, "880.00"},
	}
	for _, tc := range cases {
		if FormatAmount(tc.got) != tc.want {
			t.Fatalf("%s: expected %s, got %v", tc.name, tc.want, tc.got)
		}
	}
}

func TestFormatAmountRoundsAtPresentation(t *testing.T) {
	if got := FormatAmount(0.005 + 0.004); got != "0.01" {
		t.Fatalf("expected 0.01, got %s", got)
	}
	if got := FormatAmount(10); got != "10.00" {
		t.Fatalf("expected 10.00, got %s", got)
	}
}
