package selection

import (
	"testing"

	"furniture-storefront/internal/domain"
)

func cartWith(ids ...string) domain.Cart {
	var cart domain.Cart
	for _, id := range ids {
		cart.Items = append(cart.Items, domain.CartLine{ProductID: id, Quantity: 1})
	}
	return cart
}

func TestSelectDeselect(t *testing.T) {
	tr := NewTracker()
	tr.Select("a")
	if !tr.IsSelected("a") {
		t.Fatal("expected a selected")
	}
	tr.Deselect("a")
	if tr.IsSelected("a") {
		t.Fatal("expected a deselected")
	}
	if tr.Count() != 0 {
		t.Fatalf("expected empty tracker, got %d", tr.Count())
	}
}

func TestSelectAllIsExactReplacement(t *testing.T) {
	tr := NewTracker()
	tr.Select("stale")
	tr.SelectAll(cartWith("a", "b"))
	if tr.IsSelected("stale") {
		t.Fatal("select-all must not keep ids outside the cart")
	}
	if !tr.IsSelected("a") || !tr.IsSelected("b") {
		t.Fatal("select-all must select every cart id")
	}
}

func TestPruneDropsStaleIDs(t *testing.T) {
	tr := FromIDs([]string{"a", "b", "gone"})
	tr.Prune(cartWith("a", "b"))
	if tr.IsSelected("gone") {
		t.Fatal("pruned id must not stay selected")
	}
	if !tr.IsSelected("a") || !tr.IsSelected("b") {
		t.Fatal("prune must keep ids still in the cart")
	}
}

func TestSelectedLinesKeepsCartOrder(t *testing.T) {
	cart := cartWith("first", "second", "third")
	tr := NewTracker()
	tr.Select("third")
	tr.Select("first")

	lines := tr.SelectedLines(cart)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].ProductID != "first" || lines[1].ProductID != "third" {
		t.Fatalf("expected cart order, got %s then %s", lines[0].ProductID, lines[1].ProductID)
	}
}

func TestSelectedLinesFiltersToSelection(t *testing.T) {
	cart := cartWith("a", "b")
	tr := NewTracker()
	tr.Select("b")

	lines := tr.SelectedLines(cart)
	if len(lines) != 1 || lines[0].ProductID != "b" {
		t.Fatalf("expected exactly the selected line, got %+v", lines)
	}
}

func TestClear(t *testing.T) {
	tr := FromIDs([]string{"a", "b"})
	tr.Clear()
	if tr.Count() != 0 {
		t.Fatalf("expected no selection after clear, got %d", tr.Count())
	}
}
