// Package selection tracks which cart lines the user has chosen for the next
// checkout. The tracker is view-local state: it holds product ids only and is
// intersected with the cart after every refresh so stale ids never survive.
package selection

import "furniture-storefront/internal/domain"

type Tracker struct {
	ids map[string]struct{}
}

func NewTracker() *Tracker {
	return &Tracker{ids: make(map[string]struct{})}
}

// FromIDs rebuilds a tracker from a stored id list.
func FromIDs(ids []string) *Tracker {
	t := NewTracker()
	for _, id := range ids {
		t.ids[id] = struct{}{}
	}
	return t
}

func (t *Tracker) Select(productID string) {
	t.ids[productID] = struct{}{}
}

func (t *Tracker) Deselect(productID string) {
	delete(t.ids, productID)
}

// SelectAll resets the tracker to exactly the ids present in cart.
func (t *Tracker) SelectAll(cart domain.Cart) {
	t.ids = make(map[string]struct{}, len(cart.Items))
	for _, l := range cart.Items {
		t.ids[l.ProductID] = struct{}{}
	}
}

func (t *Tracker) Clear() {
	t.ids = make(map[string]struct{})
}

func (t *Tracker) IsSelected(productID string) bool {
	_, ok := t.ids[productID]
	return ok
}

func (t *Tracker) Count() int {
	return len(t.ids)
}

// Prune drops every id that no longer corresponds to a line in cart.
func (t *Tracker) Prune(cart domain.Cart) {
	present := make(map[string]struct{}, len(cart.Items))
	for _, l := range cart.Items {
		present[l.ProductID] = struct{}{}
	}
	for id := range t.ids {
		if _, ok := present[id]; !ok {
			delete(t.ids, id)
		}
	}
}

// SelectedLines returns the selected lines in the cart's original order.
func (t *Tracker) SelectedLines(cart domain.Cart) []domain.CartLine {
	lines := make([]domain.CartLine, 0, len(t.ids))
	for _, l := range cart.Items {
		if t.IsSelected(l.ProductID) {
			lines = append(lines, l)
		}
	}
	return lines
}

// IDs returns the selected ids for storage. Order is unspecified.
func (t *Tracker) IDs() []string {
	ids := make([]string, 0, len(t.ids))
	for id := range t.ids {
		ids = append(ids, id)
	}
	return ids
}
