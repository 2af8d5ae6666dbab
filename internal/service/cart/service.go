// Package cart keeps the in-memory cart view consistent with the commerce
// API and enforces stock-aware quantity edits. The server owns the cart; every
// refresh replaces the local view wholesale and the selection is intersected
// with whatever came back.
package cart

import (
	"context"
	"fmt"
	"log"

	"furniture-storefront/internal/domain"
	"furniture-storefront/internal/pricing"
	"furniture-storefront/internal/selection"
)

type commerceAPI interface {
	FetchCart(ctx context.Context) (domain.Cart, error)
	AddToCart(ctx context.Context, productID string, quantity int) error
	UpdateCartLine(ctx context.Context, productID string, quantity int) error
	RemoveCartLine(ctx context.Context, productID string) error
	ClearCart(ctx context.Context) error
}

type Service struct {
	api    commerceAPI
	logger *log.Logger
}

func New(api commerceAPI, logger *log.Logger) *Service {
	return &Service{api: api, logger: logger}
}

// View is one session's working copy of the cart: the last fetched snapshot
// plus the selection tracker. A failed refresh leaves it stale but intact.
type View struct {
	Cart      domain.Cart
	Selection *selection.Tracker
}

func NewView(tr *selection.Tracker) *View {
	if tr == nil {
		tr = selection.NewTracker()
	}
	return &View{Selection: tr}
}

// QuantityResult reports what a quantity update actually applied. Clamped is
// the soft stock-exceeded signal: the operation succeeded, at the reduced
// quantity.
type QuantityResult struct {
	Applied        int  `json:"applied"`
	Clamped        bool `json:"clamped"`
	AvailableStock int  `json:"availableStock,omitempty"`
}

// Summary aggregates the current selection for rendering.
type Summary struct {
	SelectedCount int            `json:"selectedCount"`
	TotalQuantity int            `json:"totalQuantity"`
	Totals        pricing.Totals `json:"totals"`
}

// Refresh replaces the view's cart with a fresh server snapshot and prunes
// the selection. On failure the previous view is left untouched.
func (s *Service) Refresh(ctx context.Context, v *View) error {
	fetched, err := s.api.FetchCart(ctx)
	if err != nil {
		return fmt.Errorf("fetch cart: %w", err)
	}
	v.Cart = fetched
	v.Selection.Prune(v.Cart)
	return nil
}

// Add puts quantity units of a product into the server cart and refreshes.
func (s *Service) Add(ctx context.Context, v *View, productID string, quantity int) error {
	if quantity < 1 {
		return domain.ErrInvalidQuantity
	}
	if err := s.api.AddToCart(ctx, productID, quantity); err != nil {
		return err
	}
	return s.Refresh(ctx, v)
}

// SetQuantity applies an absolute quantity to a line. Requests above known
// stock are clamped and reported, not rejected; requests below one are
// rejected locally so the caller can treat them as "remove line".
func (s *Service) SetQuantity(ctx context.Context, v *View, productID string, requested int) (QuantityResult, error) {
	if requested < 1 {
		return QuantityResult{}, domain.ErrInvalidQuantity
	}
	line := v.Cart.Line(productID)
	if line == nil {
		return QuantityResult{}, domain.ErrNotFound
	}

	result := QuantityResult{Applied: requested}
	if line.Stock != nil {
		result.AvailableStock = *line.Stock
		if requested > *line.Stock {
			result.Applied = *line.Stock
			result.Clamped = true
		}
	}

	if err := s.api.UpdateCartLine(ctx, productID, result.Applied); err != nil {
		return QuantityResult{}, err
	}
	if err := s.Refresh(ctx, v); err != nil {
		// The update itself went through; a stale view is acceptable here.
		s.logger.Printf("refresh after quantity update: %v", err)
	}
	return result, nil
}

// Remove deletes a line. Removing an id the view does not hold is a no-op
// success, which also makes a repeated remove idempotent.
func (s *Service) Remove(ctx context.Context, v *View, productID string) error {
	if v.Cart.Line(productID) == nil {
		return nil
	}
	if err := s.api.RemoveCartLine(ctx, productID); err != nil {
		return err
	}
	v.Selection.Deselect(productID)
	if err := s.Refresh(ctx, v); err != nil {
		s.logger.Printf("refresh after remove: %v", err)
	}
	return nil
}

// Clear empties the server cart and the selection.
func (s *Service) Clear(ctx context.Context, v *View) error {
	if err := s.api.ClearCart(ctx); err != nil {
		return err
	}
	v.Cart = domain.Cart{}
	v.Selection.Clear()
	return nil
}

// Summarize aggregates the selected lines in cart order.
func (s *Service) Summarize(v *View) Summary {
	selected := v.Selection.SelectedLines(v.Cart)
	return Summary{
		SelectedCount: len(selected),
		TotalQuantity: v.Cart.TotalQuantity(),
		Totals:        pricing.Sum(selected),
	}
}
