// Package seed fills a user's cart through the commerce API so the cart and
// checkout flows have data to work against during development.
package seed

import (
	"context"
	"fmt"
)

type cartAdder interface {
	AddToCart(ctx context.Context, productID string, quantity int) error
}

type Item struct {
	ProductID string
	Quantity  int
}

// DefaultItems matches the demo catalog the commerce API ships with.
var DefaultItems = []Item{
	{ProductID: "sofa-1", Quantity: 2},
	{ProductID: "chair-2", Quantity: 1},
	{ProductID: "table-3", Quantity: 1},
}

// Apply adds each item to the authenticated user's cart.
func Apply(ctx context.Context, api cartAdder, items []Item) error {
	if len(items) == 0 {
		items = DefaultItems
	}
	for _, it := range items {
		if err := api.AddToCart(ctx, it.ProductID, it.Quantity); err != nil {
			return fmt.Errorf("add %s: %w", it.ProductID, err)
		}
	}
	return nil
}
