package commerce

import (
	"context"

	"furniture-storefront/internal/domain"
)

func remoteError(message string) *domain.RemoteError {
	return &domain.RemoteError{Message: message}
}

// FetchCart returns the caller's current cart.
func (c *Client) FetchCart(ctx context.Context) (domain.Cart, error) {
	var cart domain.Cart
	if err := c.get(ctx, "/cart", &cart); err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}

// AddToCart adds quantity units of a product to the cart.
func (c *Client) AddToCart(ctx context.Context, productID string, quantity int) error {
	body := map[string]interface{}{"productId": productID, "quantity": quantity}
	return c.post(ctx, "/cart", body, nil)
}

// UpdateCartLine sets the absolute quantity of one cart line.
func (c *Client) UpdateCartLine(ctx context.Context, productID string, quantity int) error {
	body := map[string]interface{}{"quantity": quantity}
	return c.put(ctx, "/cart/"+pathEscape(productID), body, nil)
}

// RemoveCartLine deletes one cart line.
func (c *Client) RemoveCartLine(ctx context.Context, productID string) error {
	return c.delete(ctx, "/cart/"+pathEscape(productID))
}

// ClearCart removes every line from the cart.
func (c *Client) ClearCart(ctx context.Context) error {
	return c.delete(ctx, "/cart")
}

// CheckStock asks the server whether the given lines' quantities are
// satisfiable. Servers that report insufficiency as a failure envelope return
// an error here with no statuses; servers that report per-line results return
// them alongside a nil error.
func (c *Client) CheckStock(ctx context.Context, lines []domain.CartLine) ([]domain.StockStatus, error) {
	var statuses []domain.StockStatus
	if err := c.post(ctx, "/cart/check-stock", lines, &statuses); err != nil {
		return nil, err
	}
	return statuses, nil
}

// ListAddresses returns the caller's saved addresses.
func (c *Client) ListAddresses(ctx context.Context) ([]domain.Address, error) {
	var addrs []domain.Address
	if err := c.get(ctx, "/addresses", &addrs); err != nil {
		return nil, err
	}
	return addrs, nil
}

// AddAddress saves a new address and returns it with its assigned id.
func (c *Client) AddAddress(ctx context.Context, in domain.AddressInput) (domain.Address, error) {
	var addr domain.Address
	if err := c.post(ctx, "/addresses", in, &addr); err != nil {
		return domain.Address{}, err
	}
	return addr, nil
}

// UpdateAddress overwrites a saved address.
func (c *Client) UpdateAddress(ctx context.Context, id string, in domain.AddressInput) (domain.Address, error) {
	var addr domain.Address
	if err := c.put(ctx, "/addresses/"+pathEscape(id), in, &addr); err != nil {
		return domain.Address{}, err
	}
	return addr, nil
}

// DeleteAddress removes a saved address.
func (c *Client) DeleteAddress(ctx context.Context, id string) error {
	return c.delete(ctx, "/addresses/"+pathEscape(id))
}

// SetDefaultAddress marks one saved address as the default. The server unsets
// any previous default on its own.
func (c *Client) SetDefaultAddress(ctx context.Context, id string) error {
	return c.put(ctx, "/addresses/"+pathEscape(id)+"/default", map[string]interface{}{}, nil)
}

// CreateOrder submits an order and returns the created record.
func (c *Client) CreateOrder(ctx context.Context, in domain.OrderInput) (domain.Order, error) {
	var order domain.Order
	if err := c.post(ctx, "/orders", in, &order); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

// ListOrders returns the caller's order history.
func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.get(ctx, "/orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder returns one order by id.
func (c *Client) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	var order domain.Order
	if err := c.get(ctx, "/orders/"+pathEscape(id), &order); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

// CurrentUser returns the authenticated user's profile, used to prefill
// checkout contact fields.
func (c *Client) CurrentUser(ctx context.Context) (domain.User, error) {
	var user domain.User
	if err := c.get(ctx, "/auth/me", &user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}
