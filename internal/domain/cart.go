package domain

// CartLine is one product entry in the cart as reported by the commerce API.
// Stock is nil when the server did not report availability for the product.
type CartLine struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	UnitPrice   float64 `json:"price"`
	Discount    float64 `json:"discount"`
	Quantity    int     `json:"quantity"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Stock       *int    `json:"stock,omitempty"`
}

type Cart struct {
	Items []CartLine `json:"items"`
}

// Line returns the line for productID, or nil when the cart has no such line.
func (c *Cart) Line(productID string) *CartLine {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// TotalQuantity sums the quantities of every line, for the navbar badge.
func (c *Cart) TotalQuantity() int {
	total := 0
	for i := range c.Items {
		total += c.Items[i].Quantity
	}
	return total
}

// OverStock reports whether the held quantity exceeds known availability.
// Unknown stock never flags a line.
func (l CartLine) OverStock() bool {
	return l.Stock != nil && l.Quantity > *l.Stock
}
