package domain

// Order is an order as returned by the commerce API.
type Order struct {
	ID              string     `json:"id"`
	Items           []CartLine `json:"items"`
	TotalAmount     float64    `json:"totalAmount"`
	OriginalTotal   float64    `json:"originalTotal"`
	DiscountTotal   float64    `json:"discountTotal"`
	Status          string     `json:"status"`
	ShippingAddress string     `json:"shippingAddress"`
	PaymentMethod   string     `json:"paymentMethod"`
	CreatedAt       string     `json:"createdAt"`
	ContactName     string     `json:"contactName"`
	ContactPhone    string     `json:"contactPhone"`
}

// OrderInput is the order-create payload. Items carries the checkout snapshot
// so the server settles exactly the selected lines.
type OrderInput struct {
	ContactName     string     `json:"contactName"`
	ContactPhone    string     `json:"contactPhone"`
	ShippingAddress string     `json:"shippingAddress"`
	PaymentMethod   string     `json:"paymentMethod"`
	Notes           string     `json:"notes,omitempty"`
	Items           []CartLine `json:"items"`
}

// StockStatus is one entry of a stock-check response.
type StockStatus struct {
	ProductID      string `json:"productId"`
	Satisfiable    bool   `json:"satisfiable"`
	AvailableStock int    `json:"availableStock"`
}
