package domain

import "strings"

// Address is a saved shipping address. The Street field travels as "address"
// on the wire. At most one address per user carries IsDefault; the server is
// authoritative for that uniqueness.
type Address struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	FullName  string `json:"fullName"`
	Phone     string `json:"phone"`
	Street    string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	IsDefault bool   `json:"isDefault"`
}

// AddressInput is the payload for creating or updating a saved address.
type AddressInput struct {
	Name      string `json:"name"`
	FullName  string `json:"fullName"`
	Phone     string `json:"phone"`
	Street    string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	IsDefault bool   `json:"isDefault"`
}

// ShippingAddress is the resolved destination an order ships to, either copied
// from a saved Address or taken from the checkout form.
type ShippingAddress struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Street   string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
}

// Format renders the single-line form the order API expects.
func (a ShippingAddress) Format() string {
	parts := make([]string, 0, 3)
	if a.Street != "" {
		parts = append(parts, a.Street)
	}
	if a.City != "" {
		parts = append(parts, a.City)
	}
	tail := strings.TrimSpace(a.State + " " + a.ZipCode)
	if tail != "" {
		parts = append(parts, tail)
	}
	return strings.Join(parts, ", ")
}

// ShippingFields copies the deliverable fields of a saved address.
func (a Address) ShippingFields() ShippingAddress {
	return ShippingAddress{
		FullName: a.FullName,
		Phone:    a.Phone,
		Street:   a.Street,
		City:     a.City,
		State:    a.State,
		ZipCode:  a.ZipCode,
	}
}
