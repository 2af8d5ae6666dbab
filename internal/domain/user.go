package domain

// User is the authenticated customer's profile as returned by the commerce
// API. Only the fields the checkout form prefills are carried.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}
