package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidQuantity rejects quantity updates below one; callers decide
	// whether that means "remove the line".
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	// ErrEmptySelection rejects a checkout with no lines selected.
	ErrEmptySelection = errors.New("no items selected for checkout")
	// ErrMissingContactInfo rejects a checkout without contact name or phone.
	ErrMissingContactInfo = errors.New("contact name and phone are required")
	// ErrIncompleteAddress rejects an ad-hoc address missing required fields.
	ErrIncompleteAddress = errors.New("full name, phone and street address are required")
	// ErrSubmissionInFlight rejects a submit while another one is running.
	ErrSubmissionInFlight = errors.New("an order submission is already in progress")
)

// RemoteError carries a non-success response from the commerce API, transport
// failures included. Message is the server-provided text when present, else a
// generic fallback.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return "commerce api request failed"
	}
	return e.Message
}

// StockUnavailableError reports the lines a stock check found unsatisfiable.
type StockUnavailableError struct {
	ProductIDs []string
	Message    string
}

func (e *StockUnavailableError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("insufficient stock for %s", strings.Join(e.ProductIDs, ", "))
}
