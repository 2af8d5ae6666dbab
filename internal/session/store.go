// Package session persists the per-browser workflow state the storefront owns
// itself: the checkout selection and the in-flight submission guard. Carts,
// addresses and orders live on the commerce API; this state is view-local and
// expires with the session.
package session

import "context"

// State is everything stored per session.
type State struct {
	// SelectedIDs are the product ids currently chosen for checkout.
	SelectedIDs []string `json:"selectedIds"`
	// SubmissionInFlight guards against re-entrant order submissions,
	// including from a second tab on the same session.
	SubmissionInFlight bool `json:"submissionInFlight"`
}

// Store is the session state backend. Get on an unknown id returns a zero
// State and no error; sessions come into existence on first write.
type Store interface {
	Get(ctx context.Context, sessionID string) (State, error)
	Put(ctx context.Context, sessionID string, st State) error
	Delete(ctx context.Context, sessionID string) error
	Ping(ctx context.Context) error
}
