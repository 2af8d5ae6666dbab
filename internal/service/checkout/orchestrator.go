// Package checkout sequences stock verification, address resolution and order
// submission. Each submission runs through an explicit state machine so a
// second trigger while one is in flight is structurally rejected instead of
// guarded by ad hoc flags.
package checkout

import (
	"context"
	"errors"
	"log"
	"strings"

	"furniture-storefront/internal/domain"
	"furniture-storefront/internal/pricing"
	addresssvc "furniture-storefront/internal/service/address"
	cartsvc "furniture-storefront/internal/service/cart"
)

// State is the submission lifecycle position.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateAwaitingStock
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateAwaitingStock:
		return "awaiting-stock"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// ErrCompleted rejects reuse of an orchestrator whose submission succeeded.
var ErrCompleted = errors.New("submission already completed")

// DefaultPaymentMethod is applied when the form leaves the choice empty.
const DefaultPaymentMethod = "Online payment"

type commerceAPI interface {
	CheckStock(ctx context.Context, lines []domain.CartLine) ([]domain.StockStatus, error)
	CreateOrder(ctx context.Context, in domain.OrderInput) (domain.Order, error)
}

// Input is the checkout form contents for one submission.
type Input struct {
	ContactName   string
	ContactPhone  string
	PaymentMethod string
	Notes         string
	SaveAddress   bool
}

// Selection is the immutable snapshot a submission operates on. It is built
// once during validation; cart mutations made elsewhere afterward cannot
// reach an order already being submitted.
type Selection struct {
	Lines           []domain.CartLine
	ShippingAddress domain.ShippingAddress
	PaymentMethod   string
	Notes           string
}

// Result reports a successful submission.
type Result struct {
	OrderID string                 `json:"orderId"`
	Order   domain.Order           `json:"order"`
	Totals  pricing.CheckoutTotals `json:"totals"`
}

// Orchestrator drives one submission attempt from Idle to a terminal state.
type Orchestrator struct {
	api       commerceAPI
	addresses *addresssvc.Service
	logger    *log.Logger

	state    State
	snapshot Selection
	failure  error
}

func NewOrchestrator(api commerceAPI, addresses *addresssvc.Service, logger *log.Logger) *Orchestrator {
	return &Orchestrator{api: api, addresses: addresses, logger: logger, state: StateIdle}
}

// State returns the machine's current position.
func (o *Orchestrator) State() State {
	return o.state
}

// Snapshot returns the selection the submission operates on. Valid once the
// machine has left Validating.
func (o *Orchestrator) Snapshot() Selection {
	return o.snapshot
}

// FailureReason returns the error that moved the machine to Failed.
func (o *Orchestrator) FailureReason() error {
	return o.failure
}

// fail records the terminal failure. Failed is retryable: the next Submit
// call on this orchestrator starts over from validation.
func (o *Orchestrator) fail(err error) error {
	o.state = StateFailed
	o.failure = err
	return err
}

// Submit runs the full sequence: validate locally, snapshot the selection,
// verify stock, then create the order. Validation failures return the machine
// to Idle without any network call; stock or server rejections move it to
// Failed with no cart mutation, so a retry is safe.
func (o *Orchestrator) Submit(ctx context.Context, view *cartsvc.View, addrs *addresssvc.Manager, in Input) (Result, error) {
	switch o.state {
	case StateIdle, StateFailed:
	case StateSucceeded:
		return Result{}, ErrCompleted
	default:
		return Result{}, domain.ErrSubmissionInFlight
	}
	o.state = StateValidating
	o.failure = nil

	selected := view.Selection.SelectedLines(view.Cart)
	if len(selected) == 0 {
		o.state = StateIdle
		return Result{}, domain.ErrEmptySelection
	}
	if strings.TrimSpace(in.ContactName) == "" || strings.TrimSpace(in.ContactPhone) == "" {
		o.state = StateIdle
		return Result{}, domain.ErrMissingContactInfo
	}
	shipping, err := addrs.ResolveForOrder()
	if err != nil {
		o.state = StateIdle
		return Result{}, err
	}
	if over := overStockIDs(selected); len(over) > 0 {
		o.state = StateIdle
		return Result{}, &domain.StockUnavailableError{ProductIDs: over}
	}

	payment := strings.TrimSpace(in.PaymentMethod)
	if payment == "" {
		payment = DefaultPaymentMethod
	}
	o.snapshot = Selection{
		Lines:           append([]domain.CartLine(nil), selected...),
		ShippingAddress: shipping,
		PaymentMethod:   payment,
		Notes:           in.Notes,
	}

	// Saving the typed-in address is a side effect of the order, not a
	// precondition; its failure is logged inside the address service.
	o.addresses.PersistIfRequested(ctx, addrs, in.SaveAddress)

	o.state = StateAwaitingStock
	statuses, err := o.api.CheckStock(ctx, o.snapshot.Lines)
	if err != nil {
		var remote *domain.RemoteError
		if errors.As(err, &remote) {
			return Result{}, o.fail(&domain.StockUnavailableError{Message: remote.Message})
		}
		return Result{}, o.fail(err)
	}
	if unsat := unsatisfiableIDs(statuses); len(unsat) > 0 {
		return Result{}, o.fail(&domain.StockUnavailableError{ProductIDs: unsat})
	}

	o.state = StateSubmitting
	order, err := o.api.CreateOrder(ctx, domain.OrderInput{
		ContactName:     in.ContactName,
		ContactPhone:    in.ContactPhone,
		ShippingAddress: o.snapshot.ShippingAddress.Format(),
		PaymentMethod:   o.snapshot.PaymentMethod,
		Notes:           o.snapshot.Notes,
		Items:           o.snapshot.Lines,
	})
	if err != nil {
		return Result{}, o.fail(err)
	}

	o.state = StateSucceeded
	for _, l := range o.snapshot.Lines {
		view.Selection.Deselect(l.ProductID)
	}
	return Result{
		OrderID: order.ID,
		Order:   order,
		Totals:  pricing.SumForCheckout(o.snapshot.Lines),
	}, nil
}

func overStockIDs(lines []domain.CartLine) []string {
	var ids []string
	for _, l := range lines {
		if l.OverStock() {
			ids = append(ids, l.ProductID)
		}
	}
	return ids
}

func unsatisfiableIDs(statuses []domain.StockStatus) []string {
	var ids []string
	for _, st := range statuses {
		if !st.Satisfiable {
			ids = append(ids, st.ProductID)
		}
	}
	return ids
}
