package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"furniture-storefront/internal/domain"
	"furniture-storefront/internal/selection"
	cartsvc "furniture-storefront/internal/service/cart"
	checkoutsvc "furniture-storefront/internal/service/checkout"
)

type checkoutAPI interface {
	CheckStock(ctx context.Context, lines []domain.CartLine) ([]domain.StockStatus, error)
	CreateOrder(ctx context.Context, in domain.OrderInput) (domain.Order, error)
}

type checkoutRequest struct {
	ContactName   string                  `json:"contactName"`
	ContactPhone  string                  `json:"contactPhone"`
	PaymentMethod string                  `json:"paymentMethod"`
	Notes         string                  `json:"notes"`
	AddressID     string                  `json:"addressId"`
	Address       *domain.ShippingAddress `json:"address"`
	SaveAddress   bool                    `json:"saveAddress"`
}

// submitCheckout runs one full submission. The session's in-flight flag
// extends the orchestrator's re-entrancy guard across tabs sharing a session.
func (h *handlers) submitCheckout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid checkout payload")
		return
	}

	ctx := c.Request.Context()
	st, err := h.sessions.Get(ctx, sessionID(c))
	if err != nil {
		h.logger.Printf("load session: %v", err)
		respondError(c, http.StatusInternalServerError, "session store unavailable")
		return
	}
	if st.SubmissionInFlight {
		respondDomainError(c, domain.ErrSubmissionInFlight)
		return
	}

	view := cartsvc.NewView(selection.FromIDs(st.SelectedIDs))
	st.SubmissionInFlight = true
	if err := h.sessions.Put(ctx, sessionID(c), st); err != nil {
		h.logger.Printf("save session: %v", err)
		respondError(c, http.StatusInternalServerError, "session store unavailable")
		return
	}
	defer func() {
		st.SubmissionInFlight = false
		st.SelectedIDs = view.Selection.IDs()
		// The flag must clear even when the client disconnected mid-submit
		// and the request context is already canceled; a stuck flag would
		// block the session from checking out until the TTL expires.
		cleanupCtx := context.WithoutCancel(ctx)
		if err := h.sessions.Put(cleanupCtx, sessionID(c), st); err != nil {
			h.logger.Printf("save session: %v", err)
		}
	}()

	if err := h.carts.Refresh(ctx, view); err != nil {
		respondDomainError(c, err)
		return
	}

	mgr, err := h.addresses.Load(ctx)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	switch {
	case req.AddressID != "":
		if err := mgr.Select(req.AddressID); err != nil {
			respondDomainError(c, err)
			return
		}
	case req.Address != nil:
		mgr.UseAdHoc(*req.Address)
	}

	result, err := h.newOrchestrator().Submit(ctx, view, mgr, checkoutsvc.Input{
		ContactName:   req.ContactName,
		ContactPhone:  req.ContactPhone,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		SaveAddress:   req.SaveAddress,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondMessage(c, "The order was successfully created", result)
}
