package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"furniture-storefront/internal/domain"
	"furniture-storefront/internal/pricing"
	"furniture-storefront/internal/selection"
	cartsvc "furniture-storefront/internal/service/cart"
	"furniture-storefront/internal/session"
)

type cartLineView struct {
	domain.CartLine
	Selected           bool    `json:"selected"`
	OverStock          bool    `json:"overStock"`
	EffectiveUnitPrice float64 `json:"effectiveUnitPrice"`
	OriginalSubtotal   float64 `json:"originalSubtotal"`
	DiscountedSubtotal float64 `json:"discountedSubtotal"`
}

type cartSummaryView struct {
	SelectedCount   int    `json:"selectedCount"`
	TotalQuantity   int    `json:"totalQuantity"`
	OriginalTotal   string `json:"originalTotal"`
	DiscountedTotal string `json:"discountedTotal"`
	DiscountAmount  string `json:"discountAmount"`
}

type cartResponse struct {
	Items   []cartLineView  `json:"items"`
	Summary cartSummaryView `json:"summary"`
}

func toCartResponse(view *cartsvc.View, summary cartsvc.Summary) cartResponse {
	items := make([]cartLineView, 0, len(view.Cart.Items))
	for _, l := range view.Cart.Items {
		items = append(items, cartLineView{
			CartLine:           l,
			Selected:           view.Selection.IsSelected(l.ProductID),
			OverStock:          l.OverStock(),
			EffectiveUnitPrice: pricing.EffectiveUnitPrice(l),
			OriginalSubtotal:   pricing.LineOriginalSubtotal(l),
			DiscountedSubtotal: pricing.LineDiscountedSubtotal(l),
		})
	}
	return cartResponse{
		Items: items,
		Summary: cartSummaryView{
			SelectedCount:   summary.SelectedCount,
			TotalQuantity:   summary.TotalQuantity,
			OriginalTotal:   pricing.FormatAmount(summary.Totals.Original),
			DiscountedTotal: pricing.FormatAmount(summary.Totals.Discounted),
			DiscountAmount:  pricing.FormatAmount(summary.Totals.Discount),
		},
	}
}

// loadView rebuilds the session's cart view: stored selection plus a fresh
// cart snapshot when refresh is requested.
func (h *handlers) loadView(c *gin.Context, refresh bool) (*cartsvc.View, session.State, bool) {
	st, err := h.sessions.Get(c.Request.Context(), sessionID(c))
	if err != nil {
		h.logger.Printf("load session: %v", err)
		respondError(c, http.StatusInternalServerError, "session store unavailable")
		return nil, session.State{}, false
	}
	view := cartsvc.NewView(selection.FromIDs(st.SelectedIDs))
	if refresh {
		if err := h.carts.Refresh(c.Request.Context(), view); err != nil {
			respondDomainError(c, err)
			return nil, session.State{}, false
		}
	}
	return view, st, true
}

func (h *handlers) saveSelection(c *gin.Context, st session.State, view *cartsvc.View) {
	st.SelectedIDs = view.Selection.IDs()
	if err := h.sessions.Put(c.Request.Context(), sessionID(c), st); err != nil {
		h.logger.Printf("save session: %v", err)
	}
}

func (h *handlers) getCart(c *gin.Context) {
	view, st, ok := h.loadView(c, true)
	if !ok {
		return
	}
	h.saveSelection(c, st, view)
	respondOK(c, toCartResponse(view, h.carts.Summarize(view)))
}

type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

func (h *handlers) addCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "productId is required")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	view, st, ok := h.loadView(c, false)
	if !ok {
		return
	}
	if err := h.carts.Add(c.Request.Context(), view, req.ProductID, req.Quantity); err != nil {
		respondDomainError(c, err)
		return
	}
	h.saveSelection(c, st, view)
	respondMessage(c, "Item added to cart", toCartResponse(view, h.carts.Summarize(view)))
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *handlers) updateCartItem(c *gin.Context) {
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "quantity is required")
		return
	}
	view, st, ok := h.loadView(c, true)
	if !ok {
		return
	}
	result, err := h.carts.SetQuantity(c.Request.Context(), view, c.Param("productId"), req.Quantity)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	h.saveSelection(c, st, view)

	message := ""
	if result.Clamped {
		message = "Quantity limited to available stock"
	}
	respondMessage(c, message, gin.H{
		"result": result,
		"cart":   toCartResponse(view, h.carts.Summarize(view)),
	})
}

func (h *handlers) removeCartItem(c *gin.Context) {
	view, st, ok := h.loadView(c, true)
	if !ok {
		return
	}
	if err := h.carts.Remove(c.Request.Context(), view, c.Param("productId")); err != nil {
		respondDomainError(c, err)
		return
	}
	h.saveSelection(c, st, view)
	respondMessage(c, "Item removed", toCartResponse(view, h.carts.Summarize(view)))
}

func (h *handlers) clearCart(c *gin.Context) {
	view, st, ok := h.loadView(c, false)
	if !ok {
		return
	}
	if err := h.carts.Clear(c.Request.Context(), view); err != nil {
		respondDomainError(c, err)
		return
	}
	h.saveSelection(c, st, view)
	respondMessage(c, "Cart cleared", toCartResponse(view, h.carts.Summarize(view)))
}
