package httpserver

import (
	"github.com/gin-gonic/gin"
)

// Selection endpoints refresh the cart first so a selection can never attach
// to a line the server no longer reports.

func (h *handlers) selectItem(c *gin.Context) {
	view, st, ok := h.loadView(c, true)
	if !ok {
		return
	}
	productID := c.Param("productId")
	if view.Cart.Line(productID) != nil {
		view.Selection.Select(productID)
	}
	h.saveSelection(c, st, view)
	respondOK(c, toCartResponse(view, h.carts.Summarize(view)))
}

func (h *handlers) deselectItem(c *gin.Context) {
	view, st, ok := h.loadView(c, true)
	if !ok {
		return
	}
	view.Selection.Deselect(c.Param("productId"))
	h.saveSelection(c, st, view)
	respondOK(c, toCartResponse(view, h.carts.Summarize(view)))
}

func (h *handlers) selectAll(c *gin.Context) {
	view, st, ok := h.loadView(c, true)
	if !ok {
		return
	}
	view.Selection.SelectAll(view.Cart)
	h.saveSelection(c, st, view)
	respondOK(c, toCartResponse(view, h.carts.Summarize(view)))
}

func (h *handlers) clearSelection(c *gin.Context) {
	view, st, ok := h.loadView(c, true)
	if !ok {
		return
	}
	view.Selection.Clear()
	h.saveSelection(c, st, view)
	respondOK(c, toCartResponse(view, h.carts.Summarize(view)))
}
