package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"furniture-storefront/internal/domain"
)

type ordersAPI interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, id string) (domain.Order, error)
	CurrentUser(ctx context.Context) (domain.User, error)
}

func (h *handlers) listOrders(c *gin.Context) {
	orders, err := h.commerce.ListOrders(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, orders)
}

func (h *handlers) getOrder(c *gin.Context) {
	order, err := h.commerce.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, order)
}

// getProfile exposes the commerce profile for checkout contact prefill.
func (h *handlers) getProfile(c *gin.Context) {
	user, err := h.commerce.CurrentUser(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, user)
}
