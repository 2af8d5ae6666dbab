package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"furniture-storefront/internal/domain"
)

func (h *handlers) listAddresses(c *gin.Context) {
	addrs, err := h.addresses.List(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, addrs)
}

func (h *handlers) addAddress(c *gin.Context) {
	var in domain.AddressInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "invalid address payload")
		return
	}
	addr, err := h.addresses.Add(c.Request.Context(), in)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondMessage(c, "Address added", addr)
}

func (h *handlers) updateAddress(c *gin.Context) {
	var in domain.AddressInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "invalid address payload")
		return
	}
	addr, err := h.addresses.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondMessage(c, "Address updated", addr)
}

func (h *handlers) deleteAddress(c *gin.Context) {
	if err := h.addresses.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondDomainError(c, err)
		return
	}
	respondMessage(c, "Address deleted", nil)
}

func (h *handlers) setDefaultAddress(c *gin.Context) {
	if err := h.addresses.SetDefault(c.Request.Context(), c.Param("id")); err != nil {
		respondDomainError(c, err)
		return
	}
	respondMessage(c, "Default address updated", nil)
}
