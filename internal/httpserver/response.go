package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"furniture-storefront/internal/domain"
)

// apiResponse is the envelope every storefront endpoint answers with,
// mirroring the commerce API's own shape so page code handles both the same
// way.
type apiResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, apiResponse{Success: true, Data: data})
}

func respondMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, apiResponse{Success: true, Message: message, Data: data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, apiResponse{Success: false, Message: message})
}

// respondDomainError maps workflow errors onto HTTP statuses. Validation
// failures are 400s, stock and re-entrancy conflicts 409s, upstream failures
// 502s.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrEmptySelection),
		errors.Is(err, domain.ErrMissingContactInfo),
		errors.Is(err, domain.ErrIncompleteAddress):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrSubmissionInFlight):
		respondError(c, http.StatusConflict, err.Error())
	default:
		var stock *domain.StockUnavailableError
		if errors.As(err, &stock) {
			c.JSON(http.StatusConflict, apiResponse{
				Success: false,
				Message: stock.Error(),
				Data:    gin.H{"unavailable": stock.ProductIDs},
			})
			return
		}
		var remote *domain.RemoteError
		if errors.As(err, &remote) {
			respondError(c, http.StatusBadGateway, remote.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
	}
}
