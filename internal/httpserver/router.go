package httpserver

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	addresssvc "furniture-storefront/internal/service/address"
	cartsvc "furniture-storefront/internal/service/cart"
	checkoutsvc "furniture-storefront/internal/service/checkout"
	"furniture-storefront/internal/session"
)

// commerceGateway is the slice of the commerce client the handlers call
// directly, outside the cart/address services.
type commerceGateway interface {
	checkoutAPI
	ordersAPI
}

// Deps carries the services the handlers need.
type Deps struct {
	Carts     *cartsvc.Service
	Addresses *addresssvc.Service
	Commerce  commerceGateway
}

type handlers struct {
	carts     *cartsvc.Service
	addresses *addresssvc.Service
	commerce  commerceGateway
	sessions  session.Store
	logger    *log.Logger
}

func (h *handlers) newOrchestrator() *checkoutsvc.Orchestrator {
	return checkoutsvc.NewOrchestrator(h.commerce, h.addresses, h.logger)
}

// buildRouter wires routes for the storefront.
func buildRouter(logger *log.Logger, sessions session.Store, deps Deps, corsOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(corsConfig(corsOrigins)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(sessions))

	h := &handlers{
		carts:     deps.Carts,
		addresses: deps.Addresses,
		commerce:  deps.Commerce,
		sessions:  sessions,
		logger:    logger,
	}

	sf := router.Group("/storefront", sessionMiddleware(), authTokenMiddleware())
	{
		sf.GET("/cart", h.getCart)
		sf.POST("/cart/items", h.addCartItem)
		sf.PUT("/cart/items/:productId", h.updateCartItem)
		sf.DELETE("/cart/items/:productId", h.removeCartItem)
		sf.DELETE("/cart", h.clearCart)

		sf.PUT("/cart/selection/:productId", h.selectItem)
		sf.DELETE("/cart/selection/:productId", h.deselectItem)
		sf.PUT("/cart/selection", h.selectAll)
		sf.DELETE("/cart/selection", h.clearSelection)

		sf.GET("/addresses", h.listAddresses)
		sf.POST("/addresses", h.addAddress)
		sf.PUT("/addresses/:id", h.updateAddress)
		sf.DELETE("/addresses/:id", h.deleteAddress)
		sf.PUT("/addresses/:id/default", h.setDefaultAddress)

		sf.POST("/checkout", h.submitCheckout)

		sf.GET("/orders", h.listOrders)
		sf.GET("/orders/:id", h.getOrder)
		sf.GET("/profile", h.getProfile)
	}

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", sessionHeader}
	cfg.ExposeHeaders = []string{sessionHeader}
	return cfg
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func readyHandler(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		if err := sessions.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "session store not reachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
