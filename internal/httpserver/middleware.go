package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"furniture-storefront/internal/commerce"
)

const (
	sessionHeader    = "Storefront-Session"
	sessionCookie    = "storefront_session"
	sessionCtxKey    = "storefront.sessionID"
	sessionCookieAge = 86400
)

// sessionMiddleware resolves the browser's session id from the header or
// cookie, issuing a fresh one when absent. The id is echoed back on both so
// single-page and cookie-based clients stay attached to the same selection.
func sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(sessionHeader))
		if id == "" {
			if cookie, err := c.Cookie(sessionCookie); err == nil {
				id = cookie
			}
		}
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(sessionCtxKey, id)
		c.Header(sessionHeader, id)
		c.SetCookie(sessionCookie, id, sessionCookieAge, "/", "", false, true)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionCtxKey)
}

// authTokenMiddleware lifts the caller's bearer token onto the request
// context for the commerce client. Token issuance and storage live with the
// commerce API; the storefront only passes the token through.
func authTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if token == "" {
			respondError(c, http.StatusUnauthorized, "Please log in first")
			c.Abort()
			return
		}
		c.Request = c.Request.WithContext(commerce.WithToken(c.Request.Context(), token))
		c.Next()
	}
}
