// Package httpkit provides HTTP session infrastructure for anonymous shoppers.
// This is part of the platform layer and contains no business logic.
package httpkit

import (
	"net/http"

	"shopfront_backend/platform/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextCartIDKey is the gin context key for the shopper's cart ID.
const ContextCartIDKey = "cartID"

// ShopperSession resolves the anonymous shopper's cart ID from a cookie,
// issuing a fresh UUID cookie when none is present.
func ShopperSession(cfg config.CartConfig) gin.HandlerFunc {
	cookieName := cfg.GetCartCookieName()
	maxAge := int(cfg.GetCartTTL().Seconds())

	return func(c *gin.Context) {
		cartID := readCartCookie(c, cookieName)
		if cartID == uuid.Nil {
			cartID = uuid.New()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cookieName, cartID.String(), maxAge, "/", "", c.Request.TLS != nil, true)
		}

		c.Set(ContextCartIDKey, cartID)
		c.Next()
	}
}

// MustGetCartID extracts the cart ID set by ShopperSession. It aborts with
// 500 when the middleware did not run; handlers check for uuid.Nil.
func MustGetCartID(c *gin.Context) uuid.UUID {
	value, ok := c.Get(ContextCartIDKey)
	if !ok {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "missing shopper session"})
		return uuid.Nil
	}

	cartID, ok := value.(uuid.UUID)
	if !ok {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "missing shopper session"})
		return uuid.Nil
	}

	return cartID
}

func readCartCookie(c *gin.Context, cookieName string) uuid.UUID {
	raw, err := c.Cookie(cookieName)
	if err != nil {
		return uuid.Nil
	}

	parsed, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}

	return parsed
}
