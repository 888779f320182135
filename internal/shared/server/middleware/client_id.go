package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const clientKeyKey = "clientKey"

// AnonymousClientKey is used when the caller sends no identity header. The
// service has no accounts; the key only namespaces stored artifacts.
const AnonymousClientKey = "anonymous"

// ClientID stores the caller's client key in context. Browsers and CLI
// clients may send X-Client-Id to keep their generations separate.
func ClientID() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := strings.TrimSpace(c.GetHeader("X-Client-Id"))
		if key == "" {
			key = AnonymousClientKey
		}
		c.Set(clientKeyKey, key)
		c.Next()
	}
}

// ClientKeyFromContext fetches the client key set by the ClientID middleware.
func ClientKeyFromContext(c *gin.Context) string {
	if c == nil {
		return AnonymousClientKey
	}
	val, _ := c.Get(clientKeyKey)
	if key, ok := val.(string); ok && key != "" {
		return key
	}
	return AnonymousClientKey
}
