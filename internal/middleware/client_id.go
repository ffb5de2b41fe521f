package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// ClientIDKey is the context key for the rate limiting client identifier.
	ClientIDKey = "client_id"

	forwardedForHeader   = "X-Forwarded-For"
	cfConnectingIPHeader = "CF-Connecting-IP"
	unknownClient        = "unknown"
)

// ClientID resolves the identifier requests are rate limited by: the first
// X-Forwarded-For entry, then CF-Connecting-IP, then the peer address.
// Clients that cannot be identified share the "unknown" bucket.
func ClientID() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ClientIDKey, resolveClientID(c))
		c.Next()
	}
}

func resolveClientID(c *gin.Context) string {
	if xff := c.GetHeader(forwardedForHeader); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if ip := strings.TrimSpace(c.GetHeader(cfConnectingIPHeader)); ip != "" {
		return ip
	}
	if ip := c.RemoteIP(); ip != "" {
		return ip
	}
	return unknownClient
}

// GetClientID retrieves the client identifier from the gin context.
func GetClientID(c *gin.Context) string {
	if id := c.GetString(ClientIDKey); id != "" {
		return id
	}
	return unknownClient
}
