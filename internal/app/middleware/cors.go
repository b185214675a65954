package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// defaultOrigin is handed back to any unlisted Origin. A browser on an
// unlisted origin fails its same-origin check against it; server-to-server
// callers without an Origin header are unaffected.
const defaultOrigin = "https://estatedesk.in"

var allowedOrigins = map[string]struct{}{
	"https://estatedesk.in":     {},
	"https://www.estatedesk.in": {},
	"http://localhost:5173":     {},
	"http://localhost:3000":     {},
}

// CORS applies the fixed origin allow-list and answers preflight requests.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowed := defaultOrigin
		if _, ok := allowedOrigins[origin]; ok {
			allowed = origin
		}

		c.Header("Access-Control-Allow-Origin", allowed)
		c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
		c.Header("Vary", "Origin")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
