package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// requestIDMaxLen begrenzt extern übergebene Request-IDs (Log-Injection)
const requestIDMaxLen = 64

// RequestID liest X-Request-ID aus dem Request oder erzeugt eine UUID.
// Die ID landet im gin.Context und im Antwort-Header X-Request-ID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" || len(rid) > requestIDMaxLen {
			rid = uuid.New().String()
		}

		c.Set(requestIDKey, rid)
		c.Header("X-Request-ID", rid)

		c.Next()
	}
}
