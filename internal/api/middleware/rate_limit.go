package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/antrhizom/stud-i-agency-check/pkg/redis"
	"github.com/antrhizom/stud-i-agency-check/pkg/response"
)

// RateLimit begrenzt Anfragen pro IP und Route über ein Redis-Zählfenster.
// Gedacht für den Code-Login, damit die 6-stelligen Zugangscodes nicht
// durchprobiert werden können. Ohne Redis wird durchgelassen.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			// Redis-Ausfall blockiert den Login nicht
			c.Next()
			return
		}

		if !allowed {
			response.Error(c, http.StatusTooManyRequests, 10004, "Zu viele Versuche, bitte später erneut")
			c.Abort()
			return
		}

		c.Next()
	}
}
