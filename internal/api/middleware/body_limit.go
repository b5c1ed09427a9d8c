package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/antrhizom/stud-i-agency-check/pkg/response"
)

// BodyLimit begrenzt die Grösse des Request-Bodys.
// maxBytes z.B. 1<<20 für 1 MB.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()

		if c.IsAborted() {
			return
		}
		for _, err := range c.Errors {
			if err.Err != nil && err.Err.Error() == "http: request body too large" {
				response.Error(c, http.StatusRequestEntityTooLarge, 10005, "Request-Body zu gross")
				return
			}
		}
	}
}
