package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

// Recovery recovers from panics, logs the stack, and answers with a
// user-facing apology carrying the support contact. Panic values may
// quote intake data, so the logged error goes through no user-visible
// path and the response never includes it.
func Recovery(supportEmail string) gin.HandlerFunc {
	message := "Something went wrong on our side. Please try again later."
	if supportEmail != "" {
		message = fmt.Sprintf(
			"Something went wrong on our side. Please try again, and contact %s if the problem persists.",
			supportEmail)
	}

	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				// Get request ID for tracing
				requestID := GetRequestID(c)

				// Log the panic with stack trace
				slog.Error("panic recovered",
					"error", err,
					"request_id", requestID,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"stack", string(debug.Stack()),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error":      message,
					"request_id": requestID,
				})
			}
		}()

		c.Next()
	}
}
