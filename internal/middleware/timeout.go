package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vetdesk/vetclinic-api/pkg/httputil"
)

type TimeoutConfig struct {
	Duration time.Duration
}

func DefaultTimeoutConfig() TimeoutConfig {
	return TimeoutConfig{Duration: 30 * time.Second}
}

// Timeout bounds request handling by the configured duration.
func Timeout(config TimeoutConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), config.Duration)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		done := make(chan struct{})
		go func() {
			c.Next()
			close(done)
		}()

		select {
		case <-done:
		case <-ctx.Done():
			if ctx.Err() == context.DeadlineExceeded {
				c.AbortWithStatusJSON(http.StatusGatewayTimeout, httputil.Response{
					Status:  "error",
					Message: "request timeout",
				})
			}
		}
	}
}
