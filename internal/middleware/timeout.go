package middleware

import (
	"context"
	"time"

	"github.com/wb-go/wbf/ginext"
)

// Timeout bounds the request context. Handlers see ctx.Err() once it fires.
func Timeout(d time.Duration) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if d <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
