package http

import (
	"orderservice/internal/pkg/logctx"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RequestID returns middleware that accepts the X-Request-ID header or
// generates a fresh id, echoes it on the response, and binds it into the
// request context so application logs carry the correlation id.
func RequestID() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		RequestIDHandler: func(c echo.Context, id string) {
			ctx := logctx.WithRequestID(c.Request().Context(), id)
			c.SetRequest(c.Request().WithContext(ctx))
		},
	})
}
