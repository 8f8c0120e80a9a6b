package middleware

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/danielgtaylor/huma/v2"
	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/competitive-price-monitor/internal/metrics"
)

// Recovery returns Echo middleware that turns a handler panic into a 500
// problem response matching the API's other errors. The panic value, stack
// and request id are logged at ERROR.
func Recovery(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				metrics.HTTPPanicsTotal.Inc()

				req := c.Request()
				log.ErrorContext(req.Context(), "panic recovered",
					"error", fmt.Sprint(r),
					"method", req.Method,
					"path", req.URL.Path,
					"request_id", c.Get(requestIDKey),
					"stack", string(debug.Stack()),
				)

				if c.Response().Committed {
					return
				}
				body, _ := json.Marshal(&huma.ErrorModel{
					Title:  http.StatusText(http.StatusInternalServerError),
					Status: http.StatusInternalServerError,
					Detail: "internal server error",
				})
				err = c.Blob(http.StatusInternalServerError, "application/problem+json", body)
			}()
			return next(c)
		}
	}
}
