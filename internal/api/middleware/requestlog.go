package middleware

import (
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// Health check outcomes tracked by healthSampler.
const (
	healthUnknown int32 = iota
	healthOK
	healthFailing
)

// healthSampler logs a health check path only when its outcome changes: the
// first response, then every flip between healthy and failing.
type healthSampler struct {
	healthz atomic.Int32
	readyz  atomic.Int32
}

// changed records the outcome for path and reports whether it differs from
// the previous one. Paths other than /healthz and /readyz always report true.
func (h *healthSampler) changed(path string, status int) bool {
	var last *atomic.Int32
	switch path {
	case "/healthz":
		last = &h.healthz
	case "/readyz":
		last = &h.readyz
	default:
		return true
	}

	outcome := healthOK
	if status >= http.StatusBadRequest {
		outcome = healthFailing
	}
	return last.Swap(outcome) != outcome
}

// RequestLog returns Echo middleware that logs one structured line per
// request. The X-Request-ID header is honoured or generated, echoed back and
// stored on the context for Recovery. Metrics scrapes are not logged and
// health checks are logged only when their outcome changes.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var health healthSampler

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			reqID := req.Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			c.Set(requestIDKey, reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			err := next(c)

			path := req.URL.Path
			if path == "/metrics" {
				return err
			}
			status := statusOf(c, err)
			if !health.changed(path, status) {
				return err
			}
			level := levelFor(path, status)

			attrs := []slog.Attr{
				slog.String("method", req.Method),
				slog.String("path", path),
				slog.Int("status", status),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
				slog.String("request_id", reqID),
			}
			if route := c.Path(); route != "" && route != path {
				attrs = append(attrs, slog.String("route", route))
			}
			log.LogAttrs(req.Context(), level, "request", attrs...)

			return err
		}
	}
}

// levelFor maps a response to a log level. A failing health check is a
// warning: the server answered, a dependency did not.
func levelFor(path string, status int) slog.Level {
	switch {
	case isHealthCheck(path) && status >= http.StatusBadRequest:
		return slog.LevelWarn
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
