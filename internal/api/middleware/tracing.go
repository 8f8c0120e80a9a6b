package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"
)

// Tracing returns Echo middleware that starts a server span per request and
// extracts any incoming trace context. Operational paths are not traced. A
// nil provider uses the global tracer provider.
func Tracing(service string, tp trace.TracerProvider) echo.MiddlewareFunc {
	opts := []otelhttp.Option{
		otelhttp.WithFilter(func(r *http.Request) bool {
			return !isOperational(r.URL.Path)
		}),
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	}
	if tp != nil {
		opts = append(opts, otelhttp.WithTracerProvider(tp))
	}
	return echo.WrapMiddleware(otelhttp.NewMiddleware(service, opts...))
}
