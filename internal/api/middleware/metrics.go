// Package middleware provides Echo middleware for the competitive price monitor.
package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/competitive-price-monitor/internal/metrics"
)

// unmatchedRoute labels requests that hit no registered route, keeping the
// path label bounded to the route table.
const unmatchedRoute = "unmatched"

// operationalPaths are scraped or polled by the platform and never recorded
// as API traffic. Tracing skips them too.
var operationalPaths = map[string]struct{}{
	"/metrics": {},
	"/healthz": {},
	"/readyz":  {},
}

func isOperational(path string) bool {
	_, ok := operationalPaths[path]
	return ok
}

// isHealthCheck reports whether path is a liveness or readiness endpoint.
func isHealthCheck(path string) bool {
	return path == "/healthz" || path == "/readyz"
}

// Metrics returns Echo middleware that records API request counts, latency
// and concurrency, labelled by route template. Operational paths only flip the
// healthz/readyz gauges.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			urlPath := c.Request().URL.Path
			if isOperational(urlPath) {
				err := next(c)
				recordHealth(urlPath, statusOf(c, err))
				return err
			}

			metrics.HTTPRequestsInFlight.Inc()
			defer metrics.HTTPRequestsInFlight.Dec()

			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" || route == "/*" {
				route = unmatchedRoute
			}
			method := c.Request().Method
			status := strconv.Itoa(statusOf(c, err))

			metrics.HTTPRequestDuration.WithLabelValues(method, route, status).
				Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()

			return err
		}
	}
}

// statusOf returns the status the client will see. When the handler returned
// an error without writing, Echo's error handler has not run yet, so the
// status comes from the error.
func statusOf(c echo.Context, err error) int {
	if c.Response().Committed || err == nil {
		return c.Response().Status
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}

func recordHealth(path string, status int) {
	up := 0.0
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		up = 1
	}
	switch path {
	case "/healthz":
		metrics.HealthzUp.Set(up)
	case "/readyz":
		metrics.ReadyzUp.Set(up)
	}
}
