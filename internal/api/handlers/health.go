// Package handlers implements HTTP handlers for the competitive price monitor API.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const defaultPingTimeout = 2 * time.Second

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness and readiness checks. They sit outside
// the Huma API so health checks keep working if OpenAPI registration fails.
type HealthHandler struct {
	db          Pinger
	version     string
	pingTimeout time.Duration
}

// NewHealthHandler creates a HealthHandler reporting the given build
// version.
func NewHealthHandler(db Pinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version, pingTimeout: defaultPingTimeout}
}

// HealthResponse is the body of both health checks.
type HealthResponse struct {
	Status   string `json:"status"             example:"ready"`
	Version  string `json:"version,omitempty"  example:"v0.4.0"`
	Database string `json:"database,omitempty" example:"ok"`
}

// Healthz returns 200 while the process is serving.
//
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func (h *HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok", Version: h.version})
}

// Readyz returns 200 when PostgreSQL answers a ping within the timeout and
// 503 otherwise, so the instance is taken out of rotation while the
// database is unreachable.
//
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func (h *HealthHandler) Readyz(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.pingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:   "unavailable",
			Version:  h.version,
			Database: "unreachable",
		})
	}
	return c.JSON(http.StatusOK, HealthResponse{Status: "ready", Version: h.version, Database: "ok"})
}
