package handlers

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/competitive-price-monitor/internal/engine"
	"github.com/donaldgifford/competitive-price-monitor/internal/store"
)

// ResultBody is the outcome body returned by alert lifecycle operations.
type ResultBody struct {
	Success bool   `json:"success" doc:"Whether the operation applied"`
	Message string `json:"message" example:"alert marked as read" doc:"Human readable outcome"`
}

// toHTTPError maps engine and store errors onto problem responses: unknown
// rows become 404, malformed input 400, anything else 500.
func toHTTPError(op string, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return huma.Error404NotFound(op + ": not found")
	case errors.Is(err, engine.ErrInvalidInput):
		return huma.Error400BadRequest(err.Error())
	default:
		return huma.Error500InternalServerError(op + " failed: " + err.Error())
	}
}
