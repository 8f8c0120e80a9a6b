package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

// HistoryProvider defines the engine operations required by the history handler.
type HistoryProvider interface {
	PriceHistory(ctx context.Context, asin string, days, limit int) ([]domain.Snapshot, error)
	RankHistory(ctx context.Context, asin string, days, limit int) ([]domain.Snapshot, error)
}

// HistoryHandler serves recorded price and rank history.
type HistoryHandler struct {
	history HistoryProvider
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(p HistoryProvider) *HistoryHandler {
	return &HistoryHandler{history: p}
}

// HistoryInput holds the path and query parameters for a history request.
type HistoryInput struct {
	ASIN  string `path:"asin"   doc:"Product ASIN"`
	Days  int    `query:"days"  default:"30"  minimum:"1" maximum:"365" doc:"Lookback window in days"`
	Limit int    `query:"limit" default:"100" minimum:"1" maximum:"1000" doc:"Maximum points to return"`
}

// HistoryOutput is the response body for a history request.
type HistoryOutput struct {
	Body []domain.Snapshot
}

// Prices returns recorded price points, newest first.
func (h *HistoryHandler) Prices(ctx context.Context, input *HistoryInput) (*HistoryOutput, error) {
	points, err := h.history.PriceHistory(ctx, input.ASIN, input.Days, input.Limit)
	if err != nil {
		return nil, toHTTPError("price history", err)
	}
	return historyOutput(points), nil
}

// Ranks returns recorded rank points, newest first.
func (h *HistoryHandler) Ranks(ctx context.Context, input *HistoryInput) (*HistoryOutput, error) {
	points, err := h.history.RankHistory(ctx, input.ASIN, input.Days, input.Limit)
	if err != nil {
		return nil, toHTTPError("rank history", err)
	}
	return historyOutput(points), nil
}

func historyOutput(points []domain.Snapshot) *HistoryOutput {
	if points == nil {
		points = []domain.Snapshot{}
	}
	return &HistoryOutput{Body: points}
}

// RegisterHistoryRoutes registers history endpoints with the Huma API.
func RegisterHistoryRoutes(api huma.API, h *HistoryHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "price-history",
		Method:      http.MethodGet,
		Path:        "/api/v1/history/{asin}/prices",
		Summary:     "Price history",
		Description: "Returns recorded price snapshots for an ASIN within the window, newest first.",
		Tags:        []string{"history"},
		Errors:      []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.Prices)

	huma.Register(api, huma.Operation{
		OperationID: "rank-history",
		Method:      http.MethodGet,
		Path:        "/api/v1/history/{asin}/ranks",
		Summary:     "Rank history",
		Description: "Returns recorded sales rank snapshots for an ASIN within the window, newest first.",
		Tags:        []string{"history"},
		Errors:      []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.Ranks)
}
