package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/competitive-price-monitor/internal/engine"
	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

// SnapshotsProvider defines the engine operations required by the snapshots handler.
type SnapshotsProvider interface {
	RecordSnapshot(ctx context.Context, s *domain.Snapshot) error
	CompareAndAlert(ctx context.Context, in engine.CompareInput) (*domain.CompareResult, error)
}

// SnapshotsHandler records snapshots and compares values against them.
type SnapshotsHandler struct {
	snapshots SnapshotsProvider
}

// NewSnapshotsHandler creates a new SnapshotsHandler.
func NewSnapshotsHandler(p SnapshotsProvider) *SnapshotsHandler {
	return &SnapshotsHandler{snapshots: p}
}

// RecordSnapshotInput is the request body for recording a snapshot.
type RecordSnapshotInput struct {
	Body struct {
		ASIN               string `json:"asin"                          minLength:"1" doc:"Product ASIN"`
		Value              string `json:"value"                         example:"19.99" doc:"Price or rank"`
		Currency           string `json:"currency,omitempty"            example:"USD" doc:"Currency code, or RANK"`
		SellerSKU          string `json:"seller_sku,omitempty"`
		ValueType          string `json:"value_type,omitempty"          example:"current_price"`
		Condition          string `json:"condition,omitempty"`
		FulfillmentChannel string `json:"fulfillment_channel,omitempty"`
		DataSource         string `json:"data_source,omitempty"         example:"api"`
	}
}

// SnapshotOutput is the response body for a recorded snapshot.
type SnapshotOutput struct {
	Body *domain.Snapshot
}

// CompareInput is the request body for comparing a value against its snapshot.
type CompareInput struct {
	Body struct {
		ASIN             string `json:"asin"                        minLength:"1" doc:"Product ASIN"`
		CurrentValue     string `json:"current_value"               example:"17.49" doc:"Newly observed price or rank"`
		Currency         string `json:"currency,omitempty"          example:"USD"`
		SellerSKU        string `json:"seller_sku,omitempty"`
		ProductName      string `json:"product_name,omitempty"`
		CompetitorName   string `json:"competitor_name,omitempty"`
		ThresholdPercent string `json:"threshold_percent,omitempty" example:"10" doc:"Defaults to the configured compare threshold"`
	}
}

// CompareOutput is the response body for a compare request.
type CompareOutput struct {
	Body *domain.CompareResult
}

// Record stores a value as the latest snapshot for its ASIN.
func (h *SnapshotsHandler) Record(ctx context.Context, input *RecordSnapshotInput) (*SnapshotOutput, error) {
	b := input.Body
	value, err := parseDecimal("value", b.Value)
	if err != nil {
		return nil, err
	}

	snap := &domain.Snapshot{
		ASIN:               b.ASIN,
		Value:              value,
		Currency:           b.Currency,
		SellerSKU:          b.SellerSKU,
		ValueType:          b.ValueType,
		Condition:          b.Condition,
		FulfillmentChannel: b.FulfillmentChannel,
		DataSource:         b.DataSource,
	}
	if snap.DataSource == "" {
		snap.DataSource = "api"
	}
	if err := h.snapshots.RecordSnapshot(ctx, snap); err != nil {
		return nil, toHTTPError("recording snapshot", err)
	}
	return &SnapshotOutput{Body: snap}, nil
}

// Compare compares a value against the last snapshot and alerts on large moves.
func (h *SnapshotsHandler) Compare(ctx context.Context, input *CompareInput) (*CompareOutput, error) {
	b := input.Body
	current, err := parseDecimal("current_value", b.CurrentValue)
	if err != nil {
		return nil, err
	}

	in := engine.CompareInput{
		ASIN:           b.ASIN,
		CurrentValue:   current,
		Currency:       b.Currency,
		SellerSKU:      b.SellerSKU,
		ProductName:    b.ProductName,
		CompetitorName: b.CompetitorName,
	}
	if b.ThresholdPercent != "" {
		threshold, err := parseDecimal("threshold_percent", b.ThresholdPercent)
		if err != nil {
			return nil, err
		}
		in.ThresholdPercent = &threshold
	}

	res, err := h.snapshots.CompareAndAlert(ctx, in)
	if err != nil {
		return nil, toHTTPError("comparing snapshot", err)
	}
	return &CompareOutput{Body: res}, nil
}

// RegisterSnapshotRoutes registers snapshot endpoints with the Huma API.
func RegisterSnapshotRoutes(api huma.API, h *SnapshotsHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "record-snapshot",
		Method:        http.MethodPost,
		Path:          "/api/v1/snapshots",
		Summary:       "Record a snapshot",
		Description:   "Replaces the last known value for the ASIN and appends it to the history.",
		Tags:          []string{"snapshots"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.Record)

	huma.Register(api, huma.Operation{
		OperationID: "compare-snapshot",
		Method:      http.MethodPost,
		Path:        "/api/v1/snapshots/compare",
		Summary:     "Compare against the last snapshot",
		Description: "Stores a baseline when none exists, otherwise raises a movement alert " +
			"when the change reaches the threshold. The snapshot is always updated.",
		Tags:   []string{"snapshots"},
		Errors: []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.Compare)
}
