package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/competitive-price-monitor/internal/engine"
	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

// ObservationsProvider defines the engine operations required by the
// observations handler.
type ObservationsProvider interface {
	IngestPrices(ctx context.Context, obs []domain.PriceObservation) *engine.IngestResult
	IngestRanks(ctx context.Context, obs []domain.RankObservation) *engine.IngestResult
}

// ObservationsHandler accepts price and rank observations from the collector.
type ObservationsHandler struct {
	ingest ObservationsProvider
}

// NewObservationsHandler creates a new ObservationsHandler.
func NewObservationsHandler(p ObservationsProvider) *ObservationsHandler {
	return &ObservationsHandler{ingest: p}
}

// PriceObservationBody is one observed price.
type PriceObservationBody struct {
	ASIN               string    `json:"asin"`
	SellerSKU          string    `json:"seller_sku,omitempty"`
	Amount             string    `json:"amount"                         example:"19.99"`
	Currency           string    `json:"currency,omitempty"             example:"USD"`
	Condition          string    `json:"condition,omitempty"            example:"new"`
	FulfillmentChannel string    `json:"fulfillment_channel,omitempty"  example:"FBA"`
	BelongsToRequester bool      `json:"belongs_to_requester,omitempty" doc:"True when the offer is our own listing"`
	Side               string    `json:"side,omitempty"                 enum:"own,competitor"`
	CapturedAt         time.Time `json:"captured_at,omitempty"`
}

// RankObservationBody is one observed sales rank.
type RankObservationBody struct {
	ASIN       string    `json:"asin"`
	SellerSKU  string    `json:"seller_sku,omitempty"`
	Rank       int64     `json:"rank"                  example:"1200"`
	Category   string    `json:"category,omitempty"`
	Side       string    `json:"side,omitempty"        enum:"own,competitor"`
	CapturedAt time.Time `json:"captured_at,omitempty"`
}

// IngestPricesInput is the request body for price ingestion.
type IngestPricesInput struct {
	Body struct {
		Observations []PriceObservationBody `json:"observations" minItems:"1" maxItems:"1000"`
	}
}

// IngestRanksInput is the request body for rank ingestion.
type IngestRanksInput struct {
	Body struct {
		Observations []RankObservationBody `json:"observations" minItems:"1" maxItems:"1000"`
	}
}

// IngestOutput is the response body for an ingestion request.
type IngestOutput struct {
	Body *engine.IngestResult
}

// Prices stores a batch of price observations. Malformed rows are counted
// as failed rather than rejecting the batch.
func (h *ObservationsHandler) Prices(ctx context.Context, input *IngestPricesInput) (*IngestOutput, error) {
	obs := make([]domain.PriceObservation, 0, len(input.Body.Observations))
	invalid := 0
	for _, b := range input.Body.Observations {
		amount, err := parseDecimal("amount", b.Amount)
		if err != nil {
			invalid++
			continue
		}
		obs = append(obs, domain.PriceObservation{
			ASIN:               b.ASIN,
			SellerSKU:          b.SellerSKU,
			Amount:             amount,
			Currency:           b.Currency,
			Condition:          b.Condition,
			FulfillmentChannel: b.FulfillmentChannel,
			BelongsToRequester: b.BelongsToRequester,
			Side:               domain.Side(b.Side),
			CapturedAt:         b.CapturedAt,
		})
	}

	res := h.ingest.IngestPrices(ctx, obs)
	res.Failed += invalid
	return &IngestOutput{Body: res}, nil
}

// Ranks stores a batch of rank observations.
func (h *ObservationsHandler) Ranks(ctx context.Context, input *IngestRanksInput) (*IngestOutput, error) {
	obs := make([]domain.RankObservation, 0, len(input.Body.Observations))
	for _, b := range input.Body.Observations {
		obs = append(obs, domain.RankObservation{
			ASIN:       b.ASIN,
			SellerSKU:  b.SellerSKU,
			Rank:       b.Rank,
			Category:   b.Category,
			Side:       domain.Side(b.Side),
			CapturedAt: b.CapturedAt,
		})
	}
	return &IngestOutput{Body: h.ingest.IngestRanks(ctx, obs)}, nil
}

// RegisterObservationRoutes registers observation ingestion endpoints with
// the Huma API.
func RegisterObservationRoutes(api huma.API, h *ObservationsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "ingest-prices",
		Method:      http.MethodPost,
		Path:        "/api/v1/observations/prices",
		Summary:     "Ingest price observations",
		Description: "Stores observed own and competitor prices. Rows without a side are classified " +
			"by belongs_to_requester.",
		Tags: []string{"observations"},
	}, h.Prices)

	huma.Register(api, huma.Operation{
		OperationID: "ingest-ranks",
		Method:      http.MethodPost,
		Path:        "/api/v1/observations/ranks",
		Summary:     "Ingest rank observations",
		Description: "Stores observed sales ranks. Rows without a side are treated as competitor ranks.",
		Tags:        []string{"observations"},
	}, h.Ranks)
}
