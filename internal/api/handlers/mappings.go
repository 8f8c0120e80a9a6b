package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

// MappingsProvider defines the engine operations required by the mappings handler.
type MappingsProvider interface {
	ListMappings(ctx context.Context, sellerSKU, ourASIN string) ([]domain.ProductMapping, error)
	SaveMapping(ctx context.Context, m *domain.ProductMapping) error
}

// MappingsHandler reads and maintains product-to-competitor mappings.
type MappingsHandler struct {
	mappings MappingsProvider
}

// NewMappingsHandler creates a new MappingsHandler.
func NewMappingsHandler(p MappingsProvider) *MappingsHandler {
	return &MappingsHandler{mappings: p}
}

// ListMappingsInput holds the query parameters for listing mappings.
type ListMappingsInput struct {
	SKU  string `query:"sku"  doc:"Our seller SKU"`
	ASIN string `query:"asin" doc:"Our ASIN, used when sku is empty"`
}

// ListMappingsOutput is the response body for listing mappings.
type ListMappingsOutput struct {
	Body []domain.ProductMapping
}

// SaveMappingInput is the request body for creating or updating a mapping.
type SaveMappingInput struct {
	Body struct {
		OurSellerSKU   string `json:"our_seller_sku"     minLength:"1"`
		OurASIN        string `json:"our_asin,omitempty"`
		CompetitorASIN string `json:"competitor_asin"    minLength:"1"`
		Priority       int    `json:"priority,omitempty" minimum:"1" maximum:"3" doc:"1=high, 2=medium, 3=low"`
		IsActive       *bool  `json:"is_active,omitempty" doc:"Defaults to true"`
		Reason         string `json:"reason,omitempty"`
	}
}

// MappingOutput is the response body for a saved mapping.
type MappingOutput struct {
	Body *domain.ProductMapping
}

// List returns active mappings for a SKU or ASIN, ordered by priority.
func (h *MappingsHandler) List(ctx context.Context, input *ListMappingsInput) (*ListMappingsOutput, error) {
	mappings, err := h.mappings.ListMappings(ctx, input.SKU, input.ASIN)
	if err != nil {
		return nil, toHTTPError("listing mappings", err)
	}
	if mappings == nil {
		mappings = []domain.ProductMapping{}
	}
	return &ListMappingsOutput{Body: mappings}, nil
}

// Save creates or updates a mapping.
func (h *MappingsHandler) Save(ctx context.Context, input *SaveMappingInput) (*MappingOutput, error) {
	b := input.Body
	m := &domain.ProductMapping{
		OurSellerSKU:   b.OurSellerSKU,
		OurASIN:        b.OurASIN,
		CompetitorASIN: b.CompetitorASIN,
		Priority:       b.Priority,
		IsActive:       b.IsActive == nil || *b.IsActive,
		Reason:         b.Reason,
	}
	if err := h.mappings.SaveMapping(ctx, m); err != nil {
		return nil, toHTTPError("saving mapping", err)
	}
	return &MappingOutput{Body: m}, nil
}

// RegisterMappingRoutes registers mapping endpoints with the Huma API.
func RegisterMappingRoutes(api huma.API, h *MappingsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-mappings",
		Method:      http.MethodGet,
		Path:        "/api/v1/mappings",
		Summary:     "List competitor mappings",
		Description: "Returns active mappings for a seller SKU or one of our ASINs, ordered by priority.",
		Tags:        []string{"mappings"},
		Errors:      []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID: "save-mapping",
		Method:      http.MethodPut,
		Path:        "/api/v1/mappings",
		Summary:     "Create or update a competitor mapping",
		Tags:        []string{"mappings"},
		Errors:      []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.Save)
}
