package handlers

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

// MonitoringProvider defines the engine operations required by the
// monitoring handler.
type MonitoringProvider interface {
	RunMonitoringCycle(ctx context.Context, cfg domain.RunConfig) (*domain.RunResult, error)
	Cleanup(ctx context.Context, alertDays, historyDays int) *domain.CleanupResult
	InitializeMonitoring(ctx context.Context, asins []string) (*domain.InitializeResult, error)
	InitializeFromObservations(ctx context.Context) (*domain.InitializeResult, error)
	MonitoringStats(ctx context.Context) (*domain.MonitoringStats, error)
	CompetitiveOverview(ctx context.Context) (*domain.CompetitiveOverview, error)
}

// MonitoringHandler triggers monitoring runs and cleanup and reports
// monitoring statistics.
type MonitoringHandler struct {
	engine     MonitoringProvider
	defaults   domain.RunConfig
	cronSecret string
}

// NewMonitoringHandler creates a new MonitoringHandler. Runs without an
// explicit selection use defaults. When cronSecret is non-empty, run and
// cleanup requests must carry it as a bearer token.
func NewMonitoringHandler(p MonitoringProvider, defaults domain.RunConfig, cronSecret string) *MonitoringHandler {
	return &MonitoringHandler{engine: p, defaults: defaults, cronSecret: cronSecret}
}

// RunBody overrides the configured selection and threshold for one run.
type RunBody struct {
	ASINs            []string `json:"asins,omitempty"             doc:"Restrict the run to these ASINs"`
	SellerSKUs       []string `json:"seller_skus,omitempty"       doc:"Restrict the run to these seller SKUs"`
	ThresholdPercent *float64 `json:"threshold_percent,omitempty" minimum:"0" doc:"Minimum percentage regression that alerts"`
}

// RunInput is the request for a monitoring run. The body is optional; a
// request without one runs with the configured defaults.
type RunInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token when a cron secret is configured"`
	Body          *RunBody
}

// ScheduledRunInput is the bodiless request cron callers send.
type ScheduledRunInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token when a cron secret is configured"`
}

// RunOutput is the response body for a monitoring run.
type RunOutput struct {
	Body *domain.RunResult
}

// CleanupInput is the request for a retention sweep.
type CleanupInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token when a cron secret is configured"`
	AlertDays     int    `query:"alert_days"   minimum:"0" doc:"Dismissed alert age in days; 0 uses the configured policy"`
	HistoryDays   int    `query:"history_days" minimum:"0" doc:"Snapshot age in days; 0 uses the configured policy"`
}

// CleanupOutput is the response body for a retention sweep.
type CleanupOutput struct {
	Body struct {
		Steps        []domain.CleanupStep `json:"steps"`
		TotalDeleted int64                `json:"total_deleted"`
		Success      bool                 `json:"success"`
	}
}

// InitializeInput is the request for monitoring initialization.
type InitializeInput struct {
	Body struct {
		ASINs []string `json:"asins,omitempty" doc:"ASINs to initialize; empty initializes every ASIN without a snapshot"`
	}
}

// InitializeOutput is the response body for monitoring initialization.
type InitializeOutput struct {
	Body *domain.InitializeResult
}

// MonitoringStatsOutput is the response body for monitoring statistics.
type MonitoringStatsOutput struct {
	Body *domain.MonitoringStats
}

// OverviewOutput is the response body for the competitive overview.
type OverviewOutput struct {
	Body *domain.CompetitiveOverview
}

// Run executes one monitoring cycle.
func (h *MonitoringHandler) Run(ctx context.Context, input *RunInput) (*RunOutput, error) {
	if err := h.authorize(input.Authorization); err != nil {
		return nil, err
	}

	cfg := h.defaults
	if b := input.Body; b != nil {
		if len(b.ASINs) > 0 || len(b.SellerSKUs) > 0 {
			cfg.Selection = domain.ProductSelection{
				ASINs:      b.ASINs,
				SellerSKUs: b.SellerSKUs,
			}
		}
		if b.ThresholdPercent != nil {
			cfg.ThresholdPercent = decimal.NewFromFloat(*b.ThresholdPercent)
		}
	}

	return h.run(ctx, cfg)
}

// ScheduledRun executes one monitoring cycle with the configured defaults.
func (h *MonitoringHandler) ScheduledRun(ctx context.Context, input *ScheduledRunInput) (*RunOutput, error) {
	if err := h.authorize(input.Authorization); err != nil {
		return nil, err
	}
	return h.run(ctx, h.defaults)
}

func (h *MonitoringHandler) run(ctx context.Context, cfg domain.RunConfig) (*RunOutput, error) {
	res, err := h.engine.RunMonitoringCycle(ctx, cfg)
	if err != nil {
		return nil, toHTTPError("monitoring run", err)
	}
	return &RunOutput{Body: res}, nil
}

// Cleanup runs the retention sweep. Partial failures are reported per store
// with a 200 status.
func (h *MonitoringHandler) Cleanup(ctx context.Context, input *CleanupInput) (*CleanupOutput, error) {
	if err := h.authorize(input.Authorization); err != nil {
		return nil, err
	}

	res := h.engine.Cleanup(ctx, input.AlertDays, input.HistoryDays)
	resp := &CleanupOutput{}
	resp.Body.Steps = res.Steps
	resp.Body.TotalDeleted = res.TotalDeleted()
	resp.Body.Success = !res.Failed()
	return resp, nil
}

// Initialize records baseline snapshots.
func (h *MonitoringHandler) Initialize(ctx context.Context, input *InitializeInput) (*InitializeOutput, error) {
	var (
		res *domain.InitializeResult
		err error
	)
	if len(input.Body.ASINs) > 0 {
		res, err = h.engine.InitializeMonitoring(ctx, input.Body.ASINs)
	} else {
		res, err = h.engine.InitializeFromObservations(ctx)
	}
	if err != nil {
		return nil, toHTTPError("initializing monitoring", err)
	}
	return &InitializeOutput{Body: res}, nil
}

// Stats returns monitoring statistics.
func (h *MonitoringHandler) Stats(ctx context.Context, _ *struct{}) (*MonitoringStatsOutput, error) {
	stats, err := h.engine.MonitoringStats(ctx)
	if err != nil {
		return nil, toHTTPError("monitoring stats", err)
	}
	return &MonitoringStatsOutput{Body: stats}, nil
}

// Overview returns the competitive overview.
func (h *MonitoringHandler) Overview(ctx context.Context, _ *struct{}) (*OverviewOutput, error) {
	overview, err := h.engine.CompetitiveOverview(ctx)
	if err != nil {
		return nil, toHTTPError("competitive overview", err)
	}
	return &OverviewOutput{Body: overview}, nil
}

func (h *MonitoringHandler) authorize(header string) error {
	if h.cronSecret == "" {
		return nil
	}
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(h.cronSecret)) != 1 {
		return huma.Error401Unauthorized("invalid or missing bearer token")
	}
	return nil
}

// RegisterMonitoringRoutes registers monitoring endpoints with the Huma API.
func RegisterMonitoringRoutes(api huma.API, h *MonitoringHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "run-monitoring",
		Method:      http.MethodPost,
		Path:        "/api/v1/monitoring/run",
		Summary:     "Run a monitoring cycle",
		Description: "Compares our prices and ranks against mapped competitors and raises alerts.",
		Tags:        []string{"monitoring"},
		Errors:      []int{http.StatusUnauthorized, http.StatusInternalServerError},
	}, h.Run)

	huma.Register(api, huma.Operation{
		OperationID: "run-monitoring-scheduled",
		Method:      http.MethodGet,
		Path:        "/api/v1/monitoring/run",
		Summary:     "Run a monitoring cycle with the configured defaults",
		Description: "Bodiless trigger for cron callers.",
		Tags:        []string{"monitoring"},
		Errors:      []int{http.StatusUnauthorized, http.StatusInternalServerError},
	}, h.ScheduledRun)

	huma.Register(api, huma.Operation{
		OperationID: "run-cleanup",
		Method:      http.MethodPost,
		Path:        "/api/v1/monitoring/cleanup",
		Summary:     "Run the retention sweep",
		Description: "Deletes aged observations, dismissed alerts, snapshots, comparisons and job runs.",
		Tags:        []string{"monitoring"},
		Errors:      []int{http.StatusUnauthorized},
	}, h.Cleanup)

	huma.Register(api, huma.Operation{
		OperationID: "initialize-monitoring",
		Method:      http.MethodPost,
		Path:        "/api/v1/monitoring/initialize",
		Summary:     "Initialize baseline snapshots",
		Tags:        []string{"monitoring"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.Initialize)

	huma.Register(api, huma.Operation{
		OperationID: "monitoring-stats",
		Method:      http.MethodGet,
		Path:        "/api/v1/monitoring/stats",
		Summary:     "Monitoring statistics",
		Tags:        []string{"monitoring"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.Stats)

	huma.Register(api, huma.Operation{
		OperationID: "competitive-overview",
		Method:      http.MethodGet,
		Path:        "/api/v1/monitoring/overview",
		Summary:     "Competitive overview",
		Tags:        []string{"monitoring"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.Overview)
}
