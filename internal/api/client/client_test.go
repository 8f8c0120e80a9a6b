package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.ListJobs(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"internal"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.MonitoringStats(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (HTTP 500)")
}

func TestNewAPIError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		wantDetail string
	}{
		{
			name:       "problem detail",
			status:     http.StatusNotFound,
			body:       `{"title":"Not Found","status":404,"detail":"alert not found"}`,
			wantDetail: "alert not found",
		},
		{
			name:       "title only",
			status:     http.StatusUnauthorized,
			body:       `{"title":"Unauthorized","status":401}`,
			wantDetail: "Unauthorized",
		},
		{
			name:   "validation errors",
			status: http.StatusUnprocessableEntity,
			body: `{"title":"Unprocessable Entity","detail":"validation failed",
				"errors":[{"message":"expected value to be one of \"all, unread\"","location":"query.filter"}]}`,
			wantDetail: `validation failed; query.filter: expected value to be one of "all, unread"`,
		},
		{
			name:       "plain text",
			status:     http.StatusBadGateway,
			body:       "upstream down\n",
			wantDetail: "upstream down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := newAPIError(tt.status, []byte(tt.body))
			assert.Equal(t, tt.status, e.Status)
			assert.Equal(t, tt.wantDetail, e.Detail)
			assert.Equal(t, tt.status == http.StatusNotFound, e.NotFound())
		})
	}
}

func TestClient_APIErrorUnwraps(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"title":"Not Found","status":404,"detail":"alert not found"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).MarkAlertRead(context.Background(), "a1")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.NotFound())
	assert.EqualError(t, err, "API error (HTTP 404): alert not found")
}

func TestClient_ListAlerts(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/alerts", r.URL.Path)
		assert.Equal(t, "unread", r.URL.Query().Get("filter"))
		assert.Equal(t, "25", r.URL.Query().Get("limit"))
		assert.Empty(t, r.URL.Query().Get("offset"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"$schema": "http://localhost/schemas/AlertPage.json",
			"alerts": [{"id": "a1", "asin": "B0OURS0001", "old_value": "100", "new_value": "80",
				"change_percent": "20", "priority": "high", "alert_type": "competitor_undercut"}],
			"counts": {"total": 1, "unread": 1},
			"filter": "unread", "limit": 25, "offset": 0
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	page, err := c.ListAlerts(context.Background(), "unread", 25, 0)
	require.NoError(t, err)
	require.Len(t, page.Alerts, 1)
	assert.True(t, page.Alerts[0].OldValue.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, domain.SeverityHigh, page.Alerts[0].Priority)
	assert.Equal(t, 1, page.Counts.Unread)
}

func TestClient_Lifecycle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		call     func(c *Client) (*Result, error)
		wantPath string
		wantBody string
	}{
		{
			name:     "mark read",
			call:     func(c *Client) (*Result, error) { return c.MarkAlertRead(context.Background(), "a1") },
			wantPath: "/api/v1/alerts/a1/read",
			wantBody: `{}`,
		},
		{
			name:     "mark all read",
			call:     func(c *Client) (*Result, error) { return c.MarkAllAlertsRead(context.Background()) },
			wantPath: "/api/v1/alerts/read-all",
			wantBody: `{}`,
		},
		{
			name:     "dismiss",
			call:     func(c *Client) (*Result, error) { return c.DismissAlert(context.Background(), "a1") },
			wantPath: "/api/v1/alerts/a1/dismiss",
			wantBody: `{}`,
		},
		{
			name: "dismiss many",
			call: func(c *Client) (*Result, error) {
				return c.DismissAlerts(context.Background(), []string{"a1", "a2"})
			},
			wantPath: "/api/v1/alerts/dismiss",
			wantBody: `{"ids":["a1","a2"]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, tt.wantPath, r.URL.Path)
				var body json.RawMessage
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.JSONEq(t, tt.wantBody, string(body))

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"success": true, "message": "ok", "count": 2}`))
			}))
			defer srv.Close()

			res, err := tt.call(New(srv.URL))
			require.NoError(t, err)
			assert.True(t, res.Success)
		})
	}
}

func TestClient_RunMonitoring_SendsToken(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/monitoring/run", r.URL.Path)
		assert.Equal(t, "Bearer s3cret", r.Header.Get("Authorization"))

		var req RunRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"SKU-1"}, req.SellerSKUs)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"processed": 4, "failed": 1, "price_alerts_created": 2, "rank_alerts_created": 0}`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithToken("s3cret"))
	res, err := c.RunMonitoring(context.Background(), RunRequest{SellerSKUs: []string{"SKU-1"}})
	require.NoError(t, err)
	assert.Equal(t, 4, res.Processed)
	assert.Equal(t, 2, res.PriceAlertsCreated)
}

func TestClient_Cleanup(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/monitoring/cleanup", r.URL.Path)
		assert.Equal(t, "60", r.URL.Query().Get("alert_days"))
		assert.False(t, r.URL.Query().Has("history_days"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"steps": [{"store": "alerts", "deleted": 3}], "total_deleted": 3, "success": true}`))
	}))
	defer srv.Close()

	res, err := New(srv.URL).Cleanup(context.Background(), 60, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.TotalDeleted)
	assert.True(t, res.Success)
}

func TestClient_PriceHistory(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/history/B0OURS0001/prices", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("days"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"asin": "B0OURS0001", "value": "19.99", "currency": "USD",
			"recorded_at": "2026-03-01T12:00:00Z"}]`))
	}))
	defer srv.Close()

	points, err := New(srv.URL).PriceHistory(context.Background(), "B0OURS0001", 7, 0)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, "19.99", points[0].Value.String())
}

func TestClient_SaveMapping(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/mappings", r.URL.Path)

		var req MappingRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(domain.ProductMapping{
			ID:             "m1",
			OurSellerSKU:   req.OurSellerSKU,
			CompetitorASIN: req.CompetitorASIN,
			Priority:       req.Priority,
			IsActive:       true,
		})
	}))
	defer srv.Close()

	m, err := New(srv.URL).SaveMapping(context.Background(), MappingRequest{
		OurSellerSKU:   "SKU-1",
		CompetitorASIN: "B0COMP0001",
		Priority:       1,
	})
	require.NoError(t, err)
	assert.Equal(t, "m1", m.ID)
	assert.Equal(t, 1, m.Priority)
}

func TestClient_GetJobHistory(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/jobs/monitoring", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.False(t, r.URL.Query().Has("status"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": "r1", "job_name": "monitoring", "status": "succeeded",
			"started_at": "2026-03-01T12:00:00Z"}]`))
	}))
	defer srv.Close()

	runs, err := New(srv.URL).GetJobHistory(context.Background(), "monitoring", "", 5)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "succeeded", runs[0].Status)
}

func TestWithQuery_DropsEmptyValues(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/x", withQuery("/x", map[string][]string{"a": {""}, "b": {"0"}}))
	assert.Equal(t, "/x?a=1", withQuery("/x", map[string][]string{"a": {"1"}, "b": {""}}))
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	hc := &http.Client{}
	c := New("http://localhost", WithHTTPClient(hc))
	assert.Same(t, hc, c.hc)
}

func TestClient_IngestPrices(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/observations/prices", r.URL.Path)

		var body struct {
			Observations []PriceObservation `json:"observations"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Len(t, body.Observations, 2)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"accepted": 1, "failed": 1}`))
	}))
	defer srv.Close()

	res, err := New(srv.URL).IngestPrices(context.Background(), []PriceObservation{
		{ASIN: "B0OURS0001", Amount: "19.99", BelongsToRequester: true},
		{ASIN: "B0COMP0001", Amount: "oops"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Accepted)
	assert.Equal(t, 1, res.Failed)
}

func TestClient_IngestRanks(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/observations/ranks", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"accepted": 3, "failed": 0}`))
	}))
	defer srv.Close()

	res, err := New(srv.URL).IngestRanks(context.Background(), []RankObservation{
		{ASIN: "B0OURS0001", Rank: 1200, Side: "own"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Accepted)
}

func TestClient_ListJobs(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/jobs", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"job_name": "monitoring", "next_run_at": "2026-03-01T13:00:00Z",
			 "last_run": {"id": "r1", "job_name": "monitoring", "status": "succeeded", "started_at": "2026-03-01T12:00:00Z"}},
			{"job_name": "notify", "next_run_at": "2026-03-01T12:15:00Z"}
		]`))
	}))
	defer srv.Close()

	jobs, err := New(srv.URL).ListJobs(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	require.NotNil(t, jobs[0].LastRun)
	assert.Equal(t, "succeeded", jobs[0].LastRun.Status)
	assert.Nil(t, jobs[1].LastRun)
	require.NotNil(t, jobs[1].NextRunAt)
}
