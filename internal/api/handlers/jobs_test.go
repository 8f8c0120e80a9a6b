package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/competitive-price-monitor/internal/api/handlers"
	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

// fakeJobs is a test double for JobsProvider.
type fakeJobs struct {
	latest   []domain.JobRun
	history  []domain.JobRun
	err      error
	gotJob   string
	gotLimit int
}

func (f *fakeJobs) ListLatestJobRuns(_ context.Context) ([]domain.JobRun, error) {
	return f.latest, f.err
}

func (f *fakeJobs) ListJobRuns(_ context.Context, jobName string, limit int) ([]domain.JobRun, error) {
	f.gotJob, f.gotLimit = jobName, limit
	return f.history, f.err
}

// fixedSchedule is a NextRunReporter with canned times.
type fixedSchedule map[string]time.Time

func (s fixedSchedule) NextRuns() map[string]time.Time { return s }

var jobsNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func jobRun(name, status string) domain.JobRun {
	return domain.JobRun{ID: "run-" + name + "-" + status, JobName: name, StartedAt: jobsNow, Status: status}
}

func newJobsAPI(t *testing.T, f *fakeJobs, sched handlers.NextRunReporter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	handlers.RegisterJobRoutes(api, handlers.NewJobsHandler(f, sched))
	return api
}

func TestListJobs_MergesSchedule(t *testing.T) {
	t.Parallel()

	f := &fakeJobs{latest: []domain.JobRun{jobRun("monitoring", "succeeded"), jobRun("cleanup", "failed")}}
	sched := fixedSchedule{
		"monitoring": jobsNow.Add(time.Hour),
		"notify":     jobsNow.Add(15 * time.Minute),
	}
	api := newJobsAPI(t, f, sched)

	resp := api.Get("/api/v1/jobs")
	require.Equal(t, http.StatusOK, resp.Code)

	var got []domain.JobSummary
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	require.Len(t, got, 3)

	assert.Equal(t, "cleanup", got[0].JobName)
	require.NotNil(t, got[0].LastRun)
	assert.Equal(t, "failed", got[0].LastRun.Status)
	assert.Nil(t, got[0].NextRunAt)

	assert.Equal(t, "monitoring", got[1].JobName)
	require.NotNil(t, got[1].NextRunAt)
	assert.True(t, got[1].NextRunAt.Equal(jobsNow.Add(time.Hour)))

	assert.Equal(t, "notify", got[2].JobName)
	assert.Nil(t, got[2].LastRun)
}

func TestListJobs_NoScheduler(t *testing.T) {
	t.Parallel()

	api := newJobsAPI(t, &fakeJobs{}, nil)

	resp := api.Get("/api/v1/jobs")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[]`, resp.Body.String())
}

func TestListJobs_StoreError(t *testing.T) {
	t.Parallel()

	api := newJobsAPI(t, &fakeJobs{err: errors.New("db error")}, nil)

	resp := api.Get("/api/v1/jobs")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "listing jobs failed")
}

func TestGetJobHistory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		target     string
		err        error
		wantStatus int
		wantRuns   int
		wantLimit  int
	}{
		{name: "default limit", target: "/api/v1/jobs/monitoring", wantStatus: http.StatusOK, wantRuns: 3, wantLimit: 20},
		{name: "status filter", target: "/api/v1/jobs/monitoring?status=failed&limit=5", wantStatus: http.StatusOK, wantRuns: 1, wantLimit: 5},
		{name: "unknown job", target: "/api/v1/jobs/reindex", wantStatus: http.StatusUnprocessableEntity},
		{name: "unknown status", target: "/api/v1/jobs/cleanup?status=paused", wantStatus: http.StatusUnprocessableEntity},
		{name: "store error", target: "/api/v1/jobs/notify", err: errors.New("db error"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := &fakeJobs{
				history: []domain.JobRun{
					jobRun("monitoring", "succeeded"),
					jobRun("monitoring", "failed"),
					jobRun("monitoring", "succeeded"),
				},
				err: tt.err,
			}
			api := newJobsAPI(t, f, nil)

			resp := api.Get(tt.target)
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			if tt.wantStatus != http.StatusOK {
				return
			}

			var runs []domain.JobRun
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &runs))
			assert.Len(t, runs, tt.wantRuns)
			assert.Equal(t, tt.wantLimit, f.gotLimit)
		})
	}
}
