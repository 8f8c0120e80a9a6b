package handlers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

// JobsProvider defines the store methods required by the jobs handler.
type JobsProvider interface {
	ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error)
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)
}

// NextRunReporter reports when scheduled jobs fire next.
type NextRunReporter interface {
	NextRuns() map[string]time.Time
}

// JobsHandler serves scheduler job history.
type JobsHandler struct {
	store    JobsProvider
	schedule NextRunReporter
}

// NewJobsHandler creates a new JobsHandler. schedule may be nil when the
// in-process scheduler is disabled; summaries then carry no next run time.
func NewJobsHandler(s JobsProvider, schedule NextRunReporter) *JobsHandler {
	return &JobsHandler{store: s, schedule: schedule}
}

// ListJobsOutput is the response body for the job overview.
type ListJobsOutput struct {
	Body []domain.JobSummary
}

// GetJobHistoryInput selects a job's history.
type GetJobHistoryInput struct {
	JobName string `path:"job_name" enum:"monitoring,cleanup,notify" doc:"Scheduled job name"`
	Status  string `query:"status"  enum:"running,succeeded,failed,crashed" doc:"Only runs with this status"`
	Limit   int    `query:"limit"   default:"20" minimum:"1" maximum:"200" doc:"Maximum runs to return"`
}

// GetJobHistoryOutput is the response body for a single job's history.
type GetJobHistoryOutput struct {
	Body []domain.JobRun
}

// ListJobs returns one summary per job that has either run or is scheduled,
// ordered by job name.
func (h *JobsHandler) ListJobs(ctx context.Context, _ *struct{}) (*ListJobsOutput, error) {
	runs, err := h.store.ListLatestJobRuns(ctx)
	if err != nil {
		return nil, toHTTPError("listing jobs", err)
	}

	byName := make(map[string]*domain.JobSummary, len(runs))
	for i := range runs {
		byName[runs[i].JobName] = &domain.JobSummary{JobName: runs[i].JobName, LastRun: &runs[i]}
	}
	if h.schedule != nil {
		for name, at := range h.schedule.NextRuns() {
			s, ok := byName[name]
			if !ok {
				s = &domain.JobSummary{JobName: name}
				byName[name] = s
			}
			s.NextRunAt = &at
		}
	}

	out := make([]domain.JobSummary, 0, len(byName))
	for _, s := range byName {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].JobName < out[j].JobName })

	return &ListJobsOutput{Body: out}, nil
}

// GetJobHistory returns a job's runs, newest first. With a status filter
// the limit applies before filtering.
func (h *JobsHandler) GetJobHistory(ctx context.Context, input *GetJobHistoryInput) (*GetJobHistoryOutput, error) {
	runs, err := h.store.ListJobRuns(ctx, input.JobName, input.Limit)
	if err != nil {
		return nil, toHTTPError("fetching job history", err)
	}

	out := make([]domain.JobRun, 0, len(runs))
	for _, r := range runs {
		if input.Status == "" || r.Status == input.Status {
			out = append(out, r)
		}
	}
	return &GetJobHistoryOutput{Body: out}, nil
}

// RegisterJobRoutes registers scheduler job endpoints with the Huma API.
func RegisterJobRoutes(api huma.API, h *JobsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-jobs",
		Method:      http.MethodGet,
		Path:        "/api/v1/jobs",
		Summary:     "Scheduled job overview",
		Description: "Returns the latest run and next scheduled time of each job.",
		Tags:        []string{"scheduler"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListJobs)

	huma.Register(api, huma.Operation{
		OperationID: "get-job-history",
		Method:      http.MethodGet,
		Path:        "/api/v1/jobs/{job_name}",
		Summary:     "Scheduled job history",
		Description: "Returns the runs of one job, newest first.",
		Tags:        []string{"scheduler"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.GetJobHistory)
}
