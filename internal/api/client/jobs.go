package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

// ListJobs returns the latest run and next scheduled time of each job.
func (c *Client) ListJobs(ctx context.Context) ([]domain.JobSummary, error) {
	var jobs []domain.JobSummary
	if err := c.get(ctx, "/api/v1/jobs", &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetJobHistory returns a job's runs, newest first. An empty status returns
// runs of every status.
func (c *Client) GetJobHistory(ctx context.Context, jobName, status string, limit int) ([]domain.JobRun, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("status", status)

	var runs []domain.JobRun
	if err := c.get(ctx, withQuery("/api/v1/jobs/"+url.PathEscape(jobName), q), &runs); err != nil {
		return nil, err
	}
	return runs, nil
}
