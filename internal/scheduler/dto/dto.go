package dto

import (
	"time"
)

// JobStatus is the wire shape of one scheduled job
type JobStatus struct {
	Name     string     `json:"name"`
	Schedule string     `json:"schedule"`
	LastRun  *time.Time `json:"last_run,omitempty"`
	LastErr  string     `json:"last_error,omitempty"`
	Runs     int64      `json:"runs"`
}

// ListJobsInput lists scheduled jobs
type ListJobsInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
}

// ListJobsOutput wraps the job listing
type ListJobsOutput struct {
	Body struct {
		Jobs []JobStatus `json:"jobs"`
	}
}
