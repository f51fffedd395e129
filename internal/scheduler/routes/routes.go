package routes

import (
	"context"
	"sort"

	authMiddleware "go-staffhub/internal/auth/middleware"
	"go-staffhub/internal/scheduler/dto"
	"go-staffhub/internal/scheduler/services"
	"go-staffhub/pkg/permissions"

	"github.com/danielgtaylor/huma/v2"
)

// Routes exposes the scheduler status surface
type Routes struct {
	service *services.Service
	gate    *authMiddleware.Gate
}

func NewRoutes(service *services.Service, gate *authMiddleware.Gate) *Routes {
	return &Routes{
		service: service,
		gate:    gate,
	}
}

// RegisterUnifiedRoutes registers the scheduler routes with the Huma API
func (hr *Routes) RegisterUnifiedRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "scheduler-list-jobs",
		Method:      "GET",
		Path:        "/scheduler/jobs",
		Summary:     "List scheduled jobs",
		Description: "List registered maintenance jobs and their run state",
		Tags:        []string{"Scheduler"},
	}, hr.listJobs)
}

func (hr *Routes) listJobs(ctx context.Context, input *dto.ListJobsInput) (*dto.ListJobsOutput, error) {
	_, err := hr.gate.RequireRoles(ctx, input.Authorization, input.Cookie, permissions.RoleAdmin)
	if err != nil {
		return nil, err
	}

	jobs := hr.service.Jobs()
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].Name < jobs[j].Name })

	out := &dto.ListJobsOutput{}
	out.Body.Jobs = make([]dto.JobStatus, len(jobs))
	for i, j := range jobs {
		status := dto.JobStatus{
			Name:     j.Name,
			Schedule: j.Schedule,
			LastErr:  j.LastErr,
			Runs:     j.Runs,
		}
		if !j.LastRun.IsZero() {
			lastRun := j.LastRun
			status.LastRun = &lastRun
		}
		out.Body.Jobs[i] = status
	}
	return out, nil
}
