package routes

import (
	"context"
	"errors"

	authMiddleware "go-staffhub/internal/auth/middleware"
	"go-staffhub/internal/incidents/dto"
	"go-staffhub/internal/incidents/models"
	"go-staffhub/internal/incidents/services"
	"go-staffhub/pkg/permissions"

	"github.com/danielgtaylor/huma/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Routes exposes the incident reports surface
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

// RegisterUnifiedRoutes registers all incident routes with the Huma API
func (hr *Routes) RegisterUnifiedRoutes(api huma.API) {
	huma.Get(api, "/incidents", hr.list)
	huma.Post(api, "/incidents", hr.create)
	huma.Get(api, "/incidents/{incident_id}", hr.get)
	huma.Patch(api, "/incidents/{incident_id}", hr.update)
	huma.Delete(api, "/incidents/{incident_id}", hr.delete)
}

func (hr *Routes) list(ctx context.Context, input *dto.ListIncidentsInput) (*dto.ListIncidentsOutput, error) {
	_, err := hr.gate.RequirePermission(ctx, input.Authorization, input.Cookie, permissions.KeyIncidentsView)
	if err != nil {
		return nil, err
	}

	var employeeID *primitive.ObjectID
	if input.EmployeeID != "" {
		id, err := primitive.ObjectIDFromHex(input.EmployeeID)
		if err != nil {
			return nil, huma.Error422UnprocessableEntity("invalid employee id")
		}
		employeeID = &id
	}

	incidents, err := hr.service.List(ctx, employeeID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list incidents", err)
	}

	out := &dto.ListIncidentsOutput{}
	out.Body.Incidents = make([]dto.IncidentOutput, len(incidents))
	for i, inc := range incidents {
		out.Body.Incidents[i] = incidentOutput(&inc)
	}
	out.Body.Total = len(incidents)
	return out, nil
}

func (hr *Routes) create(ctx context.Context, input *dto.CreateIncidentInput) (*dto.IncidentOutputWrapper, error) {
	user, err := hr.gate.RequirePermission(ctx, input.Authorization, input.Cookie, permissions.KeyIncidentsCreate)
	if err != nil {
		return nil, err
	}

	employeeID, err := primitive.ObjectIDFromHex(input.Body.EmployeeID)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid employee id")
	}

	incident := &models.Incident{
		EmployeeID:  employeeID,
		Title:       input.Body.Title,
		Description: input.Body.Description,
		Severity:    input.Body.Severity,
		OccurredAt:  input.Body.OccurredAt,
		ReportedBy:  user.UserID,
	}

	created, err := hr.service.Create(ctx, incident)
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			return nil, huma.Error404NotFound("employee not found")
		}
		return nil, huma.Error500InternalServerError("Failed to create incident", err)
	}

	return &dto.IncidentOutputWrapper{Body: incidentOutput(created)}, nil
}

func (hr *Routes) get(ctx context.Context, input *dto.GetIncidentInput) (*dto.IncidentOutputWrapper, error) {
	_, err := hr.gate.RequirePermission(ctx, input.Authorization, input.Cookie, permissions.KeyIncidentsView)
	if err != nil {
		return nil, err
	}

	id, err := primitive.ObjectIDFromHex(input.IncidentID)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid incident id")
	}

	incident, err := hr.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrIncidentNotFound) {
			return nil, huma.Error404NotFound("incident not found")
		}
		return nil, huma.Error500InternalServerError("Failed to load incident", err)
	}

	return &dto.IncidentOutputWrapper{Body: incidentOutput(incident)}, nil
}

func (hr *Routes) update(ctx context.Context, input *dto.UpdateIncidentInput) (*dto.IncidentOutputWrapper, error) {
	_, err := hr.gate.RequirePermission(ctx, input.Authorization, input.Cookie, permissions.KeyIncidentsEdit)
	if err != nil {
		return nil, err
	}

	id, err := primitive.ObjectIDFromHex(input.IncidentID)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid incident id")
	}

	set := bson.M{}
	if input.Body.Title != nil {
		set["title"] = *input.Body.Title
	}
	if input.Body.Description != nil {
		set["description"] = *input.Body.Description
	}
	if input.Body.Severity != nil {
		set["severity"] = *input.Body.Severity
	}
	if input.Body.OccurredAt != nil {
		set["occurred_at"] = *input.Body.OccurredAt
	}

	incident, err := hr.service.Update(ctx, id, set)
	if err != nil {
		if errors.Is(err, services.ErrIncidentNotFound) {
			return nil, huma.Error404NotFound("incident not found")
		}
		return nil, huma.Error500InternalServerError("Failed to update incident", err)
	}

	return &dto.IncidentOutputWrapper{Body: incidentOutput(incident)}, nil
}

func (hr *Routes) delete(ctx context.Context, input *dto.DeleteIncidentInput) (*dto.MessageOutput, error) {
	_, err := hr.gate.RequirePermission(ctx, input.Authorization, input.Cookie, permissions.KeyIncidentsDelete)
	if err != nil {
		return nil, err
	}

	id, err := primitive.ObjectIDFromHex(input.IncidentID)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid incident id")
	}

	if err := hr.service.Delete(ctx, id); err != nil {
		if errors.Is(err, services.ErrIncidentNotFound) {
			return nil, huma.Error404NotFound("incident not found")
		}
		return nil, huma.Error500InternalServerError("Failed to delete incident", err)
	}

	out := &dto.MessageOutput{}
	out.Body.Message = "Incident deleted"
	return out, nil
}

func incidentOutput(i *models.Incident) dto.IncidentOutput {
	return dto.IncidentOutput{
		ID:          i.ID.Hex(),
		EmployeeID:  i.EmployeeID.Hex(),
		Title:       i.Title,
		Description: i.Description,
		Severity:    i.Severity,
		OccurredAt:  i.OccurredAt,
		ReportedBy:  i.ReportedBy.Hex(),
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}
