package routes

import (
	"context"
	"errors"

	authMiddleware "go-staffhub/internal/auth/middleware"
	"go-staffhub/internal/vacations/dto"
	"go-staffhub/internal/vacations/models"
	"go-staffhub/internal/vacations/services"
	"go-staffhub/pkg/permissions"

	"github.com/danielgtaylor/huma/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Routes exposes the vacation request surface
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

// RegisterUnifiedRoutes registers all vacation routes with the Huma API
func (hr *Routes) RegisterUnifiedRoutes(api huma.API) {
	huma.Get(api, "/vacations", hr.list)
	huma.Post(api, "/vacations", hr.create)
	huma.Post(api, "/vacations/{request_id}/decision", hr.decide)
	huma.Delete(api, "/vacations/{request_id}", hr.cancel)
}

func (hr *Routes) list(ctx context.Context, input *dto.ListVacationsInput) (*dto.ListVacationsOutput, error) {
	user, err := hr.gate.RequireAuth(ctx, input.Authorization, input.Cookie)
	if err != nil {
		return nil, err
	}

	var scope *primitive.ObjectID
	if input.All {
		if !permissions.IsGranted(user.Principal, permissions.KeyVacationsManage) {
			return nil, huma.Error403Forbidden("missing required permission: " + permissions.KeyVacationsManage)
		}
	} else {
		id := user.UserID
		scope = &id
	}

	requests, err := hr.service.List(ctx, scope, input.Status)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list vacation requests", err)
	}

	out := &dto.ListVacationsOutput{}
	out.Body.Requests = make([]dto.VacationOutput, len(requests))
	for i, r := range requests {
		out.Body.Requests[i] = vacationOutput(&r)
	}
	out.Body.Total = len(requests)
	return out, nil
}

func (hr *Routes) create(ctx context.Context, input *dto.CreateVacationInput) (*dto.VacationOutputWrapper, error) {
	user, err := hr.gate.RequirePermission(ctx, input.Authorization, input.Cookie, permissions.KeyVacationsCreate)
	if err != nil {
		return nil, err
	}

	request, err := hr.service.Create(ctx, user.UserID, input.Body.StartDate, input.Body.EndDate, input.Body.Reason)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRange) {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		return nil, huma.Error500InternalServerError("Failed to create vacation request", err)
	}

	return &dto.VacationOutputWrapper{Body: vacationOutput(request)}, nil
}

func (hr *Routes) decide(ctx context.Context, input *dto.DecideVacationInput) (*dto.VacationOutputWrapper, error) {
	user, err := hr.gate.RequirePermission(ctx, input.Authorization, input.Cookie, permissions.KeyVacationsManage)
	if err != nil {
		return nil, err
	}

	id, err := primitive.ObjectIDFromHex(input.RequestID)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid request id")
	}

	request, err := hr.service.Decide(ctx, id, user.UserID, input.Body.Approve, input.Body.Note)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRequestNotFound):
			return nil, huma.Error404NotFound("vacation request not found")
		case errors.Is(err, services.ErrAlreadyDecided):
			return nil, huma.Error409Conflict("vacation request already decided")
		default:
			return nil, huma.Error500InternalServerError("Failed to decide vacation request", err)
		}
	}

	return &dto.VacationOutputWrapper{Body: vacationOutput(request)}, nil
}

func (hr *Routes) cancel(ctx context.Context, input *dto.CancelVacationInput) (*dto.MessageOutput, error) {
	user, err := hr.gate.RequireAuth(ctx, input.Authorization, input.Cookie)
	if err != nil {
		return nil, err
	}

	id, err := primitive.ObjectIDFromHex(input.RequestID)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid request id")
	}

	if err := hr.service.Cancel(ctx, id, user.UserID); err != nil {
		switch {
		case errors.Is(err, services.ErrRequestNotFound):
			return nil, huma.Error404NotFound("vacation request not found")
		case errors.Is(err, services.ErrAlreadyDecided):
			return nil, huma.Error409Conflict("only pending requests can be cancelled")
		default:
			return nil, huma.Error500InternalServerError("Failed to cancel vacation request", err)
		}
	}

	out := &dto.MessageOutput{}
	out.Body.Message = "Vacation request cancelled"
	return out, nil
}

func vacationOutput(r *models.VacationRequest) dto.VacationOutput {
	out := dto.VacationOutput{
		ID:           r.ID.Hex(),
		UserID:       r.UserID.Hex(),
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		Reason:       r.Reason,
		Status:       r.Status,
		DecidedAt:    r.DecidedAt,
		DecisionNote: r.DecisionNote,
		CreatedAt:    r.CreatedAt,
	}
	if r.DecidedBy != nil {
		out.DecidedBy = r.DecidedBy.Hex()
	}
	return out
}
