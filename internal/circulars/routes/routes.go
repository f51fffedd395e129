package routes

import (
	"context"
	"errors"

	authMiddleware "go-staffhub/internal/auth/middleware"
	"go-staffhub/internal/circulars/dto"
	"go-staffhub/internal/circulars/models"
	"go-staffhub/internal/circulars/services"
	"go-staffhub/pkg/permissions"

	"github.com/danielgtaylor/huma/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Routes exposes the circulars surface
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

// RegisterUnifiedRoutes registers all circular routes with the Huma API
func (hr *Routes) RegisterUnifiedRoutes(api huma.API) {
	huma.Get(api, "/circulars", hr.list)
	huma.Post(api, "/circulars", hr.create)
	huma.Get(api, "/circulars/{circular_id}", hr.get)
	huma.Patch(api, "/circulars/{circular_id}", hr.update)
	huma.Delete(api, "/circulars/{circular_id}", hr.delete)
	huma.Register(api, huma.Operation{
		OperationID: "circulars-publish",
		Method:      "POST",
		Path:        "/circulars/{circular_id}/publish",
		Summary:     "Publish circular",
		Description: "Publish a draft circular and notify all active users",
		Tags:        []string{"Circulars"},
	}, hr.publish)
}

func (hr *Routes) list(ctx context.Context, input *dto.ListCircularsInput) (*dto.ListCircularsOutput, error) {
	user, err := hr.gate.RequirePermission(ctx, input.Authorization, input.Cookie, permissions.KeyCircularsView)
	if err != nil {
		return nil, err
	}

	// Drafts are only listed for managers.
	publishedOnly := !permissions.IsGranted(user.Principal, permissions.KeyCircularsManage)
	circulars, err := hr.service.List(ctx, publishedOnly)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list circulars", err)
	}

	out := &dto.ListCircularsOutput{}
	out.Body.Circulars = make([]dto.CircularOutput, len(circulars))
	for i, c := range circulars {
		out.Body.Circulars[i] = circularOutput(&c)
	}
	out.Body.Total = len(circulars)
	return out, nil
}

func (hr *Routes) get(ctx context.Context, input *dto.GetCircularInput) (*dto.CircularOutputWrapper, error) {
	user, err := hr.gate.RequirePermission(ctx, input.Authorization, input.Cookie, permissions.KeyCircularsView)
	if err != nil {
		return nil, err
	}

	id, err := primitive.ObjectIDFromHex(input.CircularID)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid circular id")
	}

	circular, err := hr.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrCircularNotFound) {
			return nil, huma.Error404NotFound("circular not found")
		}
		return nil, huma.Error500InternalServerError("Failed to load circular", err)
	}

	if !circular.Published && !permissions.IsGranted(user.Principal, permissions.KeyCircularsManage) {
		return nil, huma.Error404NotFound("circular not found")
	}

	return &dto.CircularOutputWrapper{Body: circularOutput(circular)}, nil
}

func (hr *Routes) create(ctx context.Context, input *dto.CreateCircularInput) (*dto.CircularOutputWrapper, error) {
	user, err := hr.gate.RequirePermission(ctx, input.Authorization, input.Cookie, permissions.KeyCircularsManage)
	if err != nil {
		return nil, err
	}

	circular, err := hr.service.Create(ctx, user.UserID, input.Body.Title, input.Body.Body)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to create circular", err)
	}

	return &dto.CircularOutputWrapper{Body: circularOutput(circular)}, nil
}

func (hr *Routes) update(ctx context.Context, input *dto.UpdateCircularInput) (*dto.CircularOutputWrapper, error) {
	_, err := hr.gate.RequirePermission(ctx, input.Authorization, input.Cookie, permissions.KeyCircularsManage)
	if err != nil {
		return nil, err
	}

	id, err := primitive.ObjectIDFromHex(input.CircularID)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid circular id")
	}

	circular, err := hr.service.Update(ctx, id, input.Body.Title, input.Body.Body)
	if err != nil {
		if errors.Is(err, services.ErrCircularNotFound) {
			return nil, huma.Error404NotFound("circular not found")
		}
		return nil, huma.Error500InternalServerError("Failed to update circular", err)
	}

	return &dto.CircularOutputWrapper{Body: circularOutput(circular)}, nil
}

func (hr *Routes) delete(ctx context.Context, input *dto.DeleteCircularInput) (*dto.MessageOutput, error) {
	_, err := hr.gate.RequirePermission(ctx, input.Authorization, input.Cookie, permissions.KeyCircularsManage)
	if err != nil {
		return nil, err
	}

	id, err := primitive.ObjectIDFromHex(input.CircularID)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid circular id")
	}

	if err := hr.service.Delete(ctx, id); err != nil {
		if errors.Is(err, services.ErrCircularNotFound) {
			return nil, huma.Error404NotFound("circular not found")
		}
		return nil, huma.Error500InternalServerError("Failed to delete circular", err)
	}

	out := &dto.MessageOutput{}
	out.Body.Message = "Circular deleted"
	return out, nil
}

func (hr *Routes) publish(ctx context.Context, input *dto.PublishCircularInput) (*dto.CircularOutputWrapper, error) {
	_, err := hr.gate.RequirePermission(ctx, input.Authorization, input.Cookie, permissions.KeyCircularsManage)
	if err != nil {
		return nil, err
	}

	id, err := primitive.ObjectIDFromHex(input.CircularID)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid circular id")
	}

	circular, err := hr.service.Publish(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCircularNotFound):
			return nil, huma.Error404NotFound("circular not found")
		case errors.Is(err, services.ErrAlreadyPublished):
			return nil, huma.Error409Conflict("circular already published")
		default:
			return nil, huma.Error500InternalServerError("Failed to publish circular", err)
		}
	}

	return &dto.CircularOutputWrapper{Body: circularOutput(circular)}, nil
}

func circularOutput(c *models.Circular) dto.CircularOutput {
	return dto.CircularOutput{
		ID:          c.ID.Hex(),
		Title:       c.Title,
		Body:        c.Body,
		AuthorID:    c.AuthorID.Hex(),
		Published:   c.Published,
		PublishedAt: c.PublishedAt,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
