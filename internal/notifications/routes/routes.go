package routes

import (
	"context"
	"errors"
	"fmt"

	authMiddleware "go-staffhub/internal/auth/middleware"
	"go-staffhub/internal/notifications/dto"
	"go-staffhub/internal/notifications/services"

	"github.com/danielgtaylor/huma/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Routes exposes the per-user notification surface
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

// RegisterUnifiedRoutes registers all notification routes with the Huma API
func (hr *Routes) RegisterUnifiedRoutes(api huma.API) {
	huma.Get(api, "/notifications", hr.list)
	huma.Post(api, "/notifications/{notification_id}/read", hr.markRead)
	huma.Post(api, "/notifications/read-all", hr.markAllRead)
}

func (hr *Routes) list(ctx context.Context, input *dto.ListNotificationsInput) (*dto.ListNotificationsOutput, error) {
	user, err := hr.gate.RequireAuth(ctx, input.Authorization, input.Cookie)
	if err != nil {
		return nil, err
	}

	notifications, err := hr.service.List(ctx, user.UserID, input.UnreadOnly, input.Limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list notifications", err)
	}

	out := &dto.ListNotificationsOutput{}
	out.Body.Notifications = make([]dto.NotificationOutput, len(notifications))
	for i, n := range notifications {
		out.Body.Notifications[i] = dto.NotificationOutput{
			ID:        n.ID.Hex(),
			Title:     n.Title,
			Body:      n.Body,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		}
	}
	out.Body.Total = len(notifications)
	return out, nil
}

func (hr *Routes) markRead(ctx context.Context, input *dto.MarkReadInput) (*dto.MessageOutput, error) {
	user, err := hr.gate.RequireAuth(ctx, input.Authorization, input.Cookie)
	if err != nil {
		return nil, err
	}

	id, err := primitive.ObjectIDFromHex(input.NotificationID)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid notification id")
	}

	if err := hr.service.MarkRead(ctx, user.UserID, id); err != nil {
		if errors.Is(err, services.ErrNotificationNotFound) {
			return nil, huma.Error404NotFound("notification not found")
		}
		return nil, huma.Error500InternalServerError("Failed to mark notification read", err)
	}

	out := &dto.MessageOutput{}
	out.Body.Message = "Notification marked read"
	return out, nil
}

func (hr *Routes) markAllRead(ctx context.Context, input *dto.MarkAllReadInput) (*dto.MessageOutput, error) {
	user, err := hr.gate.RequireAuth(ctx, input.Authorization, input.Cookie)
	if err != nil {
		return nil, err
	}

	count, err := hr.service.MarkAllRead(ctx, user.UserID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to mark notifications read", err)
	}

	out := &dto.MessageOutput{}
	out.Body.Message = fmt.Sprintf("%d notifications marked read", count)
	return out, nil
}
