package routes

import (
	"context"
	"errors"

	authMiddleware "go-staffhub/internal/auth/middleware"
	"go-staffhub/internal/chat/dto"
	"go-staffhub/internal/chat/models"
	"go-staffhub/internal/chat/services"
	"go-staffhub/pkg/permissions"

	"github.com/danielgtaylor/huma/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Routes exposes the direct message surface
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

// RegisterUnifiedRoutes registers all chat routes with the Huma API
func (hr *Routes) RegisterUnifiedRoutes(api huma.API) {
	huma.Get(api, "/chat/{user_id}", hr.conversation)
	huma.Post(api, "/chat/{user_id}", hr.send)
}

func (hr *Routes) conversation(ctx context.Context, input *dto.ConversationInput) (*dto.ConversationOutput, error) {
	user, err := hr.gate.RequireAuth(ctx, input.Authorization, input.Cookie)
	if err != nil {
		return nil, err
	}

	other, err := primitive.ObjectIDFromHex(input.UserID)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid user id")
	}

	messages, err := hr.service.Conversation(ctx, user.UserID, other, input.Limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list messages", err)
	}

	out := &dto.ConversationOutput{}
	out.Body.Messages = make([]dto.MessageOutput, len(messages))
	for i, m := range messages {
		out.Body.Messages[i] = messageOutput(&m)
	}
	out.Body.Total = len(messages)
	return out, nil
}

func (hr *Routes) send(ctx context.Context, input *dto.SendMessageInput) (*dto.SendMessageOutput, error) {
	user, err := hr.gate.RequirePermission(ctx, input.Authorization, input.Cookie, permissions.KeyChatSend)
	if err != nil {
		return nil, err
	}

	recipient, err := primitive.ObjectIDFromHex(input.UserID)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid user id")
	}
	if recipient == user.UserID {
		return nil, huma.Error422UnprocessableEntity("cannot message yourself")
	}

	message, err := hr.service.Send(ctx, user.UserID, recipient, input.Body.Body)
	if err != nil {
		if errors.Is(err, services.ErrRecipientNotFound) {
			return nil, huma.Error404NotFound("recipient not found")
		}
		return nil, huma.Error500InternalServerError("Failed to send message", err)
	}

	return &dto.SendMessageOutput{Body: messageOutput(message)}, nil
}

func messageOutput(m *models.Message) dto.MessageOutput {
	return dto.MessageOutput{
		ID:          m.ID.Hex(),
		SenderID:    m.SenderID.Hex(),
		RecipientID: m.RecipientID.Hex(),
		Body:        m.Body,
		CreatedAt:   m.CreatedAt,
	}
}
