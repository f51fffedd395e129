package routes

import (
	"context"

	"go-staffhub/internal/audit/dto"
	"go-staffhub/internal/audit/services"
	authMiddleware "go-staffhub/internal/auth/middleware"
	"go-staffhub/pkg/permissions"

	"github.com/danielgtaylor/huma/v2"
)

// Routes exposes the audit log listing
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

// RegisterUnifiedRoutes registers the audit routes with the Huma API
func (hr *Routes) RegisterUnifiedRoutes(api huma.API) {
	huma.Get(api, "/audit", hr.list)
}

func (hr *Routes) list(ctx context.Context, input *dto.ListAuditInput) (*dto.ListAuditOutput, error) {
	_, err := hr.gate.RequirePermission(ctx, input.Authorization, input.Cookie, permissions.KeyAuditView)
	if err != nil {
		return nil, err
	}

	entries, err := hr.service.List(ctx, input.ActorID, input.Action, input.Limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list audit entries", err)
	}

	out := &dto.ListAuditOutput{}
	out.Body.Entries = make([]dto.AuditEntryOutput, len(entries))
	for i, e := range entries {
		out.Body.Entries[i] = dto.AuditEntryOutput{
			ID:        e.ID.Hex(),
			ActorID:   e.ActorID,
			Action:    e.Action,
			Entity:    e.Entity,
			Timestamp: e.Timestamp,
		}
	}
	out.Body.Total = len(entries)
	return out, nil
}
