package chat

import (
	"context"
	"log/slog"

	authMiddleware "go-staffhub/internal/auth/middleware"
	"go-staffhub/internal/chat/routes"
	"go-staffhub/internal/chat/services"
	"go-staffhub/pkg/database"
	"go-staffhub/pkg/module"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
)

// Module owns persisted direct messages.
type Module struct {
	*module.BaseModule
	service *services.Service
	routes  *routes.Routes
}

func New(mongodb *database.MongoDB, redis *database.Redis, gate *authMiddleware.Gate) *Module {
	service := services.NewService(mongodb)

	return &Module{
		BaseModule: module.NewBaseModule("chat", mongodb, redis),
		service:    service,
		routes:     routes.NewRoutes(service, gate),
	}
}

// Service exposes the chat service for cross-module wiring.
func (m *Module) Service() *services.Service {
	return m.service
}

// Initialize creates the conversation indexes.
func (m *Module) Initialize(ctx context.Context) error {
	return m.service.CreateIndexes(ctx)
}

// RegisterUnifiedRoutes registers routes on the shared Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API) {
	slog.Info("Registering chat routes")
	m.routes.RegisterUnifiedRoutes(api)
}

// Routes implements module.Module; chat only uses the unified API
func (m *Module) Routes(r chi.Router) {
	m.RegisterHealthRoute(r)
}
