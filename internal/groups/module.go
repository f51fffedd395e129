package groups

import (
	"context"
	"log/slog"

	authMiddleware "go-staffhub/internal/auth/middleware"
	"go-staffhub/internal/groups/routes"
	"go-staffhub/internal/groups/services"
	"go-staffhub/pkg/database"
	"go-staffhub/pkg/module"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
)

// Module owns the permission registry and permission groups.
type Module struct {
	*module.BaseModule
	service *services.Service
	routes  *routes.Routes
}

func New(mongodb *database.MongoDB, redis *database.Redis, gate *authMiddleware.Gate, audit routes.AuditRecorder) *Module {
	service := services.NewService(mongodb)

	return &Module{
		BaseModule: module.NewBaseModule("groups", mongodb, redis),
		service:    service,
		routes:     routes.NewRoutes(service, gate, audit),
	}
}

// Initialize creates indexes and seeds the built-in permission catalog.
func (m *Module) Initialize(ctx context.Context) error {
	if err := m.service.CreateIndexes(ctx); err != nil {
		return err
	}
	return m.service.SeedRegistry(ctx)
}

// Service exposes the group service to sibling modules.
func (m *Module) Service() *services.Service {
	return m.service
}

// RegisterUnifiedRoutes registers routes on the shared Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API) {
	slog.Info("Registering groups routes")
	m.routes.RegisterUnifiedRoutes(api)
}

// Routes implements module.Module; groups only uses the unified API
func (m *Module) Routes(r chi.Router) {
	m.RegisterHealthRoute(r)
}
