package notifications

import (
	"context"
	"log/slog"

	authMiddleware "go-staffhub/internal/auth/middleware"
	"go-staffhub/internal/notifications/routes"
	"go-staffhub/internal/notifications/services"
	"go-staffhub/pkg/database"
	"go-staffhub/pkg/module"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
)

// Module owns per-user notification records.
type Module struct {
	*module.BaseModule
	service *services.Service
	routes  *routes.Routes
}

func New(mongodb *database.MongoDB, redis *database.Redis, gate *authMiddleware.Gate) *Module {
	service := services.NewService(mongodb)

	return &Module{
		BaseModule: module.NewBaseModule("notifications", mongodb, redis),
		service:    service,
		routes:     routes.NewRoutes(service, gate),
	}
}

// Initialize creates the listing index.
func (m *Module) Initialize(ctx context.Context) error {
	return m.service.CreateIndexes(ctx)
}

// Service exposes the notification store for sibling modules.
func (m *Module) Service() *services.Service {
	return m.service
}

// RegisterUnifiedRoutes registers routes on the shared Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API) {
	slog.Info("Registering notifications routes")
	m.routes.RegisterUnifiedRoutes(api)
}

// Routes implements module.Module; notifications only uses the unified API
func (m *Module) Routes(r chi.Router) {
	m.RegisterHealthRoute(r)
}
