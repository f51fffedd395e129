package audit

import (
	"context"
	"log/slog"

	"go-staffhub/internal/audit/routes"
	"go-staffhub/internal/audit/services"
	authMiddleware "go-staffhub/internal/auth/middleware"
	"go-staffhub/pkg/database"
	"go-staffhub/pkg/module"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
)

// Module owns the append-only operation log.
type Module struct {
	*module.BaseModule
	service *services.Service
	routes  *routes.Routes
}

func New(mongodb *database.MongoDB, redis *database.Redis, gate *authMiddleware.Gate) *Module {
	service := services.NewService(mongodb)

	return &Module{
		BaseModule: module.NewBaseModule("audit", mongodb, redis),
		service:    service,
		routes:     routes.NewRoutes(service, gate),
	}
}

// Initialize creates the listing index.
func (m *Module) Initialize(ctx context.Context) error {
	return m.service.CreateIndexes(ctx)
}

// Service exposes the recorder for admin mutation paths.
func (m *Module) Service() *services.Service {
	return m.service
}

// RegisterUnifiedRoutes registers routes on the shared Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API) {
	slog.Info("Registering audit routes")
	m.routes.RegisterUnifiedRoutes(api)
}

// Routes implements module.Module; audit only uses the unified API
func (m *Module) Routes(r chi.Router) {
	m.RegisterHealthRoute(r)
}
