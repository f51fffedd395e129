package circulars

import (
	"log/slog"

	authMiddleware "go-staffhub/internal/auth/middleware"
	"go-staffhub/internal/circulars/routes"
	"go-staffhub/internal/circulars/services"
	"go-staffhub/pkg/database"
	"go-staffhub/pkg/module"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
)

// Module owns company circulars.
type Module struct {
	*module.BaseModule
	service *services.Service
	routes  *routes.Routes
}

func New(mongodb *database.MongoDB, redis *database.Redis, gate *authMiddleware.Gate) *Module {
	service := services.NewService(mongodb)

	return &Module{
		BaseModule: module.NewBaseModule("circulars", mongodb, redis),
		service:    service,
		routes:     routes.NewRoutes(service, gate),
	}
}

// Service exposes the circular service for cross-module wiring.
func (m *Module) Service() *services.Service {
	return m.service
}

// RegisterUnifiedRoutes registers routes on the shared Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API) {
	slog.Info("Registering circulars routes")
	m.routes.RegisterUnifiedRoutes(api)
}

// Routes implements module.Module; circulars only uses the unified API
func (m *Module) Routes(r chi.Router) {
	m.RegisterHealthRoute(r)
}
