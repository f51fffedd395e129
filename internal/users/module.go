package users

import (
	"log/slog"

	authMiddleware "go-staffhub/internal/auth/middleware"
	authServices "go-staffhub/internal/auth/services"
	"go-staffhub/internal/users/routes"
	"go-staffhub/internal/users/services"
	"go-staffhub/pkg/database"
	"go-staffhub/pkg/module"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
)

// Module owns user accounts and their permission assignments.
type Module struct {
	*module.BaseModule
	service *services.Service
	routes  *routes.Routes
}

func New(mongodb *database.MongoDB, redis *database.Redis, gate *authMiddleware.Gate, principals *authServices.PrincipalLoader, audit routes.AuditRecorder) *Module {
	service := services.NewService(mongodb, principals)

	return &Module{
		BaseModule: module.NewBaseModule("users", mongodb, redis),
		service:    service,
		routes:     routes.NewRoutes(service, gate, audit),
	}
}

// Service exposes the user service so the websocket and notification
// modules can be wired in after construction.
func (m *Module) Service() *services.Service {
	return m.service
}

// RegisterUnifiedRoutes registers routes on the shared Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API) {
	slog.Info("Registering users routes")
	m.routes.RegisterUnifiedRoutes(api)
}

// Routes implements module.Module; users only uses the unified API
func (m *Module) Routes(r chi.Router) {
	m.RegisterHealthRoute(r)
}
