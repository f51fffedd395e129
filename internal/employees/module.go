package employees

import (
	"log/slog"

	authMiddleware "go-staffhub/internal/auth/middleware"
	"go-staffhub/internal/employees/routes"
	"go-staffhub/internal/employees/services"
	"go-staffhub/pkg/database"
	"go-staffhub/pkg/module"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
)

// Module owns HR employee records and the spreadsheet export.
type Module struct {
	*module.BaseModule
	service *services.Service
	routes  *routes.Routes
}

func New(mongodb *database.MongoDB, redis *database.Redis, gate *authMiddleware.Gate) *Module {
	service := services.NewService(mongodb)

	return &Module{
		BaseModule: module.NewBaseModule("employees", mongodb, redis),
		service:    service,
		routes:     routes.NewRoutes(service, gate),
	}
}

// RegisterUnifiedRoutes registers routes on the shared Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API) {
	slog.Info("Registering employees routes")
	m.routes.RegisterUnifiedRoutes(api)
}

// Routes implements module.Module; employees only uses the unified API
func (m *Module) Routes(r chi.Router) {
	m.RegisterHealthRoute(r)
}
