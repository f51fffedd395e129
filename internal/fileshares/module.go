package fileshares

import (
	"context"
	"log/slog"

	authMiddleware "go-staffhub/internal/auth/middleware"
	"go-staffhub/internal/fileshares/routes"
	"go-staffhub/internal/fileshares/services"
	"go-staffhub/pkg/config"
	"go-staffhub/pkg/database"
	"go-staffhub/pkg/module"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
)

// Module owns uploaded file storage and sharing.
type Module struct {
	*module.BaseModule
	service *services.Service
	routes  *routes.Routes
}

func New(mongodb *database.MongoDB, redis *database.Redis, gate *authMiddleware.Gate) *Module {
	service := services.NewService(mongodb, config.GetUploadDir())

	return &Module{
		BaseModule: module.NewBaseModule("fileshares", mongodb, redis),
		service:    service,
		routes:     routes.NewRoutes(service, gate),
	}
}

// Initialize prepares the upload directory.
func (m *Module) Initialize(ctx context.Context) error {
	return m.service.EnsureUploadDir()
}

// RegisterUnifiedRoutes registers routes on the shared Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API) {
	slog.Info("Registering fileshares routes")
	m.routes.RegisterUnifiedRoutes(api)
}

// Routes implements module.Module; fileshares only uses the unified API
func (m *Module) Routes(r chi.Router) {
	m.RegisterHealthRoute(r)
}
