package scheduler

import (
	"log/slog"

	authMiddleware "go-staffhub/internal/auth/middleware"
	"go-staffhub/internal/scheduler/routes"
	"go-staffhub/internal/scheduler/services"
	"go-staffhub/pkg/database"
	"go-staffhub/pkg/module"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
)

// Module runs periodic maintenance jobs.
type Module struct {
	*module.BaseModule
	service *services.Service
	routes  *routes.Routes
}

func New(mongodb *database.MongoDB, redis *database.Redis, gate *authMiddleware.Gate) *Module {
	service := services.NewService()

	return &Module{
		BaseModule: module.NewBaseModule("scheduler", mongodb, redis),
		service:    service,
		routes:     routes.NewRoutes(service, gate),
	}
}

// Register adds a maintenance job; see services.Service.Register.
func (m *Module) Register(name, schedule string, fn services.JobFunc) error {
	return m.service.Register(name, schedule, fn)
}

// Start begins executing registered jobs.
func (m *Module) Start() {
	m.service.Start()
}

// Stop implements module.Module and halts the job runner.
func (m *Module) Stop() {
	m.service.Stop()
	m.BaseModule.Stop()
}

// RegisterUnifiedRoutes registers routes on the shared Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API) {
	slog.Info("Registering scheduler routes")
	m.routes.RegisterUnifiedRoutes(api)
}

// Routes implements module.Module; scheduler only uses the unified API
func (m *Module) Routes(r chi.Router) {
	m.RegisterHealthRoute(r)
}
