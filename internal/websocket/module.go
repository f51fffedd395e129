package websocket

import (
	"context"
	"log/slog"
	"time"

	authMiddleware "go-staffhub/internal/auth/middleware"
	"go-staffhub/internal/websocket/routes"
	"go-staffhub/internal/websocket/services"
	"go-staffhub/pkg/database"
	"go-staffhub/pkg/module"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
)

// Module owns the connection registry, the Redis hub and the publisher
// contract other modules push events through.
type Module struct {
	*module.BaseModule
	registry *services.ConnectionRegistry
	hub      *services.RedisHub
	service  *services.Service
	routes   *routes.Routes
}

func New(mongodb *database.MongoDB, redis *database.Redis, gate *authMiddleware.Gate) *Module {
	registry := services.NewConnectionRegistry()
	hub := services.NewRedisHub(redis, registry)
	service := services.NewService(registry, hub)

	return &Module{
		BaseModule: module.NewBaseModule("websocket", mongodb, redis),
		registry:   registry,
		hub:        hub,
		service:    service,
		routes:     routes.NewRoutes(service, gate),
	}
}

// Service exposes the publisher for sibling modules.
func (m *Module) Service() *services.Service {
	return m.service
}

// StartBackgroundTasks starts the Redis relay and the stale-connection sweep.
func (m *Module) StartBackgroundTasks(ctx context.Context) {
	slog.Info("Starting websocket background tasks")

	m.hub.Start(ctx)

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-m.StopChannel():
			return
		case <-ticker.C:
			m.registry.CleanupStale()
		}
	}
}

// RegisterUnifiedRoutes registers the admin endpoints on the Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API) {
	slog.Info("Registering websocket routes")
	m.routes.RegisterUnifiedRoutes(api)
}

// Routes wires the raw upgrade endpoint onto the chi router
func (m *Module) Routes(r chi.Router) {
	r.Get("/ws", m.routes.HandleUpgrade)
	m.RegisterHealthRoute(r)
}
