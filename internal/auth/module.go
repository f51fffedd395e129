package auth

import (
	"context"
	"log/slog"

	"go-staffhub/internal/auth/middleware"
	"go-staffhub/internal/auth/routes"
	"go-staffhub/internal/auth/services"
	"go-staffhub/pkg/database"
	"go-staffhub/pkg/module"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
)

// Module wires authentication: token issuance, principal resolution and
// the authorization gate the other modules consume.
type Module struct {
	*module.BaseModule
	authService *services.AuthService
	principals  *services.PrincipalLoader
	gate        *middleware.Gate
	routes      *routes.Routes
}

func New(mongodb *database.MongoDB, redis *database.Redis) *Module {
	tokenService := services.NewTokenService()
	principals := services.NewPrincipalLoader(mongodb)
	authService := services.NewAuthService(mongodb, tokenService, principals)
	gate := middleware.NewGate(tokenService, principals)

	return &Module{
		BaseModule:  module.NewBaseModule("auth", mongodb, redis),
		authService: authService,
		principals:  principals,
		gate:        gate,
		routes:      routes.NewRoutes(authService, gate),
	}
}

// Initialize sets up indexes and bootstraps the first admin account.
func (m *Module) Initialize(ctx context.Context) error {
	if err := m.authService.CreateIndexes(ctx); err != nil {
		return err
	}
	return m.authService.EnsureAdminAccount(ctx)
}

// Gate returns the authorization gate for other modules.
func (m *Module) Gate() *middleware.Gate {
	return m.gate
}

// PrincipalLoader returns the principal loader for modules that need raw
// account documents.
func (m *Module) PrincipalLoader() *services.PrincipalLoader {
	return m.principals
}

// RegisterUnifiedRoutes registers routes on the shared Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API) {
	slog.Info("Registering auth routes")
	m.routes.RegisterUnifiedRoutes(api)
}

// Routes implements module.Module; auth only uses the unified API
func (m *Module) Routes(r chi.Router) {
	m.RegisterHealthRoute(r)
}
