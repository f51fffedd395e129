package routes

import (
	"context"
	"log/slog"
	"net/http"

	authMiddleware "go-staffhub/internal/auth/middleware"
	"go-staffhub/internal/websocket/dto"
	"go-staffhub/internal/websocket/services"
	"go-staffhub/pkg/permissions"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Cookie auth happens before upgrade; cross-origin pages cannot
		// read the socket without a valid token anyway
		return true
	},
}

// Routes exposes the websocket upgrade endpoint and the admin surface
type Routes struct {
	service *services.Service
	gate    *authMiddleware.Gate
}

func NewRoutes(service *services.Service, gate *authMiddleware.Gate) *Routes {
	return &Routes{
		service: service,
		gate:    gate,
	}
}

// RegisterUnifiedRoutes registers the admin endpoints with the Huma API.
// The upgrade endpoint itself needs raw response control and is wired
// onto the chi router via HandleUpgrade.
func (hr *Routes) RegisterUnifiedRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "websocket-status",
		Method:      http.MethodGet,
		Path:        "/websocket/status",
		Summary:     "WebSocket hub status",
		Tags:        []string{"WebSocket"},
	}, hr.status)

	huma.Register(api, huma.Operation{
		OperationID: "websocket-list-connections",
		Method:      http.MethodGet,
		Path:        "/websocket/connections",
		Summary:     "List live websocket connections",
		Tags:        []string{"WebSocket"},
	}, hr.listConnections)

	huma.Register(api, huma.Operation{
		OperationID: "websocket-broadcast",
		Method:      http.MethodPost,
		Path:        "/websocket/broadcast",
		Summary:     "Broadcast a system event to all clients",
		Tags:        []string{"WebSocket"},
	}, hr.broadcast)
}

// HandleUpgrade authenticates the request and upgrades it to a websocket
// session registered for the user.
func (hr *Routes) HandleUpgrade(w http.ResponseWriter, r *http.Request) {
	user, err := hr.gate.RequireAuth(r.Context(), r.Header.Get("Authorization"), r.Header.Get("Cookie"))
	if err != nil {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("WebSocket upgrade failed", "error", err.Error())
		return
	}

	session := hr.service.Registry().Register(user.UserID.Hex(), conn)
	go hr.service.HandleConnection(r.Context(), session)
}

func (hr *Routes) status(ctx context.Context, input *dto.StatusInput) (*dto.StatusOutput, error) {
	out := &dto.StatusOutput{}
	out.Body.Status = "healthy"
	out.Body.ActiveConnections = hr.service.Registry().Count()
	return out, nil
}

func (hr *Routes) listConnections(ctx context.Context, input *dto.ListConnectionsInput) (*dto.ListConnectionsOutput, error) {
	_, err := hr.gate.RequireRoles(ctx, input.Authorization, input.Cookie, permissions.RoleAdmin)
	if err != nil {
		return nil, err
	}

	conns := hr.service.Registry().All()
	out := &dto.ListConnectionsOutput{}
	out.Body.Connections = make([]dto.ConnectionInfo, len(conns))
	for i, c := range conns {
		out.Body.Connections[i] = dto.ConnectionInfo{
			ID:        c.ID,
			UserID:    c.UserID,
			CreatedAt: c.CreatedAt,
			LastPing:  c.LastPing(),
		}
	}
	out.Body.Total = len(conns)
	return out, nil
}

func (hr *Routes) broadcast(ctx context.Context, input *dto.BroadcastInput) (*dto.BroadcastOutput, error) {
	_, err := hr.gate.RequireRoles(ctx, input.Authorization, input.Cookie, permissions.RoleAdmin)
	if err != nil {
		return nil, err
	}

	if err := hr.service.Publish(ctx, input.Body.Event, input.Body.Data); err != nil {
		return nil, huma.Error500InternalServerError("Broadcast failed", err)
	}

	out := &dto.BroadcastOutput{}
	out.Body.Message = "Broadcast sent"
	return out, nil
}
