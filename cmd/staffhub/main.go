package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"go-staffhub/internal/audit"
	"go-staffhub/internal/auth"
	"go-staffhub/internal/chat"
	"go-staffhub/internal/circulars"
	"go-staffhub/internal/employees"
	"go-staffhub/internal/fileshares"
	"go-staffhub/internal/groups"
	"go-staffhub/internal/incidents"
	"go-staffhub/internal/notifications"
	"go-staffhub/internal/scheduler"
	"go-staffhub/internal/users"
	"go-staffhub/internal/vacations"
	"go-staffhub/internal/websocket"
	"go-staffhub/pkg/app"
	"go-staffhub/pkg/config"
	"go-staffhub/pkg/module"
	"go-staffhub/pkg/version"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "go.uber.org/automaxprocs"

	staffhubMiddleware "go-staffhub/pkg/middleware"
)

// customLoggerMiddleware logs requests but excludes health check endpoints
func customLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/health") {
			next.ServeHTTP(w, r)
			return
		}
		middleware.Logger(next).ServeHTTP(w, r)
	})
}

// corsMiddleware adds CORS headers for the configured frontend origins
func corsMiddleware(next http.Handler) http.Handler {
	allowed := strings.Split(config.GetEnv("CORS_ORIGINS", ""), ",")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		for _, a := range allowed {
			if a != "" && origin == strings.TrimSpace(a) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				break
			}
		}

		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	log.Printf("StaffHub %s | CPUs: %d | GOMAXPROCS: %d",
		version.GetVersionString(), runtime.NumCPU(), runtime.GOMAXPROCS(0))

	ctx := context.Background()

	appCtx, err := app.InitializeApp("staffhub")
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	r := chi.NewRouter()
	r.Use(customLoggerMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(corsMiddleware)
	r.Use(staffhubMiddleware.TracingMiddleware)

	// Module construction; auth first, everything else hangs off its gate
	authModule := auth.New(appCtx.MongoDB, appCtx.Redis)
	gate := authModule.Gate()
	principals := authModule.PrincipalLoader()

	auditModule := audit.New(appCtx.MongoDB, appCtx.Redis, gate)
	auditService := auditModule.Service()

	groupsModule := groups.New(appCtx.MongoDB, appCtx.Redis, gate, auditService)
	usersModule := users.New(appCtx.MongoDB, appCtx.Redis, gate, principals, auditService)
	websocketModule := websocket.New(appCtx.MongoDB, appCtx.Redis, gate)
	notificationsModule := notifications.New(appCtx.MongoDB, appCtx.Redis, gate)
	employeesModule := employees.New(appCtx.MongoDB, appCtx.Redis, gate)
	incidentsModule := incidents.New(appCtx.MongoDB, appCtx.Redis, gate)
	vacationsModule := vacations.New(appCtx.MongoDB, appCtx.Redis, gate)
	circularsModule := circulars.New(appCtx.MongoDB, appCtx.Redis, gate)
	filesharesModule := fileshares.New(appCtx.MongoDB, appCtx.Redis, gate)
	chatModule := chat.New(appCtx.MongoDB, appCtx.Redis, gate)
	schedulerModule := scheduler.New(appCtx.MongoDB, appCtx.Redis, gate)

	// Cross-module side-channels
	websocketService := websocketModule.Service()
	notificationService := notificationsModule.Service()
	notificationService.SetPublisher(websocketService)
	usersModule.Service().SetPublisher(websocketService)
	usersModule.Service().SetNotifier(notificationService)
	vacationsModule.Service().SetNotifier(notificationService)
	circularsModule.Service().SetNotifier(notificationService)
	chatModule.Service().SetPublisher(websocketService)

	// Periodic maintenance
	if err := schedulerModule.Register("notifications-cleanup", "0 0 3 * * *", notificationService.CleanupExpired); err != nil {
		log.Fatalf("Failed to register notifications cleanup: %v", err)
	}
	if err := schedulerModule.Register("audit-cleanup", "0 30 3 * * *", auditService.CleanupExpired); err != nil {
		log.Fatalf("Failed to register audit cleanup: %v", err)
	}

	// Indexes, registry seeding and the bootstrap admin account
	initializers := []interface {
		Name() string
		Initialize(ctx context.Context) error
	}{
		authModule, groupsModule, notificationsModule, auditModule, chatModule, filesharesModule,
	}
	for _, init := range initializers {
		if err := init.Initialize(ctx); err != nil {
			log.Fatalf("Failed to initialize %s module: %v", init.Name(), err)
		}
	}

	modules := []module.Module{
		authModule, auditModule, groupsModule, usersModule, websocketModule,
		notificationsModule, employeesModule, incidentsModule, vacationsModule,
		circularsModule, filesharesModule, chatModule, schedulerModule,
	}

	apiPrefix := config.GetAPIPrefix()

	humaConfig := huma.DefaultConfig("StaffHub API", version.GetVersionString())
	humaConfig.Info.Description = "Employee records administration with group-based permissions"

	var api huma.API
	if apiPrefix == "" {
		api = humachi.New(r, humaConfig)
	} else {
		r.Route(apiPrefix, func(prefixRouter chi.Router) {
			api = humachi.New(prefixRouter, humaConfig)
		})
	}

	authModule.RegisterUnifiedRoutes(api)
	auditModule.RegisterUnifiedRoutes(api)
	groupsModule.RegisterUnifiedRoutes(api)
	usersModule.RegisterUnifiedRoutes(api)
	websocketModule.RegisterUnifiedRoutes(api)
	notificationsModule.RegisterUnifiedRoutes(api)
	employeesModule.RegisterUnifiedRoutes(api)
	incidentsModule.RegisterUnifiedRoutes(api)
	vacationsModule.RegisterUnifiedRoutes(api)
	circularsModule.RegisterUnifiedRoutes(api)
	filesharesModule.RegisterUnifiedRoutes(api)
	chatModule.RegisterUnifiedRoutes(api)
	schedulerModule.RegisterUnifiedRoutes(api)

	// Raw endpoints that need direct response control (websocket upgrade)
	r.Route("/websocket", websocketModule.Routes)

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy","service":"staffhub","version":"` + version.GetVersionString() + `"}`))
	})

	for _, mod := range modules {
		go mod.StartBackgroundTasks(ctx)
	}
	schedulerModule.Start()

	port := app.GetPort("8080")
	host := config.GetHost()

	srv := &http.Server{
		Addr:         host + ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("Starting StaffHub API server", slog.String("addr", srv.Addr), slog.String("prefix", apiPrefix))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Received shutdown signal, initiating graceful shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	for _, mod := range modules {
		mod.Stop()
	}

	appCtx.Shutdown(shutdownCtx)

	slog.Info("StaffHub shutdown completed")
}
