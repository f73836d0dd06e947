package api

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tenantly/noteboard/internal/api/handlers"
	mw "github.com/tenantly/noteboard/internal/api/middleware"
	"github.com/tenantly/noteboard/internal/auth"
	"github.com/tenantly/noteboard/internal/buildconfig"
	"github.com/tenantly/noteboard/internal/config"
	"github.com/tenantly/noteboard/internal/domain"
	"github.com/tenantly/noteboard/internal/service"
	"github.com/tenantly/noteboard/internal/store"
	"go.uber.org/zap"
)

// App holds the router plus process-wide request counters.
type App struct {
	Router       *chi.Mux
	startTime    time.Time
	requestCount atomic.Int64
	errorCount   atomic.Int64
}

func NewApp(db *pgxpool.Pool, tokens *auth.TokenService, logger *zap.Logger) *App {
	// Stores
	userStore := store.NewUserStore(db)
	tenantStore := store.NewTenantStore(db)
	noteStore := store.NewNoteStore(db)

	// Services
	authSvc := service.NewAuthService(userStore, tenantStore, tokens, logger)
	noteSvc := service.NewNoteService(noteStore, tenantStore, logger)
	tenantSvc := service.NewTenantService(tenantStore, logger)

	// Handlers
	authHandler := handlers.NewAuthHandler(authSvc, logger)
	noteHandler := handlers.NewNoteHandler(noteSvc, logger)
	tenantHandler := handlers.NewTenantHandler(tenantSvc, logger)

	r := chi.NewRouter()

	app := &App{
		Router:    r,
		startTime: time.Now(),
	}

	metricsCollector := mw.NewMetricsCollector(&app.requestCount, &app.errorCount)

	// Global middleware (order matters)
	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(metricsCollector.Middleware)
	r.Use(mw.Logging(logger))
	r.Use(middleware.Recoverer)
	r.Use(mw.RateLimit(config.RateLimitRPS(), config.RateLimitBurst()))

	// Health and metrics (no auth)
	r.Get("/health", healthHandler(db))
	r.Get("/metrics", app.metricsHandler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)

		// Authenticated routes; tenant scope comes from the verified token.
		r.Group(func(r chi.Router) {
			r.Use(mw.BearerAuth(tokens))

			r.Route("/notes", func(r chi.Router) {
				r.Get("/", noteHandler.List)
				r.Post("/", noteHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", noteHandler.GetByID)
					r.Put("/", noteHandler.Update)
					r.Delete("/", noteHandler.Delete)
				})
			})

			r.Route("/tenants/{slug}", func(r chi.Router) {
				r.With(mw.RequireRole(domain.RoleAdmin)).Post("/upgrade", tenantHandler.Upgrade)
			})
		})
	})

	return app
}

// NewRouter returns just the chi.Mux.
func NewRouter(db *pgxpool.Pool, tokens *auth.TokenService, logger *zap.Logger) *chi.Mux {
	return NewApp(db, tokens, logger).Router
}

func healthHandler(db *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error": err.Error()})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

func (app *App) metricsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)

		response := map[string]any{
			"uptime_seconds": uptime.Seconds(),
			"uptime_human":   uptime.Round(time.Second).String(),
			"request_count":  app.requestCount.Load(),
			"error_count":    app.errorCount.Load(),
			"goroutines":     runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb": float64(memStats.Alloc) / 1024 / 1024,
				"sys_mb":   float64(memStats.Sys) / 1024 / 1024,
				"num_gc":   memStats.NumGC,
			},
			"go_version": runtime.Version(),
			"build":      buildconfig.VersionInfo(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

// Ensure stores satisfy the domain interfaces at compile time.
var (
	_ domain.UserStore   = (*store.UserStore)(nil)
	_ domain.TenantStore = (*store.TenantStore)(nil)
	_ domain.NoteStore   = (*store.NoteStore)(nil)
)
