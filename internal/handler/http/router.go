package http

import (
	"log/slog"
	"os"
	"strings"

	"github.com/Se02246/OrderMaster/internal/config"
	"github.com/Se02246/OrderMaster/internal/handler/web"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	cfg *config.Config,
	apartmentHandler ApartmentHandler,
	employeeHandler EmployeeHandler,
	statsHandler StatsHandler,
	dashboardHandler DashboardHandler,
	pages *web.PageHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ordermaster"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RealIP)

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  logLevel(cfg.App.LogLevel),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/ping"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/apartments", func(r chi.Router) {
			r.Get("/", apartmentHandler.ListApartments)
			r.Post("/", apartmentHandler.CreateApartment)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", apartmentHandler.GetApartment)
				r.Put("/", apartmentHandler.UpdateApartment)
				r.Delete("/", apartmentHandler.DeleteApartment)
			})
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.ListEmployees)
			r.Post("/", employeeHandler.CreateEmployee)
			r.Delete("/{id}", employeeHandler.DeleteEmployee)
		})

		r.Get("/stats", statsHandler.GetStats)
		r.Get("/dashboard", dashboardHandler.GetDashboard)
	})

	// Server-rendered pages take everything else, including the root.
	r.Mount("/", pages.Routes())

	return r
}

func logLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
