package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zapponejosh/luach-api/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET    /health
//	GET    /api/v1/days/today
//	GET    /api/v1/days/{date}
//	GET    /api/v1/days?start=&end=
//	GET    /api/v1/hebrew/{year}/{month}/{day}
//	GET    /api/v1/years/{year}
//	GET    /api/v1/daf
//	GET    /api/v1/daf/{cycle}/{date}
//	GET    /api/v1/admin/stats            (API key)
//	DELETE /api/v1/admin/days/{date}      (API key)
//
// Day endpoints accept ?israel=true|false and ?lang=en|he; without lang the
// Accept-Language header picks the names.
func SetupRoutes(handlers *Handlers, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	baseMiddleware := ChainMiddleware(
		RecoveryMiddleware(logger),
		RequestIDMiddleware(),
		LoggingMiddleware(logger),
		CORSMiddleware(),
	)
	r.Use(middleware.RequestID, middleware.RealIP, baseMiddleware)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, CodeMethodNotAllowed, "Method not allowed")
	})

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/days/today", handlers.GetToday)
		r.Get("/days/{date}", handlers.GetDay)
		r.Get("/days", handlers.GetRange)
		r.Get("/hebrew/{year}/{month}/{day}", handlers.GetHebrewDay)
		r.Get("/years/{year}", handlers.GetYear)
		r.Get("/daf", handlers.ListCycles)
		r.Get("/daf/{cycle}/{date}", handlers.GetDaf)

		r.Route("/admin", func(r chi.Router) {
			r.Use(AuthMiddleware(cfg, logger))
			r.Get("/stats", handlers.GetStats)
			r.Delete("/days/{date}", handlers.DeleteDay)
		})
	})

	return r
}
