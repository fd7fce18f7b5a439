package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/asset-management/internal/asset"
	"github.com/frahmantamala/asset-management/internal/auth"
	"github.com/frahmantamala/asset-management/internal/department"
	"github.com/frahmantamala/asset-management/internal/license"
	"github.com/frahmantamala/asset-management/internal/maintenance"
	"github.com/frahmantamala/asset-management/internal/report"
	"github.com/frahmantamala/asset-management/internal/transport/middleware"
	"github.com/frahmantamala/asset-management/internal/transport/swagger"
	"github.com/frahmantamala/asset-management/internal/user"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth        *auth.Handler
	User        *user.Handler
	Asset       *asset.Handler
	Maintenance *maintenance.Handler
	License     *license.Handler
	Department  *department.Handler
	Report      *report.Handler
}

// RegisterAllRoutes mounts every route on the router. Signup, login and the
// operational endpoints are public; everything else sits behind the JWT
// middleware.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Serve OpenAPI spec plus the Swagger UI at root.
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Get("/health", healthHandler.healthCheckHandler)
	router.Get("/ping", healthHandler.pingHandler)

	router.Post("/signup", h.Auth.Signup)
	router.Post("/login", h.Auth.Login)

	router.Group(func(pr chi.Router) {
		pr.Use(h.Auth.AuthMiddleware)

		pr.Get("/users/me", h.User.GetCurrentUser)

		pr.Route("/assets", func(ar chi.Router) {
			ar.Get("/", h.Asset.ListAssets)
			ar.Post("/", h.Asset.CreateAsset)
			ar.Patch("/{id}", h.Asset.UpdateAsset)
			ar.Delete("/{id}", h.Asset.DeleteAsset)
		})

		pr.Route("/maintenance", func(mr chi.Router) {
			mr.Get("/", h.Maintenance.ListRecords)
			mr.Post("/", h.Maintenance.AddRecord)
			mr.Get("/{assetID}", h.Maintenance.ListByAsset)
			mr.Delete("/{id}", h.Maintenance.DeleteRecord)
		})

		pr.Route("/licenses", func(lr chi.Router) {
			lr.Get("/", h.License.ListLicenses)
			lr.Post("/", h.License.CreateLicense)
			lr.Get("/{id}", h.License.GetLicense)
			lr.Patch("/{id}", h.License.UpdateLicense)
			lr.Delete("/{id}", h.License.DeleteLicense)
		})

		pr.Route("/departments", func(dr chi.Router) {
			dr.Get("/", h.Department.ListDepartments)
			dr.Post("/", h.Department.CreateDepartment)
			dr.Get("/{id}", h.Department.GetDepartment)
			dr.Put("/{id}", h.Department.UpdateDepartment)
			dr.Delete("/{id}", h.Department.DeleteDepartment)
			dr.Get("/{id}/assets", h.Department.DepartmentAssets)
		})

		pr.Route("/report", func(rr chi.Router) {
			rr.Get("/summary", h.Report.Summary)
			rr.Get("/maintenance-costs", h.Report.MaintenanceCosts)
			rr.Get("/asset-stats", h.Report.AssetStats)
		})
	})
}
