package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/isj-group4/fingerprint-attendance-go/internal/config"
	"github.com/isj-group4/fingerprint-attendance-go/internal/handler/http/middleware"
	"github.com/isj-group4/fingerprint-attendance-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	attendanceHandler AttendanceHandler,
	staffHandler StaffHandler,
	statsHandler StatsHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "fingerprint-attendance"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				// Recording requires the terminal's biometric assertion.
				r.Group(func(r chi.Router) {
					r.Use(middleware.BiometricVerified)
					r.Post("/record", attendanceHandler.Record)
				})

				r.Get("/date/{date}", attendanceHandler.ListByDate)
				r.Get("/staff/{staffID}", attendanceHandler.ListByStaff)
				r.Get("/staff/{staffID}/date/{date}", attendanceHandler.GetByStaffAndDate)
				r.Get("/department/{departmentID}", attendanceHandler.ListByDepartment)
				r.Get("/range", attendanceHandler.ListByRange)
				r.Get("/{id}", attendanceHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", attendanceHandler.List)
				})
			})

			r.Get("/staff", staffHandler.ListActive)
			r.Get("/departments", staffHandler.ListDepartments)

			r.Route("/stats", func(r chi.Router) {
				r.Get("/daily", statsHandler.Daily)
				r.Get("/period", statsHandler.Period)
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/reports/monthly", reportHandler.Monthly)
			})
		})
	})
	return r
}
