package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hospomate/hospomate-backend-go/internal/config"
	"github.com/hospomate/hospomate-backend-go/internal/handler/http/middleware"
	"github.com/hospomate/hospomate-backend-go/internal/pkg/jwt"
)

func NewRouter(appConfig config.AppConfig, JWTService jwt.Service, insightHandler InsightHandler, adminConfigHandler AdminConfigHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(appConfig.Env != "development")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hospomate-insights"),
		slog.String("version", "v1.0.0"),
		slog.String("env", appConfig.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{appConfig.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  requestLogLevel(appConfig.LogLevel),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Get("/insights/weekly/{storeID}", insightHandler.GetWeeklyDashboard)
			r.Get("/shifts/report/{storeID}", insightHandler.GetShiftReport)

			// Admin only
			r.Route("/admin/config", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/pos-categories", adminConfigHandler.ListPOSCategories)
				r.Get("/job-roles", adminConfigHandler.ListJobRoles)
				r.Route("/contributions", func(r chi.Router) {
					r.Get("/{storeID}", adminConfigHandler.ListContributions)
					r.Post("/{storeID}", adminConfigHandler.CreateContribution)
					r.Delete("/{id}", adminConfigHandler.DeleteContribution)
				})
			})
		})
	})

	return r
}

func requestLogLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
