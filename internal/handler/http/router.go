package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/calldesk/callcenter-backend-go/internal/config"
	"github.com/calldesk/callcenter-backend-go/internal/domain/user"
	"github.com/calldesk/callcenter-backend-go/internal/handler/http/middleware"
	"github.com/calldesk/callcenter-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth        AuthHandler
	Attendance  AttendanceHandler
	Leave       LeaveHandler
	Task        TaskHandler
	Settings    SettingsHandler
	Performance PerformanceHandler
	User        UserHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "callcenter-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/users", func(r chi.Router) {
				r.Get("/me", h.User.Me)
				r.With(middleware.RequirePermission(user.PermissionUserViewAll)).
					Get("/", h.User.List)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", h.Attendance.ClockIn)
				r.Post("/clock-out", h.Attendance.ClockOut)
				r.Get("/today", h.Attendance.Today)
				r.Get("/history", h.Attendance.History)
				r.With(middleware.RequirePermission(user.PermissionAttendanceViewAll)).
					Get("/team", h.Attendance.Team)
			})

			r.Route("/leave", func(r chi.Router) {
				r.Post("/", h.Leave.Request)
				r.Get("/my", h.Leave.My)
				r.With(middleware.RequirePermission(user.PermissionLeaveViewAll)).
					Get("/", h.Leave.List)
				r.With(middleware.RequirePermission(user.PermissionLeaveApprove)).
					Patch("/{id}", h.Leave.Process)
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", h.Task.List)
				r.Get("/board", h.Task.Board)
				r.With(middleware.RequirePermission(user.PermissionTaskCreate)).
					Post("/", h.Task.Create)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Task.Get)
					r.Patch("/", h.Task.Update)
					r.Post("/move", h.Task.Move)
					r.Post("/comments", h.Task.AddComment)
					r.With(middleware.RequirePermission(user.PermissionTaskDelete)).
						Delete("/", h.Task.Delete)
				})
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/project-types", h.Settings.ProjectTypes)
				r.With(middleware.RequirePermission(user.PermissionSettingsManage)).
					Put("/project-types", h.Settings.UpdateProjectTypes)
			})

			r.Route("/performance", func(r chi.Router) {
				r.Get("/daily", h.Performance.Daily)
				r.Get("/weekly", h.Performance.Weekly)
				r.Get("/monthly", h.Performance.Monthly)
				r.Get("/goals", h.Performance.Goals)
				r.Get("/team-comparison", h.Performance.TeamComparison)
			})
		})
	})
	return r
}
