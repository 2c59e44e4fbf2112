package http

import (
	"log/slog"
	"os"

	"github.com/corestack-app/corestack-backend-go/internal/config"
	"github.com/corestack-app/corestack-backend-go/internal/handler/http/middleware"
	"github.com/corestack-app/corestack-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth       AuthHandler
	Department DepartmentHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Project    ProjectHandler
	Task       TaskHandler
	Dashboard  DashboardHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "corestack"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
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
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.Refresh)

			// Requires authentication
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService))

				r.Get("/me", h.Auth.Me)
				r.Post("/logout", h.Auth.Logout)
				r.Post("/change-password", h.Auth.ChangePassword)

				// Admin/HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOrHR)
					r.Post("/register", h.Auth.Register)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", h.Department.List)

				// Admin/HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOrHR)
					r.Post("/", h.Department.Create)
					r.Put("/{id}", h.Department.Update)
					r.Delete("/{id}", h.Department.Delete)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)
				r.Put("/{id}", h.Employee.Update)

				// Admin/HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOrHR)
					r.Post("/", h.Employee.Create)
					r.Delete("/{id}", h.Employee.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", h.Attendance.ClockIn)
				r.Post("/clock-out", h.Attendance.ClockOut)
				r.Get("/status", h.Attendance.Status)
				r.Get("/history", h.Attendance.History)
				r.Get("/report", h.Attendance.Report)

				// Admin/HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOrHR)
					r.Post("/record", h.Attendance.Record)
					r.Put("/record/{id}", h.Attendance.UpdateRecord)
					r.Delete("/record/{id}", h.Attendance.DeleteRecord)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Get("/", h.Leave.List)
				r.Post("/", h.Leave.Create)
				r.Get("/balance", h.Leave.Balance)
				r.Get("/{id}", h.Leave.Get)
				r.Put("/{id}", h.Leave.Update)
				r.Post("/{id}/cancel", h.Leave.Cancel)

				// Manager or above; record-level checks happen in the service
				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOrAbove)
					r.Post("/{id}/action", h.Leave.Action)
				})
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", h.Project.List)
				r.Post("/", h.Project.Create)
				r.Get("/{id}", h.Project.Get)
				r.Put("/{id}", h.Project.Update)
				r.Delete("/{id}", h.Project.Delete)

				r.Route("/{id}/members", func(r chi.Router) {
					r.Get("/", h.Project.ListMembers)
					r.Post("/", h.Project.AddMember)
					r.Put("/{employeeID}", h.Project.UpdateMemberRole)
					r.Delete("/{employeeID}", h.Project.RemoveMember)
				})
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", h.Task.List)
				r.Post("/", h.Task.Create)
				r.Get("/board", h.Task.Board)
				r.Get("/{id}", h.Task.Get)
				r.Put("/{id}", h.Task.Update)
				r.Delete("/{id}", h.Task.Delete)

				r.Route("/{id}/comments", func(r chi.Router) {
					r.Get("/", h.Task.ListComments)
					r.Post("/", h.Task.AddComment)
					r.Put("/{commentID}", h.Task.UpdateComment)
					r.Delete("/{commentID}", h.Task.DeleteComment)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/", h.Dashboard.Summary)
				r.Get("/attendance", h.Dashboard.AttendanceStats)
				r.Get("/projects", h.Dashboard.ProjectStats)
			})
		})
	})

	return r
}
