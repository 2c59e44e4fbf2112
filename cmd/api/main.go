package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/corestack-app/corestack-backend-go/internal/config"
	appHTTP "github.com/corestack-app/corestack-backend-go/internal/handler/http"
	"github.com/corestack-app/corestack-backend-go/internal/pkg/cron"
	"github.com/corestack-app/corestack-backend-go/internal/pkg/database"
	"github.com/corestack-app/corestack-backend-go/internal/pkg/jwt"
	"github.com/corestack-app/corestack-backend-go/internal/repository/postgresql"
	attendanceService "github.com/corestack-app/corestack-backend-go/internal/service/attendance"
	serviceAuth "github.com/corestack-app/corestack-backend-go/internal/service/auth"
	dashboardService "github.com/corestack-app/corestack-backend-go/internal/service/dashboard"
	departmentService "github.com/corestack-app/corestack-backend-go/internal/service/department"
	employeeService "github.com/corestack-app/corestack-backend-go/internal/service/employee"
	leaveService "github.com/corestack-app/corestack-backend-go/internal/service/leave"
	projectService "github.com/corestack-app/corestack-backend-go/internal/service/project"
	taskService "github.com/corestack-app/corestack-backend-go/internal/service/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	memberRepo := postgresql.NewMemberRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	commentRepo := postgresql.NewCommentRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := serviceAuth.NewAuthService(userRepo, employeeRepo, JWTService)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, userRepo, departmentRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo)
	projectSvc := projectService.NewProjectService(db, projectRepo, memberRepo, employeeRepo)
	taskSvc := taskService.NewTaskService(taskRepo, commentRepo, projectRepo, memberRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, employeeRepo)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc, JWTService),
		Department: appHTTP.NewDepartmentHandler(departmentSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Project:    appHTTP.NewProjectHandler(projectSvc),
		Task:       appHTTP.NewTaskHandler(taskSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
	}

	router := appHTTP.NewRouter(cfg, JWTService, handlers)

	if cfg.Cron.Enabled {
		absenceMarker := attendanceService.NewAbsenceMarker(attendanceRepo, employeeRepo)
		scheduler := cron.NewScheduler()
		scheduler.AddJob("mark-absent-employees", 24*time.Hour, absenceMarker.Run)
		scheduler.Start()
		defer scheduler.Stop()
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Shutdown error:", err)
	}
}
