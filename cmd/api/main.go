package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/calldesk/callcenter-backend-go/internal/config"
	appHTTP "github.com/calldesk/callcenter-backend-go/internal/handler/http"
	"github.com/calldesk/callcenter-backend-go/internal/pkg/database"
	"github.com/calldesk/callcenter-backend-go/internal/pkg/jwt"
	"github.com/calldesk/callcenter-backend-go/internal/repository/mongodb"
	attendanceService "github.com/calldesk/callcenter-backend-go/internal/service/attendance"
	authService "github.com/calldesk/callcenter-backend-go/internal/service/auth"
	leaveService "github.com/calldesk/callcenter-backend-go/internal/service/leave"
	performanceService "github.com/calldesk/callcenter-backend-go/internal/service/performance"
	settingsService "github.com/calldesk/callcenter-backend-go/internal/service/settings"
	taskService "github.com/calldesk/callcenter-backend-go/internal/service/task"
	userService "github.com/calldesk/callcenter-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewMongoDB(cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = db.Close(ctx)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userRepo, err := mongodb.NewUserRepository(ctx, db)
	if err != nil {
		log.Fatal("Failed to initialize user repository:", err)
	}
	attendanceRepo, err := mongodb.NewAttendanceRepository(ctx, db)
	if err != nil {
		log.Fatal("Failed to initialize attendance repository:", err)
	}
	leaveRepo, err := mongodb.NewLeaveRepository(ctx, db)
	if err != nil {
		log.Fatal("Failed to initialize leave repository:", err)
	}
	taskRepo, err := mongodb.NewTaskRepository(ctx, db)
	if err != nil {
		log.Fatal("Failed to initialize task repository:", err)
	}
	tokenRepo, err := mongodb.NewRefreshTokenRepository(ctx, db)
	if err != nil {
		log.Fatal("Failed to initialize refresh token repository:", err)
	}
	settingsRepo := mongodb.NewSettingsRepository(db)
	performanceRepo := mongodb.NewPerformanceRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, tokenRepo, JWTService)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, userRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo)
	taskSvc := taskService.NewTaskService(taskRepo, userRepo)
	settingsSvc := settingsService.NewSettingsService(settingsRepo)
	performanceSvc := performanceService.NewPerformanceService(performanceRepo, userRepo)
	userSvc := userService.NewUserService(userRepo)

	router := appHTTP.NewRouter(cfg, JWTService, appHTTP.Handlers{
		Auth:        appHTTP.NewAuthHandler(authSvc, JWTService),
		Attendance:  appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:       appHTTP.NewLeaveHandler(leaveSvc),
		Task:        appHTTP.NewTaskHandler(taskSvc),
		Settings:    appHTTP.NewSettingsHandler(settingsSvc),
		Performance: appHTTP.NewPerformanceHandler(performanceSvc),
		User:        appHTTP.NewUserHandler(userSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
