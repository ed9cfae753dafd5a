package main

import (
	"context"
	"go-buildpro-backend/config"
	_ "go-buildpro-backend/docs" // Important for Swagger
	v1 "go-buildpro-backend/internal/delivery/http/v1"
	"go-buildpro-backend/internal/usecase"
	"go-buildpro-backend/pkg/email"
	"go-buildpro-backend/pkg/logger"
	"go-buildpro-backend/pkg/validation"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
)

// @title           BuildPro Construction API
// @version         1.0
// @description     Backend for the BuildPro construction booking pipeline.
// @host            localhost:8080
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting BuildPro backend",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"corsOrigin", cfg.FrontendURL,
	)

	// 3. Setup Email Transport (constructed once, injected everywhere)
	sender := email.NewSMTPSender(cfg)
	if !sender.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - booking form will be unavailable")
	}

	composer, err := email.NewComposer(cfg.EmailTimezone)
	if err != nil {
		logger.Log.Error("Failed to initialize email composer", "error", err)
		os.Exit(1)
	}

	// 4. Setup Shared Validation
	validate := validator.New()
	validation.RegisterValidators(validate)

	// 5. Setup UseCases
	dispatchTimeout := time.Duration(cfg.EmailTimeoutSeconds) * time.Second
	appointmentUC := usecase.NewAppointmentUsecase(sender, composer, validate, dispatchTimeout)
	healthUC := usecase.NewHealthUsecase(cfg.Environment)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AppointmentUC: appointmentUC,
		HealthUC:      healthUC,
		Config:        cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
