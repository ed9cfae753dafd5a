package v1

import (
	"fmt"
	"net/http"
	"time"

	"go-buildpro-backend/config"
	"go-buildpro-backend/internal/delivery/http/middleware"
	"go-buildpro-backend/internal/delivery/http/response"
	"go-buildpro-backend/internal/domain"
	"go-buildpro-backend/internal/usecase"
	"go-buildpro-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AppointmentUC domain.AppointmentUsecase
	HealthUC      usecase.HealthUsecase
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	isProduction := deps.Config.IsProduction()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config)) // CORS must be first!
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		// Truly unexpected failures still answer with the JSON envelope
		detail := ""
		if !isProduction {
			detail = fmt.Sprint(recovered)
		}
		response.Error(c, http.StatusInternalServerError, "Internal server error", nil, detail)
		c.Abort()
	}))
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler(isProduction))

	// Liveness banner
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":   "BuildPro Construction API Server",
			"status":    "running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Health Check
	r.GET("/health", func(c *gin.Context) {
		check := deps.HealthUC.Check(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{
			"status":      check["status"],
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"environment": check["environment"],
		})
	})

	// Public routes
	NewAppointmentHandler(r, deps.AppointmentUC) // Booking form (no auth required)

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Unmatched routes
	r.NoRoute(func(c *gin.Context) {
		c.Error(apperror.NotFound("Endpoint not found"))
	})

	return r
}
