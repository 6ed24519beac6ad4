package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/ironnest/ironnest-backend/config"
	"github.com/ironnest/ironnest-backend/handlers"
	"github.com/ironnest/ironnest-backend/middleware"
)

// Dependencies struct holds all dependencies required for setting up routes.
type Dependencies struct {
	Config         *config.Config
	ContactHandler *handlers.ContactHandler
	BookingHandler *handlers.BookingHandler
	EmailHandler   *handlers.EmailHandler
	AuthHandler    *handlers.AuthHandler
	HealthHandler  *handlers.HealthHandler
	Logger         *zap.SugaredLogger
}

// SetupRouter configures and returns the main Gin engine with all routes defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	handlers.RegisterValidatorTagNames()

	r := gin.Default()

	// Global Middleware
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))

	// Health and Metrics Routes
	r.GET("/health", deps.HealthHandler.LivenessCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API Group
	api := r.Group("/api")
	{
		api.POST("/contacts", deps.ContactHandler.CreateContact)
		api.GET("/contacts", deps.ContactHandler.ListContacts)
		api.DELETE("/contacts/:id", deps.ContactHandler.DeleteContact)

		api.POST("/bookings", deps.BookingHandler.CreateBooking)
		api.GET("/bookings", deps.BookingHandler.ListBookings)
		api.PATCH("/bookings/:id/status", deps.BookingHandler.UpdateBookingStatus)

		api.POST("/send_email", deps.EmailHandler.SendEmail)
		api.POST("/auth", deps.AuthHandler.Login)
	}

	return r
}
