package routes

import (
	"net/http"
	"time"

	"drivehub/handlers"
	"drivehub/middleware"
	"drivehub/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/verify-otp", hb.VerifyOTPHandler)
		api.POST("/login", hb.LoginHandler)
		api.POST("/google-login", hb.GoogleLoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/logout", hb.LogoutHandler)
	}
}

// RegisterVehicleRoutes registers public browsing and owner listing endpoints.
func RegisterVehicleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/vehicles")
	{
		// Public browsing endpoints.
		api.GET("", hb.SearchVehiclesHandler)
		api.GET("/locations/all", hb.VehicleLocationsHandler)
		api.GET("/:id", hb.GetVehicleHandler)

		// Owner endpoints require authentication and the owner role.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRoles(models.RoleOwner))
		protected.GET("/owner", hb.OwnerVehiclesHandler)
		protected.POST("", hb.SubmitVehicleHandler)
		protected.PUT("/:id", hb.UpdateVehicleHandler)
		protected.DELETE("/:id", hb.DeleteVehicleHandler)
		protected.PATCH("/:id/status", hb.ToggleAvailabilityHandler)
	}
}

// RegisterBookingRoutes registers the reservation lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", middleware.RequireRoles(models.RoleCustomer), hb.CreateBookingHandler)
		api.GET("/me", middleware.RequireRoles(models.RoleCustomer), hb.MyBookingsHandler)
		api.GET("/owner", middleware.RequireRoles(models.RoleOwner), hb.OwnerBookingsHandler)
		api.PATCH("/:id/status", middleware.RequireRoles(models.RoleCustomer, models.RoleOwner), hb.UpdateBookingStatusHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for the listing review queue.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRoles(models.RoleAdmin))
		api.GET("/vehicles", hb.AdminListVehiclesHandler)
		api.GET("/vehicles/:id", hb.AdminGetVehicleHandler)
		api.PATCH("/vehicles/:id/status", hb.AdminReviewHandler)
		api.GET("/stats", hb.AdminStatsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm DriveHub"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterUserRoutes(r, hb)
	RegisterVehicleRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
