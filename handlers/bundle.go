package handlers

import (
	userRepoPkg "drivehub/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Auth endpoints
	RegisterHandler    gin.HandlerFunc
	VerifyOTPHandler   gin.HandlerFunc
	LoginHandler       gin.HandlerFunc
	GoogleLoginHandler gin.HandlerFunc
	LogoutHandler      gin.HandlerFunc

	// Vehicle endpoints
	SearchVehiclesHandler     gin.HandlerFunc
	GetVehicleHandler         gin.HandlerFunc
	VehicleLocationsHandler   gin.HandlerFunc
	SubmitVehicleHandler      gin.HandlerFunc
	UpdateVehicleHandler      gin.HandlerFunc
	DeleteVehicleHandler      gin.HandlerFunc
	ToggleAvailabilityHandler gin.HandlerFunc
	OwnerVehiclesHandler      gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler       gin.HandlerFunc
	MyBookingsHandler          gin.HandlerFunc
	OwnerBookingsHandler       gin.HandlerFunc
	UpdateBookingStatusHandler gin.HandlerFunc

	// Admin endpoints
	AdminListVehiclesHandler gin.HandlerFunc
	AdminGetVehicleHandler   gin.HandlerFunc
	AdminReviewHandler       gin.HandlerFunc
	AdminStatsHandler        gin.HandlerFunc
}
