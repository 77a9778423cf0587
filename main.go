// File: drivehub/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"drivehub/config"
	"drivehub/cron"
	"drivehub/database"
	bookingRepoPkg "drivehub/database/repository/booking"
	userRepoPkg "drivehub/database/repository/user"
	vehicleRepoPkg "drivehub/database/repository/vehicle"
	"drivehub/handlers"
	"drivehub/routes"
	"drivehub/services/booking"
	"drivehub/services/notification"
	"drivehub/services/storage"
	"drivehub/services/tasks"
	"drivehub/services/user"
	"drivehub/services/vehicle"
	"drivehub/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	tasks.InitTaskClient()
	defer tasks.CloseTaskClient()

	storageService, err := storage.NewStorageService()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	vehicleRepo := vehicleRepoPkg.NewMongoVehicleRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	notificationService := notification.NewEmailNotificationService()
	userService := &user.DefaultUserService{
		Repo:     userRepo,
		Notifier: notificationService,
	}
	vehicleService := &vehicle.DefaultVehicleService{
		Repo:    vehicleRepo,
		Users:   userRepo,
		Storage: storageService,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:     bookingRepo,
		Vehicles: vehicleRepo,
	}

	// Background email worker.
	cron.InitEmailWorker(cron.EmailWorker{
		Bookings: bookingRepo,
		Users:    userRepo,
		Notifier: notificationService,
	})

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// Auth endpoints.
		RegisterHandler:    handlers.RegisterHandler(userService),
		VerifyOTPHandler:   handlers.VerifyOTPHandler(userService),
		LoginHandler:       handlers.LoginHandler(userService),
		GoogleLoginHandler: handlers.GoogleLoginHandler(userService),
		LogoutHandler:      handlers.LogoutHandler(userService),

		// Vehicle endpoints.
		SearchVehiclesHandler:     handlers.SearchVehiclesHandler(vehicleService),
		GetVehicleHandler:         handlers.GetVehicleHandler(vehicleService),
		VehicleLocationsHandler:   handlers.VehicleLocationsHandler(vehicleService),
		SubmitVehicleHandler:      handlers.SubmitVehicleHandler(vehicleService),
		UpdateVehicleHandler:      handlers.UpdateVehicleHandler(vehicleService),
		DeleteVehicleHandler:      handlers.DeleteVehicleHandler(vehicleService),
		ToggleAvailabilityHandler: handlers.ToggleAvailabilityHandler(vehicleService),
		OwnerVehiclesHandler:      handlers.OwnerVehiclesHandler(vehicleService),

		// Booking endpoints.
		CreateBookingHandler:       handlers.CreateBookingHandler(bookingService),
		MyBookingsHandler:          handlers.MyBookingsHandler(bookingService),
		OwnerBookingsHandler:       handlers.OwnerBookingsHandler(bookingService),
		UpdateBookingStatusHandler: handlers.UpdateBookingStatusHandler(bookingService),

		// Admin endpoints.
		AdminListVehiclesHandler: handlers.AdminListVehiclesHandler(vehicleService),
		AdminGetVehicleHandler:   handlers.AdminGetVehicleHandler(vehicleService),
		AdminReviewHandler:       handlers.AdminReviewHandler(vehicleService),
		AdminStatsHandler:        handlers.AdminStatsHandler(vehicleService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
