package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gamelounge/config"
	"gamelounge/database"
	bookingRepo "gamelounge/database/repository/booking"
	settingsRepo "gamelounge/database/repository/settings"
	userRepo "gamelounge/database/repository/user"
	"gamelounge/handlers"
	"gamelounge/middleware"
	"gamelounge/routes"
	"gamelounge/services/admin"
	"gamelounge/services/booking"
	"gamelounge/services/user"
	"gamelounge/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.StartHealthMonitor(utils.GetLockClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	users := userRepo.NewMongoUserRepo()
	settings := settingsRepo.NewMongoSettingsRepo()

	// Services.
	userService := &user.DefaultUserService{Repo: users}
	adminService := &admin.DefaultAdminService{Settings: settings}
	bookingService := &booking.DefaultBookingService{
		Repo:     bookings,
		Users:    users,
		Settings: settings,
		Lock:     utils.NewSlotLock(utils.GetLockClient()),
	}

	// Handlers.
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	availabilityHandler := handlers.NewAvailabilityHandler(bookingService, settings, logger)
	pricingHandler := handlers.NewPricingHandler(settings, logger)
	setupHandler := handlers.NewSetupHandler(settings, logger)
	userHandler := handlers.NewUserHandler(userService, logger)
	adminHandler := handlers.NewAdminHandler(adminService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		CreateBooking:     bookingHandler.CreateBooking,
		ListBookings:      bookingHandler.ListBookings,
		UpdateBooking:     bookingHandler.UpdateBooking,
		DeleteBooking:     bookingHandler.DeleteBooking,
		CheckBooking:      bookingHandler.CheckBooking,
		ListUserBookings:  bookingHandler.ListUserBookings,
		UpdateUserBooking: bookingHandler.UpdateUserBooking,
		DeleteUserBooking: bookingHandler.DeleteUserBooking,

		GetAvailability: availabilityHandler.GetAvailability,

		GetPricing:    pricingHandler.GetPricing,
		UpdatePricing: pricingHandler.UpdatePricing,

		GetSetupAvailability:    setupHandler.GetSetupAvailability,
		UpdateSetupAvailability: setupHandler.UpdateSetupAvailability,

		RegisterUser: userHandler.Register,
		LoginUser:    userHandler.Login,

		AdminLogin: adminHandler.Login,
		AdminInit:  adminHandler.Init,
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
