package routes

import (
	"net/http"

	"gamelounge/handlers"
	"gamelounge/middleware"
	"gamelounge/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers the admin-facing booking endpoints plus the
// public lookup.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.GET("/check", hb.CheckBooking)

		api.POST("", middleware.JWTAuthUserMiddleware(), hb.CreateBooking)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthAdminMiddleware())
		admin.GET("", hb.ListBookings)
		admin.PUT("/:id", hb.UpdateBooking)
		admin.DELETE("/:id", hb.DeleteBooking)
	}
}

// RegisterAvailabilityRoutes registers the availability endpoint.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/availability", middleware.JWTAuthUserMiddleware(), hb.GetAvailability)
}

// RegisterPricingRoutes registers the pricing endpoints.
func RegisterPricingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/pricing", hb.GetPricing)
	r.PUT("/api/pricing", middleware.JWTAuthAdminMiddleware(), hb.UpdatePricing)
}

// RegisterSetupRoutes registers the setup inventory endpoints.
func RegisterSetupRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/setup-availability", hb.GetSetupAvailability)
	r.PUT("/api/setup-availability", middleware.JWTAuthAdminMiddleware(), hb.UpdateSetupAvailability)
}

// RegisterUserRoutes registers registration, login and the user-scoped
// booking endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/user")
	{
		api.POST("/register", hb.RegisterUser)
		api.POST("/login", hb.LoginUser)

		// Protected routes (require authentication).
		protected := api.Group("/bookings")
		protected.Use(middleware.JWTAuthUserMiddleware())
		protected.GET("", hb.ListUserBookings)
		protected.PUT("/:id", hb.UpdateUserBooking)
		protected.DELETE("/:id", hb.DeleteUserBooking)
	}
}

// RegisterAdminRoutes registers admin login and the one-time init endpoint.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.POST("/login", hb.AdminLogin)
		api.POST("/init", hb.AdminInit)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterPricingRoutes(r, hb)
	RegisterSetupRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
