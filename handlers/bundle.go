package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates every handler the route registry wires up.
type HandlerBundle struct {
	// Booking endpoints.
	CreateBooking     gin.HandlerFunc
	ListBookings      gin.HandlerFunc
	UpdateBooking     gin.HandlerFunc
	DeleteBooking     gin.HandlerFunc
	CheckBooking      gin.HandlerFunc
	ListUserBookings  gin.HandlerFunc
	UpdateUserBooking gin.HandlerFunc
	DeleteUserBooking gin.HandlerFunc

	// Availability endpoint.
	GetAvailability gin.HandlerFunc

	// Pricing endpoints.
	GetPricing    gin.HandlerFunc
	UpdatePricing gin.HandlerFunc

	// Setup inventory endpoints.
	GetSetupAvailability    gin.HandlerFunc
	UpdateSetupAvailability gin.HandlerFunc

	// User endpoints.
	RegisterUser gin.HandlerFunc
	LoginUser    gin.HandlerFunc

	// Admin endpoints.
	AdminLogin gin.HandlerFunc
	AdminInit  gin.HandlerFunc
}
