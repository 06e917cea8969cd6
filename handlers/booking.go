package handlers

import (
	"net/http"

	"gamelounge/models"
	"gamelounge/services/booking"
	"gamelounge/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking lifecycle over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

func actorFromContext(c *gin.Context) booking.Actor {
	if isAdmin, ok := c.Get("isAdmin"); ok && isAdmin == true {
		return booking.Actor{Admin: true}
	}
	userID, _ := c.Get("userID")
	id, _ := userID.(string)
	return booking.Actor{UserID: id}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input booking.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.Service.Create(c.Request.Context(), actorFromContext(c), input)
	if err != nil {
		status := bookingErrorStatus(err)
		if status == http.StatusInternalServerError {
			h.Logger.Error("create booking failed", zap.Error(err))
			utils.JSONError(c, status, "failed to create booking")
			return
		}
		utils.JSONError(c, status, err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Booking created successfully",
		"booking_id": record.ID,
		"booking":    record,
	})
}

// ListBookings handles GET /api/bookings (admin). The date query parameter is
// an optional equality filter.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	date := c.Query("date")
	bookings, err := h.Service.ListAll(c.Request.Context(), date)
	if err != nil {
		h.Logger.Error("list bookings failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings")
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

type updateBookingRequest struct {
	Status string `json:"status"`
	Date   string `json:"date"`
	Time   string `json:"time"`
}

// updateBooking dispatches an update request to cancel or reschedule based on
// the body shape, on behalf of the given actor.
func (h *BookingHandler) updateBooking(c *gin.Context, actor booking.Actor) {
	id := c.Param("id")
	var req updateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	switch {
	case req.Status == models.StatusCancelled:
		record, err := h.Service.Cancel(c.Request.Context(), actor, id)
		if err != nil {
			h.respondError(c, err, "cancel booking failed")
			return
		}
		c.JSON(http.StatusOK, record)
	case req.Date != "" && req.Time != "":
		record, err := h.Service.Reschedule(c.Request.Context(), actor, id, req.Date, req.Time)
		if err != nil {
			h.respondError(c, err, "reschedule booking failed")
			return
		}
		c.JSON(http.StatusOK, record)
	default:
		utils.JSONError(c, http.StatusBadRequest, "Invalid update request")
	}
}

// UpdateBooking handles PUT /api/bookings/:id (admin).
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	h.updateBooking(c, booking.Actor{Admin: true})
}

// UpdateUserBooking handles PUT /api/user/bookings/:id (owner only).
func (h *BookingHandler) UpdateUserBooking(c *gin.Context) {
	h.updateBooking(c, actorFromContext(c))
}

// DeleteBooking handles DELETE /api/bookings/:id (admin).
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	h.deleteBooking(c, booking.Actor{Admin: true})
}

// DeleteUserBooking handles DELETE /api/user/bookings/:id (owner only).
func (h *BookingHandler) DeleteUserBooking(c *gin.Context) {
	h.deleteBooking(c, actorFromContext(c))
}

func (h *BookingHandler) deleteBooking(c *gin.Context, actor booking.Actor) {
	id := c.Param("id")
	if err := h.Service.Delete(c.Request.Context(), actor, id); err != nil {
		h.respondError(c, err, "delete booking failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}

// ListUserBookings handles GET /api/user/bookings.
func (h *BookingHandler) ListUserBookings(c *gin.Context) {
	actor := actorFromContext(c)
	bookings, err := h.Service.ListByUser(c.Request.Context(), actor.UserID)
	if err != nil {
		h.Logger.Error("list user bookings failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings")
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// CheckBooking handles GET /api/bookings/check, the public lookup by booking
// id and email.
func (h *BookingHandler) CheckBooking(c *gin.Context) {
	id := c.Query("id")
	email := c.Query("email")
	if id == "" || email == "" {
		utils.JSONError(c, http.StatusBadRequest, "Booking ID and email are required")
		return
	}

	record, err := h.Service.LookupByIDAndEmail(c.Request.Context(), id, email)
	if err != nil {
		h.respondError(c, err, "booking lookup failed")
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *BookingHandler) respondError(c *gin.Context, err error, logMsg string) {
	status := bookingErrorStatus(err)
	if status == http.StatusInternalServerError {
		h.Logger.Error(logMsg, zap.Error(err))
		utils.JSONError(c, status, "internal server error")
		return
	}
	utils.JSONError(c, status, err.Error())
}
