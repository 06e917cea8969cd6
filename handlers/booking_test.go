package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gamelounge/models"
	"gamelounge/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) AvailableSlots(ctx context.Context, date string) ([]string, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBookingService) Quote(ctx context.Context, setupType string, durationHours, players int) (int, error) {
	args := m.Called(ctx, setupType, durationHours, players)
	return args.Int(0), args.Error(1)
}

func (m *MockBookingService) Create(ctx context.Context, actor booking.Actor, input booking.CreateInput) (*models.Booking, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingService) Reschedule(ctx context.Context, actor booking.Actor, id, newDate, newTime string) (*models.Booking, error) {
	args := m.Called(ctx, actor, id, newDate, newTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingService) Cancel(ctx context.Context, actor booking.Actor, id string) (*models.Booking, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingService) Delete(ctx context.Context, actor booking.Actor, id string) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *MockBookingService) LookupByIDAndEmail(ctx context.Context, id, email string) (*models.Booking, error) {
	args := m.Called(ctx, id, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingService) ListAll(ctx context.Context, date string) ([]models.Booking, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingService) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func newBookingRouter(svc booking.BookingService) (*gin.Engine, *BookingHandler) {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(svc, zap.NewNop())
	return gin.New(), h
}

func asUser(userID string, next gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		next(c)
	}
}

func TestCreateBookingHandler(t *testing.T) {
	svc := new(MockBookingService)
	router, h := newBookingRouter(svc)
	router.POST("/api/bookings", asUser("user-1", h.CreateBooking))

	svc.On("Create", mock.Anything, booking.Actor{UserID: "user-1"}, mock.Anything).Return(&models.Booking{
		ID:     "bk-1",
		UserID: "user-1",
		Status: models.StatusConfirmed,
	}, nil)

	body := `{"setup":"squad","players":4,"date":"2026-09-05","time":"18:00","duration":2}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Booking created successfully", resp["message"])
	assert.Equal(t, "bk-1", resp["booking_id"])
}

func TestCreateBookingHandlerSlotUnavailable(t *testing.T) {
	svc := new(MockBookingService)
	router, h := newBookingRouter(svc)
	router.POST("/api/bookings", asUser("user-1", h.CreateBooking))

	svc.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil, booking.ErrSlotUnavailable)

	body := `{"setup":"squad","players":4,"date":"2026-09-05","time":"18:00","duration":2}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckBookingHandler(t *testing.T) {
	svc := new(MockBookingService)
	router, h := newBookingRouter(svc)
	router.GET("/api/bookings/check", h.CheckBooking)

	svc.On("LookupByIDAndEmail", mock.Anything, "bk-1", "brian@example.com").
		Return(&models.Booking{ID: "bk-1", Email: "brian@example.com"}, nil)
	svc.On("LookupByIDAndEmail", mock.Anything, "bk-1", "other@example.com").
		Return(nil, booking.ErrForbidden)
	svc.On("LookupByIDAndEmail", mock.Anything, "missing", "brian@example.com").
		Return(nil, booking.ErrNotFound)

	cases := []struct {
		query  string
		status int
	}{
		{"id=bk-1&email=brian@example.com", http.StatusOK},
		{"id=bk-1&email=other@example.com", http.StatusForbidden},
		{"id=missing&email=brian@example.com", http.StatusNotFound},
		{"id=bk-1", http.StatusBadRequest},
		{"email=brian@example.com", http.StatusBadRequest},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/bookings/check?"+tc.query, nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, tc.status, w.Code, tc.query)
	}
}

func TestUpdateBookingDispatch(t *testing.T) {
	svc := new(MockBookingService)
	router, h := newBookingRouter(svc)
	router.PUT("/api/user/bookings/:id", asUser("user-1", h.UpdateUserBooking))

	actor := booking.Actor{UserID: "user-1"}
	svc.On("Cancel", mock.Anything, actor, "bk-1").
		Return(&models.Booking{ID: "bk-1", Status: models.StatusCancelled}, nil)
	svc.On("Reschedule", mock.Anything, actor, "bk-1", "2026-09-06", "16:00").
		Return(&models.Booking{ID: "bk-1", Status: models.StatusRescheduled}, nil)

	// A cancelled status cancels.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/user/bookings/bk-1", strings.NewReader(`{"status":"cancelled"}`))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Date plus time reschedules.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/api/user/bookings/bk-1", strings.NewReader(`{"date":"2026-09-06","time":"16:00"}`))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Anything else is rejected.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/api/user/bookings/bk-1", strings.NewReader(`{"players":6}`))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertExpectations(t)
}

func TestDeleteUserBookingForbidden(t *testing.T) {
	svc := new(MockBookingService)
	router, h := newBookingRouter(svc)
	router.DELETE("/api/user/bookings/:id", asUser("user-2", h.DeleteUserBooking))

	svc.On("Delete", mock.Anything, booking.Actor{UserID: "user-2"}, "bk-1").Return(booking.ErrForbidden)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/user/bookings/bk-1", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListBookingsHandlerEmptyIsArray(t *testing.T) {
	svc := new(MockBookingService)
	router, h := newBookingRouter(svc)
	router.GET("/api/bookings", h.ListBookings)

	svc.On("ListAll", mock.Anything, "").Return(nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}
