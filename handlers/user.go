package handlers

import (
	"errors"
	"net/http"

	"gamelounge/services/user"
	"gamelounge/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes registration and login.
type UserHandler struct {
	Service user.UserService
	Logger  *zap.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc user.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{Service: svc, Logger: logger}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

// Register handles POST /api/user/register.
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.Service.Register(c.Request.Context(), req.Email, req.Password, req.Name, req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrMissingFields), errors.Is(err, user.ErrUserExists):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		default:
			h.Logger.Error("registration failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, resp)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/user/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.Service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrMissingFields):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, user.ErrUserNotFound):
			utils.JSONError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, user.ErrInvalidCredentials):
			utils.JSONError(c, http.StatusUnauthorized, err.Error())
		default:
			h.Logger.Error("login failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}
