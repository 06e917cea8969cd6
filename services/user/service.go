package user

import (
	"context"
	"errors"
	"fmt"

	userRepo "gamelounge/database/repository/user"
	"gamelounge/models"
	"gamelounge/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrMissingFields is returned when a registration or login field is empty.
	ErrMissingFields = errors.New("all fields are required")
	// ErrUserExists is returned when the email is already registered.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound is returned on login with an unknown email.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned when the password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthResponse is returned on successful registration or login.
type AuthResponse struct {
	Token string         `json:"token"`
	User  map[string]any `json:"user"`
}

// UserService handles registration and authentication of customers.
type UserService interface {
	// Register creates a user account and returns a fresh token.
	Register(ctx context.Context, email, password, name, phone string) (*AuthResponse, error)
	// Login authenticates by email and password and returns a fresh token.
	Login(ctx context.Context, email, password string) (*AuthResponse, error)
	// GetByID fetches a user record. Returns nil when absent.
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// DefaultUserService implements UserService against the Mongo user repository.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Register creates a user account. Passwords are stored as bcrypt hashes;
// the returned token is valid for 30 days.
func (s *DefaultUserService) Register(ctx context.Context, email, password, name, phone string) (*AuthResponse, error) {
	if email == "" || password == "" || name == "" || phone == "" {
		return nil, ErrMissingFields
	}

	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	usr := models.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		Phone:        phone,
		PasswordHash: string(hashed),
	}
	if err := s.Repo.Create(ctx, &usr); err != nil {
		utils.GetLogger().Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	token, err := utils.GenerateUserToken(usr.ID, usr.Email, usr.Name)
	if err != nil {
		utils.GetLogger().Error("Register: failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return &AuthResponse{Token: token, User: usr.PublicView()}, nil
}

// Login authenticates a customer by email and password.
func (s *DefaultUserService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}

	usr, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		utils.GetLogger().Error("Login: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if usr == nil {
		return nil, ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateUserToken(usr.ID, usr.Email, usr.Name)
	if err != nil {
		utils.GetLogger().Error("Login: failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	return &AuthResponse{Token: token, User: usr.PublicView()}, nil
}

// GetByID fetches a user record. Returns nil when absent.
func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.GetByID(ctx, id)
}
