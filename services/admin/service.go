package admin

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"gamelounge/config"
	settingsRepo "gamelounge/database/repository/settings"
	"gamelounge/models"
	"gamelounge/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrMissingFields is returned when username or password is empty.
	ErrMissingFields = errors.New("username and password required")
	// ErrInvalidCredentials is returned when admin credentials do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AdminService issues admin tokens and manages the stored admin credentials.
type AdminService interface {
	// Login verifies admin credentials and returns a 24-hour admin token.
	Login(ctx context.Context, username, password string) (string, error)
	// Init stores bcrypt-hashed admin credentials. Intended for setup time.
	Init(ctx context.Context, username, password string) error
}

// DefaultAdminService implements AdminService. Login checks the stored
// credentials record first and falls back to the configured username and
// password until the init endpoint has been called.
type DefaultAdminService struct {
	Settings settingsRepo.SettingsRepository
}

// Login verifies credentials and returns a signed admin token.
func (s *DefaultAdminService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrMissingFields
	}

	stored, err := s.Settings.GetAdminCredentials(ctx)
	if err != nil {
		utils.GetLogger().Error("AdminLogin: failed to fetch credentials", zap.Error(err))
		return "", fmt.Errorf("login failed, please try again")
	}

	if stored != nil {
		if username != stored.Username {
			return "", ErrInvalidCredentials
		}
		if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(password)); err != nil {
			return "", ErrInvalidCredentials
		}
	} else {
		cfgUser := config.AppConfig.AdminUsername
		cfgPass := config.AppConfig.AdminPassword
		if cfgUser == "" || cfgPass == "" {
			return "", ErrInvalidCredentials
		}
		userOK := subtle.ConstantTimeCompare([]byte(username), []byte(cfgUser)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(password), []byte(cfgPass)) == 1
		if !userOK || !passOK {
			return "", ErrInvalidCredentials
		}
	}

	token, err := utils.GenerateAdminToken()
	if err != nil {
		utils.GetLogger().Error("AdminLogin: failed to generate token", zap.Error(err))
		return "", fmt.Errorf("login failed, please try again")
	}
	return token, nil
}

// Init stores bcrypt-hashed admin credentials in the settings collection.
func (s *DefaultAdminService) Init(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrMissingFields
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("AdminInit: failed to hash password", zap.Error(err))
		return fmt.Errorf("initialization failed, please try again")
	}

	creds := &models.AdminCredentials{
		Username:     username,
		PasswordHash: string(hashed),
		CreatedAt:    time.Now(),
	}
	if err := s.Settings.SetAdminCredentials(ctx, creds); err != nil {
		utils.GetLogger().Error("AdminInit: failed to store credentials", zap.Error(err))
		return fmt.Errorf("initialization failed, please try again")
	}
	return nil
}
