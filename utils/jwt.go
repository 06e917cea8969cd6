package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt"
)

// Token lifetimes.
const (
	UserTokenTTL  = 30 * 24 * time.Hour
	AdminTokenTTL = 24 * time.Hour
)

// Load the secret from an environment variable. Fallback to a default (not recommended in production).
var secretKey = []byte(getSecret())

func getSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "gamelounge-dev"
	}
	return secret
}

// ErrNotAdmin is returned for a validly signed token that lacks the admin claim.
var ErrNotAdmin = errors.New("admin access required")

// UserClaims carries the identity embedded in a customer token.
type UserClaims struct {
	UserID string
	Email  string
	Name   string
}

// GenerateUserToken creates a signed 30-day token for a registered user.
func GenerateUserToken(userID, email, name string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"name":    name,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(UserTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

// GenerateAdminToken creates a signed 24-hour token carrying the admin claim.
func GenerateAdminToken() (string, error) {
	claims := jwt.MapClaims{
		"admin": true,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(AdminTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey, nil
	})
}

// ExtractUserClaims validates a token and pulls out the user identity claims.
func ExtractUserClaims(tokenString string) (*UserClaims, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, errors.New("token does not contain a valid 'user_id' claim")
	}
	uc := &UserClaims{UserID: userID}
	uc.Email, _ = claims["email"].(string)
	uc.Name, _ = claims["name"].(string)
	return uc, nil
}

// VerifyAdminToken validates an admin token. Beyond signature and expiry it
// requires both the 'admin' and 'exp' claims to be present.
func VerifyAdminToken(tokenString string) error {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return errors.New("invalid token")
	}
	if _, ok := claims["exp"]; !ok {
		return errors.New("token missing 'exp' claim")
	}
	isAdmin, ok := claims["admin"].(bool)
	if !ok || !isAdmin {
		return ErrNotAdmin
	}
	return nil
}
